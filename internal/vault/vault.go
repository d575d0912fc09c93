package vault

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const DefaultCurrency = "BRL"

// Vault is a named savings bucket, optionally funded from an origin bank.
type Vault struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	BankID      *uuid.UUID      `json:"bankId,omitempty"`
	UserID      uuid.UUID       `json:"userId"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   *time.Time      `json:"updatedAt,omitempty"`
}

type CreateParams struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" validate:"gte=0"`
	Currency    string          `json:"currency" validate:"omitempty,len=3"`
	BankID      *uuid.UUID      `json:"bankId,omitempty"`
}

type UpdateParams struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,min=1"`
	Description *string          `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty" validate:"omitempty,gte=0"`
	Currency    *string          `json:"currency,omitempty" validate:"omitempty,len=3"`
	BankID      *uuid.UUID       `json:"bankId,omitempty"`
}
