package income

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExtraIncome is money received outside the salary, credited to a bank.
type ExtraIncome struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	BankID      *uuid.UUID      `json:"bankId,omitempty"`
	CategoryID  *uuid.UUID      `json:"categoryId,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   *time.Time      `json:"updatedAt,omitempty"`
}

type CreateParams struct {
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"gt=0"`
	BankID      *uuid.UUID      `json:"bankId,omitempty"`
	CategoryID  *uuid.UUID      `json:"categoryId,omitempty"`
}

type UpdateParams struct {
	Description *string          `json:"description,omitempty" validate:"omitempty,min=1"`
	Amount      *decimal.Decimal `json:"amount,omitempty" validate:"omitempty,gt=0"`
	BankID      *uuid.UUID       `json:"bankId,omitempty"`
	CategoryID  *uuid.UUID       `json:"categoryId,omitempty"`
}

type AmountParams struct {
	Amount decimal.Decimal `json:"amount" validate:"gt=0"`
}

type TransferParams struct {
	BankID uuid.UUID `json:"bankId" validate:"required"`
}
