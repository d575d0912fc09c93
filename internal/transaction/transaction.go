package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/finboard/internal/dates"
)

// Type represents the direction of money for a transaction.
type Type string

const (
	TypeDeposit    Type = "DEPOSIT"
	TypeWithdrawal Type = "WITHDRAWAL"
)

// Transaction represents a money movement on a bank or vault.
type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        dates.Date      `json:"transaction_date"`
	Type        Type            `json:"transaction_type"`
	CategoryID  *uuid.UUID      `json:"category_id,omitempty"`
	BankID      *uuid.UUID      `json:"bank_id,omitempty"`
	VaultID     *uuid.UUID      `json:"vault_id,omitempty"`
	ReferenceID *uuid.UUID      `json:"reference_id,omitempty"` // Settled bill or receivable
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"`
}

// Signed returns the amount with withdrawals negative.
func (t *Transaction) Signed() decimal.Decimal {
	if t.Type == TypeWithdrawal {
		return t.Amount.Neg()
	}

	return t.Amount
}

type CreateParams struct {
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"gt=0"`
	Date        dates.Date      `json:"transaction_date" validate:"required"`
	Type        Type            `json:"transaction_type" validate:"oneof=DEPOSIT WITHDRAWAL"`
	CategoryID  *uuid.UUID      `json:"category_id,omitempty"`
	BankID      *uuid.UUID      `json:"bank_id,omitempty"`
	VaultID     *uuid.UUID      `json:"vault_id,omitempty"`
	ReferenceID *uuid.UUID      `json:"reference_id,omitempty"`
}

type UpdateParams struct {
	Description *string          `json:"description,omitempty" validate:"omitempty,min=1"`
	Amount      *decimal.Decimal `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Date        *dates.Date      `json:"transaction_date,omitempty"`
	Type        *Type            `json:"transaction_type,omitempty" validate:"omitempty,oneof=DEPOSIT WITHDRAWAL"`
	CategoryID  *uuid.UUID       `json:"category_id,omitempty"`
	BankID      *uuid.UUID       `json:"bank_id,omitempty"`
	VaultID     *uuid.UUID       `json:"vault_id,omitempty"`
}

type ListFilter struct {
	Type      *Type
	BankID    *uuid.UUID
	VaultID   *uuid.UUID
	StartDate *dates.Date
	EndDate   *dates.Date
}
