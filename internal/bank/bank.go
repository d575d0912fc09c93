package bank

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Bank is an account whose running totals are stored by the backend and
// kept in step with income and expenses by the client.
type Bank struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	TotalIncome    decimal.Decimal `json:"totalIncome"`
	TotalExpense   decimal.Decimal `json:"totalExpense"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      *time.Time      `json:"updatedAt,omitempty"`
}

type CreateParams struct {
	Name           string          `json:"name" validate:"required"`
	Description    string          `json:"description"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
}

type UpdateParams struct {
	Name           *string          `json:"name,omitempty" validate:"omitempty,min=1"`
	Description    *string          `json:"description,omitempty"`
	CurrentBalance *decimal.Decimal `json:"currentBalance,omitempty"`
	TotalIncome    *decimal.Decimal `json:"totalIncome,omitempty"`
	TotalExpense   *decimal.Decimal `json:"totalExpense,omitempty"`
}

type TransferParams struct {
	FromBankID uuid.UUID       `json:"fromBankId" validate:"required"`
	ToBankID   uuid.UUID       `json:"toBankId" validate:"required,nefield=FromBankID"`
	Amount     decimal.Decimal `json:"amount" validate:"gt=0"`
}

type AmountParams struct {
	Amount decimal.Decimal `json:"amount" validate:"gt=0"`
}

// Metrics aggregates every bank of the current user.
type Metrics struct {
	TotalBalance decimal.Decimal `json:"totalBalance"`
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	BankCount    int             `json:"bankCount"`
}
