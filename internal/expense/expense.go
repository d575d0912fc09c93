package expense

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/finboard/internal/bank"
	"github.com/MrJamesThe3rd/finboard/internal/category"
	"github.com/MrJamesThe3rd/finboard/internal/dates"
)

type Expense struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Value       decimal.Decimal    `json:"value"`
	ExpenseDate dates.Date         `json:"expenseDate"`
	Category    *category.Category `json:"category,omitempty"`
	Bank        *bank.Bank         `json:"bank,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   *time.Time         `json:"updatedAt,omitempty"`
}

// CategoryID returns the id of the linked category, if any.
func (e *Expense) CategoryID() *uuid.UUID {
	if e == nil || e.Category == nil {
		return nil
	}

	return &e.Category.ID
}

func (e *Expense) BankID() *uuid.UUID {
	if e == nil || e.Bank == nil {
		return nil
	}

	return &e.Bank.ID
}

type CreateParams struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value" validate:"gt=0"`
	ExpenseDate dates.Date      `json:"expenseDate"`
	CategoryID  *uuid.UUID      `json:"categoryId,omitempty"`
	BankID      *uuid.UUID      `json:"bankId,omitempty"`
}

type UpdateParams struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,min=1"`
	Description *string          `json:"description,omitempty"`
	Value       *decimal.Decimal `json:"value,omitempty" validate:"omitempty,gt=0"`
	ExpenseDate *dates.Date      `json:"expenseDate,omitempty"`
	CategoryID  *uuid.UUID       `json:"categoryId,omitempty"`
	BankID      *uuid.UUID       `json:"bankId,omitempty"`
}
