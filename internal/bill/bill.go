package bill

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/finboard/internal/bank"
	"github.com/MrJamesThe3rd/finboard/internal/dates"
	"github.com/MrJamesThe3rd/finboard/internal/expense"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusPaid     Status = "PAID"
	StatusOverdue  Status = "OVERDUE"
	StatusPaidLate Status = "PAID_LATE"
)

func (s Status) Settled() bool {
	return s == StatusPaid || s == StatusPaidLate
}

type PaymentMethod string

const (
	PaymentPix        PaymentMethod = "PIX"
	PaymentBoleto     PaymentMethod = "BOLETO"
	PaymentCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentDebitCard  PaymentMethod = "DEBIT_CARD"
	PaymentTransfer   PaymentMethod = "TRANSFER"
	PaymentCash       PaymentMethod = "CASH"
)

// Bill is a payable: an expense scheduled for a future payment.
type Bill struct {
	ID            uuid.UUID        `json:"id"`
	Expense       *expense.Expense `json:"expense,omitempty"`
	Bank          *bank.Bank       `json:"bank,omitempty"`
	PaymentMethod PaymentMethod    `json:"paymentMethod"`
	DueDate       dates.Date       `json:"dueDate"`
	AutoPay       bool             `json:"autoPay"`
	Status        Status           `json:"status"`
	PaymentDate   dates.Date       `json:"paymentDate"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     *time.Time       `json:"updatedAt,omitempty"`
}

// Amount is the value of the underlying expense.
func (b *Bill) Amount() decimal.Decimal {
	if b.Expense == nil {
		return decimal.Zero
	}

	return b.Expense.Value
}

// BankID returns the paying bank, falling back to the expense's bank.
func (b *Bill) BankID() *uuid.UUID {
	if b.Bank != nil {
		return &b.Bank.ID
	}

	return b.Expense.BankID()
}

func (b *Bill) CategoryID() *uuid.UUID {
	return b.Expense.CategoryID()
}

func (b *Bill) Description() string {
	if b.Expense == nil {
		return "Bill " + b.ID.String()
	}

	return b.Expense.Name
}

// StatusOn is the settled status for a payment made on the given date.
func (b *Bill) StatusOn(paid dates.Date) Status {
	if !b.DueDate.IsZero() && paid.After(b.DueDate) {
		return StatusPaidLate
	}

	return StatusPaid
}

type CreateParams struct {
	ExpenseID     uuid.UUID     `json:"expenseId" validate:"required"`
	BankID        *uuid.UUID    `json:"bankId,omitempty"`
	PaymentMethod PaymentMethod `json:"paymentMethod" validate:"omitempty,oneof=PIX BOLETO CREDIT_CARD DEBIT_CARD TRANSFER CASH"`
	DueDate       dates.Date    `json:"dueDate" validate:"required"`
	AutoPay       bool          `json:"autoPay"`
}

type UpdateParams struct {
	BankID        *uuid.UUID     `json:"bankId,omitempty"`
	PaymentMethod *PaymentMethod `json:"paymentMethod,omitempty" validate:"omitempty,oneof=PIX BOLETO CREDIT_CARD DEBIT_CARD TRANSFER CASH"`
	DueDate       *dates.Date    `json:"dueDate,omitempty"`
	AutoPay       *bool          `json:"autoPay,omitempty"`
	Status        *Status        `json:"status,omitempty" validate:"omitempty,oneof=PENDING PAID OVERDUE PAID_LATE"`
	PaymentDate   *dates.Date    `json:"paymentDate,omitempty"`
}

type MarkAsPaidParams struct {
	PaymentDate dates.Date `json:"paymentDate"`
	BankID      *uuid.UUID `json:"bankId,omitempty"`
}

type ListFilter struct {
	Status *Status
}
