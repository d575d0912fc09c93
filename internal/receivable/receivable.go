package receivable

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/finboard/internal/bank"
	"github.com/MrJamesThe3rd/finboard/internal/dates"
	"github.com/MrJamesThe3rd/finboard/internal/income"
)

type Status string

const (
	StatusPending      Status = "PENDING"
	StatusReceived     Status = "RECEIVED"
	StatusOverdue      Status = "OVERDUE"
	StatusReceivedLate Status = "RECEIVED_LATE"
)

func (s Status) Settled() bool {
	return s == StatusReceived || s == StatusReceivedLate
}

type ReceiptMethod string

const (
	ReceiptPix      ReceiptMethod = "PIX"
	ReceiptBoleto   ReceiptMethod = "BOLETO"
	ReceiptTransfer ReceiptMethod = "TRANSFER"
	ReceiptCash     ReceiptMethod = "CASH"
)

type Receivable struct {
	ID                   uuid.UUID           `json:"id"`
	ExtraIncome          *income.ExtraIncome `json:"extraIncome,omitempty"`
	Bank                 *bank.Bank          `json:"bank,omitempty"`
	ReceiptMethod        ReceiptMethod       `json:"receiptMethod"`
	DueDate              dates.Date          `json:"dueDate"`
	AutomaticBankReceipt bool                `json:"automaticBankReceipt"`
	Status               Status              `json:"status"`
	ReceivedDate         dates.Date          `json:"receivedDate"`
	CreatedAt            time.Time           `json:"createdAt"`
	UpdatedAt            *time.Time          `json:"updatedAt,omitempty"`
}

func (r *Receivable) Amount() decimal.Decimal {
	if r.ExtraIncome == nil {
		return decimal.Zero
	}

	return r.ExtraIncome.Amount
}

// BankID returns the receiving bank, falling back to the extra income's bank.
func (r *Receivable) BankID() *uuid.UUID {
	if r.Bank != nil {
		return &r.Bank.ID
	}

	if r.ExtraIncome == nil {
		return nil
	}

	return r.ExtraIncome.BankID
}

func (r *Receivable) CategoryID() *uuid.UUID {
	if r.ExtraIncome == nil {
		return nil
	}

	return r.ExtraIncome.CategoryID
}

func (r *Receivable) Description() string {
	if r.ExtraIncome == nil {
		return "Receivable " + r.ID.String()
	}

	return r.ExtraIncome.Description
}

func (r *Receivable) StatusOn(received dates.Date) Status {
	if !r.DueDate.IsZero() && received.After(r.DueDate) {
		return StatusReceivedLate
	}

	return StatusReceived
}

type CreateParams struct {
	ExtraIncomeID        uuid.UUID     `json:"extraIncomeId" validate:"required"`
	BankID               *uuid.UUID    `json:"bankId,omitempty"`
	ReceiptMethod        ReceiptMethod `json:"receiptMethod" validate:"omitempty,oneof=PIX BOLETO TRANSFER CASH"`
	DueDate              dates.Date    `json:"dueDate" validate:"required"`
	AutomaticBankReceipt bool          `json:"automaticBankReceipt"`
}

type UpdateParams struct {
	BankID               *uuid.UUID     `json:"bankId,omitempty"`
	ReceiptMethod        *ReceiptMethod `json:"receiptMethod,omitempty" validate:"omitempty,oneof=PIX BOLETO TRANSFER CASH"`
	DueDate              *dates.Date    `json:"dueDate,omitempty"`
	AutomaticBankReceipt *bool          `json:"automaticBankReceipt,omitempty"`
	Status               *Status        `json:"status,omitempty" validate:"omitempty,oneof=PENDING RECEIVED OVERDUE RECEIVED_LATE"`
	ReceivedDate         *dates.Date    `json:"receivedDate,omitempty"`
}

type MarkAsReceivedParams struct {
	ReceivedDate dates.Date `json:"receivedDate"`
	BankID       *uuid.UUID `json:"bankId,omitempty"`
}

type ListFilter struct {
	Status *Status
}
