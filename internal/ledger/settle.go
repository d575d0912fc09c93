package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finboard/internal/apiclient"
	"github.com/MrJamesThe3rd/finboard/internal/bill"
	"github.com/MrJamesThe3rd/finboard/internal/config"
	"github.com/MrJamesThe3rd/finboard/internal/dates"
	"github.com/MrJamesThe3rd/finboard/internal/receivable"
	"github.com/MrJamesThe3rd/finboard/internal/transaction"
)

var ErrAlreadySettled = errors.New("already settled")

type Transactions interface {
	Create(ctx context.Context, params transaction.CreateParams) (*transaction.Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Bills interface {
	Update(ctx context.Context, id uuid.UUID, params bill.UpdateParams) (*bill.Bill, error)
	MarkAsPaid(ctx context.Context, id uuid.UUID, params bill.MarkAsPaidParams) (*bill.Bill, error)
}

type Receivables interface {
	Update(ctx context.Context, id uuid.UUID, params receivable.UpdateParams) (*receivable.Receivable, error)
	MarkAsReceived(ctx context.Context, id uuid.UUID, params receivable.MarkAsReceivedParams) (*receivable.Receivable, error)
}

// Settler marks bills paid and receivables received.
//
// In client mode it records the transaction, moves the bank balance and then
// stores the new status as three saga steps. In server mode a single call
// leaves all of that to the backend.
type Settler struct {
	mode        config.SettlementMode
	bills       Bills
	receivables Receivables
	txs         Transactions
	balances    *BalanceKeeper
	logger      *slog.Logger
	today       func() dates.Date
}

func NewSettler(
	mode config.SettlementMode,
	bills Bills,
	receivables Receivables,
	txs Transactions,
	balances *BalanceKeeper,
	logger *slog.Logger,
) *Settler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Settler{
		mode:        mode,
		bills:       bills,
		receivables: receivables,
		txs:         txs,
		balances:    balances,
		logger:      logger,
		today:       dates.Today,
	}
}

func (s *Settler) PayBill(ctx context.Context, b *bill.Bill) (*bill.Bill, error) {
	if b.Status.Settled() {
		return nil, fmt.Errorf("bill %s: %w", b.ID, ErrAlreadySettled)
	}

	today := s.today()
	bankID := b.BankID()

	if s.mode == config.SettlementServer {
		ctx = apiclient.WithIdempotencyKey(ctx, uuid.NewString())
		return s.bills.MarkAsPaid(ctx, b.ID, bill.MarkAsPaidParams{PaymentDate: today, BankID: bankID})
	}

	status := b.StatusOn(today)

	var (
		paid  *bill.Bill
		steps []step
	)

	if bankID != nil && b.Amount().IsPositive() {
		steps = append(steps,
			recordTransaction(s.txs, transaction.CreateParams{
				Description: b.Description(),
				Amount:      b.Amount(),
				Date:        today,
				Type:        transaction.TypeWithdrawal,
				CategoryID:  b.CategoryID(),
				BankID:      bankID,
				ReferenceID: &b.ID,
			}),
			s.balances.adjust("debit-bank", *bankID, Debit(b.Amount())),
		)
	}

	steps = append(steps, step{
		name: "mark-paid",
		do: func(ctx context.Context) error {
			var err error
			paid, err = s.bills.Update(ctx, b.ID, bill.UpdateParams{Status: &status, PaymentDate: &today})

			return err
		},
	})

	if err := run(ctx, s.logger, "pay bill", steps); err != nil {
		return nil, err
	}

	s.logger.Info("bill paid", "bill_id", b.ID, "status", status, "amount", b.Amount().String())

	return paid, nil
}

func (s *Settler) ReceiveReceivable(ctx context.Context, r *receivable.Receivable) (*receivable.Receivable, error) {
	if r.Status.Settled() {
		return nil, fmt.Errorf("receivable %s: %w", r.ID, ErrAlreadySettled)
	}

	today := s.today()
	bankID := r.BankID()

	if s.mode == config.SettlementServer {
		ctx = apiclient.WithIdempotencyKey(ctx, uuid.NewString())
		return s.receivables.MarkAsReceived(ctx, r.ID, receivable.MarkAsReceivedParams{ReceivedDate: today, BankID: bankID})
	}

	status := r.StatusOn(today)

	var (
		received *receivable.Receivable
		steps    []step
	)

	if bankID != nil && r.Amount().IsPositive() {
		steps = append(steps,
			recordTransaction(s.txs, transaction.CreateParams{
				Description: r.Description(),
				Amount:      r.Amount(),
				Date:        today,
				Type:        transaction.TypeDeposit,
				CategoryID:  r.CategoryID(),
				BankID:      bankID,
				ReferenceID: &r.ID,
			}),
			s.balances.adjust("credit-bank", *bankID, Credit(r.Amount())),
		)
	}

	steps = append(steps, step{
		name: "mark-received",
		do: func(ctx context.Context) error {
			var err error
			received, err = s.receivables.Update(ctx, r.ID, receivable.UpdateParams{Status: &status, ReceivedDate: &today})

			return err
		},
	})

	if err := run(ctx, s.logger, "receive receivable", steps); err != nil {
		return nil, err
	}

	s.logger.Info("receivable received", "receivable_id", r.ID, "status", status, "amount", r.Amount().String())

	return received, nil
}

// recordTransaction creates a transaction, undone by deleting it.
func recordTransaction(txs Transactions, params transaction.CreateParams) step {
	var created *transaction.Transaction

	return step{
		name: "record-transaction",
		do: func(ctx context.Context) error {
			var err error
			created, err = txs.Create(ctx, params)

			return err
		},
		compensate: func(ctx context.Context) error {
			return txs.Delete(ctx, created.ID)
		},
	}
}
