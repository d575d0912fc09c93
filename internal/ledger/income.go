package ledger

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finboard/internal/income"
)

type Incomes interface {
	Create(ctx context.Context, params income.CreateParams) (*income.ExtraIncome, error)
	Update(ctx context.Context, id uuid.UUID, params income.UpdateParams) (*income.ExtraIncome, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// IncomeSync writes extra income and keeps the balance and total income of
// the receiving bank in step with it.
type IncomeSync struct {
	incomes  Incomes
	balances *BalanceKeeper
	logger   *slog.Logger
}

func NewIncomeSync(incomes Incomes, balances *BalanceKeeper, logger *slog.Logger) *IncomeSync {
	if logger == nil {
		logger = slog.Default()
	}

	return &IncomeSync{incomes: incomes, balances: balances, logger: logger}
}

func (s *IncomeSync) Create(ctx context.Context, params income.CreateParams) (*income.ExtraIncome, error) {
	var created *income.ExtraIncome

	steps := []step{{
		name: "create-income",
		do: func(ctx context.Context) error {
			var err error
			created, err = s.incomes.Create(ctx, params)

			return err
		},
		compensate: func(ctx context.Context) error {
			return s.incomes.Delete(ctx, created.ID)
		},
	}}

	if params.BankID != nil {
		steps = append(steps, s.balances.adjust("credit-bank", *params.BankID, Credit(params.Amount)))
	}

	if err := run(ctx, s.logger, "create extra income", steps); err != nil {
		return nil, err
	}

	return created, nil
}

// Update applies params to old. On the same bank only the difference between
// the new and old amount is applied. When the bank changes, the old bank loses
// the old amount and the new bank gains the new one.
func (s *IncomeSync) Update(ctx context.Context, old *income.ExtraIncome, params income.UpdateParams) (*income.ExtraIncome, error) {
	newAmount := old.Amount
	if params.Amount != nil {
		newAmount = *params.Amount
	}

	newBank := old.BankID
	if params.BankID != nil {
		newBank = params.BankID
	}

	var steps []step

	switch {
	case sameBank(old.BankID, newBank):
		if delta := newAmount.Sub(old.Amount); newBank != nil && !delta.IsZero() {
			steps = append(steps, s.balances.adjust("adjust-bank", *newBank, Credit(delta)))
		}
	default:
		if old.BankID != nil {
			steps = append(steps, s.balances.adjust("debit-old-bank", *old.BankID, Credit(old.Amount).Neg()))
		}

		if newBank != nil {
			steps = append(steps, s.balances.adjust("credit-new-bank", *newBank, Credit(newAmount)))
		}
	}

	var updated *income.ExtraIncome

	steps = append(steps, step{
		name: "update-income",
		do: func(ctx context.Context) error {
			var err error
			updated, err = s.incomes.Update(ctx, old.ID, params)

			return err
		},
	})

	if err := run(ctx, s.logger, "update extra income", steps); err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete takes the income's amount back out of its bank, then deletes it.
func (s *IncomeSync) Delete(ctx context.Context, inc *income.ExtraIncome) error {
	var steps []step

	if inc.BankID != nil {
		steps = append(steps, s.balances.adjust("debit-bank", *inc.BankID, Credit(inc.Amount).Neg()))
	}

	steps = append(steps, step{
		name: "delete-income",
		do: func(ctx context.Context) error {
			return s.incomes.Delete(ctx, inc.ID)
		},
	})

	return run(ctx, s.logger, "delete extra income", steps)
}

func sameBank(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
