package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/finboard/internal/bank"
)

type Banks interface {
	Get(ctx context.Context, id uuid.UUID) (*bank.Bank, error)
	Update(ctx context.Context, id uuid.UUID, params bank.UpdateParams) (*bank.Bank, error)
}

// Delta is a change to a bank's running totals.
type Delta struct {
	Balance decimal.Decimal
	Income  decimal.Decimal
	Expense decimal.Decimal
}

func (d Delta) Neg() Delta {
	return Delta{Balance: d.Balance.Neg(), Income: d.Income.Neg(), Expense: d.Expense.Neg()}
}

func (d Delta) IsZero() bool {
	return d.Balance.IsZero() && d.Income.IsZero() && d.Expense.IsZero()
}

// Credit is money coming into a bank as income.
func Credit(amount decimal.Decimal) Delta {
	return Delta{Balance: amount, Income: amount}
}

// Debit is money leaving a bank as an expense.
func Debit(amount decimal.Decimal) Delta {
	return Delta{Balance: amount.Neg(), Expense: amount}
}

// BalanceKeeper applies deltas to bank totals. It always re-reads the bank
// before writing, and adjustments to one bank never interleave within this
// process.
type BalanceKeeper struct {
	banks Banks

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewBalanceKeeper(banks Banks) *BalanceKeeper {
	return &BalanceKeeper{banks: banks, locks: make(map[uuid.UUID]*sync.Mutex)}
}

func (k *BalanceKeeper) Apply(ctx context.Context, bankID uuid.UUID, d Delta) (*bank.Bank, error) {
	l := k.lock(bankID)
	l.Lock()
	defer l.Unlock()

	b, err := k.banks.Get(ctx, bankID)
	if err != nil {
		return nil, fmt.Errorf("reading bank %s: %w", bankID, err)
	}

	params := bank.UpdateParams{CurrentBalance: new(b.CurrentBalance.Add(d.Balance))}

	if !d.Income.IsZero() {
		params.TotalIncome = new(b.TotalIncome.Add(d.Income))
	}

	if !d.Expense.IsZero() {
		params.TotalExpense = new(b.TotalExpense.Add(d.Expense))
	}

	updated, err := k.banks.Update(ctx, bankID, params)
	if err != nil {
		return nil, fmt.Errorf("updating bank %s: %w", bankID, err)
	}

	return updated, nil
}

func (k *BalanceKeeper) lock(id uuid.UUID) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()

	l, ok := k.locks[id]
	if !ok {
		l = &sync.Mutex{}
		k.locks[id] = l
	}

	return l
}

// adjust is a saga step applying d to bankID, undone by applying -d.
func (k *BalanceKeeper) adjust(name string, bankID uuid.UUID, d Delta) step {
	return step{
		name: name,
		do: func(ctx context.Context) error {
			_, err := k.Apply(ctx, bankID, d)
			return err
		},
		compensate: func(ctx context.Context) error {
			_, err := k.Apply(ctx, bankID, d.Neg())
			return err
		},
	}
}
