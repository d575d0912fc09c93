package cache

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/finboard/internal/bank"
	"github.com/MrJamesThe3rd/finboard/internal/bill"
	"github.com/MrJamesThe3rd/finboard/internal/category"
	"github.com/MrJamesThe3rd/finboard/internal/entity"
	"github.com/MrJamesThe3rd/finboard/internal/expense"
	"github.com/MrJamesThe3rd/finboard/internal/income"
	"github.com/MrJamesThe3rd/finboard/internal/receivable"
	"github.com/MrJamesThe3rd/finboard/internal/transaction"
	"github.com/MrJamesThe3rd/finboard/internal/vault"
)

type Kind string

const (
	KindCategories   Kind = "categories"
	KindBanks        Kind = "banks"
	KindVaults       Kind = "vaults"
	KindExpenses     Kind = "expenses"
	KindBills        Kind = "bills"
	KindExtraIncomes Kind = "extra_incomes"
	KindReceivables  Kind = "receivables"
	KindTransactions Kind = "transactions"
)

var AllKinds = []Kind{
	KindCategories, KindBanks, KindVaults, KindExpenses,
	KindBills, KindExtraIncomes, KindReceivables, KindTransactions,
}

// Store holds one independent slice per resource kind.
type Store struct {
	Categories   *Slice[category.Category]
	Banks        *Slice[bank.Bank]
	Vaults       *Slice[vault.Vault]
	Expenses     *Slice[expense.Expense]
	Bills        *Slice[bill.Bill]
	ExtraIncomes *Slice[income.ExtraIncome]
	Receivables  *Slice[receivable.Receivable]
	Transactions *Slice[transaction.Transaction]

	logger *slog.Logger
}

func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		Categories:   NewSlice(func(c *category.Category) uuid.UUID { return c.ID }),
		Banks:        NewSlice(func(b *bank.Bank) uuid.UUID { return b.ID }),
		Vaults:       NewSlice(func(v *vault.Vault) uuid.UUID { return v.ID }),
		Expenses:     NewSlice(func(e *expense.Expense) uuid.UUID { return e.ID }),
		Bills:        NewSlice(func(b *bill.Bill) uuid.UUID { return b.ID }),
		ExtraIncomes: NewSlice(func(e *income.ExtraIncome) uuid.UUID { return e.ID }),
		Receivables:  NewSlice(func(r *receivable.Receivable) uuid.UUID { return r.ID }),
		Transactions: NewSlice(func(t *transaction.Transaction) uuid.UUID { return t.ID }),
		logger:       logger,
	}
}

// Refresh re-fetches the given kinds (all of them when none is given) in
// parallel and returns once every fetch has finished. A failed fetch does not
// cancel the others; the first error is returned and each slice keeps its own.
func (s *Store) Refresh(ctx context.Context, set *entity.Set, kinds ...Kind) error {
	if len(kinds) == 0 {
		kinds = AllKinds
	}

	var g errgroup.Group

	for _, kind := range kinds {
		g.Go(func() error {
			if err := s.refresh(ctx, set, kind); err != nil {
				s.logger.Warn("failed to refresh cache", "kind", kind, "error", err)
				return fmt.Errorf("loading %s: %w", kind, err)
			}

			return nil
		})
	}

	return g.Wait()
}

func (s *Store) refresh(ctx context.Context, set *entity.Set, kind Kind) error {
	switch kind {
	case KindCategories:
		return load(ctx, s.Categories, set.Categories.List)
	case KindBanks:
		return load(ctx, s.Banks, set.Banks.List)
	case KindVaults:
		return load(ctx, s.Vaults, set.Vaults.List)
	case KindExpenses:
		return load(ctx, s.Expenses, set.Expenses.List)
	case KindBills:
		return load(ctx, s.Bills, set.Bills.List)
	case KindExtraIncomes:
		return load(ctx, s.ExtraIncomes, set.ExtraIncomes.List)
	case KindReceivables:
		return load(ctx, s.Receivables, set.Receivables.List)
	case KindTransactions:
		return load(ctx, s.Transactions, set.Transactions.List)
	}

	return fmt.Errorf("unknown kind %q", kind)
}

func load[T any](ctx context.Context, s *Slice[T], fetch func(context.Context) ([]*T, error)) error {
	s.SetLoading()

	items, err := fetch(ctx)
	if err != nil {
		s.SetError(err)
		return err
	}

	s.SetItems(items)

	return nil
}

// BankName resolves a bank id against the cached banks.
func (s *Store) BankName(id *uuid.UUID) string {
	if id == nil {
		return ""
	}

	if b, ok := s.Banks.Find(*id); ok {
		return b.Name
	}

	return ""
}

func (s *Store) CategoryName(id *uuid.UUID) string {
	if id == nil {
		return ""
	}

	if c, ok := s.Categories.Find(*id); ok {
		return c.Name
	}

	return ""
}
