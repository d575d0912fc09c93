package fakeapi

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finboard/internal/bank"
	"github.com/MrJamesThe3rd/finboard/internal/bill"
	"github.com/MrJamesThe3rd/finboard/internal/category"
	"github.com/MrJamesThe3rd/finboard/internal/expense"
	"github.com/MrJamesThe3rd/finboard/internal/income"
	"github.com/MrJamesThe3rd/finboard/internal/receivable"
	"github.com/MrJamesThe3rd/finboard/internal/transaction"
	"github.com/MrJamesThe3rd/finboard/internal/user"
	"github.com/MrJamesThe3rd/finboard/internal/vault"
)

// collection keeps items in insertion order.
type collection[T any] struct {
	items map[uuid.UUID]*T
	order []uuid.UUID
}

func newCollection[T any]() collection[T] {
	return collection[T]{items: make(map[uuid.UUID]*T)}
}

func (c *collection[T]) list() []*T {
	out := make([]*T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}

	return out
}

func (c *collection[T]) get(id uuid.UUID) (*T, bool) {
	item, ok := c.items[id]
	return item, ok
}

func (c *collection[T]) add(id uuid.UUID, item *T) {
	c.items[id] = item
	c.order = append(c.order, id)
}

func (c *collection[T]) remove(id uuid.UUID) bool {
	if _, ok := c.items[id]; !ok {
		return false
	}

	delete(c.items, id)
	c.order = slices.DeleteFunc(c.order, func(o uuid.UUID) bool { return o == id })

	return true
}

type account struct {
	user.User
	passwordHash []byte
}

// References are kept by id and resolved on every read, so nested objects in
// responses always show current values.
type expenseRecord struct {
	expense.Expense
	categoryID *uuid.UUID
	bankID     *uuid.UUID
}

type billRecord struct {
	bill.Bill
	expenseID uuid.UUID
	bankID    *uuid.UUID
}

type receivableRecord struct {
	receivable.Receivable
	incomeID uuid.UUID
	bankID   *uuid.UUID
}

// tenant is the data owned by one user.
type tenant struct {
	categories   collection[category.Category]
	banks        collection[bank.Bank]
	vaults       collection[vault.Vault]
	expenses     collection[expenseRecord]
	bills        collection[billRecord]
	incomes      collection[income.ExtraIncome]
	receivables  collection[receivableRecord]
	transactions collection[transaction.Transaction]
}

func newTenant() *tenant {
	return &tenant{
		categories:   newCollection[category.Category](),
		banks:        newCollection[bank.Bank](),
		vaults:       newCollection[vault.Vault](),
		expenses:     newCollection[expenseRecord](),
		bills:        newCollection[billRecord](),
		incomes:      newCollection[income.ExtraIncome](),
		receivables:  newCollection[receivableRecord](),
		transactions: newCollection[transaction.Transaction](),
	}
}

func (t *tenant) categoryCopy(id *uuid.UUID) *category.Category {
	if id == nil {
		return nil
	}

	c, ok := t.categories.get(*id)
	if !ok {
		return nil
	}

	cp := *c

	return &cp
}

func (t *tenant) bankCopy(id *uuid.UUID) *bank.Bank {
	if id == nil {
		return nil
	}

	b, ok := t.banks.get(*id)
	if !ok {
		return nil
	}

	cp := *b

	return &cp
}

func (t *tenant) renderExpense(rec *expenseRecord) *expense.Expense {
	e := rec.Expense
	e.Category = t.categoryCopy(rec.categoryID)
	e.Bank = t.bankCopy(rec.bankID)

	return &e
}

func (t *tenant) renderBill(rec *billRecord) *bill.Bill {
	b := rec.Bill
	b.Bank = t.bankCopy(rec.bankID)

	if e, ok := t.expenses.get(rec.expenseID); ok {
		b.Expense = t.renderExpense(e)
	}

	return &b
}

func (t *tenant) renderReceivable(rec *receivableRecord) *receivable.Receivable {
	r := rec.Receivable
	r.Bank = t.bankCopy(rec.bankID)

	if inc, ok := t.incomes.get(rec.incomeID); ok {
		cp := *inc
		r.ExtraIncome = &cp
	}

	return &r
}

// exists reports whether an optional reference points at a known item.
func exists[T any](c *collection[T], id *uuid.UUID) bool {
	if id == nil {
		return true
	}

	_, ok := c.get(*id)

	return ok
}

func touch(now time.Time) *time.Time {
	return &now
}
