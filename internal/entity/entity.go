// Package entity gives every resource service the same shape so callers can
// treat banks, bills and the rest uniformly.
package entity

import (
	"context"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finboard/internal/apiclient"
	"github.com/MrJamesThe3rd/finboard/internal/bank"
	bankremote "github.com/MrJamesThe3rd/finboard/internal/bank/remote"
	"github.com/MrJamesThe3rd/finboard/internal/bill"
	billremote "github.com/MrJamesThe3rd/finboard/internal/bill/remote"
	"github.com/MrJamesThe3rd/finboard/internal/category"
	categoryremote "github.com/MrJamesThe3rd/finboard/internal/category/remote"
	"github.com/MrJamesThe3rd/finboard/internal/expense"
	expenseremote "github.com/MrJamesThe3rd/finboard/internal/expense/remote"
	"github.com/MrJamesThe3rd/finboard/internal/income"
	incomeremote "github.com/MrJamesThe3rd/finboard/internal/income/remote"
	"github.com/MrJamesThe3rd/finboard/internal/receivable"
	receivableremote "github.com/MrJamesThe3rd/finboard/internal/receivable/remote"
	"github.com/MrJamesThe3rd/finboard/internal/transaction"
	transactionremote "github.com/MrJamesThe3rd/finboard/internal/transaction/remote"
	"github.com/MrJamesThe3rd/finboard/internal/user"
	userremote "github.com/MrJamesThe3rd/finboard/internal/user/remote"
	"github.com/MrJamesThe3rd/finboard/internal/vault"
	vaultremote "github.com/MrJamesThe3rd/finboard/internal/vault/remote"
)

// Resource is the uniform CRUD surface of one entity kind. T is the entity,
// C its create DTO and U its update DTO.
type Resource[T, C, U any] interface {
	List(ctx context.Context) ([]*T, error)
	Get(ctx context.Context, id uuid.UUID) (*T, error)
	Create(ctx context.Context, params C) (*T, error)
	Update(ctx context.Context, id uuid.UUID, params U) (*T, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

var (
	_ Resource[category.Category, category.CreateParams, category.UpdateParams]             = (*category.Service)(nil)
	_ Resource[bank.Bank, bank.CreateParams, bank.UpdateParams]                             = (*bank.Service)(nil)
	_ Resource[vault.Vault, vault.CreateParams, vault.UpdateParams]                         = (*vault.Service)(nil)
	_ Resource[expense.Expense, expense.CreateParams, expense.UpdateParams]                 = (*expense.Service)(nil)
	_ Resource[bill.Bill, bill.CreateParams, bill.UpdateParams]                             = (*bill.Service)(nil)
	_ Resource[income.ExtraIncome, income.CreateParams, income.UpdateParams]                = (*income.Service)(nil)
	_ Resource[receivable.Receivable, receivable.CreateParams, receivable.UpdateParams]     = (*receivable.Service)(nil)
	_ Resource[transaction.Transaction, transaction.CreateParams, transaction.UpdateParams] = (*transaction.Service)(nil)
)

// Set holds one service per resource kind. Users have no Create and are
// exposed with their auth operations instead.
type Set struct {
	Users        *user.Service
	Categories   *category.Service
	Banks        *bank.Service
	Vaults       *vault.Service
	Expenses     *expense.Service
	Bills        *bill.Service
	ExtraIncomes *income.Service
	Receivables  *receivable.Service
	Transactions *transaction.Service
}

// New wires every service to the backend behind c.
func New(c *apiclient.Client) *Set {
	return &Set{
		Users:        user.NewService(userremote.New(c)),
		Categories:   category.NewService(categoryremote.New(c)),
		Banks:        bank.NewService(bankremote.New(c)),
		Vaults:       vault.NewService(vaultremote.New(c)),
		Expenses:     expense.NewService(expenseremote.New(c)),
		Bills:        bill.NewService(billremote.New(c)),
		ExtraIncomes: income.NewService(incomeremote.New(c)),
		Receivables:  receivable.NewService(receivableremote.New(c)),
		Transactions: transaction.NewService(transactionremote.New(c)),
	}
}
