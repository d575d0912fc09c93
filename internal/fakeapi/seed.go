package fakeapi

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/finboard/internal/bank"
	"github.com/MrJamesThe3rd/finboard/internal/bill"
	"github.com/MrJamesThe3rd/finboard/internal/category"
	"github.com/MrJamesThe3rd/finboard/internal/dates"
	"github.com/MrJamesThe3rd/finboard/internal/expense"
	"github.com/MrJamesThe3rd/finboard/internal/income"
	"github.com/MrJamesThe3rd/finboard/internal/receivable"
	"github.com/MrJamesThe3rd/finboard/internal/user"
	"github.com/MrJamesThe3rd/finboard/internal/vault"
)

const (
	DemoEmail    = "demo@finboard.dev"
	DemoPassword = "demo1234"
)

// Seed registers the demo account and fills it with a small, consistent data set.
func (s *Server) Seed() (*user.User, error) {
	u, err := s.CreateUser(user.RegisterParams{
		Name:     "Demo",
		Email:    DemoEmail,
		Password: DemoPassword,
		Salary:   decimal.NewFromInt(5000),
	})
	if err != nil {
		return nil, fmt.Errorf("creating demo user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tenants[u.ID]
	now := s.now()
	today := dates.Of(now)

	housing := &category.Category{ID: uuid.New(), Name: "Housing", CreatedAt: now}
	freelance := &category.Category{ID: uuid.New(), Name: "Freelance", CreatedAt: now}
	t.categories.add(housing.ID, housing)
	t.categories.add(freelance.ID, freelance)

	checking := &bank.Bank{
		ID:             uuid.New(),
		Name:           "Checking",
		CurrentBalance: decimal.NewFromInt(2500),
		TotalIncome:    decimal.NewFromInt(5000),
		TotalExpense:   decimal.NewFromInt(2500),
		CreatedAt:      now,
	}
	savings := &bank.Bank{
		ID:             uuid.New(),
		Name:           "Savings",
		CurrentBalance: decimal.NewFromInt(10000),
		CreatedAt:      now,
	}
	t.banks.add(checking.ID, checking)
	t.banks.add(savings.ID, savings)

	trip := &vault.Vault{
		ID:        uuid.New(),
		Name:      "Trip",
		Amount:    decimal.NewFromInt(800),
		Currency:  vault.DefaultCurrency,
		BankID:    &savings.ID,
		UserID:    u.ID,
		CreatedAt: now,
	}
	t.vaults.add(trip.ID, trip)

	rent := &expenseRecord{
		Expense: expense.Expense{
			ID:          uuid.New(),
			Name:        "Rent",
			Value:       decimal.NewFromInt(1200),
			ExpenseDate: today,
			CreatedAt:   now,
		},
		categoryID: &housing.ID,
		bankID:     &checking.ID,
	}
	t.expenses.add(rent.ID, rent)

	rentBill := &billRecord{
		Bill: bill.Bill{
			ID:            uuid.New(),
			PaymentMethod: bill.PaymentPix,
			DueDate:       dates.Of(now.AddDate(0, 0, 5)),
			Status:        bill.StatusPending,
			CreatedAt:     now,
		},
		expenseID: rent.ID,
	}
	t.bills.add(rentBill.ID, rentBill)

	gig := &income.ExtraIncome{
		ID:          uuid.New(),
		Description: "Website project",
		Amount:      decimal.NewFromInt(900),
		BankID:      &checking.ID,
		CategoryID:  &freelance.ID,
		CreatedAt:   now,
	}
	t.incomes.add(gig.ID, gig)

	invoice := &receivableRecord{
		Receivable: receivable.Receivable{
			ID:            uuid.New(),
			ReceiptMethod: receivable.ReceiptTransfer,
			DueDate:       dates.Of(now.Add(-48 * time.Hour)),
			Status:        receivable.StatusPending,
			CreatedAt:     now,
		},
		incomeID: gig.ID,
	}
	t.receivables.add(invoice.ID, invoice)

	s.logger.Info("seeded demo account", "email", DemoEmail)

	return u, nil
}
