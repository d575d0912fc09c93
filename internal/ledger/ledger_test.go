package ledger_test

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MrJamesThe3rd/finboard/internal/apiclient"
	"github.com/MrJamesThe3rd/finboard/internal/bank"
	"github.com/MrJamesThe3rd/finboard/internal/bill"
	"github.com/MrJamesThe3rd/finboard/internal/config"
	"github.com/MrJamesThe3rd/finboard/internal/dates"
	"github.com/MrJamesThe3rd/finboard/internal/entity"
	"github.com/MrJamesThe3rd/finboard/internal/expense"
	"github.com/MrJamesThe3rd/finboard/internal/fakeapi"
	"github.com/MrJamesThe3rd/finboard/internal/income"
	"github.com/MrJamesThe3rd/finboard/internal/ledger"
	"github.com/MrJamesThe3rd/finboard/internal/receivable"
	"github.com/MrJamesThe3rd/finboard/internal/session"
	"github.com/MrJamesThe3rd/finboard/internal/transaction"
	"github.com/MrJamesThe3rd/finboard/internal/user"
	"github.com/MrJamesThe3rd/finboard/internal/vault"
)

func newSet(t *testing.T) *entity.Set {
	t.Helper()

	api := fakeapi.New("test-secret", fakeapi.WithBcryptCost(bcrypt.MinCost))
	ts := httptest.NewServer(api.Handler())
	t.Cleanup(ts.Close)

	creds := user.Credentials{Email: "ana@example.com", Password: "secret123"}
	_, err := api.CreateUser(user.RegisterParams{Name: "Ana", Email: creds.Email, Password: creds.Password})
	require.NoError(t, err)

	sess := session.NewMemory("")

	c, err := apiclient.New(ts.URL, sess)
	require.NoError(t, err)

	set := entity.New(c)

	res, err := set.Users.Login(context.Background(), creds)
	require.NoError(t, err)
	require.NoError(t, sess.SetToken(res.Token))

	return set
}

func createBank(t *testing.T, set *entity.Set, balance int64) *bank.Bank {
	t.Helper()

	b, err := set.Banks.Create(context.Background(), bank.CreateParams{
		Name:           "Bank " + uuid.NewString()[:8],
		CurrentBalance: decimal.NewFromInt(balance),
	})
	require.NoError(t, err)

	return b
}

func bankState(t *testing.T, set *entity.Set, id uuid.UUID) *bank.Bank {
	t.Helper()

	b, err := set.Banks.Get(context.Background(), id)
	require.NoError(t, err)

	return b
}

func transactionsOf(t *testing.T, set *entity.Set, bankID uuid.UUID, typ transaction.Type) []*transaction.Transaction {
	t.Helper()

	txs, err := set.Transactions.Search(context.Background(), transaction.ListFilter{Type: &typ, BankID: &bankID})
	require.NoError(t, err)

	return txs
}

func createBill(t *testing.T, set *entity.Set, bankID uuid.UUID, amount int64) *bill.Bill {
	t.Helper()

	ctx := context.Background()

	e, err := set.Expenses.Create(ctx, expense.CreateParams{Name: "Rent", Value: decimal.NewFromInt(amount)})
	require.NoError(t, err)

	b, err := set.Bills.Create(ctx, bill.CreateParams{
		ExpenseID: e.ID,
		BankID:    &bankID,
		DueDate:   dates.Of(time.Now().AddDate(0, 1, 0)),
	})
	require.NoError(t, err)

	return b
}

func createReceivable(t *testing.T, set *entity.Set, bankID uuid.UUID, amount int64) *receivable.Receivable {
	t.Helper()

	ctx := context.Background()

	inc, err := set.ExtraIncomes.Create(ctx, income.CreateParams{Description: "Gig", Amount: decimal.NewFromInt(amount)})
	require.NoError(t, err)

	r, err := set.Receivables.Create(ctx, receivable.CreateParams{
		ExtraIncomeID: inc.ID,
		BankID:        &bankID,
		DueDate:       dates.Of(time.Now().AddDate(0, 0, -3)),
	})
	require.NoError(t, err)

	return r
}

func TestSettler_PayBill(t *testing.T) {
	for _, mode := range []config.SettlementMode{config.SettlementClient, config.SettlementServer} {
		t.Run(string(mode), func(t *testing.T) {
			set := newSet(t)
			l := ledger.New(set, mode, nil)

			b := createBank(t, set, 500)
			payable := createBill(t, set, b.ID, 100)

			paid, err := l.Settler.PayBill(context.Background(), payable)
			require.NoError(t, err)
			assert.Equal(t, bill.StatusPaid, paid.Status)
			assert.Equal(t, dates.Today(), paid.PaymentDate)

			txs := transactionsOf(t, set, b.ID, transaction.TypeWithdrawal)
			require.Len(t, txs, 1)
			assert.Equal(t, "100", txs[0].Amount.String())
			assert.Equal(t, payable.ID, *txs[0].ReferenceID)

			after := bankState(t, set, b.ID)
			assert.Equal(t, "400", after.CurrentBalance.String())
			assert.Equal(t, "100", after.TotalExpense.String())

			_, err = l.Settler.PayBill(context.Background(), paid)
			assert.ErrorIs(t, err, ledger.ErrAlreadySettled)
		})
	}
}

func TestSettler_ReceiveReceivable(t *testing.T) {
	for _, mode := range []config.SettlementMode{config.SettlementClient, config.SettlementServer} {
		t.Run(string(mode), func(t *testing.T) {
			set := newSet(t)
			l := ledger.New(set, mode, nil)

			b := createBank(t, set, 10)
			rc := createReceivable(t, set, b.ID, 50)

			received, err := l.Settler.ReceiveReceivable(context.Background(), rc)
			require.NoError(t, err)
			assert.Equal(t, receivable.StatusReceivedLate, received.Status)

			after := bankState(t, set, b.ID)
			assert.Equal(t, "60", after.CurrentBalance.String())
			assert.Equal(t, "50", after.TotalIncome.String())

			txs := transactionsOf(t, set, b.ID, transaction.TypeDeposit)
			require.Len(t, txs, 1)
			assert.Equal(t, "50", txs[0].Amount.String())
		})
	}
}

func TestIncomeSync_UpdateSameBankAppliesDelta(t *testing.T) {
	set := newSet(t)
	l := ledger.New(set, config.SettlementClient, nil)
	ctx := context.Background()

	b := createBank(t, set, 1000)

	inc, err := l.Incomes.Create(ctx, income.CreateParams{Description: "Gig", Amount: decimal.NewFromInt(100), BankID: &b.ID})
	require.NoError(t, err)

	before := bankState(t, set, b.ID)
	assert.Equal(t, "1100", before.CurrentBalance.String())

	_, err = l.Incomes.Update(ctx, inc, income.UpdateParams{Amount: new(decimal.NewFromInt(150))})
	require.NoError(t, err)

	after := bankState(t, set, b.ID)
	assert.Equal(t, "50", after.CurrentBalance.Sub(before.CurrentBalance).String())
	assert.Equal(t, "50", after.TotalIncome.Sub(before.TotalIncome).String())

	stored, err := set.ExtraIncomes.Get(ctx, inc.ID)
	require.NoError(t, err)
	assert.Equal(t, "150", stored.Amount.String())
}

func TestIncomeSync_UpdateChangesBank(t *testing.T) {
	set := newSet(t)
	l := ledger.New(set, config.SettlementClient, nil)
	ctx := context.Background()

	a := createBank(t, set, 0)
	b := createBank(t, set, 0)

	inc, err := l.Incomes.Create(ctx, income.CreateParams{Description: "Gig", Amount: decimal.NewFromInt(100), BankID: &a.ID})
	require.NoError(t, err)

	aBefore, bBefore := bankState(t, set, a.ID), bankState(t, set, b.ID)

	_, err = l.Incomes.Update(ctx, inc, income.UpdateParams{BankID: &b.ID})
	require.NoError(t, err)

	aAfter, bAfter := bankState(t, set, a.ID), bankState(t, set, b.ID)

	assert.Equal(t, "-100", aAfter.CurrentBalance.Sub(aBefore.CurrentBalance).String())
	assert.Equal(t, "-100", aAfter.TotalIncome.Sub(aBefore.TotalIncome).String())
	assert.Equal(t, "100", bAfter.CurrentBalance.Sub(bBefore.CurrentBalance).String())
	assert.Equal(t, "100", bAfter.TotalIncome.Sub(bBefore.TotalIncome).String())
}

func TestIncomeSync_Delete(t *testing.T) {
	set := newSet(t)
	l := ledger.New(set, config.SettlementClient, nil)
	ctx := context.Background()

	b := createBank(t, set, 200)

	inc, err := l.Incomes.Create(ctx, income.CreateParams{Description: "Gig", Amount: decimal.NewFromInt(80), BankID: &b.ID})
	require.NoError(t, err)

	require.NoError(t, l.Incomes.Delete(ctx, inc))

	after := bankState(t, set, b.ID)
	assert.Equal(t, "200", after.CurrentBalance.String())
	assert.True(t, after.TotalIncome.IsZero())

	_, err = set.ExtraIncomes.Get(ctx, inc.ID)
	assert.ErrorIs(t, err, apiclient.ErrNotFound)
}

func TestVaultMover(t *testing.T) {
	set := newSet(t)
	l := ledger.New(set, config.SettlementClient, nil)
	ctx := context.Background()

	b := createBank(t, set, 300)

	v, err := set.Vaults.Create(ctx, vault.CreateParams{Name: "Trip", BankID: &b.ID})
	require.NoError(t, err)
	assert.Equal(t, vault.DefaultCurrency, v.Currency)

	v, err = l.Vaults.Deposit(ctx, v, decimal.NewFromInt(120))
	require.NoError(t, err)
	assert.Equal(t, "120", v.Amount.String())
	assert.Equal(t, "180", bankState(t, set, b.ID).CurrentBalance.String())

	_, err = l.Vaults.Withdraw(ctx, v, decimal.NewFromInt(500))
	assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)

	v, err = l.Vaults.Withdraw(ctx, v, decimal.NewFromInt(20))
	require.NoError(t, err)
	assert.Equal(t, "100", v.Amount.String())
	assert.Equal(t, "200", bankState(t, set, b.ID).CurrentBalance.String())

	vaultID := v.ID
	txs, err := set.Transactions.Search(ctx, transaction.ListFilter{VaultID: &vaultID})
	require.NoError(t, err)
	assert.Len(t, txs, 2)

	_, err = l.Vaults.Deposit(ctx, &vault.Vault{ID: uuid.New()}, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, ledger.ErrNoOriginBank)
}

func TestBalanceKeeper_SerializesSameBank(t *testing.T) {
	set := newSet(t)
	l := ledger.New(set, config.SettlementClient, nil)

	b := createBank(t, set, 0)

	var wg sync.WaitGroup
	for range 10 {
		wg.Go(func() {
			_, err := l.Balances.Apply(context.Background(), b.ID, ledger.Credit(decimal.NewFromInt(1)))
			assert.NoError(t, err)
		})
	}
	wg.Wait()

	after := bankState(t, set, b.ID)
	assert.Equal(t, "10", after.CurrentBalance.String())
	assert.Equal(t, "10", after.TotalIncome.String())
}
