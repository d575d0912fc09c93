package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/finboard/internal/apiclient"
	"github.com/MrJamesThe3rd/finboard/internal/bank"
	"github.com/MrJamesThe3rd/finboard/internal/bill"
	"github.com/MrJamesThe3rd/finboard/internal/config"
	"github.com/MrJamesThe3rd/finboard/internal/dates"
	"github.com/MrJamesThe3rd/finboard/internal/expense"
	"github.com/MrJamesThe3rd/finboard/internal/ledger"
	"github.com/MrJamesThe3rd/finboard/internal/transaction"
)

type mocks struct {
	txs   *transaction.MockRepository
	banks *bank.MockRepository
	bills *bill.MockRepository
}

func newSettler(t *testing.T) (*ledger.Settler, mocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := mocks{
		txs:   transaction.NewMockRepository(ctrl),
		banks: bank.NewMockRepository(ctrl),
		bills: bill.NewMockRepository(ctrl),
	}

	s := ledger.NewSettler(config.SettlementClient, m.bills, nil, m.txs, ledger.NewBalanceKeeper(m.banks), nil)

	return s, m
}

func pendingBill(bankID uuid.UUID, amount int64) *bill.Bill {
	return &bill.Bill{
		ID:      uuid.New(),
		Expense: &expense.Expense{ID: uuid.New(), Name: "Internet", Value: decimal.NewFromInt(amount)},
		Bank:    &bank.Bank{ID: bankID},
		DueDate: dates.Of(time.Now().AddDate(0, 0, 10)),
		Status:  bill.StatusPending,
	}
}

func TestSettler_PayBillRollsBackOnStatusFailure(t *testing.T) {
	s, m := newSettler(t)

	bankID := uuid.New()
	txID := uuid.New()
	b := pendingBill(bankID, 100)

	gomock.InOrder(
		m.txs.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p transaction.CreateParams) (*transaction.Transaction, error) {
				assert.Equal(t, transaction.TypeWithdrawal, p.Type)
				assert.Equal(t, "100", p.Amount.String())
				assert.Equal(t, b.ID, *p.ReferenceID)

				return &transaction.Transaction{ID: txID, Amount: p.Amount, Type: p.Type}, nil
			}),
		m.banks.EXPECT().
			Get(gomock.Any(), bankID).
			Return(&bank.Bank{ID: bankID, CurrentBalance: decimal.NewFromInt(500)}, nil),
		m.banks.EXPECT().
			Update(gomock.Any(), bankID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, p bank.UpdateParams) (*bank.Bank, error) {
				assert.Equal(t, "400", p.CurrentBalance.String())
				assert.Equal(t, "100", p.TotalExpense.String())
				assert.Nil(t, p.TotalIncome)

				return &bank.Bank{ID: bankID, CurrentBalance: *p.CurrentBalance, TotalExpense: *p.TotalExpense}, nil
			}),
		m.bills.EXPECT().
			Update(gomock.Any(), b.ID, gomock.Any()).
			Return(nil, errors.New("backend down")),
		m.banks.EXPECT().
			Get(gomock.Any(), bankID).
			Return(&bank.Bank{ID: bankID, CurrentBalance: decimal.NewFromInt(400), TotalExpense: decimal.NewFromInt(100)}, nil),
		m.banks.EXPECT().
			Update(gomock.Any(), bankID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, p bank.UpdateParams) (*bank.Bank, error) {
				assert.Equal(t, "500", p.CurrentBalance.String())
				assert.Equal(t, "0", p.TotalExpense.String())

				return &bank.Bank{ID: bankID}, nil
			}),
		m.txs.EXPECT().
			Delete(gomock.Any(), txID).
			Return(nil),
	)

	_, err := s.PayBill(context.Background(), b)

	var stepErr *ledger.StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, "mark-paid", stepErr.Step)
	assert.Equal(t, []string{"debit-bank", "record-transaction"}, stepErr.Compensated)
	assert.NoError(t, stepErr.CompensationErr)
	assert.EqualError(t, errors.Unwrap(err), "backend down")
}

func TestSettler_RollbackSurvivesCanceledContext(t *testing.T) {
	s, m := newSettler(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := pendingBill(uuid.New(), 40)
	txID := uuid.New()

	m.txs.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(&transaction.Transaction{ID: txID}, nil)
	m.banks.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, uuid.UUID) (*bank.Bank, error) {
			cancel()
			return nil, context.Canceled
		})
	m.txs.EXPECT().
		Delete(gomock.Any(), txID).
		DoAndReturn(func(ctx context.Context, _ uuid.UUID) error {
			assert.NoError(t, ctx.Err())
			assert.NotEmpty(t, apiclient.IdempotencyKey(ctx))

			return nil
		})

	_, err := s.PayBill(ctx, b)

	var stepErr *ledger.StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, "debit-bank", stepErr.Step)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"record-transaction"}, stepErr.Compensated)
}

func TestSettler_ReportsFailedCompensation(t *testing.T) {
	s, m := newSettler(t)

	b := pendingBill(uuid.New(), 40)

	m.txs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&transaction.Transaction{ID: uuid.New()}, nil)
	m.banks.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
	m.txs.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("still down"))

	_, err := s.PayBill(context.Background(), b)

	var stepErr *ledger.StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Empty(t, stepErr.Compensated)
	require.Error(t, stepErr.CompensationErr)
	assert.Contains(t, stepErr.CompensationErr.Error(), "still down")
	assert.Contains(t, err.Error(), "rollback incomplete")
}

func TestSettler_OperationKeyIsStable(t *testing.T) {
	op := uuid.New()

	keysOf := func() []string {
		s, m := newSettler(t)
		b := pendingBill(uuid.New(), 10)

		var keys []string
		record := func(ctx context.Context) { keys = append(keys, apiclient.IdempotencyKey(ctx)) }

		m.txs.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ transaction.CreateParams) (*transaction.Transaction, error) {
				record(ctx)
				return &transaction.Transaction{ID: uuid.New()}, nil
			})
		m.banks.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(&bank.Bank{}, nil)
		m.banks.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ uuid.UUID, _ bank.UpdateParams) (*bank.Bank, error) {
				record(ctx)
				return &bank.Bank{}, nil
			})
		m.bills.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ uuid.UUID, _ bill.UpdateParams) (*bill.Bill, error) {
				record(ctx)
				return &bill.Bill{Status: bill.StatusPaid}, nil
			})

		_, err := s.PayBill(ledger.WithOperationKey(context.Background(), op), b)
		require.NoError(t, err)

		return keys
	}

	first, second := keysOf(), keysOf()

	require.Len(t, first, 3)
	assert.Equal(t, first, second)
	assert.NotEqual(t, first[0], first[1])
}

func TestSettler_SkipsMoneyWithoutBank(t *testing.T) {
	s, m := newSettler(t)

	b := pendingBill(uuid.New(), 10)
	b.Bank = nil
	b.Expense.Bank = nil

	m.bills.EXPECT().
		Update(gomock.Any(), b.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, p bill.UpdateParams) (*bill.Bill, error) {
			assert.Equal(t, bill.StatusPaid, *p.Status)
			return &bill.Bill{ID: b.ID, Status: *p.Status}, nil
		})

	paid, err := s.PayBill(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, bill.StatusPaid, paid.Status)
}

func TestDelta(t *testing.T) {
	d := ledger.Debit(decimal.NewFromInt(30))

	assert.Equal(t, "-30", d.Balance.String())
	assert.Equal(t, "30", d.Expense.String())
	assert.True(t, d.Income.IsZero())
	assert.Equal(t, "30", d.Neg().Balance.String())
	assert.False(t, d.IsZero())
	assert.True(t, ledger.Delta{}.IsZero())
}

func TestSettler_UndoneStepsGetFreshKeys(t *testing.T) {
	s, m := newSettler(t)

	op := uuid.New()
	b := pendingBill(uuid.New(), 10)
	keys := map[string][]string{}

	record := func(ctx context.Context, name string) {
		keys[name] = append(keys[name], apiclient.IdempotencyKey(ctx))
	}

	m.txs.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ transaction.CreateParams) (*transaction.Transaction, error) {
			record(ctx, "record-transaction")
			return &transaction.Transaction{ID: uuid.New()}, nil
		}).
		Times(2)
	m.txs.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
	m.banks.EXPECT().Get(gomock.Any(), gomock.Any()).Return(&bank.Bank{}, nil).Times(3)
	m.banks.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ uuid.UUID, _ bank.UpdateParams) (*bank.Bank, error) {
			record(ctx, "bank")
			return &bank.Bank{}, nil
		}).
		Times(3)
	gomock.InOrder(
		m.bills.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ uuid.UUID, _ bill.UpdateParams) (*bill.Bill, error) {
				record(ctx, "mark-paid")
				return nil, errors.New("backend down")
			}),
		m.bills.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ uuid.UUID, _ bill.UpdateParams) (*bill.Bill, error) {
				record(ctx, "mark-paid")
				return &bill.Bill{Status: bill.StatusPaid}, nil
			}),
	)

	ctx := ledger.WithOperationKey(context.Background(), op)

	_, err := s.PayBill(ctx, b)
	require.Error(t, err)

	_, err = s.PayBill(ctx, b)
	require.NoError(t, err)

	require.Len(t, keys["record-transaction"], 2)
	assert.NotEqual(t, keys["record-transaction"][0], keys["record-transaction"][1])

	// debit, undo, debit again: three distinct writes.
	require.Len(t, keys["bank"], 3)
	assert.NotEqual(t, keys["bank"][0], keys["bank"][2])
	assert.NotEqual(t, keys["bank"][1], keys["bank"][2])

	require.Len(t, keys["mark-paid"], 2)
	assert.Equal(t, keys["mark-paid"][0], keys["mark-paid"][1])
}
