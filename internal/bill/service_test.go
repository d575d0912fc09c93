package bill_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/finboard/internal/bill"
	"github.com/MrJamesThe3rd/finboard/internal/dates"
	"github.com/MrJamesThe3rd/finboard/internal/validation"
)

func TestService_Create(t *testing.T) {
	expenseID := uuid.New()
	due := dates.New(2026, time.March, 10)

	tests := []struct {
		name      string
		params    bill.CreateParams
		setupMock func(m *bill.MockRepository)
		wantErr   error
	}{
		{
			name:   "Success",
			params: bill.CreateParams{ExpenseID: expenseID, DueDate: due, PaymentMethod: bill.PaymentPix},
			setupMock: func(m *bill.MockRepository) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(&bill.Bill{ID: uuid.New(), Status: bill.StatusPending, DueDate: due}, nil)
			},
		},
		{
			name:    "MissingExpense",
			params:  bill.CreateParams{DueDate: due},
			wantErr: validation.ErrInvalid,
		},
		{
			name:    "UnknownPaymentMethod",
			params:  bill.CreateParams{ExpenseID: expenseID, DueDate: due, PaymentMethod: "CHEQUE"},
			wantErr: validation.ErrInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := bill.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := bill.NewService(repo).Create(context.Background(), tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, bill.StatusPending, got.Status)
		})
	}
}

func TestService_MarkAsPaidDefaultsToToday(t *testing.T) {
	ctrl := gomock.NewController(t)
	id := uuid.New()

	repo := bill.NewMockRepository(ctrl)
	repo.EXPECT().
		MarkAsPaid(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, p bill.MarkAsPaidParams) (*bill.Bill, error) {
			assert.Equal(t, dates.Today(), p.PaymentDate)
			return &bill.Bill{ID: id, Status: bill.StatusPaid, PaymentDate: p.PaymentDate}, nil
		})

	got, err := bill.NewService(repo).MarkAsPaid(context.Background(), id, bill.MarkAsPaidParams{})
	require.NoError(t, err)
	assert.Equal(t, bill.StatusPaid, got.Status)

	_, err = bill.NewService(repo).MarkAsPaid(context.Background(), uuid.Nil, bill.MarkAsPaidParams{})
	assert.ErrorIs(t, err, bill.ErrMissingID)
}

func TestBill_StatusOn(t *testing.T) {
	b := &bill.Bill{DueDate: dates.New(2026, time.March, 10)}

	assert.Equal(t, bill.StatusPaid, b.StatusOn(dates.New(2026, time.March, 10)))
	assert.Equal(t, bill.StatusPaidLate, b.StatusOn(dates.New(2026, time.March, 11)))
	assert.Equal(t, bill.StatusPaid, (&bill.Bill{}).StatusOn(dates.New(2026, time.March, 11)))
}
