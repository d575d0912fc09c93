package bank_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/finboard/internal/bank"
	"github.com/MrJamesThe3rd/finboard/internal/validation"
)

func TestService_Transfer(t *testing.T) {
	from, to := uuid.New(), uuid.New()

	type testCase struct {
		name      string
		params    bank.TransferParams
		setupMock func(m *bank.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "Success",
			params: bank.TransferParams{FromBankID: from, ToBankID: to, Amount: decimal.NewFromInt(25)},
			setupMock: func(m *bank.MockRepository) {
				m.EXPECT().
					Transfer(gomock.Any(), bank.TransferParams{FromBankID: from, ToBankID: to, Amount: decimal.NewFromInt(25)}).
					Return(nil)
			},
		},
		{
			name:    "SameBank",
			params:  bank.TransferParams{FromBankID: from, ToBankID: from, Amount: decimal.NewFromInt(25)},
			wantErr: validation.ErrInvalid,
		},
		{
			name:    "NegativeAmount",
			params:  bank.TransferParams{FromBankID: from, ToBankID: to, Amount: decimal.NewFromInt(-1)},
			wantErr: validation.ErrInvalid,
		},
		{
			name:    "MissingSource",
			params:  bank.TransferParams{ToBankID: to, Amount: decimal.NewFromInt(1)},
			wantErr: validation.ErrInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := bank.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			err := bank.NewService(repo).Transfer(context.Background(), tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_AddMoney(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	repo := bank.NewMockRepository(ctrl)
	repo.EXPECT().
		AddMoney(gomock.Any(), id, bank.AmountParams{Amount: decimal.RequireFromString("10.50")}).
		Return(&bank.Bank{ID: id, CurrentBalance: decimal.RequireFromString("110.50")}, nil)

	svc := bank.NewService(repo)

	got, err := svc.AddMoney(context.Background(), id, decimal.RequireFromString("10.50"))
	require.NoError(t, err)
	assert.Equal(t, "110.5", got.CurrentBalance.String())

	_, err = svc.AddMoney(context.Background(), id, decimal.Zero)
	assert.ErrorIs(t, err, validation.ErrInvalid)

	_, err = svc.RemoveMoney(context.Background(), uuid.Nil, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, bank.ErrMissingID)
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := bank.NewService(bank.NewMockRepository(ctrl))

	_, err := svc.Create(context.Background(), bank.CreateParams{})
	assert.ErrorIs(t, err, validation.ErrInvalid)
}
