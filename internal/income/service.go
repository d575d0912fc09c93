package income

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/finboard/internal/validation"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=income
type Repository interface {
	List(ctx context.Context) ([]*ExtraIncome, error)
	Get(ctx context.Context, id uuid.UUID) (*ExtraIncome, error)
	Create(ctx context.Context, params CreateParams) (*ExtraIncome, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*ExtraIncome, error)
	Delete(ctx context.Context, id uuid.UUID) error

	Subtract(ctx context.Context, id uuid.UUID, params AmountParams) (*ExtraIncome, error)
	Add(ctx context.Context, id uuid.UUID, params AmountParams) (*ExtraIncome, error)
	Transfer(ctx context.Context, id uuid.UUID, params TransferParams) (*ExtraIncome, error)
}

var ErrMissingID = errors.New("extra income id is required")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*ExtraIncome, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*ExtraIncome, error) {
	if id == uuid.Nil {
		return nil, ErrMissingID
	}

	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*ExtraIncome, error) {
	if err := validation.Struct(params); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, params)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*ExtraIncome, error) {
	if id == uuid.Nil {
		return nil, ErrMissingID
	}

	if err := validation.Struct(params); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, params)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrMissingID
	}

	return s.repo.Delete(ctx, id)
}

// Subtract lowers the recorded amount without touching any bank.
func (s *Service) Subtract(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*ExtraIncome, error) {
	if id == uuid.Nil {
		return nil, ErrMissingID
	}

	params := AmountParams{Amount: amount}
	if err := validation.Struct(params); err != nil {
		return nil, err
	}

	return s.repo.Subtract(ctx, id, params)
}

func (s *Service) Add(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*ExtraIncome, error) {
	if id == uuid.Nil {
		return nil, ErrMissingID
	}

	params := AmountParams{Amount: amount}
	if err := validation.Struct(params); err != nil {
		return nil, err
	}

	return s.repo.Add(ctx, id, params)
}

// Transfer moves the income to another bank on the backend side.
func (s *Service) Transfer(ctx context.Context, id, bankID uuid.UUID) (*ExtraIncome, error) {
	if id == uuid.Nil {
		return nil, ErrMissingID
	}

	params := TransferParams{BankID: bankID}
	if err := validation.Struct(params); err != nil {
		return nil, err
	}

	return s.repo.Transfer(ctx, id, params)
}
