package bank

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/finboard/internal/validation"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=bank
type Repository interface {
	List(ctx context.Context) ([]*Bank, error)
	Get(ctx context.Context, id uuid.UUID) (*Bank, error)
	Create(ctx context.Context, params CreateParams) (*Bank, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Bank, error)
	Delete(ctx context.Context, id uuid.UUID) error

	Transfer(ctx context.Context, params TransferParams) error
	AddMoney(ctx context.Context, id uuid.UUID, params AmountParams) (*Bank, error)
	RemoveMoney(ctx context.Context, id uuid.UUID, params AmountParams) (*Bank, error)
	AddMoneyToAll(ctx context.Context, params AmountParams) ([]*Bank, error)
	ClearIncomes(ctx context.Context, id uuid.UUID) (*Bank, error)
	ClearExpenses(ctx context.Context, id uuid.UUID) (*Bank, error)
	Metrics(ctx context.Context) (*Metrics, error)
}

var ErrMissingID = errors.New("bank id is required")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*Bank, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Bank, error) {
	if id == uuid.Nil {
		return nil, ErrMissingID
	}

	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Bank, error) {
	if err := validation.Struct(params); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, params)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Bank, error) {
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

// Transfer moves amount between two banks in a single backend call.
func (s *Service) Transfer(ctx context.Context, params TransferParams) error {
	if err := validation.Struct(params); err != nil {
		return err
	}

	return s.repo.Transfer(ctx, params)
}

func (s *Service) AddMoney(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*Bank, error) {
	if id == uuid.Nil {
		return nil, ErrMissingID
	}

	params := AmountParams{Amount: amount}
	if err := validation.Struct(params); err != nil {
		return nil, err
	}

	return s.repo.AddMoney(ctx, id, params)
}

func (s *Service) RemoveMoney(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*Bank, error) {
	if id == uuid.Nil {
		return nil, ErrMissingID
	}

	params := AmountParams{Amount: amount}
	if err := validation.Struct(params); err != nil {
		return nil, err
	}

	return s.repo.RemoveMoney(ctx, id, params)
}

// AddMoneyToAll credits amount to every bank of the current user.
func (s *Service) AddMoneyToAll(ctx context.Context, amount decimal.Decimal) ([]*Bank, error) {
	params := AmountParams{Amount: amount}
	if err := validation.Struct(params); err != nil {
		return nil, err
	}

	return s.repo.AddMoneyToAll(ctx, params)
}

func (s *Service) ClearIncomes(ctx context.Context, id uuid.UUID) (*Bank, error) {
	if id == uuid.Nil {
		return nil, ErrMissingID
	}

	return s.repo.ClearIncomes(ctx, id)
}

func (s *Service) ClearExpenses(ctx context.Context, id uuid.UUID) (*Bank, error) {
	if id == uuid.Nil {
		return nil, ErrMissingID
	}

	return s.repo.ClearExpenses(ctx, id)
}

func (s *Service) Metrics(ctx context.Context) (*Metrics, error) {
	return s.repo.Metrics(ctx)
}
