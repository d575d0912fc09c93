package expense

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finboard/internal/validation"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=expense
type Repository interface {
	List(ctx context.Context) ([]*Expense, error)
	Get(ctx context.Context, id uuid.UUID) (*Expense, error)
	Create(ctx context.Context, params CreateParams) (*Expense, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Expense, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

var ErrMissingID = errors.New("expense id is required")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*Expense, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Expense, error) {
	if id == uuid.Nil {
		return nil, ErrMissingID
	}

	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Expense, error) {
	if err := validation.Struct(params); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, params)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Expense, error) {
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
