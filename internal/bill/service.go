package bill

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finboard/internal/dates"
	"github.com/MrJamesThe3rd/finboard/internal/validation"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=bill
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]*Bill, error)
	Get(ctx context.Context, id uuid.UUID) (*Bill, error)
	Create(ctx context.Context, params CreateParams) (*Bill, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Bill, error)
	Delete(ctx context.Context, id uuid.UUID) error
	MarkAsPaid(ctx context.Context, id uuid.UUID, params MarkAsPaidParams) (*Bill, error)
}

var ErrMissingID = errors.New("bill id is required")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*Bill, error) {
	return s.repo.List(ctx, ListFilter{})
}

func (s *Service) ListByStatus(ctx context.Context, status Status) ([]*Bill, error) {
	return s.repo.List(ctx, ListFilter{Status: &status})
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Bill, error) {
	if id == uuid.Nil {
		return nil, ErrMissingID
	}

	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Bill, error) {
	if err := validation.Struct(params); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, params)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Bill, error) {
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

// MarkAsPaid asks the backend to settle the bill in one call. A zero
// payment date means today.
func (s *Service) MarkAsPaid(ctx context.Context, id uuid.UUID, params MarkAsPaidParams) (*Bill, error) {
	if id == uuid.Nil {
		return nil, ErrMissingID
	}

	if params.PaymentDate.IsZero() {
		params.PaymentDate = dates.Today()
	}

	return s.repo.MarkAsPaid(ctx, id, params)
}
