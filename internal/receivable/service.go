package receivable

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finboard/internal/dates"
	"github.com/MrJamesThe3rd/finboard/internal/validation"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=receivable
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]*Receivable, error)
	Get(ctx context.Context, id uuid.UUID) (*Receivable, error)
	Create(ctx context.Context, params CreateParams) (*Receivable, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Receivable, error)
	Delete(ctx context.Context, id uuid.UUID) error
	MarkAsReceived(ctx context.Context, id uuid.UUID, params MarkAsReceivedParams) (*Receivable, error)
}

var ErrMissingID = errors.New("receivable id is required")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*Receivable, error) {
	return s.repo.List(ctx, ListFilter{})
}

func (s *Service) ListByStatus(ctx context.Context, status Status) ([]*Receivable, error) {
	return s.repo.List(ctx, ListFilter{Status: &status})
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Receivable, error) {
	if id == uuid.Nil {
		return nil, ErrMissingID
	}

	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Receivable, error) {
	if err := validation.Struct(params); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, params)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Receivable, error) {
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

// MarkAsReceived asks the backend to settle the receivable in one call. A zero
// received date means today.
func (s *Service) MarkAsReceived(ctx context.Context, id uuid.UUID, params MarkAsReceivedParams) (*Receivable, error) {
	if id == uuid.Nil {
		return nil, ErrMissingID
	}

	if params.ReceivedDate.IsZero() {
		params.ReceivedDate = dates.Today()
	}

	return s.repo.MarkAsReceived(ctx, id, params)
}
