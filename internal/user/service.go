package user

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finboard/internal/validation"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=user
type Repository interface {
	Login(ctx context.Context, creds Credentials) (*AuthResult, error)
	Register(ctx context.Context, params RegisterParams) (*AuthResult, error)
	Me(ctx context.Context) (*User, error)
	Logout(ctx context.Context) error

	List(ctx context.Context) ([]*User, error)
	Get(ctx context.Context, id uuid.UUID) (*User, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

var (
	ErrMissingID = errors.New("user id is required")
	ErrNoToken   = errors.New("authentication response carried no token")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Login(ctx context.Context, creds Credentials) (*AuthResult, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if err := validation.Struct(creds); err != nil {
		return nil, err
	}

	res, err := s.repo.Login(ctx, creds)
	if err != nil {
		return nil, err
	}

	if res.Token == "" {
		return nil, ErrNoToken
	}

	return res, nil
}

func (s *Service) Register(ctx context.Context, params RegisterParams) (*AuthResult, error) {
	params.Email = strings.TrimSpace(params.Email)
	if err := validation.Struct(params); err != nil {
		return nil, err
	}

	return s.repo.Register(ctx, params)
}

// Me returns the profile of the user owning the current token.
func (s *Service) Me(ctx context.Context) (*User, error) {
	return s.repo.Me(ctx)
}

func (s *Service) Logout(ctx context.Context) error {
	return s.repo.Logout(ctx)
}

func (s *Service) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	if id == uuid.Nil {
		return nil, ErrMissingID
	}

	return s.repo.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*User, error) {
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
