package remote

import (
	"context"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finboard/internal/apiclient"
	"github.com/MrJamesThe3rd/finboard/internal/user"
)

type Remote struct {
	client *apiclient.Client
	res    apiclient.Resource[user.User]
}

func New(c *apiclient.Client) *Remote {
	return &Remote{
		client: c,
		res:    apiclient.NewResource[user.User](c, "/users"),
	}
}

func (r *Remote) Login(ctx context.Context, creds user.Credentials) (*user.AuthResult, error) {
	var res user.AuthResult
	if err := r.client.Post(ctx, "/auth/login", creds, &res); err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *Remote) Register(ctx context.Context, params user.RegisterParams) (*user.AuthResult, error) {
	var res user.AuthResult
	if err := r.client.Post(ctx, "/auth/register", params, &res); err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *Remote) Me(ctx context.Context) (*user.User, error) {
	var u user.User
	if err := r.client.Get(ctx, "/auth/me", nil, &u); err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *Remote) Logout(ctx context.Context) error {
	return r.client.Post(ctx, "/auth/logout", nil, nil)
}

func (r *Remote) List(ctx context.Context) ([]*user.User, error) {
	return r.res.List(ctx, nil)
}

func (r *Remote) Get(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return r.res.Get(ctx, id)
}

func (r *Remote) Update(ctx context.Context, id uuid.UUID, params user.UpdateParams) (*user.User, error) {
	return r.res.Update(ctx, id, params)
}

func (r *Remote) Delete(ctx context.Context, id uuid.UUID) error {
	return r.res.Delete(ctx, id)
}
