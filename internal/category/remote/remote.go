package remote

import (
	"context"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finboard/internal/apiclient"
	"github.com/MrJamesThe3rd/finboard/internal/category"
)

type Remote struct {
	res apiclient.Resource[category.Category]
}

func New(c *apiclient.Client) *Remote {
	return &Remote{res: apiclient.NewResource[category.Category](c, "/categories")}
}

func (r *Remote) List(ctx context.Context) ([]*category.Category, error) {
	return r.res.List(ctx, nil)
}

func (r *Remote) Get(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	return r.res.Get(ctx, id)
}

func (r *Remote) Create(ctx context.Context, params category.CreateParams) (*category.Category, error) {
	return r.res.Create(ctx, params)
}

func (r *Remote) Update(ctx context.Context, id uuid.UUID, params category.UpdateParams) (*category.Category, error) {
	return r.res.Update(ctx, id, params)
}

func (r *Remote) Delete(ctx context.Context, id uuid.UUID) error {
	return r.res.Delete(ctx, id)
}
