package remote

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finboard/internal/apiclient"
	"github.com/MrJamesThe3rd/finboard/internal/receivable"
)

type Remote struct {
	res apiclient.Resource[receivable.Receivable]
}

func New(c *apiclient.Client) *Remote {
	return &Remote{res: apiclient.NewResource[receivable.Receivable](c, "/receivables")}
}

func (r *Remote) List(ctx context.Context, filter receivable.ListFilter) ([]*receivable.Receivable, error) {
	q := url.Values{}
	if filter.Status != nil {
		q.Set("status", string(*filter.Status))
	}

	return r.res.List(ctx, q)
}

func (r *Remote) Get(ctx context.Context, id uuid.UUID) (*receivable.Receivable, error) {
	return r.res.Get(ctx, id)
}

func (r *Remote) Create(ctx context.Context, params receivable.CreateParams) (*receivable.Receivable, error) {
	return r.res.Create(ctx, params)
}

func (r *Remote) Update(ctx context.Context, id uuid.UUID, params receivable.UpdateParams) (*receivable.Receivable, error) {
	return r.res.Update(ctx, id, params)
}

func (r *Remote) Delete(ctx context.Context, id uuid.UUID) error {
	return r.res.Delete(ctx, id)
}

func (r *Remote) MarkAsReceived(ctx context.Context, id uuid.UUID, params receivable.MarkAsReceivedParams) (*receivable.Receivable, error) {
	var rc receivable.Receivable
	if err := r.res.Action(ctx, http.MethodPatch, id, "mark-as-received", params, &rc); err != nil {
		return nil, err
	}

	return &rc, nil
}
