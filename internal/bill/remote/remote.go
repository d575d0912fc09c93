package remote

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finboard/internal/apiclient"
	"github.com/MrJamesThe3rd/finboard/internal/bill"
)

type Remote struct {
	res apiclient.Resource[bill.Bill]
}

func New(c *apiclient.Client) *Remote {
	return &Remote{res: apiclient.NewResource[bill.Bill](c, "/bills")}
}

func (r *Remote) List(ctx context.Context, filter bill.ListFilter) ([]*bill.Bill, error) {
	q := url.Values{}
	if filter.Status != nil {
		q.Set("status", string(*filter.Status))
	}

	return r.res.List(ctx, q)
}

func (r *Remote) Get(ctx context.Context, id uuid.UUID) (*bill.Bill, error) {
	return r.res.Get(ctx, id)
}

func (r *Remote) Create(ctx context.Context, params bill.CreateParams) (*bill.Bill, error) {
	return r.res.Create(ctx, params)
}

func (r *Remote) Update(ctx context.Context, id uuid.UUID, params bill.UpdateParams) (*bill.Bill, error) {
	return r.res.Update(ctx, id, params)
}

func (r *Remote) Delete(ctx context.Context, id uuid.UUID) error {
	return r.res.Delete(ctx, id)
}

func (r *Remote) MarkAsPaid(ctx context.Context, id uuid.UUID, params bill.MarkAsPaidParams) (*bill.Bill, error) {
	var b bill.Bill
	if err := r.res.Action(ctx, http.MethodPatch, id, "mark-as-paid", params, &b); err != nil {
		return nil, err
	}

	return &b, nil
}
