package remote

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finboard/internal/apiclient"
	"github.com/MrJamesThe3rd/finboard/internal/income"
)

type Remote struct {
	res apiclient.Resource[income.ExtraIncome]
}

func New(c *apiclient.Client) *Remote {
	return &Remote{res: apiclient.NewResource[income.ExtraIncome](c, "/extra-income")}
}

func (r *Remote) List(ctx context.Context) ([]*income.ExtraIncome, error) {
	return r.res.List(ctx, nil)
}

func (r *Remote) Get(ctx context.Context, id uuid.UUID) (*income.ExtraIncome, error) {
	return r.res.Get(ctx, id)
}

func (r *Remote) Create(ctx context.Context, params income.CreateParams) (*income.ExtraIncome, error) {
	return r.res.Create(ctx, params)
}

func (r *Remote) Update(ctx context.Context, id uuid.UUID, params income.UpdateParams) (*income.ExtraIncome, error) {
	return r.res.Update(ctx, id, params)
}

func (r *Remote) Delete(ctx context.Context, id uuid.UUID) error {
	return r.res.Delete(ctx, id)
}

func (r *Remote) Subtract(ctx context.Context, id uuid.UUID, params income.AmountParams) (*income.ExtraIncome, error) {
	return r.action(ctx, id, "subtract", params)
}

func (r *Remote) Add(ctx context.Context, id uuid.UUID, params income.AmountParams) (*income.ExtraIncome, error) {
	return r.action(ctx, id, "add", params)
}

func (r *Remote) Transfer(ctx context.Context, id uuid.UUID, params income.TransferParams) (*income.ExtraIncome, error) {
	return r.action(ctx, id, "transfer", params)
}

func (r *Remote) action(ctx context.Context, id uuid.UUID, name string, body any) (*income.ExtraIncome, error) {
	var e income.ExtraIncome
	if err := r.res.Action(ctx, http.MethodPost, id, name, body, &e); err != nil {
		return nil, err
	}

	return &e, nil
}
