package remote

import (
	"context"
	"net/url"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finboard/internal/apiclient"
	"github.com/MrJamesThe3rd/finboard/internal/transaction"
)

type Remote struct {
	res apiclient.Resource[transaction.Transaction]
}

func New(c *apiclient.Client) *Remote {
	return &Remote{res: apiclient.NewResource[transaction.Transaction](c, "/transactions")}
}

func (r *Remote) List(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	return r.res.List(ctx, filterQuery(filter))
}

func (r *Remote) Get(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	return r.res.Get(ctx, id)
}

func (r *Remote) Create(ctx context.Context, params transaction.CreateParams) (*transaction.Transaction, error) {
	return r.res.Create(ctx, params)
}

func (r *Remote) Update(ctx context.Context, id uuid.UUID, params transaction.UpdateParams) (*transaction.Transaction, error) {
	return r.res.Update(ctx, id, params)
}

func (r *Remote) Delete(ctx context.Context, id uuid.UUID) error {
	return r.res.Delete(ctx, id)
}

func filterQuery(filter transaction.ListFilter) url.Values {
	q := url.Values{}

	if filter.Type != nil {
		q.Set("transaction_type", string(*filter.Type))
	}

	if filter.BankID != nil {
		q.Set("bank_id", filter.BankID.String())
	}

	if filter.VaultID != nil {
		q.Set("vault_id", filter.VaultID.String())
	}

	if filter.StartDate != nil {
		q.Set("start_date", filter.StartDate.String())
	}

	if filter.EndDate != nil {
		q.Set("end_date", filter.EndDate.String())
	}

	return q
}
