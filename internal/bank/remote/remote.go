package remote

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finboard/internal/apiclient"
	"github.com/MrJamesThe3rd/finboard/internal/bank"
)

type Remote struct {
	res apiclient.Resource[bank.Bank]
}

func New(c *apiclient.Client) *Remote {
	return &Remote{res: apiclient.NewResource[bank.Bank](c, "/banks")}
}

func (r *Remote) List(ctx context.Context) ([]*bank.Bank, error) {
	return r.res.List(ctx, nil)
}

func (r *Remote) Get(ctx context.Context, id uuid.UUID) (*bank.Bank, error) {
	return r.res.Get(ctx, id)
}

func (r *Remote) Create(ctx context.Context, params bank.CreateParams) (*bank.Bank, error) {
	return r.res.Create(ctx, params)
}

func (r *Remote) Update(ctx context.Context, id uuid.UUID, params bank.UpdateParams) (*bank.Bank, error) {
	return r.res.Update(ctx, id, params)
}

func (r *Remote) Delete(ctx context.Context, id uuid.UUID) error {
	return r.res.Delete(ctx, id)
}

func (r *Remote) Transfer(ctx context.Context, params bank.TransferParams) error {
	return r.res.Client().Post(ctx, r.res.CollectionPath("transfer"), params, nil)
}

func (r *Remote) AddMoney(ctx context.Context, id uuid.UUID, params bank.AmountParams) (*bank.Bank, error) {
	var b bank.Bank
	if err := r.res.Action(ctx, http.MethodPost, id, "add-money", params, &b); err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *Remote) RemoveMoney(ctx context.Context, id uuid.UUID, params bank.AmountParams) (*bank.Bank, error) {
	var b bank.Bank
	if err := r.res.Action(ctx, http.MethodPost, id, "remove-money", params, &b); err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *Remote) AddMoneyToAll(ctx context.Context, params bank.AmountParams) ([]*bank.Bank, error) {
	var banks []*bank.Bank
	if err := r.res.Client().Post(ctx, r.res.CollectionPath("add-money"), params, &banks); err != nil {
		return nil, err
	}

	return banks, nil
}

func (r *Remote) ClearIncomes(ctx context.Context, id uuid.UUID) (*bank.Bank, error) {
	var b bank.Bank
	if err := r.res.Action(ctx, http.MethodPost, id, "clear-incomes", nil, &b); err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *Remote) ClearExpenses(ctx context.Context, id uuid.UUID) (*bank.Bank, error) {
	var b bank.Bank
	if err := r.res.Action(ctx, http.MethodPost, id, "clear-expenses", nil, &b); err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *Remote) Metrics(ctx context.Context) (*bank.Metrics, error) {
	var m bank.Metrics
	if err := r.res.Client().Get(ctx, r.res.CollectionPath("metrics"), nil, &m); err != nil {
		return nil, err
	}

	return &m, nil
}
