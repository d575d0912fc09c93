package entity_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/finboard/internal/apiclient"
	"github.com/MrJamesThe3rd/finboard/internal/bank"
	"github.com/MrJamesThe3rd/finboard/internal/bill"
	"github.com/MrJamesThe3rd/finboard/internal/category"
	"github.com/MrJamesThe3rd/finboard/internal/dates"
	"github.com/MrJamesThe3rd/finboard/internal/entity"
	"github.com/MrJamesThe3rd/finboard/internal/income"
	"github.com/MrJamesThe3rd/finboard/internal/session"
	"github.com/MrJamesThe3rd/finboard/internal/transaction"
	"github.com/MrJamesThe3rd/finboard/internal/vault"
)

type call struct {
	method string
	path   string
	body   string
}

type backend struct {
	mu       sync.Mutex
	calls    []call
	response string
}

func (b *backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	b.mu.Lock()
	b.calls = append(b.calls, call{method: r.Method, path: r.URL.RequestURI(), body: string(body)})
	resp := b.response
	b.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	io.WriteString(w, resp)
}

func newSet(t *testing.T, response string) (*entity.Set, *backend) {
	t.Helper()

	b := &backend{response: response}
	ts := httptest.NewServer(b)
	t.Cleanup(ts.Close)

	c, err := apiclient.New(ts.URL, session.NewMemory("tok"))
	require.NoError(t, err)

	return entity.New(c), b
}

func TestSet_CRUDMapsToOneCall(t *testing.T) {
	id := uuid.MustParse("6f1c1f0e-8a51-4c39-9f0a-3f6b0b9b1c11")
	itemJSON := `{"id":"6f1c1f0e-8a51-4c39-9f0a-3f6b0b9b1c11","name":"Main"}`

	tests := []struct {
		name       string
		response   string
		invoke     func(ctx context.Context, s *entity.Set) (any, error)
		wantMethod string
		wantPath   string
		wantBody   string
		check      func(t *testing.T, got any)
	}{
		{
			name:     "BankList",
			response: "[" + itemJSON + "]",
			invoke: func(ctx context.Context, s *entity.Set) (any, error) {
				return s.Banks.List(ctx)
			},
			wantMethod: http.MethodGet,
			wantPath:   "/banks",
			check: func(t *testing.T, got any) {
				banks := got.([]*bank.Bank)
				require.Len(t, banks, 1)
				assert.Equal(t, "Main", banks[0].Name)
			},
		},
		{
			name:     "CategoryGet",
			response: itemJSON,
			invoke: func(ctx context.Context, s *entity.Set) (any, error) {
				return s.Categories.Get(ctx, id)
			},
			wantMethod: http.MethodGet,
			wantPath:   "/categories/" + id.String(),
			check: func(t *testing.T, got any) {
				assert.Equal(t, id, got.(*category.Category).ID)
			},
		},
		{
			name:     "VaultCreate",
			response: `{"id":"6f1c1f0e-8a51-4c39-9f0a-3f6b0b9b1c11","name":"Trip","amount":12.5,"currency":"EUR"}`,
			invoke: func(ctx context.Context, s *entity.Set) (any, error) {
				return s.Vaults.Create(ctx, vault.CreateParams{
					Name:     "Trip",
					Amount:   decimal.RequireFromString("12.5"),
					Currency: "EUR",
				})
			},
			wantMethod: http.MethodPost,
			wantPath:   "/vaults",
			wantBody:   `{"name":"Trip","description":"","amount":"12.5","currency":"EUR"}`,
			check: func(t *testing.T, got any) {
				v := got.(*vault.Vault)
				assert.Equal(t, "EUR", v.Currency)
				assert.True(t, decimal.RequireFromString("12.5").Equal(v.Amount))
			},
		},
		{
			name:     "IncomeUpdate",
			response: `{"id":"6f1c1f0e-8a51-4c39-9f0a-3f6b0b9b1c11","amount":"150"}`,
			invoke: func(ctx context.Context, s *entity.Set) (any, error) {
				return s.ExtraIncomes.Update(ctx, id, income.UpdateParams{Amount: new(decimal.NewFromInt(150))})
			},
			wantMethod: http.MethodPut,
			wantPath:   "/extra-income/" + id.String(),
			wantBody:   `{"amount":"150"}`,
			check: func(t *testing.T, got any) {
				assert.Equal(t, "150", got.(*income.ExtraIncome).Amount.String())
			},
		},
		{
			name:     "BillCreate",
			response: `{"id":"6f1c1f0e-8a51-4c39-9f0a-3f6b0b9b1c11","status":"PENDING","dueDate":"2024-03-10"}`,
			invoke: func(ctx context.Context, s *entity.Set) (any, error) {
				return s.Bills.Create(ctx, bill.CreateParams{
					ExpenseID: id,
					DueDate:   dates.New(2024, time.March, 10),
				})
			},
			wantMethod: http.MethodPost,
			wantPath:   "/bills",
			wantBody:   `{"expenseId":"6f1c1f0e-8a51-4c39-9f0a-3f6b0b9b1c11","paymentMethod":"","dueDate":"2024-03-10","autoPay":false}`,
			check: func(t *testing.T, got any) {
				b := got.(*bill.Bill)
				assert.Equal(t, bill.StatusPending, b.Status)
				assert.Equal(t, "2024-03-10", b.DueDate.String())
			},
		},
		{
			name:     "TransactionDelete",
			response: ``,
			invoke: func(ctx context.Context, s *entity.Set) (any, error) {
				return nil, s.Transactions.Delete(ctx, id)
			},
			wantMethod: http.MethodDelete,
			wantPath:   "/transactions/" + id.String(),
		},
		{
			name:     "TransactionSearch",
			response: `[]`,
			invoke: func(ctx context.Context, s *entity.Set) (any, error) {
				deposit := transaction.TypeDeposit
				return s.Transactions.Search(ctx, transaction.ListFilter{Type: &deposit})
			},
			wantMethod: http.MethodGet,
			wantPath:   "/transactions?transaction_type=DEPOSIT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, b := newSet(t, tt.response)

			got, err := tt.invoke(context.Background(), set)
			require.NoError(t, err)

			require.Len(t, b.calls, 1)
			assert.Equal(t, tt.wantMethod, b.calls[0].method)
			assert.Equal(t, tt.wantPath, b.calls[0].path)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, b.calls[0].body)
			}

			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}

func TestSet_DeleteTwiceSurfacesBackendError(t *testing.T) {
	var (
		mu      sync.Mutex
		deleted = map[string]bool{}
	)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()

		if deleted[r.URL.Path] {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"code": "NOT_FOUND", "message": "category not found"})

			return
		}

		deleted[r.URL.Path] = true
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	c, err := apiclient.New(ts.URL, session.NewMemory("tok"))
	require.NoError(t, err)

	set := entity.New(c)
	id := uuid.New()

	require.NoError(t, set.Categories.Delete(context.Background(), id))

	err = set.Categories.Delete(context.Background(), id)

	var apiErr *apiclient.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "category not found", apiErr.Message)
	assert.ErrorIs(t, err, apiclient.ErrNotFound)
}
