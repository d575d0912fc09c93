package cache_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/finboard/internal/apiclient"
	"github.com/MrJamesThe3rd/finboard/internal/cache"
	"github.com/MrJamesThe3rd/finboard/internal/entity"
	"github.com/MrJamesThe3rd/finboard/internal/session"
)

func TestStore_Refresh(t *testing.T) {
	bankID := uuid.New()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /banks", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"` + bankID.String() + `","name":"Main","currentBalance":"10"}]`))
	})
	mux.HandleFunc("GET /categories", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"` + uuid.NewString() + `","name":"Food"}]`))
	})
	mux.HandleFunc("GET /bills", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"bills unavailable"}`))
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	c, err := apiclient.New(ts.URL, session.NewMemory("tok"))
	require.NoError(t, err)

	set := entity.New(c)
	store := cache.NewStore(nil)

	err = store.Refresh(context.Background(), set, cache.KindBanks, cache.KindCategories, cache.KindBills)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bills unavailable")

	banks := store.Banks.Snapshot()
	assert.NoError(t, banks.Err)
	require.Len(t, banks.Items, 1)
	assert.Equal(t, "Main", store.BankName(&bankID))

	assert.Equal(t, 1, store.Categories.Len())

	bills := store.Bills.Snapshot()
	assert.False(t, bills.Loading)

	var apiErr *apiclient.Error
	require.ErrorAs(t, bills.Err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestStore_RefreshAllOnEmptyKinds(t *testing.T) {
	var (
		mu   sync.Mutex
		hits []string
	)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits = append(hits, r.URL.Path)
		mu.Unlock()

		w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	c, err := apiclient.New(ts.URL, session.NewMemory("tok"))
	require.NoError(t, err)

	require.NoError(t, cache.NewStore(nil).Refresh(context.Background(), entity.New(c)))
	assert.Len(t, hits, len(cache.AllKinds))
	assert.Equal(t, "", cache.NewStore(nil).BankName(nil))
}
