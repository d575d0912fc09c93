package cache_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/finboard/internal/bank"
	"github.com/MrJamesThe3rd/finboard/internal/cache"
)

func newBanks() *cache.Slice[bank.Bank] {
	return cache.NewSlice(func(b *bank.Bank) uuid.UUID { return b.ID })
}

func TestSlice_UpsertAndRemove(t *testing.T) {
	s := newBanks()
	a := &bank.Bank{ID: uuid.New(), Name: "A"}
	b := &bank.Bank{ID: uuid.New(), Name: "B"}

	s.SetItems([]*bank.Bank{a})
	s.Upsert(b)
	s.Upsert(&bank.Bank{ID: a.ID, Name: "A2"})

	require.Equal(t, 2, s.Len())

	got, ok := s.Find(a.ID)
	require.True(t, ok)
	assert.Equal(t, "A2", got.Name)

	assert.True(t, s.Remove(b.ID))
	assert.False(t, s.Remove(b.ID))

	_, ok = s.Find(b.ID)
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestSlice_LoadingAndError(t *testing.T) {
	s := newBanks()
	s.SetItems([]*bank.Bank{{ID: uuid.New()}})

	s.SetLoading()
	snap := s.Snapshot()
	assert.True(t, snap.Loading)
	assert.Len(t, snap.Items, 1)

	s.SetError(errors.New("boom"))
	snap = s.Snapshot()
	assert.False(t, snap.Loading)
	assert.EqualError(t, snap.Err, "boom")
	assert.Len(t, snap.Items, 1, "stale items survive a failed reload")

	s.SetItems(nil)
	snap = s.Snapshot()
	assert.NoError(t, snap.Err)
	assert.Empty(t, snap.Items)
}

func TestSlice_SnapshotIsACopy(t *testing.T) {
	s := newBanks()
	s.SetItems([]*bank.Bank{{ID: uuid.New()}})

	items := s.Items()
	items[0] = nil

	got := s.Items()
	assert.NotNil(t, got[0])
}
