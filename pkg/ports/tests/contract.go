package tests

import (
	"testing"

	"github.com/aretw0/schemarepl/pkg/domain"
	"github.com/aretw0/schemarepl/pkg/ports"
	"github.com/aretw0/schemarepl/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RecordStoreContractTest is a reusable test suite that verifies if an adapter
// complies with ports.RecordStore. newStore must return an empty store on
// every call.
func RecordStoreContractTest(t *testing.T, newStore func() ports.RecordStore) {
	t.Helper()

	record := func(t *testing.T, age string) *schema.Schema {
		s, err := schema.Build("name|string|16 age|int")
		require.NoError(t, err)
		require.NoError(t, s.SetValues([]any{"'n'", age}))
		return s
	}

	t.Run("Save and Load", func(t *testing.T) {
		store := newStore()
		rec := record(t, "1")

		idx, saved := store.Save(rec)
		assert.Equal(t, 0, idx)
		assert.Same(t, rec, saved)

		loaded, err := store.Load(idx)
		require.NoError(t, err)
		assert.Same(t, rec, loaded)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("Indices Increase By One", func(t *testing.T) {
		store := newStore()
		for want := 0; want < 5; want++ {
			idx, _ := store.Save(record(t, "1"))
			assert.Equal(t, want, idx)
		}
	})

	t.Run("Load Out Of Range", func(t *testing.T) {
		store := newStore()
		_, err := store.Load(0)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		store.Save(record(t, "1"))
		_, err = store.Load(1)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		_, err = store.Load(-1)
		assert.ErrorIs(t, err, domain.ErrNotFound, "negative indices must be rejected")
	})

	t.Run("Clear", func(t *testing.T) {
		store := newStore()
		store.Save(record(t, "1"))
		store.Save(record(t, "2"))

		store.Clear()
		assert.Equal(t, 0, store.Len())
		_, err := store.Load(0)
		assert.ErrorIs(t, err, domain.ErrNotFound, "Load after Clear should return ErrNotFound")

		idx, _ := store.Save(record(t, "3"))
		assert.Equal(t, 0, idx, "indexing restarts after Clear")
	})
}
