// Package storagetest holds the behavior suite every storage.Store backend
// must pass. Backend packages call Run from their own tests.
package storagetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/phone-specs/internal/model"
	"github.com/ytget/phone-specs/internal/storage"
)

// NewStoreFunc returns a store backed by a fresh, empty database.
type NewStoreFunc func(t *testing.T) storage.Store

func acme() model.Phone {
	return model.Phone{Brand: "Acme", Model: "X1", Price: 199.99, OS: "AndroidOS", RAM: "4GB"}
}

// newReadyStore returns a store whose table already exists.
func newReadyStore(t *testing.T, newStore NewStoreFunc) storage.Store {
	t.Helper()
	store := newStore(t)
	require.NoError(t, store.CreateTable(context.Background()))
	return store
}

// byID indexes records for order-independent comparisons.
func byID(phones []model.Phone) map[int64]model.Phone {
	m := make(map[int64]model.Phone, len(phones))
	for _, p := range phones {
		m[p.ID] = p
	}
	return m
}

// Run exercises the full storage.Store contract.
func Run(t *testing.T, newStore NewStoreFunc) {
	ctx := context.Background()

	t.Run("CreateTable is idempotent", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.CreateTable(ctx))
		require.NoError(t, store.CreateTable(ctx))

		phones, err := store.SelectAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, phones)
	})

	t.Run("Insert assigns unique ids", func(t *testing.T) {
		store := newReadyStore(t, newStore)

		first := acme()
		require.NoError(t, store.Insert(ctx, &first))
		second := acme()
		second.Model = "X2"
		require.NoError(t, store.Insert(ctx, &second))

		assert.NotZero(t, first.ID)
		assert.NotZero(t, second.ID)
		assert.NotEqual(t, first.ID, second.ID)

		phones, err := store.SelectAll(ctx)
		require.NoError(t, err)
		require.Len(t, phones, 2)

		stored := byID(phones)
		assert.Equal(t, first, stored[first.ID])
		assert.Equal(t, second, stored[second.ID])
	})

	t.Run("Scenario add update delete", func(t *testing.T) {
		store := newReadyStore(t, newStore)

		phone := acme()
		require.NoError(t, store.Insert(ctx, &phone))
		assert.Equal(t, int64(1), phone.ID)

		phones, err := store.SelectAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []model.Phone{{ID: 1, Brand: "Acme", Model: "X1", Price: 199.99, OS: "AndroidOS", RAM: "4GB"}}, phones)

		updated := phone
		updated.Brand = "Acme2"
		require.NoError(t, store.Update(ctx, updated))

		phones, err = store.SelectAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []model.Phone{updated}, phones)

		require.NoError(t, store.Delete(ctx, phone.ID))

		phones, err = store.SelectAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, phones)
	})

	t.Run("Update overwrites every field but id", func(t *testing.T) {
		store := newReadyStore(t, newStore)

		phone := acme()
		require.NoError(t, store.Insert(ctx, &phone))
		other := acme()
		other.Model = "Other"
		require.NoError(t, store.Insert(ctx, &other))

		updated := model.Phone{ID: phone.ID, Brand: "Zeta", Model: "Z9", Price: 10.5, OS: "ZOS", RAM: "16GB"}
		require.NoError(t, store.Update(ctx, updated))

		phones, err := store.SelectAll(ctx)
		require.NoError(t, err)
		stored := byID(phones)
		assert.Equal(t, updated, stored[phone.ID])
		assert.Equal(t, other, stored[other.ID], "unrelated row must not change")
	})

	t.Run("Update with stale id is a no-op", func(t *testing.T) {
		store := newReadyStore(t, newStore)

		phone := acme()
		require.NoError(t, store.Insert(ctx, &phone))
		stale := acme()
		require.NoError(t, store.Insert(ctx, &stale))
		require.NoError(t, store.Delete(ctx, stale.ID))

		before, err := store.SelectAll(ctx)
		require.NoError(t, err)

		stale.Brand = "Ghost"
		require.NoError(t, store.Update(ctx, stale))

		after, err := store.SelectAll(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, before, after)
	})

	t.Run("Delete removes exactly one record", func(t *testing.T) {
		store := newReadyStore(t, newStore)

		var ids []int64
		for _, m := range []string{"A", "B", "C"} {
			p := acme()
			p.Model = m
			require.NoError(t, store.Insert(ctx, &p))
			ids = append(ids, p.ID)
		}

		require.NoError(t, store.Delete(ctx, ids[1]))

		phones, err := store.SelectAll(ctx)
		require.NoError(t, err)
		require.Len(t, phones, 2)
		stored := byID(phones)
		assert.Contains(t, stored, ids[0])
		assert.NotContains(t, stored, ids[1])
		assert.Contains(t, stored, ids[2])
	})

	t.Run("Delete of unknown id is a no-op", func(t *testing.T) {
		store := newReadyStore(t, newStore)

		phone := acme()
		require.NoError(t, store.Insert(ctx, &phone))

		require.NoError(t, store.Delete(ctx, phone.ID+100))

		phones, err := store.SelectAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []model.Phone{phone}, phones)
	})

	t.Run("Ids are not reused after delete", func(t *testing.T) {
		store := newReadyStore(t, newStore)

		first := acme()
		require.NoError(t, store.Insert(ctx, &first))
		require.NoError(t, store.Delete(ctx, first.ID))

		second := acme()
		require.NoError(t, store.Insert(ctx, &second))
		assert.Greater(t, second.ID, first.ID)
	})

	t.Run("SelectAll is repeatable", func(t *testing.T) {
		store := newReadyStore(t, newStore)

		for _, m := range []string{"A", "B"} {
			p := acme()
			p.Model = m
			require.NoError(t, store.Insert(ctx, &p))
		}

		first, err := store.SelectAll(ctx)
		require.NoError(t, err)
		second, err := store.SelectAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("Data survives reopening", func(t *testing.T) {
		store := newReadyStore(t, newStore)

		phone := acme()
		require.NoError(t, store.Insert(ctx, &phone))
		require.NoError(t, store.CreateTable(ctx))

		phones, err := store.SelectAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []model.Phone{phone}, phones)
	})
}
