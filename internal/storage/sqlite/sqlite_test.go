package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/phone-specs/internal/storage"
	"github.com/ytget/phone-specs/internal/storage/storagetest"
)

func TestStore(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Store {
		store, err := New(filepath.Join(t.TempDir(), "phones.db"))
		require.NoError(t, err)
		return store
	})
}

func TestNewCreatesParentDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "phones.db")

	store, err := New(dbPath)
	require.NoError(t, err)
	assert.Equal(t, dbPath, store.Path())

	info, err := os.Stat(filepath.Dir(dbPath))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewRejectsEmptyPath(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)
}

func TestSelectAllWithoutTable(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "phones.db"))
	require.NoError(t, err)

	_, err = store.SelectAll(context.Background())
	assert.Error(t, err, "querying before CreateTable should fail")
}
