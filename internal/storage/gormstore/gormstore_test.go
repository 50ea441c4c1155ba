package gormstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/phone-specs/internal/model"
	"github.com/ytget/phone-specs/internal/storage"
	sqlstore "github.com/ytget/phone-specs/internal/storage/sqlite"
	"github.com/ytget/phone-specs/internal/storage/storagetest"
)

func TestStore(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Store {
		store, err := New(filepath.Join(t.TempDir(), "phones.db"))
		require.NoError(t, err)
		return store
	})
}

func TestNewRejectsEmptyPath(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)
}

func TestPhoneRowMapping(t *testing.T) {
	phone := model.Phone{ID: 3, Brand: "Acme", Model: "X1", Price: 1.5, OS: "iOS", RAM: "2GB"}

	assert.Equal(t, phone, rowFromPhone(phone).phone())
	assert.Equal(t, storage.TableName, phoneRow{}.TableName())
}

func TestSharesFileWithSQLStore(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "phones.db")

	sqlStore, err := sqlstore.New(dbPath)
	require.NoError(t, err)
	require.NoError(t, sqlStore.CreateTable(ctx))

	phone := model.Phone{Brand: "Acme", Model: "X1", Price: 199.99, OS: "AndroidOS", RAM: "4GB"}
	require.NoError(t, sqlStore.Insert(ctx, &phone))

	gormStore, err := New(dbPath)
	require.NoError(t, err)
	require.NoError(t, gormStore.CreateTable(ctx))

	phones, err := gormStore.SelectAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Phone{phone}, phones)
}
