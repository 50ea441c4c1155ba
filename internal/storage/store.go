// Package storage provides the abstraction over the phone record table.
package storage

import (
	"context"

	"github.com/ytget/phone-specs/internal/model"
)

// TableName is the single table holding phone records.
const TableName = "phone_specs"

// Schema creates the phone table. It is safe to run on every start.
const Schema = `
CREATE TABLE IF NOT EXISTS phone_specs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    brand TEXT NOT NULL,
    model TEXT NOT NULL,
    price REAL NOT NULL,
    os TEXT NOT NULL,
    ram TEXT NOT NULL
);
`

// Store defines the operations the application needs from persistent storage.
// Implementations open the database around each call and hold no connection
// between calls.
type Store interface {
	// CreateTable ensures the phone table exists.
	CreateTable(ctx context.Context) error

	// Insert persists a new record. The phone.ID field is populated by the store.
	Insert(ctx context.Context, phone *model.Phone) error

	// Update overwrites every column except id. Unknown ids are a no-op.
	Update(ctx context.Context, phone model.Phone) error

	// Delete removes the record with the given id. Unknown ids are a no-op.
	Delete(ctx context.Context, id int64) error

	// SelectAll returns every record in storage-defined order.
	SelectAll(ctx context.Context) ([]model.Phone, error)
}
