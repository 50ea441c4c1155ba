// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/ytget/phone-specs/internal/model"
	"github.com/ytget/phone-specs/internal/platform"
	"github.com/ytget/phone-specs/internal/storage"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store implements storage.Store using database/sql. The database file is
// opened and closed around every operation.
type Store struct {
	path string
}

// New creates a new Store for the given database path.
// It creates the parent directories; the table is created by CreateTable.
func New(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("database path is empty")
	}

	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(dbPath)); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	return &Store{path: dbPath}, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// withDB opens the database, runs fn and closes the database again.
func (s *Store) withDB(ctx context.Context, fn func(db *sql.DB) error) error {
	db, err := sql.Open(DriverName, s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	return fn(db)
}

// CreateTable runs the schema statement.
func (s *Store) CreateTable(ctx context.Context) error {
	return s.withDB(ctx, func(db *sql.DB) error {
		if _, err := db.ExecContext(ctx, storage.Schema); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
		return nil
	})
}

// Insert persists a new phone and writes the assigned id back.
func (s *Store) Insert(ctx context.Context, phone *model.Phone) error {
	return s.withDB(ctx, func(db *sql.DB) error {
		res, err := db.ExecContext(ctx,
			"INSERT INTO phone_specs (brand, model, price, os, ram) VALUES (?, ?, ?, ?, ?)",
			phone.Brand, phone.Model, phone.Price, phone.OS, phone.RAM,
		)
		if err != nil {
			return fmt.Errorf("failed to insert phone: %w", err)
		}

		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read inserted id: %w", err)
		}
		phone.ID = id
		return nil
	})
}

// Update overwrites the record with phone.ID.
func (s *Store) Update(ctx context.Context, phone model.Phone) error {
	return s.withDB(ctx, func(db *sql.DB) error {
		res, err := db.ExecContext(ctx,
			"UPDATE phone_specs SET brand = ?, model = ?, price = ?, os = ?, ram = ? WHERE id = ?",
			phone.Brand, phone.Model, phone.Price, phone.OS, phone.RAM, phone.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update phone: %w", err)
		}

		if n, err := res.RowsAffected(); err == nil && n == 0 {
			slog.Debug("Update matched no rows", "id", phone.ID)
		}
		return nil
	})
}

// Delete removes the record with the given id.
func (s *Store) Delete(ctx context.Context, id int64) error {
	return s.withDB(ctx, func(db *sql.DB) error {
		res, err := db.ExecContext(ctx, "DELETE FROM phone_specs WHERE id = ?", id)
		if err != nil {
			return fmt.Errorf("failed to delete phone: %w", err)
		}

		if n, err := res.RowsAffected(); err == nil && n == 0 {
			slog.Debug("Delete matched no rows", "id", id)
		}
		return nil
	})
}

// SelectAll returns every phone. No ORDER BY: the order is whatever SQLite
// returns for a table scan.
func (s *Store) SelectAll(ctx context.Context) ([]model.Phone, error) {
	var phones []model.Phone

	err := s.withDB(ctx, func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx, "SELECT id, brand, model, price, os, ram FROM phone_specs")
		if err != nil {
			return fmt.Errorf("failed to query phones: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var p model.Phone
			if err := rows.Scan(&p.ID, &p.Brand, &p.Model, &p.Price, &p.OS, &p.RAM); err != nil {
				return fmt.Errorf("failed to scan phone: %w", err)
			}
			phones = append(phones, p)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("failed to iterate phones: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return phones, nil
}
