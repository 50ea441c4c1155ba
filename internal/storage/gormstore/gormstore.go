// Package gormstore implements storage.Store on top of GORM.
package gormstore

import (
	"context"
	"fmt"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ytget/phone-specs/internal/model"
	"github.com/ytget/phone-specs/internal/platform"
	"github.com/ytget/phone-specs/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// phoneRow maps the phone_specs table.
type phoneRow struct {
	ID    int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Brand string  `gorm:"column:brand;not null"`
	Model string  `gorm:"column:model;not null"`
	Price float64 `gorm:"column:price;not null"`
	OS    string  `gorm:"column:os;not null"`
	RAM   string  `gorm:"column:ram;not null"`
}

// TableName overrides GORM's pluralized default.
func (phoneRow) TableName() string {
	return storage.TableName
}

func rowFromPhone(p model.Phone) phoneRow {
	return phoneRow{ID: p.ID, Brand: p.Brand, Model: p.Model, Price: p.Price, OS: p.OS, RAM: p.RAM}
}

func (r phoneRow) phone() model.Phone {
	return model.Phone{ID: r.ID, Brand: r.Brand, Model: r.Model, Price: r.Price, OS: r.OS, RAM: r.RAM}
}

// Store implements storage.Store with a GORM session per operation.
type Store struct {
	path string
}

// New creates a Store for dbPath, creating parent directories.
func New(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("gormstore: database path is empty")
	}
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(dbPath)); err != nil {
		return nil, fmt.Errorf("gormstore: create database directory: %w", err)
	}
	return &Store{path: dbPath}, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) withDB(ctx context.Context, fn func(db *gorm.DB) error) error {
	db, err := gorm.Open(sqlite.Open(s.path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // use slog, not GORM's own
	})
	if err != nil {
		return fmt.Errorf("gormstore: open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("gormstore: get sql.DB: %w", err)
	}
	defer sqlDB.Close()

	return fn(db.WithContext(ctx))
}

// CreateTable runs the shared schema statement. AutoMigrate is not used so
// both backends produce the same table.
func (s *Store) CreateTable(ctx context.Context) error {
	return s.withDB(ctx, func(db *gorm.DB) error {
		if err := db.Exec(storage.Schema).Error; err != nil {
			return fmt.Errorf("gormstore: create table: %w", err)
		}
		return nil
	})
}

// Insert creates the row and copies the generated id into phone.
func (s *Store) Insert(ctx context.Context, phone *model.Phone) error {
	return s.withDB(ctx, func(db *gorm.DB) error {
		row := rowFromPhone(*phone)
		row.ID = 0
		if err := db.Create(&row).Error; err != nil {
			return fmt.Errorf("gormstore: insert: %w", err)
		}
		phone.ID = row.ID
		return nil
	})
}

// Update overwrites all columns of the row with phone.ID.
func (s *Store) Update(ctx context.Context, phone model.Phone) error {
	return s.withDB(ctx, func(db *gorm.DB) error {
		err := db.Model(&phoneRow{}).
			Where("id = ?", phone.ID).
			Updates(map[string]interface{}{
				"brand": phone.Brand,
				"model": phone.Model,
				"price": phone.Price,
				"os":    phone.OS,
				"ram":   phone.RAM,
			}).Error
		if err != nil {
			return fmt.Errorf("gormstore: update: %w", err)
		}
		return nil
	})
}

// Delete removes the row with id.
func (s *Store) Delete(ctx context.Context, id int64) error {
	return s.withDB(ctx, func(db *gorm.DB) error {
		if err := db.Where("id = ?", id).Delete(&phoneRow{}).Error; err != nil {
			return fmt.Errorf("gormstore: delete: %w", err)
		}
		return nil
	})
}

// SelectAll loads every row.
func (s *Store) SelectAll(ctx context.Context) ([]model.Phone, error) {
	var phones []model.Phone

	err := s.withDB(ctx, func(db *gorm.DB) error {
		var rows []phoneRow
		if err := db.Find(&rows).Error; err != nil {
			return fmt.Errorf("gormstore: select: %w", err)
		}
		for _, r := range rows {
			phones = append(phones, r.phone())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return phones, nil
}
