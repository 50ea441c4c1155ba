package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ytget/phone-specs/internal/model"
	"github.com/ytget/phone-specs/internal/storage"
)

var _ Manager = (*Service)(nil)

// ErrReloadFailed marks a mutation that was written to storage but whose
// follow-up reload failed. The selection is already cleared when it is returned.
var ErrReloadFailed = errors.New("reload after write failed")

// Service owns the loaded rows and the current selection.
// It is used from the UI goroutine only and is not safe for concurrent use.
type Service struct {
	store    storage.Store
	phones   []model.Phone
	selected *model.Phone
	onUpdate func([]model.Phone) // callback for UI reloads
}

// NewService creates a catalog over the given store
func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// SetUpdateCallback sets the callback function for list reloads
func (s *Service) SetUpdateCallback(callback func([]model.Phone)) {
	s.onUpdate = callback
}

// Load replaces the rows with a fresh SelectAll and notifies the UI
func (s *Service) Load(ctx context.Context) error {
	phones, err := s.store.SelectAll(ctx)
	if err != nil {
		return fmt.Errorf("load phones: %w", err)
	}

	s.phones = phones
	slog.Debug("Phones loaded", "count", len(phones))

	if s.onUpdate != nil {
		s.onUpdate(s.Phones())
	}
	return nil
}

// Phones returns a copy of the rows from the last Load
func (s *Service) Phones() []model.Phone {
	out := make([]model.Phone, len(s.phones))
	copy(out, s.phones)
	return out
}

// Mode reports whether a row is selected
func (s *Service) Mode() model.Mode {
	if s.selected != nil {
		return model.ModeEdit
	}
	return model.ModeCreate
}

// Select makes the row at index the edit target and returns its record
func (s *Service) Select(row int) (model.Phone, error) {
	if row < 0 || row >= len(s.phones) {
		return model.Phone{}, fmt.Errorf("%w: %d", model.ErrRowOutOfRange, row)
	}

	phone := s.phones[row]
	s.selected = &phone
	slog.Debug("Phone selected", "row", row, "id", phone.ID)
	return phone, nil
}

// Selected returns the current edit target, if any
func (s *Service) Selected() (model.Phone, bool) {
	if s.selected == nil {
		return model.Phone{}, false
	}
	return *s.selected, true
}

// ClearSelection returns to create mode
func (s *Service) ClearSelection() {
	s.selected = nil
}

// Add validates fields and inserts a new record
func (s *Service) Add(ctx context.Context, fields model.PhoneFields) (model.Phone, error) {
	log := slog.With("op", uuid.NewString(), "action", "add")

	phone, err := fields.Parse()
	if err != nil {
		log.Info("Add rejected", "error", err)
		return model.Phone{}, err
	}

	if err := s.store.Insert(ctx, &phone); err != nil {
		log.Error("Insert failed", "error", err)
		return model.Phone{}, fmt.Errorf("add phone: %w", err)
	}
	log.Info("Phone added", "id", phone.ID, "phone", phone.GetDisplayName())

	return phone, s.afterMutation(ctx)
}

// Update validates fields and overwrites the selected record
func (s *Service) Update(ctx context.Context, fields model.PhoneFields) (model.Phone, error) {
	log := slog.With("op", uuid.NewString(), "action", "update")

	if !s.Mode().CanModify() {
		log.Info("Update rejected", "error", model.ErrNoSelection)
		return model.Phone{}, model.ErrNoSelection
	}
	target := *s.selected

	phone, err := fields.Parse()
	if err != nil {
		log.Info("Update rejected", "id", target.ID, "error", err)
		return model.Phone{}, err
	}
	phone.ID = target.ID

	if err := s.store.Update(ctx, phone); err != nil {
		log.Error("Update failed", "id", phone.ID, "error", err)
		return model.Phone{}, fmt.Errorf("update phone %d: %w", phone.ID, err)
	}
	log.Info("Phone updated", "id", phone.ID, "phone", phone.GetDisplayName())

	return phone, s.afterMutation(ctx)
}

// Delete removes the selected record
func (s *Service) Delete(ctx context.Context) (model.Phone, error) {
	log := slog.With("op", uuid.NewString(), "action", "delete")

	if !s.Mode().CanModify() {
		log.Info("Delete rejected", "error", model.ErrNoSelection)
		return model.Phone{}, model.ErrNoSelection
	}
	target := *s.selected

	if err := s.store.Delete(ctx, target.ID); err != nil {
		log.Error("Delete failed", "id", target.ID, "error", err)
		return model.Phone{}, fmt.Errorf("delete phone %d: %w", target.ID, err)
	}
	log.Info("Phone deleted", "id", target.ID, "phone", target.GetDisplayName())

	return target, s.afterMutation(ctx)
}

// afterMutation drops the selection and reloads the list
func (s *Service) afterMutation(ctx context.Context) error {
	s.selected = nil
	if err := s.Load(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrReloadFailed, err)
	}
	return nil
}
