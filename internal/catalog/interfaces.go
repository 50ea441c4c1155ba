package catalog

import (
	"context"

	"github.com/ytget/phone-specs/internal/model"
)

// Manager defines the interface the UI uses to drive the phone catalog.
type Manager interface {
	// SetUpdateCallback registers a function called with the fresh rows after every reload
	SetUpdateCallback(func([]model.Phone))

	// Load re-reads all rows from storage
	Load(ctx context.Context) error
	Phones() []model.Phone

	Mode() model.Mode
	Select(row int) (model.Phone, error)
	Selected() (model.Phone, bool)
	ClearSelection()

	Add(ctx context.Context, fields model.PhoneFields) (model.Phone, error)
	Update(ctx context.Context, fields model.PhoneFields) (model.Phone, error)
	Delete(ctx context.Context) (model.Phone, error)
}
