package main

import (
	"context"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/phone-specs/internal/catalog"
	"github.com/ytget/phone-specs/internal/config"
	"github.com/ytget/phone-specs/internal/logging"
	"github.com/ytget/phone-specs/internal/storage"
	"github.com/ytget/phone-specs/internal/storage/gormstore"
	"github.com/ytget/phone-specs/internal/storage/sqlite"
	"github.com/ytget/phone-specs/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.phone-specs"
	AppName = "Phone Specs"
)

func main() {
	logging.Setup()

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Initialize services
	settings := config.NewSettings(myApp)
	logging.SetupWithLevel(logging.LevelFromString(settings.GetLogLevel()))
	slog.Info("Starting", "app", AppName, "version", version)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	// NewRootUI sets the localized title
	myWindow := myApp.NewWindow("")
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	dbPath := settings.GetDatabasePath()
	backend := settings.GetStorageBackend()

	store, err := openStore(backend, dbPath)
	if err != nil {
		slog.Error("Failed to open database", "path", dbPath, "backend", backend, "error", err)
		os.Exit(1)
	}

	// A failure here surfaces again as an error dialog on the first load
	if err := store.CreateTable(context.Background()); err != nil {
		slog.Error("Failed to create table", "path", dbPath, "error", err)
	}

	catalogSvc := catalog.NewService(store)

	// Create and setup UI
	ui.NewRootUI(myWindow, catalogSvc, settings, dbPath)

	// Show and run
	myWindow.ShowAndRun()
}

// openStore returns the storage implementation selected in settings
func openStore(backend config.StorageBackend, dbPath string) (storage.Store, error) {
	slog.Info("Opening database", "path", dbPath, "backend", backend)

	switch backend {
	case config.BackendGORM:
		return gormstore.New(dbPath)
	default:
		return sqlite.New(dbPath)
	}
}
