package config

import (
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/phone-specs/internal/platform"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDatabasePath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	path := settings.GetDatabasePath()
	if filepath.Base(path) != platform.DefaultDBName {
		t.Errorf("Expected default database file %s, got %s", platform.DefaultDBName, path)
	}

	// Test setting custom value
	customPath := "/custom/data/phones.db"
	settings.SetDatabasePath(customPath)

	retrievedPath := settings.GetDatabasePath()
	if retrievedPath != customPath {
		t.Errorf("Expected database path %s, got %s", customPath, retrievedPath)
	}
}

func TestStorageBackend(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	backend := settings.GetStorageBackend()
	if backend != DefaultStorageBackend {
		t.Errorf("Expected default backend %s, got %s", DefaultStorageBackend, backend)
	}

	// Test setting custom value
	settings.SetStorageBackend(BackendGORM)
	if settings.GetStorageBackend() != BackendGORM {
		t.Errorf("Expected backend %s, got %s", BackendGORM, settings.GetStorageBackend())
	}

	// Unknown values fall back to the default
	settings.SetStorageBackend("postgres")
	if settings.GetStorageBackend() != DefaultStorageBackend {
		t.Errorf("Unknown backend should reset to %s, got %s", DefaultStorageBackend, settings.GetStorageBackend())
	}

	app.Preferences().SetString(KeyStorageBackend, "bogus")
	if settings.GetStorageBackend() != DefaultStorageBackend {
		t.Errorf("Stored unknown backend should read as %s", DefaultStorageBackend)
	}
}

func TestGetStorageBackendOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetStorageBackendOptions()
	expectedOptions := []StorageBackend{BackendSQL, BackendGORM}

	if len(options) != len(expectedOptions) {
		t.Fatalf("Expected %d backend options, got %d", len(expectedOptions), len(options))
	}

	for i, expected := range expectedOptions {
		if options[i] != expected {
			t.Errorf("Backend option %d: expected %s, got %s", i, expected, options[i])
		}
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestShowSuccessMessages(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetShowSuccessMessages() != DefaultShowSuccessMessages {
		t.Errorf("Expected default %v", DefaultShowSuccessMessages)
	}

	settings.SetShowSuccessMessages(false)
	if settings.GetShowSuccessMessages() {
		t.Error("Expected success messages to be disabled")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}

func TestLogLevel(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if level := settings.GetLogLevel(); level != DefaultLogLevel {
		t.Errorf("Expected default log level %s, got %s", DefaultLogLevel, level)
	}

	settings.SetLogLevel("debug")
	if level := settings.GetLogLevel(); level != "debug" {
		t.Errorf("Expected log level debug, got %s", level)
	}

	options := settings.GetLogLevelOptions()
	found := false
	for _, option := range options {
		if option == DefaultLogLevel {
			found = true
		}
	}
	if !found {
		t.Errorf("Default log level %s missing from options %v", DefaultLogLevel, options)
	}
}
