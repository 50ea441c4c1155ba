package config

import (
	"fyne.io/fyne/v2"
	"github.com/ytget/phone-specs/internal/platform"
)

// StorageBackend selects the storage.Store implementation
type StorageBackend string

const (
	BackendSQL  StorageBackend = "sql"
	BackendGORM StorageBackend = "gorm"
)

// Settings keys for Fyne preferences
const (
	KeyDatabasePath        = "database_path"
	KeyStorageBackend      = "storage_backend"
	KeyLanguage            = "app_language"
	KeyShowSuccessMessages = "show_success_messages"
	KeyLogLevel            = "log_level"
)

// Default values
const (
	DefaultStorageBackend      = BackendSQL
	DefaultLanguage            = "system"
	DefaultShowSuccessMessages = true
	DefaultLogLevel            = "info"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDatabasePath returns the configured SQLite file
func (s *Settings) GetDatabasePath() string {
	path := s.app.Preferences().String(KeyDatabasePath)
	if path == "" {
		defaultPath := platform.DefaultDatabasePath()
		s.SetDatabasePath(defaultPath)
		return defaultPath
	}
	return path
}

// SetDatabasePath sets the SQLite file used on next start
func (s *Settings) SetDatabasePath(path string) {
	s.app.Preferences().SetString(KeyDatabasePath, path)
}

// GetStorageBackend returns the configured storage backend
func (s *Settings) GetStorageBackend() StorageBackend {
	backend := StorageBackend(s.app.Preferences().String(KeyStorageBackend))
	if !backend.IsValid() {
		s.SetStorageBackend(DefaultStorageBackend)
		return DefaultStorageBackend
	}
	return backend
}

// SetStorageBackend sets the storage backend; unknown values reset to the default
func (s *Settings) SetStorageBackend(backend StorageBackend) {
	if !backend.IsValid() {
		backend = DefaultStorageBackend
	}
	s.app.Preferences().SetString(KeyStorageBackend, string(backend))
}

// GetStorageBackendOptions returns available storage backends
func (s *Settings) GetStorageBackendOptions() []StorageBackend {
	return []StorageBackend{BackendSQL, BackendGORM}
}

// IsValid reports whether b names a known backend
func (b StorageBackend) IsValid() bool {
	return b == BackendSQL || b == BackendGORM
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetShowSuccessMessages returns whether to confirm successful changes with a dialog
func (s *Settings) GetShowSuccessMessages() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowSuccessMessages, DefaultShowSuccessMessages)
}

// SetShowSuccessMessages sets whether to confirm successful changes with a dialog
func (s *Settings) SetShowSuccessMessages(show bool) {
	s.app.Preferences().SetBool(KeyShowSuccessMessages, show)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetLogLevel returns the configured log level name
func (s *Settings) GetLogLevel() string {
	return s.app.Preferences().StringWithFallback(KeyLogLevel, DefaultLogLevel)
}

// SetLogLevel sets the log level applied on next start
func (s *Settings) SetLogLevel(level string) {
	s.app.Preferences().SetString(KeyLogLevel, level)
}

// GetLogLevelOptions returns the accepted log level names
func (s *Settings) GetLogLevelOptions() []string {
	return []string{"debug", "info", "warn", "error"}
}
