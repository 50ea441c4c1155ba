package ui

import (
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/phone-specs/internal/config"
)

func newTestSettingsDialog(t *testing.T) (*SettingsDialog, *config.Settings) {
	t.Helper()

	app := test.NewApp()
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	settings := config.NewSettings(app)
	settings.SetDatabasePath(filepath.Join(t.TempDir(), "phones.db"))
	settings.SetStorageBackend(config.BackendSQL)
	settings.SetLanguage("en")

	l := NewLocalization()
	l.SetLanguage("en")

	sd := NewSettingsDialog(settings, l, window)
	sd.loadCurrentSettings()
	return sd, settings
}

func TestSettingsDialogLoadsCurrentSettings(t *testing.T) {
	sd, settings := newTestSettingsDialog(t)

	assert.Equal(t, settings.GetDatabasePath(), sd.databasePathEntry.Text)
	assert.Equal(t, "sql", sd.backendSelect.Selected)
	assert.Equal(t, "en", sd.languageSelect.Selected)
	assert.True(t, sd.successCheck.Checked)
	assert.Equal(t, "info", sd.logLevelSelect.Selected)
	assert.Equal(t, []string{"sql", "gorm"}, sd.backendSelect.Options)
	assert.Equal(t, []string{"en", "pt", "ru", "system"}, sd.languageSelect.Options)
}

func TestSettingsDialogSaveWithoutStorageChange(t *testing.T) {
	sd, settings := newTestSettingsDialog(t)

	var saved, restart bool
	sd.SetOnSaved(func(restartNeeded bool) {
		saved = true
		restart = restartNeeded
	})

	sd.languageSelect.SetSelected("pt")
	sd.successCheck.SetChecked(false)
	sd.onSave(true)

	require.True(t, saved)
	assert.False(t, restart)
	assert.Equal(t, "pt", settings.GetLanguage())
	assert.False(t, settings.GetShowSuccessMessages())
}

func TestSettingsDialogStorageChangeNeedsRestart(t *testing.T) {
	tests := []struct {
		name   string
		modify func(sd *SettingsDialog, dir string)
		check  func(t *testing.T, s *config.Settings, dir string)
	}{
		{
			name: "database path",
			modify: func(sd *SettingsDialog, dir string) {
				sd.databasePathEntry.SetText(filepath.Join(dir, "other.db"))
			},
			check: func(t *testing.T, s *config.Settings, dir string) {
				assert.Equal(t, filepath.Join(dir, "other.db"), s.GetDatabasePath())
			},
		},
		{
			name: "log level",
			modify: func(sd *SettingsDialog, _ string) {
				sd.logLevelSelect.SetSelected("debug")
			},
			check: func(t *testing.T, s *config.Settings, _ string) {
				assert.Equal(t, "debug", s.GetLogLevel())
			},
		},
		{
			name: "backend",
			modify: func(sd *SettingsDialog, _ string) {
				sd.backendSelect.SetSelected("gorm")
			},
			check: func(t *testing.T, s *config.Settings, _ string) {
				assert.Equal(t, config.BackendGORM, s.GetStorageBackend())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sd, settings := newTestSettingsDialog(t)
			dir := t.TempDir()

			restart := false
			sd.SetOnSaved(func(restartNeeded bool) {
				restart = restartNeeded
			})

			tt.modify(sd, dir)
			sd.onSave(true)

			assert.True(t, restart)
			tt.check(t, settings, dir)
		})
	}
}

func TestSettingsDialogCancel(t *testing.T) {
	sd, settings := newTestSettingsDialog(t)
	before := settings.GetDatabasePath()

	called := false
	sd.SetOnSaved(func(bool) { called = true })

	sd.databasePathEntry.SetText("/elsewhere/phones.db")
	sd.languageSelect.SetSelected("ru")
	sd.onSave(false)

	assert.False(t, called)
	assert.Equal(t, before, settings.GetDatabasePath())
	assert.Equal(t, "en", settings.GetLanguage())
}

func TestSettingsDialogIgnoresEmptyPath(t *testing.T) {
	sd, settings := newTestSettingsDialog(t)
	before := settings.GetDatabasePath()

	restart := true
	sd.SetOnSaved(func(restartNeeded bool) { restart = restartNeeded })

	sd.databasePathEntry.SetText("")
	sd.onSave(true)

	assert.False(t, restart)
	assert.Equal(t, before, settings.GetDatabasePath())
}
