package ui

import (
	"path/filepath"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/phone-specs/internal/config"
	"github.com/ytget/phone-specs/internal/platform"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func(restartNeeded bool)

	// UI components
	databasePathEntry *widget.Entry
	backendSelect     *widget.Select
	logLevelSelect    *widget.Select
	languageSelect    *widget.Select
	successCheck      *widget.Check
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// SetOnSaved sets the callback run after settings were stored
func (sd *SettingsDialog) SetOnSaved(callback func(restartNeeded bool)) {
	sd.onSaved = callback
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	// Database file selection
	sd.databasePathEntry = widget.NewEntry()
	sd.databasePathEntry.SetPlaceHolder(platform.DefaultDatabasePath())

	browseBtn := widget.NewButton(IconFolder+" "+l.GetText(KeyBrowse), sd.onBrowseDirectory)
	databaseRow := container.NewBorder(nil, nil, nil, browseBtn, sd.databasePathEntry)

	// Storage backend selection
	backendOptions := []string{}
	for _, backend := range sd.settings.GetStorageBackendOptions() {
		backendOptions = append(backendOptions, string(backend))
	}
	sd.backendSelect = widget.NewSelect(backendOptions, nil)

	sd.logLevelSelect = widget.NewSelect(sd.settings.GetLogLevelOptions(), nil)

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = IconLanguage

	sd.successCheck = widget.NewCheck(l.GetText(KeyShowSuccessMessages), nil)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyDatabasePath)+":"),
		databaseRow,

		widget.NewLabel(l.GetText(KeyStorageBackend)+":"),
		sd.backendSelect,

		widget.NewLabel(l.GetText(KeyLogLevel)+":"),
		sd.logLevelSelect,

		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		sd.successCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		IconSettings+" "+l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogW, SettingsDialogH))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.databasePathEntry.SetText(sd.settings.GetDatabasePath())
	sd.backendSelect.SetSelected(string(sd.settings.GetStorageBackend()))
	sd.logLevelSelect.SetSelected(sd.settings.GetLogLevel())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.successCheck.SetChecked(sd.settings.GetShowSuccessMessages())
}

// onBrowseDirectory picks the folder that holds the database file
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.databasePathEntry.SetText(filepath.Join(uri.Path(), platform.DefaultDBName))
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	restartNeeded := false

	// Save database path
	if path := sd.databasePathEntry.Text; path != "" && path != sd.settings.GetDatabasePath() {
		sd.settings.SetDatabasePath(path)
		restartNeeded = true
	}

	// Save storage backend
	if selected := config.StorageBackend(sd.backendSelect.Selected); selected != "" && selected != sd.settings.GetStorageBackend() {
		sd.settings.SetStorageBackend(selected)
		restartNeeded = true
	}

	// Save log level
	if level := sd.logLevelSelect.Selected; level != "" && level != sd.settings.GetLogLevel() {
		sd.settings.SetLogLevel(level)
		restartNeeded = true
	}

	// Save language
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	sd.settings.SetShowSuccessMessages(sd.successCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved(restartNeeded)
	}
}
