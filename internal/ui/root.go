package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/phone-specs/internal/catalog"
	"github.com/ytget/phone-specs/internal/config"
	"github.com/ytget/phone-specs/internal/model"
	"github.com/ytget/phone-specs/internal/platform"
)

// MessageKind distinguishes feedback dialogs
type MessageKind int

const (
	MessageInfo MessageKind = iota
	MessageError
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	catalog      catalog.Manager
	settings     *config.Settings
	localization *Localization
	databasePath string

	form      *PhoneForm
	table     *PhoneTable
	modeLabel *widget.Label

	addBtn    *widget.Button
	updateBtn *widget.Button
	deleteBtn *widget.Button
	clearBtn  *widget.Button

	// showMessage presents modal feedback; replaced in tests
	showMessage func(kind MessageKind, title, message string)
}

// NewRootUI creates and initializes the main UI and loads the phone list
func NewRootUI(window fyne.Window, catalogSvc catalog.Manager, settings *config.Settings, databasePath string) *RootUI {
	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		catalog:      catalogSvc,
		settings:     settings,
		localization: localization,
		databasePath: databasePath,
	}
	ui.showMessage = ui.showDialog

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Every reload in the catalog re-renders the table
	ui.catalog.SetUpdateCallback(ui.onPhonesReloaded)

	ui.setupUI()
	ui.reload()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.form = NewPhoneForm(ui.localization)
	ui.form.SetOnSubmit(ui.onSubmit)

	ui.modeLabel = widget.NewLabel("")
	ui.modeLabel.TextStyle = fyne.TextStyle{Italic: true}

	ui.addBtn = widget.NewButton(ui.localization.GetText(KeyAddPhone), ui.onAddClick)
	ui.addBtn.Importance = widget.HighImportance
	ui.updateBtn = widget.NewButton(ui.localization.GetText(KeyUpdatePhone), ui.onUpdateClick)
	ui.deleteBtn = widget.NewButton(ui.localization.GetText(KeyDeletePhone), ui.onDeleteClick)
	ui.deleteBtn.Importance = widget.DangerImportance
	ui.clearBtn = widget.NewButton(ui.localization.GetText(KeyClearFields), ui.onClearClick)

	buttons := container.NewCenter(container.NewHBox(ui.addBtn, ui.updateBtn, ui.deleteBtn, ui.clearBtn))

	ui.table = NewPhoneTable(ui.localization)
	ui.table.SetOnSelected(ui.onRowSelected)

	top := container.NewVBox(
		container.NewPadded(ui.form.Container()),
		ui.modeLabel,
		buttons,
		widget.NewSeparator(),
	)

	content := container.NewBorder(
		top,                                    // top
		nil,                                    // bottom
		nil,                                    // left
		nil,                                    // right
		container.NewPadded(ui.table.Widget()), // center - phone list
	)

	ui.window.SetContent(content)
	ui.updateModeLabel()

	slog.Debug("UI setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	showDBItem := fyne.NewMenuItem(ui.localization.GetText(KeyShowDatabase), ui.onShowDatabase)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem, showDBItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.form.RefreshTexts(ui.localization)
	ui.addBtn.SetText(ui.localization.GetText(KeyAddPhone))
	ui.updateBtn.SetText(ui.localization.GetText(KeyUpdatePhone))
	ui.deleteBtn.SetText(ui.localization.GetText(KeyDeletePhone))
	ui.clearBtn.SetText(ui.localization.GetText(KeyClearFields))
	ui.updateModeLabel()

	// Headers and price formatting depend on the language
	ui.table.table.Refresh()
}

// reload re-reads the phone list from storage
func (ui *RootUI) reload() {
	if err := ui.catalog.Load(context.Background()); err != nil {
		ui.reportError(err)
	}
}

// onPhonesReloaded re-renders the table after the catalog reloaded
func (ui *RootUI) onPhonesReloaded(phones []model.Phone) {
	slog.Debug("Rendering phones", "count", len(phones))
	ui.table.SetPhones(phones)
}

// onRowSelected copies the clicked row into the form for editing
func (ui *RootUI) onRowSelected(row int) {
	phone, err := ui.catalog.Select(row)
	if err != nil {
		slog.Warn("Ignoring selection", "row", row, "error", err)
		return
	}

	ui.form.SetFields(model.FieldsFromPhone(phone))
	ui.updateModeLabel()
}

// onSubmit handles Enter in the form: update in edit mode, add otherwise
func (ui *RootUI) onSubmit() {
	if ui.catalog.Mode() == model.ModeEdit {
		ui.onUpdateClick()
		return
	}
	ui.onAddClick()
}

// onAddClick handles the Add Phone button
func (ui *RootUI) onAddClick() {
	_, err := ui.catalog.Add(context.Background(), ui.form.Fields())
	ui.finishMutation(err, KeyPhoneAdded)
}

// onUpdateClick handles the Update Phone button
func (ui *RootUI) onUpdateClick() {
	_, err := ui.catalog.Update(context.Background(), ui.form.Fields())
	ui.finishMutation(err, KeyPhoneUpdated)
}

// onDeleteClick handles the Delete Phone button
func (ui *RootUI) onDeleteClick() {
	_, err := ui.catalog.Delete(context.Background())
	ui.finishMutation(err, KeyPhoneDeleted)
}

// finishMutation resets the form once a write reached storage and reports
// the outcome. Rejected input stays in the form for correction.
func (ui *RootUI) finishMutation(err error, successKey string) {
	switch {
	case err == nil:
		ui.resetForm()
		ui.reportSuccess(successKey)
	case errors.Is(err, catalog.ErrReloadFailed):
		ui.resetForm()
		ui.reportError(err)
	default:
		ui.reportError(err)
	}
}

// onClearClick empties the form and returns to create mode
func (ui *RootUI) onClearClick() {
	ui.catalog.ClearSelection()
	ui.resetForm()
}

// resetForm clears entries and the highlighted row
func (ui *RootUI) resetForm() {
	ui.form.Clear()
	ui.table.UnselectAll()
	ui.updateModeLabel()
}

// updateModeLabel shows whether Add creates or a row is being edited
func (ui *RootUI) updateModeLabel() {
	if phone, ok := ui.catalog.Selected(); ok {
		ui.modeLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyModeEdit), phone.ID))
		return
	}
	ui.modeLabel.SetText(ui.localization.GetText(KeyModeCreate))
}

// errorText maps an error to the message shown to the user
func (ui *RootUI) errorText(err error) string {
	switch {
	case errors.Is(err, model.ErrMissingField):
		return ui.localization.GetText(KeyAllFieldsRequired)
	case errors.Is(err, model.ErrInvalidPrice):
		return ui.localization.GetText(KeyInvalidPrice)
	case errors.Is(err, model.ErrNoSelection):
		return ui.localization.GetText(KeyNoPhoneSelected)
	default:
		return ui.localization.GetText(KeyDatabaseError) + ": " + err.Error()
	}
}

// reportError shows an error dialog; storage failures are also logged
func (ui *RootUI) reportError(err error) {
	if !errors.Is(err, model.ErrMissingField) &&
		!errors.Is(err, model.ErrInvalidPrice) &&
		!errors.Is(err, model.ErrNoSelection) {
		slog.Error("Storage operation failed", "error", err)
	}
	ui.showMessage(MessageError, ui.localization.GetText(KeyError), ui.errorText(err))
}

// reportSuccess confirms a change unless disabled in settings
func (ui *RootUI) reportSuccess(key string) {
	if !ui.settings.GetShowSuccessMessages() {
		return
	}
	ui.showMessage(MessageInfo, ui.localization.GetText(KeySuccess), ui.localization.GetText(key))
}

// showDialog presents a modal dialog over the main window
func (ui *RootUI) showDialog(kind MessageKind, title, message string) {
	if kind == MessageError {
		dialog.ShowError(errors.New(message), ui.window)
		return
	}
	dialog.ShowInformation(title, message, ui.window)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	sd := NewSettingsDialog(ui.settings, ui.localization, ui.window)
	sd.SetOnSaved(ui.onSettingsSaved)
	sd.Show()
}

// onSettingsSaved applies the settings that can change without a restart
func (ui *RootUI) onSettingsSaved(restartNeeded bool) {
	if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
		ui.onLanguageChange(lang)
	}

	message := ui.localization.GetText(KeySettingsSaved)
	if restartNeeded {
		message += "\n" + ui.localization.GetText(KeyRestartRequired)
	}
	ui.showMessage(MessageInfo, ui.localization.GetText(KeySettings), message)
}

// onShowDatabase reveals the database file in the system file manager
func (ui *RootUI) onShowDatabase() {
	slog.Info("Revealing database file", "path", ui.databasePath)
	if err := platform.OpenFileInManager(ui.databasePath); err != nil {
		slog.Error("Error revealing database file", "path", ui.databasePath, "error", err)
		ui.showMessage(MessageError, ui.localization.GetText(KeyError), err.Error())
	}
}
