package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/phone-specs/internal/model"
)

// formFieldKeys lists the localization keys of the form rows, in display order
var formFieldKeys = []string{KeyBrand, KeyModel, KeyPrice, KeyOS, KeyRAM}

// PhoneForm holds the five text entries of a phone record
type PhoneForm struct {
	brandEntry *widget.Entry
	modelEntry *widget.Entry
	priceEntry *widget.Entry
	osEntry    *widget.Entry
	ramEntry   *widget.Entry

	labels    []*widget.Label
	container *fyne.Container
}

// NewPhoneForm creates the form with labels from l
func NewPhoneForm(l *Localization) *PhoneForm {
	f := &PhoneForm{
		brandEntry: widget.NewEntry(),
		modelEntry: widget.NewEntry(),
		priceEntry: widget.NewEntry(),
		osEntry:    widget.NewEntry(),
		ramEntry:   widget.NewEntry(),
	}

	objects := make([]fyne.CanvasObject, 0, 2*len(formFieldKeys))
	for i, entry := range f.entries() {
		label := widget.NewLabel(l.GetText(formFieldKeys[i]))
		f.labels = append(f.labels, label)
		objects = append(objects, label, entry)
	}
	f.container = container.New(layout.NewFormLayout(), objects...)

	return f
}

func (f *PhoneForm) entries() []*widget.Entry {
	return []*widget.Entry{f.brandEntry, f.modelEntry, f.priceEntry, f.osEntry, f.ramEntry}
}

// Container returns the form's canvas object
func (f *PhoneForm) Container() fyne.CanvasObject {
	return f.container
}

// Fields returns the current text of every entry
func (f *PhoneForm) Fields() model.PhoneFields {
	return model.PhoneFields{
		Brand: f.brandEntry.Text,
		Model: f.modelEntry.Text,
		Price: f.priceEntry.Text,
		OS:    f.osEntry.Text,
		RAM:   f.ramEntry.Text,
	}
}

// SetFields replaces the text of every entry
func (f *PhoneForm) SetFields(fields model.PhoneFields) {
	f.brandEntry.SetText(fields.Brand)
	f.modelEntry.SetText(fields.Model)
	f.priceEntry.SetText(fields.Price)
	f.osEntry.SetText(fields.OS)
	f.ramEntry.SetText(fields.RAM)
}

// Clear empties every entry
func (f *PhoneForm) Clear() {
	f.SetFields(model.PhoneFields{})
}

// SetOnSubmit sets the action for pressing Enter in any entry
func (f *PhoneForm) SetOnSubmit(submit func()) {
	for _, entry := range f.entries() {
		entry.OnSubmitted = func(string) {
			submit()
		}
	}
}

// RefreshTexts updates labels after a language change
func (f *PhoneForm) RefreshTexts(l *Localization) {
	for i, label := range f.labels {
		label.SetText(l.GetText(formFieldKeys[i]))
	}
}
