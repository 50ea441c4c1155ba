package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/phone-specs/internal/model"
)

// columnKeys are the header localization keys, indexed by column
var columnKeys = [ColumnCount]string{KeyID, KeyBrand, KeyModel, KeyPrice, KeyOS, KeyRAM}

// PhoneTable renders the loaded phones, one row per record
type PhoneTable struct {
	table        *widget.Table
	phones       []model.Phone
	localization *Localization
	onSelected   func(row int)
}

// NewPhoneTable creates an empty table with a header row
func NewPhoneTable(l *Localization) *PhoneTable {
	pt := &PhoneTable{localization: l}

	pt.table = widget.NewTable(
		func() (int, int) {
			return len(pt.phones), ColumnCount
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			if label, ok := obj.(*widget.Label); ok {
				label.SetText(pt.CellText(id.Row, id.Col))
			}
		},
	)

	pt.table.ShowHeaderRow = true
	pt.table.CreateHeader = func() fyne.CanvasObject {
		label := widget.NewLabel("")
		label.TextStyle = fyne.TextStyle{Bold: true}
		return label
	}
	pt.table.UpdateHeader = func(id widget.TableCellID, obj fyne.CanvasObject) {
		if label, ok := obj.(*widget.Label); ok {
			label.SetText(pt.HeaderText(id.Col))
		}
	}

	pt.table.OnSelected = func(id widget.TableCellID) {
		if pt.onSelected != nil {
			pt.onSelected(id.Row)
		}
	}

	pt.table.SetColumnWidth(ColumnID, IDColumnWidth)
	pt.table.SetColumnWidth(ColumnBrand, TextColumnWidth)
	pt.table.SetColumnWidth(ColumnModel, TextColumnWidth)
	pt.table.SetColumnWidth(ColumnPrice, PriceColumnWidth)
	pt.table.SetColumnWidth(ColumnOS, TextColumnWidth)
	pt.table.SetColumnWidth(ColumnRAM, TextColumnWidth)

	return pt
}

// Widget returns the underlying table
func (pt *PhoneTable) Widget() fyne.CanvasObject {
	return pt.table
}

// SetOnSelected sets the callback for a row click
func (pt *PhoneTable) SetOnSelected(callback func(row int)) {
	pt.onSelected = callback
}

// SetPhones replaces every displayed row
func (pt *PhoneTable) SetPhones(phones []model.Phone) {
	pt.phones = phones
	pt.table.Refresh()
}

// RowCount returns the number of displayed rows
func (pt *PhoneTable) RowCount() int {
	return len(pt.phones)
}

// UnselectAll drops the highlighted cell
func (pt *PhoneTable) UnselectAll() {
	pt.table.UnselectAll()
}

// HeaderText returns the localized title of a column
func (pt *PhoneTable) HeaderText(col int) string {
	if col < 0 || col >= ColumnCount {
		return ""
	}
	return pt.localization.GetText(columnKeys[col])
}

// CellText returns the display text of one cell
func (pt *PhoneTable) CellText(row, col int) string {
	if row < 0 || row >= len(pt.phones) {
		return ""
	}

	phone := pt.phones[row]
	switch col {
	case ColumnID:
		return strconv.FormatInt(phone.ID, 10)
	case ColumnBrand:
		return phone.Brand
	case ColumnModel:
		return phone.Model
	case ColumnPrice:
		return formatPrice(pt.localization.GetCurrentLanguage(), phone.Price)
	case ColumnOS:
		return phone.OS
	case ColumnRAM:
		return phone.RAM
	default:
		return ""
	}
}
