package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/phone-specs/internal/model"
)

func TestPhoneTable_CellText(t *testing.T) {
	test.NewApp()
	pt := NewPhoneTable(NewLocalization())

	pt.SetPhones([]model.Phone{
		{ID: 1, Brand: "Acme", Model: "X1", Price: 199.99, OS: "AndroidOS", RAM: "4GB"},
	})

	if pt.RowCount() != 1 {
		t.Fatalf("Expected 1 row, got %d", pt.RowCount())
	}

	expected := []string{"1", "Acme", "X1", "199.99", "AndroidOS", "4GB"}
	for col, want := range expected {
		if got := pt.CellText(0, col); got != want {
			t.Errorf("CellText(0, %d) = %q, expected %q", col, got, want)
		}
	}

	if got := pt.CellText(1, ColumnBrand); got != "" {
		t.Errorf("Out of range row should be empty, got %q", got)
	}
	if got := pt.CellText(0, ColumnCount); got != "" {
		t.Errorf("Out of range column should be empty, got %q", got)
	}
}

func TestPhoneTable_HeaderText(t *testing.T) {
	test.NewApp()
	l := NewLocalization()
	pt := NewPhoneTable(l)

	expected := []string{"ID", "Brand", "Model", "Price", "OS", "RAM"}
	for col, want := range expected {
		if got := pt.HeaderText(col); got != want {
			t.Errorf("HeaderText(%d) = %q, expected %q", col, got, want)
		}
	}

	l.SetLanguage("pt")
	if got := pt.HeaderText(ColumnBrand); got != "Marca" {
		t.Errorf("Expected Portuguese header, got %q", got)
	}
	if got := pt.HeaderText(-1); got != "" {
		t.Errorf("Invalid column should be empty, got %q", got)
	}
}

func TestPhoneTable_SetPhonesReplacesRows(t *testing.T) {
	test.NewApp()
	pt := NewPhoneTable(NewLocalization())

	pt.SetPhones([]model.Phone{{ID: 1}, {ID: 2}})
	pt.SetPhones([]model.Phone{{ID: 3}})

	if pt.RowCount() != 1 || pt.CellText(0, ColumnID) != "3" {
		t.Errorf("Expected only row 3 after reload, got %d rows", pt.RowCount())
	}

	pt.SetPhones(nil)
	if pt.RowCount() != 0 {
		t.Errorf("Expected empty table, got %d rows", pt.RowCount())
	}
}
