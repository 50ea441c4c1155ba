package ui

import (
	"testing"

	"fyne.io/fyne/v2/theme"
)

func TestCompactTheme_Colors(t *testing.T) {
	th := NewCompactTheme()

	if th.Color(theme.ColorNamePrimary, theme.VariantLight) != AccentColor {
		t.Error("Primary color should be the accent color")
	}
	if th.Color(theme.ColorNameBackground, theme.VariantLight) != AccentColor {
		t.Error("Light background should be the accent color")
	}
	if th.Color(theme.ColorNameBackground, theme.VariantDark) == AccentColor {
		t.Error("Dark background should not be the accent color")
	}
}

func TestCompactTheme_Sizes(t *testing.T) {
	th := NewCompactTheme()

	if th.Size(theme.SizeNameText) >= theme.DefaultTheme().Size(theme.SizeNameText) {
		t.Error("Compact text should be smaller than default")
	}
	if th.Size(theme.SizeNameInlineIcon) != theme.DefaultTheme().Size(theme.SizeNameInlineIcon) {
		t.Error("Unlisted sizes should fall back to the default theme")
	}
}

func TestCompactTheme_Fallbacks(t *testing.T) {
	th := NewCompactTheme()

	if th.Color(theme.ColorNameInputBackground, theme.VariantLight) == AccentColor {
		t.Error("Light input background should differ from the window background")
	}
	dark := theme.VariantDark
	if th.Color(theme.ColorNameInputBackground, dark) != theme.DefaultTheme().Color(theme.ColorNameInputBackground, dark) {
		t.Error("Dark input background should fall back to the default theme")
	}
	if th.Color(theme.ColorNamePrimary, dark) != AccentColor {
		t.Error("Primary color should be the accent color in dark mode too")
	}
}
