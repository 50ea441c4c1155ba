package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// AccentColor is the orange used for the window background and primary actions (#eb984e)
var AccentColor = color.RGBA{R: 235, G: 152, B: 78, A: 255}

// lightColors override the default palette in the light variant
var lightColors = map[fyne.ThemeColorName]color.Color{
	theme.ColorNamePrimary:         AccentColor,
	theme.ColorNameBackground:      AccentColor,
	theme.ColorNameInputBackground: color.RGBA{R: 253, G: 235, B: 208, A: 255}, // pale orange
	theme.ColorNameForeground:      color.RGBA{R: 33, G: 33, B: 33, A: 255},
	theme.ColorNameError:           color.RGBA{R: 183, G: 28, B: 28, A: 255},
}

// darkColors keep the accent for actions only; the form stays readable on dark gray
var darkColors = map[fyne.ThemeColorName]color.Color{
	theme.ColorNamePrimary:    AccentColor,
	theme.ColorNameBackground: color.RGBA{R: 18, G: 18, B: 18, A: 255},
	theme.ColorNameForeground: color.White,
	theme.ColorNameError:      color.RGBA{R: 239, G: 83, B: 80, A: 255},
}

// compactSizes shrink padding and text so the form and table fit 800x600
var compactSizes = map[fyne.ThemeSizeName]float32{
	theme.SizeNamePadding:         3,
	theme.SizeNameInnerPadding:    6,
	theme.SizeNameLineSpacing:     2,
	theme.SizeNameScrollBar:       12,
	theme.SizeNameText:            13,
	theme.SizeNameHeadingText:     16,
	theme.SizeNameSubHeadingText:  13,
	theme.SizeNameCaptionText:     10,
	theme.SizeNameInputRadius:     3,
	theme.SizeNameSelectionRadius: 2,
}

// CompactTheme is the default theme with the orange accent and tighter spacing
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns the override for the variant, or the default color
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	palette := lightColors
	if variant == theme.VariantDark {
		palette = darkColors
	}
	if c, ok := palette[name]; ok {
		return c
	}
	return theme.DefaultTheme().Color(name, variant)
}

func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns the compact size, or the default one
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	if size, ok := compactSizes[name]; ok {
		return size
	}
	return theme.DefaultTheme().Size(name)
}
