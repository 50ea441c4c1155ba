package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconLanguage = "🌐"
)

// Text fragments
const (
	PriceFormat = "%.2f"
)

// Table layout
const (
	ColumnCount = 6

	ColumnID    = 0
	ColumnBrand = 1
	ColumnModel = 2
	ColumnPrice = 3
	ColumnOS    = 4
	ColumnRAM   = 5

	IDColumnWidth    float32 = 50
	TextColumnWidth  float32 = 140
	PriceColumnWidth float32 = 100
)

// Window sizing
const (
	WindowWidth  float32 = 800
	WindowHeight float32 = 600

	SettingsDialogW float32 = 500
	SettingsDialogH float32 = 420
)
