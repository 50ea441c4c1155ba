package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It renders the phone form, the phone table, menus and settings, and routes
// every user action to the catalog. All UI strings are localized via Localization.
