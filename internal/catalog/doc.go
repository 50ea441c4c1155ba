package catalog

// Package catalog holds the application state behind the form: the rows last
// loaded from storage and the current selection. It validates form input,
// runs the single storage statement each action maps to, and reloads the
// list after every successful mutation. It has no UI dependency and is
// driven directly in tests.
