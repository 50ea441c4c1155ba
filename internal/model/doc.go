package model

// Package model defines the domain data structures used across the app: the
// phone record, the raw form fields it is edited through, and the editing
// mode. Validation of user input lives here so every layer shares one rule set.
