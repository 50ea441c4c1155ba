package model

import "errors"

// Input and selection errors. Validation errors wrap ErrMissingField or
// ErrInvalidPrice with the offending field name; match them with errors.Is.
var (
	ErrMissingField  = errors.New("missing field")
	ErrInvalidPrice  = errors.New("invalid price")
	ErrNoSelection   = errors.New("no selection")
	ErrRowOutOfRange = errors.New("row out of range")
)
