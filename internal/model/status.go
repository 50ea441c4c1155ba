package model

// Mode is the editing mode of the form
type Mode string

const (
	// ModeCreate means no row is selected; Add writes a new record
	ModeCreate Mode = "Create"

	// ModeEdit means a row is selected; Update and Delete act on it
	ModeEdit Mode = "Edit"
)

// String returns the string representation of Mode
func (m Mode) String() string {
	return string(m)
}

// CanModify returns true if Update and Delete are allowed in this mode
func (m Mode) CanModify() bool {
	return m == ModeEdit
}
