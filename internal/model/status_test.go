package model

import "testing"

func TestMode_CanModify(t *testing.T) {
	tests := []struct {
		mode     Mode
		expected bool
	}{
		{ModeCreate, false},
		{ModeEdit, true},
	}

	for _, test := range tests {
		result := test.mode.CanModify()
		if result != test.expected {
			t.Errorf("Mode(%s).CanModify() = %v, expected %v", test.mode, result, test.expected)
		}
	}
}

func TestMode_String(t *testing.T) {
	mode := ModeEdit
	expected := "Edit"
	result := mode.String()

	if result != expected {
		t.Errorf("Mode.String() = %s, expected %s", result, expected)
	}
}
