package ui

import "testing"

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		lang     string
		price    float64
		expected string
	}{
		{"en", 199.99, "199.99"},
		{"en", 5, "5.00"},
		{"not a language!", 10.5, "10.50"},
	}

	for _, test := range tests {
		result := formatPrice(test.lang, test.price)
		if result != test.expected {
			t.Errorf("formatPrice(%q, %v) = %q, expected %q", test.lang, test.price, result, test.expected)
		}
	}
}
