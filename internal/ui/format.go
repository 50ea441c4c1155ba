package ui

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// formatPrice renders a price for display using the number conventions of
// lang (decimal separator, grouping). The form keeps the exact value.
func formatPrice(lang string, price float64) string {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag).Sprintf(PriceFormat, price)
}
