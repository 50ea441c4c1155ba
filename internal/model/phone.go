package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Field names, in form order
const (
	FieldBrand = "brand"
	FieldModel = "model"
	FieldPrice = "price"
	FieldOS    = "os"
	FieldRAM   = "ram"
)

// Phone represents a single stored phone specification
type Phone struct {
	ID    int64   // assigned by storage, immutable
	Brand string  // e.g. "Acme"
	Model string  // e.g. "X1"
	Price float64 // numeric price
	OS    string  // operating system
	RAM   string  // free-form, e.g. "8GB"
}

// PhoneFields holds the raw text of the five form fields
type PhoneFields struct {
	Brand string
	Model string
	Price string
	OS    string
	RAM   string
}

// FieldsFromPhone returns form text for an existing record
func FieldsFromPhone(p Phone) PhoneFields {
	return PhoneFields{
		Brand: p.Brand,
		Model: p.Model,
		Price: FormatPrice(p.Price),
		OS:    p.OS,
		RAM:   p.RAM,
	}
}

// FormatPrice prints a price with the shortest representation that parses
// back to the same value (199.99 -> "199.99", 200 -> "200").
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}

// IsEmpty reports whether every field is blank
func (f PhoneFields) IsEmpty() bool {
	return strings.TrimSpace(f.Brand) == "" &&
		strings.TrimSpace(f.Model) == "" &&
		strings.TrimSpace(f.Price) == "" &&
		strings.TrimSpace(f.OS) == "" &&
		strings.TrimSpace(f.RAM) == ""
}

// Parse validates the fields and converts them into a Phone without an ID.
// Missing fields are reported before an unparsable price.
func (f PhoneFields) Parse() (Phone, error) {
	values := []struct {
		name  string
		value string
	}{
		{FieldBrand, f.Brand},
		{FieldModel, f.Model},
		{FieldPrice, f.Price},
		{FieldOS, f.OS},
		{FieldRAM, f.RAM},
	}
	for _, v := range values {
		if strings.TrimSpace(v.value) == "" {
			return Phone{}, fmt.Errorf("%w: %s", ErrMissingField, v.name)
		}
	}

	raw := strings.TrimSpace(f.Price)
	if isHexNumber(raw) {
		return Phone{}, fmt.Errorf("%w: %q", ErrInvalidPrice, raw)
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return Phone{}, fmt.Errorf("%w: %q", ErrInvalidPrice, raw)
	}

	return Phone{
		Brand: strings.TrimSpace(f.Brand),
		Model: strings.TrimSpace(f.Model),
		Price: price,
		OS:    strings.TrimSpace(f.OS),
		RAM:   strings.TrimSpace(f.RAM),
	}, nil
}

// isHexNumber reports whether s has a 0x prefix after an optional sign.
// ParseFloat accepts hex mantissas with a p exponent; prices are decimal only.
func isHexNumber(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// GetDisplayName returns "Brand Model" for messages and logs
func (p Phone) GetDisplayName() string {
	name := strings.TrimSpace(p.Brand + " " + p.Model)
	if name == "" {
		return fmt.Sprintf("#%d", p.ID)
	}
	return name
}
