package datapoint

import (
	"fmt"
	"strconv"
)

// VisibilityCategory is the named visibility band reported by forecast feeds.
type VisibilityCategory string

const (
	VisibilityUnknown   VisibilityCategory = "UN"
	VisibilityVeryPoor  VisibilityCategory = "VP"
	VisibilityPoor      VisibilityCategory = "PO"
	VisibilityModerate  VisibilityCategory = "MO"
	VisibilityGood      VisibilityCategory = "GO"
	VisibilityVeryGood  VisibilityCategory = "VG"
	VisibilityExcellent VisibilityCategory = "EX"
)

// ParseVisibilityCategory validates a visibility band code.
func ParseVisibilityCategory(s string) (VisibilityCategory, error) {
	switch VisibilityCategory(s) {
	case VisibilityUnknown, VisibilityVeryPoor, VisibilityPoor, VisibilityModerate,
		VisibilityGood, VisibilityVeryGood, VisibilityExcellent:
		return VisibilityCategory(s), nil
	default:
		return "", &InvalidValueError{Value: s, Want: "visibility category"}
	}
}

// Visibility is the dual-typed visibility value: the API returns either a
// raw distance in metres or a named category under the same key. Exactly one
// of the two representations is set; neither is normalized into the other.
type Visibility struct {
	Distance *int
	Category VisibilityCategory
}

// ParseVisibility attempts the integer (metres) reading first and falls back
// to the category enumeration.
func ParseVisibility(s string) (Visibility, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return Visibility{Distance: &n}, nil
	}
	cat, err := ParseVisibilityCategory(s)
	if err != nil {
		return Visibility{}, &InvalidValueError{Value: s, Want: "visibility"}
	}
	return Visibility{Category: cat}, nil
}

// IsDistance reports whether the value is a raw distance in metres.
func (v Visibility) IsDistance() bool {
	return v.Distance != nil
}

// Wire returns the value as transmitted by the API.
func (v Visibility) Wire() string {
	if v.Distance != nil {
		return strconv.Itoa(*v.Distance)
	}
	return string(v.Category)
}

// MarshalJSON re-encodes the value in its wire form.
func (v Visibility) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", v.Wire())), nil
}

func visibilityField(m Payload, key string) (Visibility, error) {
	s, err := stringField(m, key)
	if err != nil {
		return Visibility{}, err
	}
	v, err := ParseVisibility(s)
	if err != nil {
		return Visibility{}, &InvalidValueError{Field: key, Value: s, Want: "visibility"}
	}
	return v, nil
}
