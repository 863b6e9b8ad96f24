package kana

import "fmt"

// Representation selects which writing system glyphs are drilled.
type Representation string

const (
	Hiragana Representation = "hiragana"
	Katakana Representation = "katakana"
)

// Representations lists the supported writing systems in display order.
var Representations = []Representation{Hiragana, Katakana}

// ParseRepresentation converts a settings value to a Representation.
func ParseRepresentation(s string) (Representation, error) {
	switch Representation(s) {
	case Hiragana, Katakana:
		return Representation(s), nil
	}
	return "", fmt.Errorf("unknown writing system %q", s)
}

// Other returns the opposite writing system.
func (r Representation) Other() Representation {
	if r == Katakana {
		return Hiragana
	}
	return Katakana
}

// Label returns the capitalized display name.
func (r Representation) Label() string {
	switch r {
	case Katakana:
		return "Katakana"
	default:
		return "Hiragana"
	}
}
