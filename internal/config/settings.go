// Package config holds the user's study settings and persists them as TOML.
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/abhisek/kanatui/internal/kana"
)

// ErrInvalidSettings is returned when settings fail validation.
var ErrInvalidSettings = errors.New("invalid settings")

var validate = validator.New()

// Settings are the user-tunable study options.
type Settings struct {
	// WritingSystem is the kana representation drilled.
	WritingSystem string `toml:"writing_system" validate:"required,oneof=hiragana katakana"`
	// Diacritics includes the dakuten and handakuten kana.
	Diacritics bool `toml:"diacritics"`
	// ShowTimer displays the running timer on the study page.
	ShowTimer bool `toml:"show_timer"`
}

// Defaults returns the settings used when no file exists.
func Defaults() Settings {
	return Settings{
		WritingSystem: string(kana.Hiragana),
		Diacritics:    true,
		ShowTimer:     true,
	}
}

// Validate checks field constraints.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return nil
}

// Representation returns the writing system as a kana representation.
// Invalid settings fall back to hiragana.
func (s Settings) Representation() kana.Representation {
	rep, err := kana.ParseRepresentation(s.WritingSystem)
	if err != nil {
		return kana.Hiragana
	}
	return rep
}

// Symbols returns the kana in play for these settings.
func (s Settings) Symbols() []kana.Kana {
	return kana.Subset(s.Diacritics)
}

// fileSettings is the on-disk shape. Pointers distinguish absent keys so a
// partial file keeps the defaults for the rest.
type fileSettings struct {
	Study struct {
		WritingSystem *string `toml:"writing_system"`
		Diacritics    *bool   `toml:"diacritics"`
		ShowTimer     *bool   `toml:"show_timer"`
	} `toml:"study"`
}

func (f fileSettings) apply(s Settings) Settings {
	if f.Study.WritingSystem != nil {
		s.WritingSystem = *f.Study.WritingSystem
	}
	if f.Study.Diacritics != nil {
		s.Diacritics = *f.Study.Diacritics
	}
	if f.Study.ShowTimer != nil {
		s.ShowTimer = *f.Study.ShowTimer
	}
	return s
}

func toFile(s Settings) fileSettings {
	var f fileSettings
	f.Study.WritingSystem = &s.WritingSystem
	f.Study.Diacritics = &s.Diacritics
	f.Study.ShowTimer = &s.ShowTimer
	return f
}
