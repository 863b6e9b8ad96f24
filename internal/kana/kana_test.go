package kana

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogComplete(t *testing.T) {
	require.Equal(t, 71, Count)

	seen := make(map[string]Kana)
	for _, k := range All() {
		assert.NotEmpty(t, k.Hiragana(), "hiragana for %d", k)
		assert.NotEmpty(t, k.Katakana(), "katakana for %d", k)
		assert.NotEmpty(t, k.String(), "romaji for %d", k)

		prev, dup := seen[k.Hiragana()]
		assert.False(t, dup, "glyph %s shared by %v and %v", k.Hiragana(), prev, k)
		seen[k.Hiragana()] = k
	}
}

func TestSubset(t *testing.T) {
	full := Subset(true)
	base := Subset(false)

	assert.Len(t, full, Count)
	assert.Len(t, base, 46)
	for _, k := range base {
		assert.False(t, k.IsDiacritic(), "%v should not be a diacritic", k)
	}
	assert.True(t, Ga.IsDiacritic())
	assert.True(t, Po.IsDiacritic())
	assert.False(t, Wo.IsDiacritic())
}

func TestGlyph(t *testing.T) {
	assert.Equal(t, "か", Ka.Glyph(Hiragana))
	assert.Equal(t, "カ", Ka.Glyph(Katakana))
	assert.Equal(t, "ぢ", Dji.Hiragana())
	assert.Equal(t, "", Kana(-1).Glyph(Hiragana))
}

func TestIsCorrect(t *testing.T) {
	tests := []struct {
		name  string
		kana  Kana
		input string
		want  bool
	}{
		{"canonical", A, "a", true},
		{"canonical multi-letter", Shi, "shi", true},
		{"chi canonical", Chi, "chi", true},
		{"chi alternate", Chi, "tchi", true},
		{"dji canonical", Dji, "dji", true},
		{"dji alternate", Dji, "ji", true},
		{"ji is its own kana", Ji, "ji", true},
		{"ji does not accept dji", Ji, "dji", false},
		{"case sensitive", Ka, "KA", false},
		{"no trimming", Ka, " ka", false},
		{"prefix", Tsu, "ts", false},
		{"empty", N, "", false},
		{"alternate of another kana", Ta, "tchi", false},
		{"out of range", Kana(500), "a", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCorrect(tt.kana, tt.input))
		})
	}
}

func TestIsCorrectAlternatesOnly(t *testing.T) {
	for _, k := range All() {
		accepted := append([]string{k.String()}, k.Alternates()...)
		for _, s := range accepted {
			assert.True(t, IsCorrect(k, s), "%v should accept %q", k, s)
		}
		assert.False(t, IsCorrect(k, k.String()+"x"), "%v should reject suffixed label", k)
	}
	assert.Equal(t, []string{"tchi"}, Chi.Alternates())
	assert.Nil(t, Ka.Alternates())
}

func TestParseRepresentation(t *testing.T) {
	r, err := ParseRepresentation("katakana")
	require.NoError(t, err)
	assert.Equal(t, Katakana, r)
	assert.Equal(t, Hiragana, r.Other())
	assert.Equal(t, "Katakana", r.Label())

	_, err = ParseRepresentation("romaji")
	assert.Error(t, err)
}
