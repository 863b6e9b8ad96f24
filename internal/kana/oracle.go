package kana

// IsCorrect reports whether input is an accepted romanization of k.
// Matching is exact and case-sensitive; alternates come from the catalog.
func IsCorrect(k Kana, input string) bool {
	if !k.Valid() {
		return false
	}
	e := table[k]
	if input == e.romaji {
		return true
	}
	for _, alt := range e.alternates {
		if input == alt {
			return true
		}
	}
	return false
}
