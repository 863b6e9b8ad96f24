// Package kana holds the static kana catalog: glyphs for both writing
// systems, romaji labels and the alternate spellings accepted as answers.
package kana

// Kana identifies one quizzable syllable. Values are ordinals into the
// catalog tables and are stable for the lifetime of the process.
type Kana int

const (
	N Kana = iota

	A
	I
	U
	E
	O

	Ka
	Ki
	Ku
	Ke
	Ko

	Sa
	Shi
	Su
	Se
	So

	Ta
	Chi
	Tsu
	Te
	To

	Na
	Ni
	Nu
	Ne
	No

	Ha
	Hi
	Fu
	He
	Ho

	Ma
	Mi
	Mu
	Me
	Mo

	Ya
	Yu
	Yo

	Ra
	Ri
	Ru
	Re
	Ro

	Wa
	Wo

	// Dakuten and handakuten syllables start here.
	Ga
	Gi
	Gu
	Ge
	Go

	Za
	Ji
	Zu
	Ze
	Zo

	Da
	Dji
	Dzu
	De
	Do

	Ba
	Bi
	Bu
	Be
	Bo

	Pa
	Pi
	Pu
	Pe
	Po

	count
)

// firstDiacritic is the first syllable written with a dakuten or handakuten.
const firstDiacritic = Ga

type entry struct {
	hiragana   string
	katakana   string
	romaji     string
	alternates []string
}

var table = [count]entry{
	N: {"ん", "ン", "n", nil},

	A: {"あ", "ア", "a", nil},
	I: {"い", "イ", "i", nil},
	U: {"う", "ウ", "u", nil},
	E: {"え", "エ", "e", nil},
	O: {"お", "オ", "o", nil},

	Ka: {"か", "カ", "ka", nil},
	Ki: {"き", "キ", "ki", nil},
	Ku: {"く", "ク", "ku", nil},
	Ke: {"け", "ケ", "ke", nil},
	Ko: {"こ", "コ", "ko", nil},

	Sa:  {"さ", "サ", "sa", nil},
	Shi: {"し", "シ", "shi", nil},
	Su:  {"す", "ス", "su", nil},
	Se:  {"せ", "セ", "se", nil},
	So:  {"そ", "ソ", "so", nil},

	Ta:  {"た", "タ", "ta", nil},
	Chi: {"ち", "チ", "chi", []string{"tchi"}},
	Tsu: {"つ", "ツ", "tsu", nil},
	Te:  {"て", "テ", "te", nil},
	To:  {"と", "ト", "to", nil},

	Na: {"な", "ナ", "na", nil},
	Ni: {"に", "ニ", "ni", nil},
	Nu: {"ぬ", "ヌ", "nu", nil},
	Ne: {"ね", "ネ", "ne", nil},
	No: {"の", "ノ", "no", nil},

	Ha: {"は", "ハ", "ha", nil},
	Hi: {"ひ", "ヒ", "hi", nil},
	Fu: {"ふ", "フ", "fu", nil},
	He: {"へ", "ヘ", "he", nil},
	Ho: {"ほ", "ホ", "ho", nil},

	Ma: {"ま", "マ", "ma", nil},
	Mi: {"み", "ミ", "mi", nil},
	Mu: {"む", "ム", "mu", nil},
	Me: {"め", "メ", "me", nil},
	Mo: {"も", "モ", "mo", nil},

	Ya: {"や", "ヤ", "ya", nil},
	Yu: {"ゆ", "ユ", "yu", nil},
	Yo: {"よ", "ヨ", "yo", nil},

	Ra: {"ら", "ラ", "ra", nil},
	Ri: {"り", "リ", "ri", nil},
	Ru: {"る", "ル", "ru", nil},
	Re: {"れ", "レ", "re", nil},
	Ro: {"ろ", "ロ", "ro", nil},

	Wa: {"わ", "ワ", "wa", nil},
	Wo: {"を", "ヲ", "wo", nil},

	Ga: {"が", "ガ", "ga", nil},
	Gi: {"ぎ", "ギ", "gi", nil},
	Gu: {"ぐ", "グ", "gu", nil},
	Ge: {"げ", "ゲ", "ge", nil},
	Go: {"ご", "ゴ", "go", nil},

	Za: {"ざ", "ザ", "za", nil},
	Ji: {"じ", "ジ", "ji", nil},
	Zu: {"ず", "ズ", "zu", nil},
	Ze: {"ぜ", "ゼ", "ze", nil},
	Zo: {"ぞ", "ゾ", "zo", nil},

	Da:  {"だ", "ダ", "da", nil},
	Dji: {"ぢ", "ヂ", "dji", []string{"ji"}},
	Dzu: {"づ", "ヅ", "dzu", nil},
	De:  {"で", "デ", "de", nil},
	Do:  {"ど", "ド", "do", nil},

	Ba: {"ば", "バ", "ba", nil},
	Bi: {"び", "ビ", "bi", nil},
	Bu: {"ぶ", "ブ", "bu", nil},
	Be: {"べ", "ベ", "be", nil},
	Bo: {"ぼ", "ボ", "bo", nil},

	Pa: {"ぱ", "パ", "pa", nil},
	Pi: {"ぴ", "ピ", "pi", nil},
	Pu: {"ぷ", "プ", "pu", nil},
	Pe: {"ぺ", "ペ", "pe", nil},
	Po: {"ぽ", "ポ", "po", nil},
}

// Count is the size of the full catalog.
const Count = int(count)

// Valid reports whether k is a catalog ordinal.
func (k Kana) Valid() bool {
	return k >= 0 && k < count
}

// String returns the canonical romaji label.
func (k Kana) String() string {
	if !k.Valid() {
		return "?"
	}
	return table[k].romaji
}

// Hiragana returns the hiragana glyph.
func (k Kana) Hiragana() string {
	if !k.Valid() {
		return ""
	}
	return table[k].hiragana
}

// Katakana returns the katakana glyph.
func (k Kana) Katakana() string {
	if !k.Valid() {
		return ""
	}
	return table[k].katakana
}

// Glyph returns the glyph for the given writing system.
func (k Kana) Glyph(r Representation) string {
	if r == Katakana {
		return k.Katakana()
	}
	return k.Hiragana()
}

// Alternates returns the extra spellings accepted for k, if any.
func (k Kana) Alternates() []string {
	if !k.Valid() || len(table[k].alternates) == 0 {
		return nil
	}
	out := make([]string, len(table[k].alternates))
	copy(out, table[k].alternates)
	return out
}

// IsDiacritic reports whether k carries a dakuten or handakuten.
func (k Kana) IsDiacritic() bool {
	return k >= firstDiacritic && k < count
}

// All returns every kana in catalog order.
func All() []Kana {
	out := make([]Kana, 0, Count)
	for k := Kana(0); k < count; k++ {
		out = append(out, k)
	}
	return out
}

// Subset returns the kana in play for a study session. Without diacritics
// only n and the 45 base syllables are returned.
func Subset(diacritics bool) []Kana {
	if diacritics {
		return All()
	}
	out := make([]Kana, 0, int(firstDiacritic))
	for k := Kana(0); k < firstDiacritic; k++ {
		out = append(out, k)
	}
	return out
}
