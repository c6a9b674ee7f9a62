// Package systems is the catalog of predefined numeral systems: named,
// immutable definitions consumed by the numeral engine, from Arabic digits
// to Roman, Greek and Hebrew sign-value numerals, kana and Hangul
// alphabets, Chinese numerals and circled numbers.
//
// Catalog entries are addressed either by ID or by their stable name
// string (used in document markup): lowercase names select the lowercase
// flavor, capitalized names the uppercase one ("roman" vs "Roman").
//
// Beyond the predefined catalog, Load and LoadFile read user-defined
// system definitions from YAML.
package systems

import (
	"github.com/Neumenon/numeral/numeral"
)

// ID identifies a predefined numeral system.
type ID uint8

const (
	// Base-ten Arabic numerals: 0, 1, 2, 3, ...
	Arabic ID = iota
	// Lowercase Latin letters: a, b, c, ..., y, z, aa, ab, ...
	LowerLatin
	// Uppercase Latin letters: A, B, C, ..., Y, Z, AA, AB, ...
	UpperLatin
	// Lowercase Roman numerals: i, ii, iii, ...
	LowerRoman
	// Uppercase Roman numerals: I, II, III, ...
	UpperRoman
	// Lowercase Greek letters: α, β, γ, ...
	LowerGreek
	// Uppercase Greek letters: Α, Β, Γ, ...
	UpperGreek
	// Paragraph/note symbols: *, †, ‡, §, ¶ and ‖, repeating beyond six.
	Symbol
	// Hebrew numerals.
	Hebrew
	// Simplified Chinese standard numerals.
	LowerSimplifiedChinese
	// Simplified Chinese "banknote" numerals.
	UpperSimplifiedChinese
	// Traditional Chinese standard numerals.
	LowerTraditionalChinese
	// Traditional Chinese "banknote" numerals.
	UpperTraditionalChinese
	// Hiragana in the gojūon order.
	HiraganaAiueo
	// Hiragana in the iroha order.
	HiraganaIroha
	// Katakana in the gojūon order.
	KatakanaAiueo
	// Katakana in the iroha order.
	KatakanaIroha
	// Korean jamo: ㄱ, ㄴ, ㄷ, ...
	KoreanJamo
	// Korean syllables: 가, 나, 다, ...
	KoreanSyllable
	// Eastern Arabic numerals.
	EasternArabic
	// The Persian/Urdu variant of Eastern Arabic numerals.
	EasternArabicPersian
	// Devanagari numerals.
	DevanagariNumber
	// Bengali numerals.
	BengaliNumber
	// Bengali letters: ক, খ, গ, ..., কক, কখ, ...
	BengaliLetter
	// Circled numbers up to fifty: ①, ②, ③, ...
	CircledNumber
	// Double-circled numbers up to ten: ⓵, ⓶, ⓷, ...
	DoubleCircledNumber

	numIDs
)

var names = [numIDs]string{
	Arabic:                  "arabic",
	LowerLatin:              "latin",
	UpperLatin:              "Latin",
	LowerRoman:              "roman",
	UpperRoman:              "Roman",
	LowerGreek:              "greek",
	UpperGreek:              "Greek",
	Symbol:                  "symbols",
	Hebrew:                  "hebrew",
	LowerSimplifiedChinese:  "chinese.simplified",
	UpperSimplifiedChinese:  "Chinese.simplified",
	LowerTraditionalChinese: "chinese.traditional",
	UpperTraditionalChinese: "Chinese.traditional",
	HiraganaAiueo:           "hiragana.aiueo",
	HiraganaIroha:           "hiragana.iroha",
	KatakanaAiueo:           "katakana.aiueo",
	KatakanaIroha:           "katakana.iroha",
	KoreanJamo:              "korean.jamo",
	KoreanSyllable:          "korean.syllable",
	EasternArabic:           "arabic.eastern",
	EasternArabicPersian:    "arabic.persian",
	DevanagariNumber:        "devanagari",
	BengaliNumber:           "bengali.number",
	BengaliLetter:           "bengali.letter",
	CircledNumber:           "circled",
	DoubleCircledNumber:     "circled.double",
}

var definitions = [numIDs]numeral.System{
	Arabic:                  arabic,
	LowerLatin:              lowerLatin,
	UpperLatin:              upperLatin,
	LowerRoman:              lowerRoman,
	UpperRoman:              upperRoman,
	LowerGreek:              lowerGreek,
	UpperGreek:              upperGreek,
	Symbol:                  symbol,
	Hebrew:                  hebrew,
	LowerSimplifiedChinese:  lowerSimplifiedChinese,
	UpperSimplifiedChinese:  upperSimplifiedChinese,
	LowerTraditionalChinese: lowerTraditionalChinese,
	UpperTraditionalChinese: upperTraditionalChinese,
	HiraganaAiueo:           hiraganaAiueo,
	HiraganaIroha:           hiraganaIroha,
	KatakanaAiueo:           katakanaAiueo,
	KatakanaIroha:           katakanaIroha,
	KoreanJamo:              koreanJamo,
	KoreanSyllable:          koreanSyllable,
	EasternArabic:           easternArabic,
	EasternArabicPersian:    easternArabicPersian,
	DevanagariNumber:        devanagariNumber,
	BengaliNumber:           bengaliNumber,
	BengaliLetter:           bengaliLetter,
	CircledNumber:           circledNumber,
	DoubleCircledNumber:     doubleCircledNumber,
}

var byName = func() map[string]ID {
	m := make(map[string]ID, numIDs)
	for id := Arabic; id < numIDs; id++ {
		m[names[id]] = id
	}
	return m
}()

// FromName looks up a predefined system by its name string.
func FromName(name string) (ID, bool) {
	id, ok := byName[name]
	return id, ok
}

// Name returns the system's stable name string.
func (id ID) Name() string {
	if id >= numIDs {
		return "unknown"
	}
	return names[id]
}

// String returns the same value as Name.
func (id ID) String() string {
	return id.Name()
}

// System returns the immutable definition behind the ID.
func (id ID) System() numeral.System {
	return definitions[id]
}

// Apply renders n in the predefined system.
func (id ID) Apply(n uint64) (string, error) {
	return definitions[id].Render(n)
}

// All returns every predefined system ID in declaration order.
func All() []ID {
	ids := make([]ID, 0, numIDs)
	for id := Arabic; id < numIDs; id++ {
		ids = append(ids, id)
	}
	return ids
}
