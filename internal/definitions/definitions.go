// Package definitions holds the closed, stable tables that drive
// tokenization: punctuation classes, the spacing matrix, month and clock
// words, SI unit conversions, multipliers, and related constants. These
// tables are folded into an explicit, dependency-injected record rather
// than module-level mutable globals wherever a stage needs to vary them
// (see internal/abbrev for the one genuinely mutable, lazily-initialized
// table).
package definitions

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/currency"
)

// Spacing classes used by the detokenizer (§4.8) and by PUNCTUATION token values.
type SpacingClass int

const (
	SpaceLeft SpacingClass = iota
	SpaceCenter
	SpaceRight
	SpaceNone
	SpaceWord
)

func (c SpacingClass) String() string {
	switch c {
	case SpaceLeft:
		return "LEFT"
	case SpaceCenter:
		return "CENTER"
	case SpaceRight:
		return "RIGHT"
	case SpaceNone:
		return "NONE"
	case SpaceWord:
		return "WORD"
	default:
		return "UNKNOWN"
	}
}

// Hyphen runes.
const (
	Hyphen = '-'
	EnDash = '–'
	EmDash = '—'
)

// CompositeHyphens are the hyphen forms that may introduce a compound
// continuation phrase ("fjármála- og efnahagsráðuneyti").
var CompositeHyphens = map[rune]bool{
	Hyphen: true,
	EnDash: true,
}

// LeftPunctuation, RightPunctuation, CenterPunctuation and NonePunctuation
// are the bit-exact character classes from spec.md §6.
var LeftPunctuation = runeSet("([„‚«#$€£¥₽<")
var RightPunctuation = runeSet(".,:;)]!%?“»”’‛‘…>°")
var CenterPunctuation = runeSet("\"*&+=@©|")
var NonePunctuation = runeSet("/±'´~\\" + string(Hyphen) + string(EnDash) + string(EmDash))

func runeSet(s string) map[rune]bool {
	m := make(map[rune]bool, utf8.RuneCountInString(s))
	for _, r := range s {
		m[r] = true
	}
	return m
}

// ClassOf returns the spacing class of a single punctuation rune, and
// whether it was recognized at all. Unrecognized runes default to SpaceWord
// by caller convention (multi-character tokens always default to SpaceWord).
func ClassOf(r rune) (SpacingClass, bool) {
	switch {
	case LeftPunctuation[r]:
		return SpaceLeft, true
	case CenterPunctuation[r]:
		return SpaceCenter, true
	case RightPunctuation[r]:
		return SpaceRight, true
	case NonePunctuation[r]:
		return SpaceNone, true
	default:
		return SpaceWord, false
	}
}

// SpacingMatrix is the 5x5 boolean table from spec.md §4.8: SpacingMatrix[prev][next]
// reports whether a space must be inserted between a token of class prev and
// one of class next.
var SpacingMatrix = [5][5]bool{
	// next:   L      C      R      N      W
	/*L*/ {false, true, false, false, false},
	/*C*/ {true, true, true, true, true},
	/*R*/ {true, true, false, false, true},
	/*N*/ {false, true, false, false, false},
	/*W*/ {true, true, false, false, true},
}

// EndOfSentence punctuation triggers a sentence boundary in stage 3.
var EndOfSentence = map[string]bool{
	".":   true,
	"?":   true,
	"!":   true,
	"[…]": true,
}

// SentenceFinishers may trail an end-of-sentence mark and are absorbed into
// the same sentence by the segmenter.
var SentenceFinishers = map[string]bool{
	")":   true,
	"]":   true,
	"“":   true,
	"»":   true,
	"”":   true,
	"’":   true,
	"\"":  true,
	"[…]": true,
}

// PunctInsideWord are punctuation characters allowed inside a run of letters
// (periods and apostrophes, e.g. "O'Malley", "mbl.is").
var PunctInsideWord = map[rune]bool{
	'.': true, '\'': true, '‘': true, '´': true, '’': true,
}

const (
	SingleQuotes = "'‚‛‘´"
	DoubleQuotes = "\"“„”«»"
)

const (
	ClockWord   = "klukkan"
	ClockAbbrev = "kl"
)

// TelnoPrefixes are the leading digits of a valid 7-digit Icelandic phone number.
const TelnoPrefixes = "45678"

// AdjectivePrefixes may be joined to a following word via a bare hyphen,
// without requiring an "og/eða" coordinator (stage 6, §4.7).
var AdjectivePrefixes = map[string]bool{
	"hálf": true, "marg": true, "semí": true, "full": true,
}

// YearWords precede a bare year number and are assimilated into the YEAR token.
var YearWords = map[string]bool{
	"árið": true, "ársins": true, "árinu": true,
}

// MonthBlacklist excludes given names that collide with a month word
// ("Ágúst" as a person's name vs. the month).
var MonthBlacklist = map[string]bool{
	"Ágúst": true,
}

// AmbiguousMonthAbbrevs are short month forms too ambiguous to stand alone
// as a DATEREL (stage 5): "jan", "mar", "júl", "des", and the blacklisted
// "Ágúst" given name.
var AmbiguousMonthAbbrevs = map[string]bool{
	"jan": true, "mar": true, "júl": true, "des": true, "Ágúst": true,
}

// ClockNumbers maps spelled-out Icelandic clock words to an (hour, minute, second)
// triple; "hálf-" compounds mean "half past the *previous* hour".
var ClockNumbers = map[string][3]int{
	"eitt": {1, 0, 0}, "tvö": {2, 0, 0}, "þrjú": {3, 0, 0}, "fjögur": {4, 0, 0},
	"fimm": {5, 0, 0}, "sex": {6, 0, 0}, "sjö": {7, 0, 0}, "átta": {8, 0, 0},
	"níu": {9, 0, 0}, "tíu": {10, 0, 0}, "ellefu": {11, 0, 0}, "tólf": {12, 0, 0},
	"hálfeitt": {12, 30, 0}, "hálftvö": {1, 30, 0}, "hálfþrjú": {2, 30, 0},
	"hálffjögur": {3, 30, 0}, "hálffimm": {4, 30, 0}, "hálfsex": {5, 30, 0},
	"hálfsjö": {6, 30, 0}, "hálfátta": {7, 30, 0}, "hálfníu": {8, 30, 0},
	"hálftíu": {9, 30, 0}, "hálfellefu": {10, 30, 0}, "hálftólf": {11, 30, 0},
}

// ClockHalf is the set of words only possible in "half past" temporal phrases.
var ClockHalf = map[string]bool{
	"hálfeitt": true, "hálftvö": true, "hálfþrjú": true, "hálffjögur": true,
	"hálffimm": true, "hálfsex": true, "hálfsjö": true, "hálfátta": true,
	"hálfníu": true, "hálftíu": true, "hálfellefu": true, "hálftólf": true,
}

// CE and BCE mark era suffixes appended to a YEAR.
var CE = map[string]bool{"e.Kr": true, "e.Kr.": true}
var BCE = map[string]bool{"f.Kr": true, "f.Kr.": true}

// IsValidCurrencyCode reports whether s is a recognized ISO 4217 currency
// code (three uppercase letters), for a standalone WORD following a NUMBER
// (stage 6) or guarding a multiplier abbreviation against a following
// currency code (stage 2's finisher lookahead).
func IsValidCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if !unicode.IsUpper(r) || !unicode.IsLetter(r) {
			return false
		}
	}
	unit, err := currency.ParseISO(s)
	if err != nil {
		return false
	}
	return unit.String() == s
}

// SinglecharFractions maps a single vulgar-fraction rune to its numeric value.
var SinglecharFractions = map[rune]float64{
	'↉': 0, '⅒': 0.1, '⅑': 1.0 / 9, '⅛': 0.125, '⅐': 1.0 / 7, '⅙': 1.0 / 6,
	'⅕': 0.2, '¼': 0.25, '⅓': 1.0 / 3, '½': 0.5, '⅖': 0.4, '⅔': 2.0 / 3,
	'⅜': 0.375, '⅗': 0.6, '¾': 0.75, '⅘': 0.8, '⅝': 0.625, '⅚': 5.0 / 6, '⅞': 0.875,
}

// Percentages are Icelandic words that turn a preceding number into a PERCENT token.
var Percentages = map[string]bool{
	"prósent": true, "prósenta": true, "hundraðshluti": true, "prósentustig": true,
}

// IskAmountPreceding are króna markers allowed immediately before a number
// ("kr. 9.900").
var IskAmountPreceding = map[string]bool{
	"kr.": true, "kr": true, "krónur": true,
}

// Multipliers maps number words from the MULTIPLIERS table to their value;
// stage 6 multiplies a preceding NUMBER token by them ("2 milljón" gives
// 2000000). Only the forms listed here are recognized: inflected forms such
// as "milljónir" and feminine forms such as "tvær" are not keys.
var Multipliers = map[string]float64{
	"einn": 1, "tveir": 2, "þrír": 3, "fjórir": 4, "fimm": 5, "sex": 6, "sjö": 7,
	"átta": 8, "níu": 9, "tíu": 10, "ellefu": 11, "tólf": 12, "þrettán": 13,
	"fjórtán": 14, "fimmtán": 15, "sextán": 16, "sautján": 17, "seytján": 17,
	"átján": 18, "nítján": 19, "tuttugu": 20, "þrjátíu": 30, "fjörutíu": 40,
	"fimmtíu": 50, "sextíu": 60, "sjötíu": 70, "áttatíu": 80, "níutíu": 90,
	"hundrað": 100, "þúsund": 1000, "þús.": 1000, "milljón": 1e6, "milla": 1e6,
	"millj.": 1e6, "mljó.": 1e6, "milljarður": 1e9, "miljarður": 1e9, "ma.": 1e9,
	"mrð.": 1e9,
}

// LargeMultipliers are the subset of Multipliers at or above "hundrað" (100):
// these compose *with* a preceding NUMBER rather than standing as a bare
// digit-equivalent word.
var LargeMultipliers = map[string]bool{
	"hundrað": true, "þúsund": true, "þús.": true, "milljón": true, "milla": true,
	"millj.": true, "mljó.": true, "milljarður": true, "miljarður": true,
	"ma.": true, "mrð.": true,
}

// Combining diacritics that the raw lexer's composite-glyph pass (backed by
// golang.org/x/text/unicode/norm) folds onto a preceding base vowel when
// replace_composite_glyphs is enabled.
const (
	CombiningAcute   = '́'
	CombiningDiaeres = '̈'
)

// Zero-width / soft-hyphen characters unconditionally stripped by the raw lexer.
const (
	SoftHyphen    = '­'
	ZeroWidthSp   = '​'
	ZeroWidthNBSP = '﻿'
)

// URLPrefixes are the schemes/hostnames that start a URL token.
var URLPrefixes = []string{"http://", "https://", "www."}

// HTMLEntities maps named HTML/XML entities (without the leading "&" or
// trailing ";") to their expansion, for the raw lexer's optional
// replace_html_escapes preprocessing pass. Numeric entities (&#NNN; and
// &#xHH;) are decoded directly by the lexer rather than tabled here.
var HTMLEntities = map[string]string{
	"amp":    "&",
	"lt":     "<",
	"gt":     ">",
	"quot":   "\"",
	"apos":   "'",
	"nbsp":   " ",
	"aacute": "á", "Aacute": "Á",
	"eacute": "é", "Eacute": "É",
	"iacute": "í", "Iacute": "Í",
	"oacute": "ó", "Oacute": "Ó",
	"uacute": "ú", "Uacute": "Ú",
	"yacute": "ý", "Yacute": "Ý",
	"auml": "ä", "Auml": "Ä",
	"euml": "ë", "Euml": "Ë",
	"ouml": "ö", "Ouml": "Ö",
	"uuml": "ü", "Uuml": "Ü",
	"eth":   "ð", "ETH": "Ð",
	"thorn": "þ", "THORN": "Þ",
	"aelig": "æ", "AElig": "Æ",
	"ndash": "–",
	"mdash": "—",
	"hellip": "…",
	"copy":  "©",
	"laquo": "«", "raquo": "»",
	"ldquo": "“", "rdquo": "”",
	"lsquo": "‘", "rsquo": "’",
	"sbquo": "‚", "bdquo": "„",
}
