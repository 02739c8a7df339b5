package tok

import (
	"github.com/shopspring/decimal"

	"github.com/mideind/icetok/internal/definitions"
)

// Meaning is one possible expansion of an abbreviation or word, carried on
// a WORD token once the particle coalescer (stage 2) has resolved it
// against the abbreviation table.
type Meaning struct {
	Stem       string
	Utg        int
	WordClass  string
	Category   string
	Surface    string
	Inflection string
}

// Date is the (year, month, day) payload shared by DATE, DATEABS and
// DATEREL. A zero field means "unset" (spec.md §3).
type Date struct {
	Year  int
	Month int
	Day   int
}

// Time is an (hour, minute, second) payload.
type Time struct {
	Hour   int
	Minute int
	Second int
}

// Timestamp is the payload shared by TIMESTAMP, TIMESTAMPABS and TIMESTAMPREL.
type Timestamp struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// Telno is a normalized Icelandic telephone number.
type Telno struct {
	Normalized string // "NNN-NNNN"
	CountryCode string // e.g. "354" or "+354"
}

// NumWLetter is an integer immediately followed by a single trailing letter
// ("2a", "12b").
type NumWLetter struct {
	Number int
	Letter rune
}

// SentenceInfo is the S_BEGIN payload: how many parses the parser found (if
// parsing was attempted) and the index of the first parse error, if any.
type SentenceInfo struct {
	NumParses *int
	ErrIndex  *int
}

// Val is the kind-dependent semantic payload of a Tok. Only the field(s)
// relevant to Kind are populated; all others are left at their zero value.
// This mirrors the "tagged variant" design note in spec.md §9: Go has no
// sum types, so the arms are realized as named, independently-addressable
// fields rather than an interface{} payload, keeping zero-allocation access
// cheap for the hot path (stage 2 reads Number/Meanings on nearly every token).
type Val struct {
	Spacing definitions.SpacingClass // PUNCTUATION

	Number  decimal.Decimal // NUMBER, PERCENT value
	Cases   []string        // NUMBER, PERCENT, AMOUNT grammatical cases
	Genders []string        // NUMBER, PERCENT, AMOUNT grammatical genders

	Year int // YEAR (signed; negative for BCE)

	Date Date // DATE, DATEABS, DATEREL

	Time Time // TIME

	Timestamp Timestamp // TIMESTAMP, TIMESTAMPABS, TIMESTAMPREL

	Amount decimal.Decimal // AMOUNT value
	ISO    string          // AMOUNT currency ISO code

	Unit           string          // MEASUREMENT canonical SI symbol
	MeasurementVal decimal.Decimal // MEASUREMENT value converted to Unit

	Ordinal uint64 // ORDINAL

	Telno Telno // TELNO

	NumWLetter NumWLetter // NUMWLETTER

	Meanings []Meaning // WORD (nil/empty => unresolved)

	Sentence SentenceInfo // S_BEGIN
}
