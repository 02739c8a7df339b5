// Package units canonicalizes the SI/derived unit symbols recognized by the
// particle coalescer (spec.md §4.5): each accepted unit suffix maps to a
// canonical base symbol plus either a fixed scale factor or, for
// temperature, a conversion function. Values are reported in the
// conventions of github.com/martinlindhe/unit (Kelvin for temperature) the
// same way the teacher's impl/interpreter/unit_conversion.go leans on that
// library for its own quantity arithmetic.
package units

import (
	"github.com/martinlindhe/unit"
	"github.com/shopspring/decimal"
)

// Canonical describes one accepted unit suffix: its canonical SI symbol and
// how to convert a bare numeric value in that unit to the canonical one.
type Canonical struct {
	Symbol string
	// Scale multiplies a plain value to the canonical unit. Unused when
	// Convert is set (temperature units, whose mapping is an affine
	// function rather than a pure scale).
	Scale float64
	// Convert, when non-nil, takes precedence over Scale.
	Convert func(float64) float64
}

func celsiusToKelvin(c float64) float64 {
	return float64(unit.FromCelsius(c).Kelvin())
}

func fahrenheitToKelvin(f float64) float64 {
	return float64(unit.FromFahrenheit(f).Kelvin())
}

// SIUnits is the derived-unit table from spec.md §4.5 / §9: unit suffix ->
// (canonical base SI symbol, conversion). Transcribed from the original
// tokenizer's SI_UNITS table (see DESIGN.md).
var SIUnits = map[string]Canonical{
	"m²": {Symbol: "m²", Scale: 1.0},
	"fm": {Symbol: "m²", Scale: 1.0},
	"cm²": {Symbol: "m²", Scale: 1.0e-2},
	"m³": {Symbol: "m³", Scale: 1.0},
	"cm³": {Symbol: "m³", Scale: 1.0e-6},
	"l":  {Symbol: "m³", Scale: 1.0e-3},
	"ltr": {Symbol: "m³", Scale: 1.0e-3},
	"dl": {Symbol: "m³", Scale: 1.0e-4},
	"cl": {Symbol: "m³", Scale: 1.0e-5},
	"ml": {Symbol: "m³", Scale: 1.0e-6},
	"°C": {Symbol: "K", Convert: celsiusToKelvin},
	"°F": {Symbol: "K", Convert: fahrenheitToKelvin},
	"K":  {Symbol: "K", Scale: 1.0},
	"g":  {Symbol: "g", Scale: 1.0},
	"gr": {Symbol: "g", Scale: 1.0},
	"kg": {Symbol: "g", Scale: 1.0e3},
	"t":  {Symbol: "g", Scale: 1.0e6},
	"mg": {Symbol: "g", Scale: 1.0e-3},
	"μg": {Symbol: "g", Scale: 1.0e-6},
	"m":  {Symbol: "m", Scale: 1.0},
	"km": {Symbol: "m", Scale: 1.0e3},
	"mm": {Symbol: "m", Scale: 1.0e-3},
	"μm": {Symbol: "m", Scale: 1.0e-6},
	"cm": {Symbol: "m", Scale: 1.0e-2},
	"sm": {Symbol: "m", Scale: 1.0e-2},
	"s":  {Symbol: "s", Scale: 1.0},
	"ms": {Symbol: "s", Scale: 1.0e-3},
	"μs": {Symbol: "s", Scale: 1.0e-6},
	"Nm": {Symbol: "J", Scale: 1.0},
	"klst": {Symbol: "s", Scale: 3600.0},
	"mín": {Symbol: "s", Scale: 60.0},
	"W":   {Symbol: "W", Scale: 1.0},
	"mW":  {Symbol: "W", Scale: 1.0e-3},
	"kW":  {Symbol: "W", Scale: 1.0e3},
	"MW":  {Symbol: "W", Scale: 1.0e6},
	"GW":  {Symbol: "W", Scale: 1.0e9},
	"TW":  {Symbol: "W", Scale: 1.0e12},
	"J":   {Symbol: "J", Scale: 1.0},
	"kJ":  {Symbol: "J", Scale: 1.0e3},
	"MJ":  {Symbol: "J", Scale: 1.0e6},
	"GJ":  {Symbol: "J", Scale: 1.0e9},
	"TJ":  {Symbol: "J", Scale: 1.0e12},
	"kWh": {Symbol: "J", Scale: 3.6e6},
	"MWh": {Symbol: "J", Scale: 3.6e9},
	"kWst": {Symbol: "J", Scale: 3.6e6},
	"MWst": {Symbol: "J", Scale: 3.6e9},
	"kcal": {Symbol: "J", Scale: 4184},
	"cal":  {Symbol: "J", Scale: 4.184},
	"N":  {Symbol: "N", Scale: 1.0},
	"kN": {Symbol: "N", Scale: 1.0e3},
	"V":  {Symbol: "V", Scale: 1.0},
	"mV": {Symbol: "V", Scale: 1.0e-3},
	"kV": {Symbol: "V", Scale: 1.0e3},
	"A":  {Symbol: "A", Scale: 1.0},
	"mA": {Symbol: "A", Scale: 1.0e-3},
	"Hz": {Symbol: "Hz", Scale: 1.0},
	"kHz": {Symbol: "Hz", Scale: 1.0e3},
	"MHz": {Symbol: "Hz", Scale: 1.0e6},
	"GHz": {Symbol: "Hz", Scale: 1.0e9},
	"Pa":  {Symbol: "Pa", Scale: 1.0},
	"hPa": {Symbol: "Pa", Scale: 1.0e2},
	"°":   {Symbol: "°", Scale: 1.0},
}

// Lookup reports the canonical unit entry for a given surface symbol.
func Lookup(symbol string) (Canonical, bool) {
	c, ok := SIUnits[symbol]
	return c, ok
}

// Convert maps a numeric value in the given unit symbol to (canonical
// symbol, converted value), per spec.md §4.5's "MEASUREMENT with the
// unit's canonical base and scaling factor (callable conversions for
// temperature)".
func Convert(symbol string, value decimal.Decimal) (canonicalSymbol string, converted decimal.Decimal, ok bool) {
	c, ok := SIUnits[symbol]
	if !ok {
		return "", decimal.Zero, false
	}
	if c.Convert != nil {
		f, _ := value.Float64()
		return c.Symbol, decimal.NewFromFloat(c.Convert(f)), true
	}
	return c.Symbol, value.Mul(decimal.NewFromFloat(c.Scale)), true
}

// IsUnitSymbol reports whether w is one of the recognized SI-unit symbols
// (used by the raw lexer to decide that a whole-alphabetic chunk is a WORD
// even when it looks unusual, e.g. "°C").
func IsUnitSymbol(w string) bool {
	_, ok := SIUnits[w]
	return ok
}
