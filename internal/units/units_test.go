package units

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestLookup_KnownAndUnknown(t *testing.T) {
	c, ok := Lookup("km")
	if !ok || c.Symbol != "m" || c.Scale != 1.0e3 {
		t.Errorf("Lookup(\"km\") = %+v, %v, want {m 1000 <nil>}, true", c, ok)
	}
	if _, ok := Lookup("notaunit"); ok {
		t.Error("Lookup(\"notaunit\") reported known, want unknown")
	}
}

func TestConvert_ScaledUnit(t *testing.T) {
	sym, val, ok := Convert("kg", decimal.NewFromInt(2))
	if !ok || sym != "g" || !val.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("Convert(kg, 2) = %q, %v, %v, want g, 2000, true", sym, val, ok)
	}
}

func TestConvert_TemperatureUsesConvertFunc(t *testing.T) {
	sym, val, ok := Convert("°C", decimal.NewFromInt(0))
	if !ok || sym != "K" {
		t.Fatalf("Convert(°C, 0) = %q, %v, %v, want K, ~273.15, true", sym, val, ok)
	}
	f, _ := val.Float64()
	if f < 273.0 || f > 273.3 {
		t.Errorf("Convert(°C, 0) value = %v, want ~273.15", f)
	}
}

func TestConvert_UnknownSymbol(t *testing.T) {
	_, _, ok := Convert("bogus", decimal.NewFromInt(1))
	if ok {
		t.Error("Convert(\"bogus\", ...) reported ok, want false")
	}
}

func TestIsUnitSymbol(t *testing.T) {
	if !IsUnitSymbol("kg") {
		t.Error("IsUnitSymbol(\"kg\") = false, want true")
	}
	if IsUnitSymbol("xyz") {
		t.Error("IsUnitSymbol(\"xyz\") = true, want false")
	}
}
