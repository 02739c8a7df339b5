package tok

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestToJSON_FromJSON_RoundTrip(t *testing.T) {
	nt := New(NUMBER, "12", "12")
	nt.Val.Number = decimal.NewFromInt(12)

	data, err := nt.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON error: %v", err)
	}

	got, err := FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON error: %v", err)
	}
	if got.Kind != NUMBER || got.Txt != "12" || !got.Val.Number.Equal(decimal.NewFromInt(12)) {
		t.Errorf("round-trip mismatch: %+v", got)
	}
	if len(got.Spans) != len(nt.Spans) {
		t.Errorf("Spans lost across round-trip: got %v, want %v", got.Spans, nt.Spans)
	}
}

func TestFromJSON_UnknownKindBecomesUnknown(t *testing.T) {
	got, err := FromJSON([]byte(`{"kind":"NOT_A_REAL_KIND","txt":"x"}`))
	if err != nil {
		t.Fatalf("FromJSON error: %v", err)
	}
	if got.Kind != UNKNOWN {
		t.Errorf("Kind = %v, want UNKNOWN", got.Kind)
	}
}
