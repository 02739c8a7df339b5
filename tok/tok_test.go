package tok

import "testing"

func TestNew_SpansIdentity(t *testing.T) {
	tt := New(WORD, "halló", "halló")
	if len(tt.Spans) != tt.Len() {
		t.Fatalf("len(Spans) = %d, want %d", len(tt.Spans), tt.Len())
	}
	for i, s := range tt.Spans {
		if s != i {
			t.Errorf("Spans[%d] = %d, want %d", i, s, i)
		}
	}
}

func TestStructural_NoText(t *testing.T) {
	tt := Structural(S_BEGIN)
	if tt.Txt != "" || tt.Original != "" || len(tt.Spans) != 0 {
		t.Errorf("Structural(S_BEGIN) = %+v, want empty text/original/spans", tt)
	}
	if tt.Kind != S_BEGIN {
		t.Errorf("Kind = %v, want S_BEGIN", tt.Kind)
	}
}

func TestSplit_ReassemblesOriginalText(t *testing.T) {
	tt := New(WORD, "halló", "halló")
	l, r := tt.Split(2)
	if l.Txt+r.Txt != tt.Txt {
		t.Errorf("L.Txt+R.Txt = %q, want %q", l.Txt+r.Txt, tt.Txt)
	}
	if l.Original+r.Original != tt.Original {
		t.Errorf("L.Original+R.Original = %q, want %q", l.Original+r.Original, tt.Original)
	}
	if l.Txt != "ha" || r.Txt != "lló" {
		t.Errorf("got L=%q R=%q, want L=\"ha\" R=\"lló\"", l.Txt, r.Txt)
	}
}

func TestSplit_NegativeIndexCountsFromRight(t *testing.T) {
	tt := New(WORD, "halló", "halló")
	l, r := tt.Split(-2)
	if l.Txt != "hal" || r.Txt != "ló" {
		t.Errorf("got L=%q R=%q, want L=\"hal\" R=\"ló\"", l.Txt, r.Txt)
	}
}

func TestSplit_OutOfRangeClamps(t *testing.T) {
	tt := New(WORD, "ha", "ha")
	l, r := tt.Split(100)
	if l.Txt != "ha" || r.Txt != "" {
		t.Errorf("Split(100) = L=%q R=%q, want L=\"ha\" R=\"\"", l.Txt, r.Txt)
	}
}

func TestSubstitute_RemovesAndPinsTrailingRunes(t *testing.T) {
	tt := New(WORD, "halló", "halló")
	got := tt.Substitute(1, 3, "X")
	if got.Txt != "hXló" {
		t.Errorf("Txt = %q, want hXló", got.Txt)
	}
	if got.Original != tt.Original {
		t.Errorf("Original changed: got %q, want %q", got.Original, tt.Original)
	}
	if len(got.Spans) != got.Len() {
		t.Fatalf("len(Spans) = %d, want %d", len(got.Spans), got.Len())
	}
}

func TestSubstitute_EmptyReplacementRemovesSlice(t *testing.T) {
	tt := New(WORD, "halló", "halló")
	got := tt.Substitute(1, 3, "")
	if got.Txt != "hló" {
		t.Errorf("Txt = %q, want hló", got.Txt)
	}
}

func TestSubstituteAll_ReplacesEveryOccurrence(t *testing.T) {
	tt := New(WORD, "aXbXc", "aXbXc")
	got := tt.SubstituteAll("X", "-")
	if got.Txt != "a-b-c" {
		t.Errorf("Txt = %q, want a-b-c", got.Txt)
	}
}

func TestSubstituteAll_EmptyNeedleIsNoop(t *testing.T) {
	tt := New(WORD, "abc", "abc")
	got := tt.SubstituteAll("", "-")
	if got.Txt != "abc" {
		t.Errorf("Txt = %q, want unchanged abc", got.Txt)
	}
}

func TestConcatenate_JoinsTextAndOriginal(t *testing.T) {
	a := New(WORD, "halló", "halló")
	b := New(WORD, "heimur", "heimur")
	got := a.Concatenate(b, " ")
	if got.Txt != "halló heimur" {
		t.Errorf("Txt = %q, want %q", got.Txt, "halló heimur")
	}
	if got.Original != "hallóheimur" {
		t.Errorf("Original = %q, want %q", got.Original, "hallóheimur")
	}
	if len(got.Spans) != got.Len() {
		t.Fatalf("len(Spans) = %d, want %d", len(got.Spans), got.Len())
	}
}

func TestLen_CountsRunesNotBytes(t *testing.T) {
	tt := New(WORD, "þú", "þú")
	if tt.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tt.Len())
	}
}
