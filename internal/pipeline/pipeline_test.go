package pipeline

import (
	"strings"
	"testing"

	"github.com/mideind/icetok/internal/abbrev"
	"github.com/mideind/icetok/internal/lexer"
	"github.com/mideind/icetok/tok"
)

// fakeSource lets stage-level tests feed a scripted token slice without
// going through the stage-1 lexer.
type fakeSource struct {
	toks []tok.Tok
	i    int
}

func (f *fakeSource) Next() (tok.Tok, bool) {
	if f.i >= len(f.toks) {
		return tok.Tok{}, false
	}
	t := f.toks[f.i]
	f.i++
	return t, true
}

func drain(s TokenSource) []tok.Tok {
	var out []tok.Tok
	for {
		t, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, t)
	}
}

func TestSentenceSegmenter_WrapsSingleSentence(t *testing.T) {
	src := &fakeSource{toks: []tok.Tok{
		tok.New(tok.WORD, "eitt", "eitt"),
		tok.New(tok.PUNCTUATION, ".", "."),
	}}
	got := drain(NewSentenceSegmenter(src, DefaultOptions()))
	want := []tok.Kind{tok.S_BEGIN, tok.WORD, tok.PUNCTUATION, tok.S_END}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i, k := range want {
		if got[i].Kind != k {
			t.Errorf("got[%d].Kind = %v, want %v", i, got[i].Kind, k)
		}
	}
}

func TestSentenceSegmenter_AbsorbsTrailingFinishers(t *testing.T) {
	src := &fakeSource{toks: []tok.Tok{
		tok.New(tok.WORD, "eitt", "eitt"),
		tok.New(tok.PUNCTUATION, ".", "."),
		tok.New(tok.PUNCTUATION, "”", "”"),
		tok.New(tok.WORD, "tvö", "tvö"),
	}}
	got := drain(NewSentenceSegmenter(src, DefaultOptions()))
	// First sentence: S_BEGIN eitt . ” S_END, then second sentence S_BEGIN tvö S_END.
	want := []tok.Kind{tok.S_BEGIN, tok.WORD, tok.PUNCTUATION, tok.PUNCTUATION, tok.S_END, tok.S_BEGIN, tok.WORD, tok.S_END}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i, k := range want {
		if got[i].Kind != k {
			t.Errorf("got[%d].Kind = %v, want %v", i, got[i].Kind, k)
		}
	}
}

func TestSentenceSegmenter_ParagraphBoundaryClosesOpenSentence(t *testing.T) {
	src := &fakeSource{toks: []tok.Tok{
		tok.New(tok.WORD, "eitt", "eitt"),
		tok.Structural(tok.P_END),
	}}
	got := drain(NewSentenceSegmenter(src, DefaultOptions()))
	want := []tok.Kind{tok.S_BEGIN, tok.WORD, tok.S_END, tok.P_END}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i, k := range want {
		if got[i].Kind != k {
			t.Errorf("got[%d].Kind = %v, want %v", i, got[i].Kind, k)
		}
	}
}

// buildFull runs the whole stage 2-6 pipeline over raw text via the real
// lexer, the way the public facade does.
func buildFull(t *testing.T, input string, opts Options) []tok.Tok {
	t.Helper()
	table, err := abbrev.Default(strings.NewReader(""))
	if err != nil {
		t.Fatalf("abbrev.Default: %v", err)
	}
	lexOpts := lexer.DefaultOptions()
	lexOpts.OneSentPerLine = opts.OneSentPerLine
	lexOpts.KludgyOrdinals = opts.HandleKludgyOrdinals
	lx := lexer.New(input, lexOpts)
	return drain(Build(lx, Deps{Abbrev: table}, opts))
}

func findByKind(toks []tok.Tok, k tok.Kind) []tok.Tok {
	var out []tok.Tok
	for _, t := range toks {
		if t.Kind == k {
			out = append(out, t)
		}
	}
	return out
}

func TestPipeline_PercentWordFoldsOnlyWhenCoalesceEnabled(t *testing.T) {
	off := buildFull(t, "50 prósent", DefaultOptions())
	if pcts := findByKind(off, tok.PERCENT); len(pcts) != 0 {
		t.Fatalf("CoalescePercent=false: got %d PERCENT tokens, want 0: %v", len(pcts), off)
	}

	opts := DefaultOptions()
	opts.CoalescePercent = true
	on := buildFull(t, "50 prósent", opts)
	pcts := findByKind(on, tok.PERCENT)
	if len(pcts) != 1 {
		t.Fatalf("CoalescePercent=true: got %d PERCENT tokens, want 1: %v", len(pcts), on)
	}
	if pcts[0].Txt != "50 prósent" {
		t.Errorf("PERCENT token Txt = %q, want \"50 prósent\"", pcts[0].Txt)
	}
}

func TestPipeline_MultiplierWordComposesWithNumber(t *testing.T) {
	toks := buildFull(t, "2 milljón", DefaultOptions())
	nums := findByKind(toks, tok.NUMBER)
	if len(nums) != 1 {
		t.Fatalf("got %d NUMBER tokens, want 1: %v", len(nums), toks)
	}
	f, _ := nums[0].Val.Number.Float64()
	if f != 2e6 {
		t.Errorf("NUMBER value = %v, want 2000000", f)
	}
}

func TestPipeline_IsoCurrencyCodeFoldsToAmount(t *testing.T) {
	toks := buildFull(t, "200 USD", DefaultOptions())
	amts := findByKind(toks, tok.AMOUNT)
	if len(amts) != 1 {
		t.Fatalf("got %d AMOUNT tokens, want 1: %v", len(amts), toks)
	}
	if amts[0].Val.ISO != "USD" {
		t.Errorf("AMOUNT.Val.ISO = %q, want USD", amts[0].Val.ISO)
	}
}

func TestPipeline_OrdinalMonthYearFoldsToDate(t *testing.T) {
	// Stage 4 folds "3. janúar 2020" into a DATE with all three fields set;
	// stage 5 then reclassifies a fully-populated DATE as DATEABS.
	toks := buildFull(t, "3. janúar 2020", DefaultOptions())
	dates := findByKind(toks, tok.DATEABS)
	if len(dates) != 1 {
		t.Fatalf("got %d DATEABS tokens, want 1: %v", len(dates), toks)
	}
	d := dates[0].Val.Date
	if d.Year != 2020 || d.Month != 1 || d.Day != 3 {
		t.Errorf("DATE = %+v, want {2020 1 3}", d)
	}
}

func TestPipeline_DateFollowedByTimeFoldsToTimestamp(t *testing.T) {
	// Stage 5 reclassifies the DATEABS and then folds the trailing TIME into
	// a TIMESTAMPABS.
	toks := buildFull(t, "3. janúar 2020 14:30", DefaultOptions())
	stamps := findByKind(toks, tok.TIMESTAMPABS)
	if len(stamps) != 1 {
		t.Fatalf("got %d TIMESTAMPABS tokens, want 1: %v", len(stamps), toks)
	}
	ts := stamps[0].Val.Timestamp
	if ts.Year != 2020 || ts.Month != 1 || ts.Day != 3 || ts.Hour != 14 || ts.Minute != 30 {
		t.Errorf("TIMESTAMP = %+v, want {2020 1 3 14 30 0}", ts)
	}
}

func TestPipeline_BareMonthAndYearFoldsToDateRel(t *testing.T) {
	// No day given, so stage 5's splitDate classifies this DATEREL, not ABS.
	toks := buildFull(t, "janúar 2020", DefaultOptions())
	dates := findByKind(toks, tok.DATEREL)
	if len(dates) != 1 {
		t.Fatalf("got %d DATEREL tokens, want 1: %v", len(dates), toks)
	}
	d := dates[0].Val.Date
	if d.Year != 2020 || d.Month != 1 || d.Day != 0 {
		t.Errorf("DATE = %+v, want {2020 1 0}", d)
	}
}

func TestPipeline_ConvertNumbersRewritesToIcelandicPunctuation(t *testing.T) {
	off := buildFull(t, "12345", DefaultOptions())
	nums := findByKind(off, tok.NUMBER)
	if len(nums) != 1 || nums[0].Txt != "12345" {
		t.Fatalf("ConvertNumbers=false: got %+v, want Txt \"12345\" unchanged", nums)
	}

	opts := DefaultOptions()
	opts.ConvertNumbers = true
	on := buildFull(t, "12345", opts)
	nums = findByKind(on, tok.NUMBER)
	if len(nums) != 1 || nums[0].Txt != "12.345" {
		t.Fatalf("ConvertNumbers=true: got %+v, want Txt \"12.345\"", nums)
	}
}

func TestPipeline_ConvertTelnosRewritesToNormalizedForm(t *testing.T) {
	opts := DefaultOptions()
	opts.ConvertTelnos = true
	toks := buildFull(t, "5551234", opts)
	telnos := findByKind(toks, tok.TELNO)
	if len(telnos) != 1 {
		t.Fatalf("got %d TELNO tokens, want 1: %v", len(telnos), toks)
	}
	if telnos[0].Txt != "555-1234" {
		t.Errorf("TELNO Txt = %q, want \"555-1234\"", telnos[0].Txt)
	}
}

func TestPipeline_ConvertMeasurementsCanonicalizesSpacing(t *testing.T) {
	opts := DefaultOptions()
	opts.ConvertMeasurements = true
	toks := buildFull(t, "200°C", opts)
	meas := findByKind(toks, tok.MEASUREMENT)
	if len(meas) != 1 {
		t.Fatalf("got %d MEASUREMENT tokens, want 1: %v", len(meas), toks)
	}
	if meas[0].Txt != "200 °C" {
		t.Errorf("MEASUREMENT Txt = %q, want \"200 °C\"", meas[0].Txt)
	}
}

func TestPipeline_OneSentPerLineForcesBoundaryAtNewline(t *testing.T) {
	opts := DefaultOptions()
	opts.OneSentPerLine = true
	toks := buildFull(t, "eitt tvö\nþrjú", opts)
	begins := findByKind(toks, tok.S_BEGIN)
	ends := findByKind(toks, tok.S_END)
	if len(begins) != 2 || len(ends) != 2 {
		t.Fatalf("got %d S_BEGIN / %d S_END, want 2/2: %v", len(begins), len(ends), toks)
	}
	for _, k := range []tok.Kind{tok.S_SPLIT} {
		if len(findByKind(toks, k)) != 0 {
			t.Errorf("S_SPLIT marker leaked into final output: %v", toks)
		}
	}
}

func TestPipeline_OneSentPerLineDisabledKeepsLinesJoined(t *testing.T) {
	toks := buildFull(t, "eitt tvö\nþrjú", DefaultOptions())
	begins := findByKind(toks, tok.S_BEGIN)
	if len(begins) != 1 {
		t.Fatalf("OneSentPerLine=false: got %d S_BEGIN, want 1 (no forced split): %v", len(begins), toks)
	}
}

func TestPipeline_HandleKludgyOrdinalsModifyRewritesToWord(t *testing.T) {
	opts := DefaultOptions()
	opts.HandleKludgyOrdinals = Modify
	toks := buildFull(t, "1sti", opts)
	words := findByKind(toks, tok.WORD)
	if len(words) != 1 || words[0].Txt != "fyrsti" {
		t.Fatalf("HandleKludgyOrdinals=Modify: got %+v, want one WORD \"fyrsti\"", toks)
	}
}

func TestPipeline_HandleKludgyOrdinalsTranslateFoldsToOrdinal(t *testing.T) {
	opts := DefaultOptions()
	opts.HandleKludgyOrdinals = Translate
	toks := buildFull(t, "5ti", opts)
	ords := findByKind(toks, tok.ORDINAL)
	if len(ords) != 1 || ords[0].Val.Ordinal != 5 {
		t.Fatalf("HandleKludgyOrdinals=Translate: got %+v, want one ORDINAL(5)", toks)
	}
}

func TestPipeline_HandleKludgyOrdinalsPassThroughLeavesSplit(t *testing.T) {
	toks := buildFull(t, "1sti", DefaultOptions())
	want := []tok.Kind{tok.S_BEGIN, tok.NUMBER, tok.WORD, tok.S_END}
	got := make([]tok.Kind, len(toks))
	for i, tt := range toks {
		got[i] = tt.Kind
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("toks[%d].Kind = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPipeline_SentenceBoundariesSurroundEveryToken(t *testing.T) {
	toks := buildFull(t, "Halló heimur. Annað orð.", DefaultOptions())
	begins := findByKind(toks, tok.S_BEGIN)
	ends := findByKind(toks, tok.S_END)
	if len(begins) != 2 || len(ends) != 2 {
		t.Fatalf("got %d S_BEGIN / %d S_END, want 2/2: %v", len(begins), len(ends), toks)
	}
}
