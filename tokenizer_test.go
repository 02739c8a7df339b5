package icetok

import (
	"strings"
	"testing"

	"github.com/mideind/icetok/tok"
)

func TestTokenize_FiltersXEnd(t *testing.T) {
	toks := Tokenize("Halló heimur.", DefaultOptions())
	for _, tt := range toks {
		if tt.Kind == tok.X_END {
			t.Fatalf("X_END leaked into Tokenize() result")
		}
	}
	if len(toks) == 0 {
		t.Fatal("expected at least one token")
	}
}

func TestGenerateRawTokens_IsStage1Only(t *testing.T) {
	raw := GenerateRawTokens("Halló heimur", DefaultOptions())
	if len(raw) == 0 {
		t.Fatal("expected raw tokens")
	}
	for _, tt := range raw {
		if tt.Kind == tok.S_BEGIN || tt.Kind == tok.S_END {
			t.Errorf("stage-1 output should carry no sentence markers, got %v", tt.Kind)
		}
	}
}

func TestCorrectSpaces(t *testing.T) {
	got := CorrectSpaces("Hæ , heimur !")
	if strings.Contains(got, " ,") || strings.Contains(got, " !") {
		t.Errorf("CorrectSpaces left space before punctuation: %q", got)
	}
}

func TestMarkParagraphs(t *testing.T) {
	got := MarkParagraphs("fyrsta\n\nönnur")
	want := "[[ fyrsta ]]\n\n[[ önnur ]]"
	if got != want {
		t.Errorf("MarkParagraphs = %q, want %q", got, want)
	}
}

func TestParagraphs_NoMarkersIsOneParagraph(t *testing.T) {
	toks := []tok.Tok{tok.New(tok.WORD, "orð", "orð")}
	paras := Paragraphs(toks)
	if len(paras) != 1 {
		t.Fatalf("got %d paragraphs, want 1", len(paras))
	}
	if paras[0].SentenceStartIndex != 0 {
		t.Errorf("SentenceStartIndex = %d, want 0", paras[0].SentenceStartIndex)
	}
}

func TestParagraphs_SplitsOnMarkers(t *testing.T) {
	toks := []tok.Tok{
		tok.Structural(tok.P_BEGIN),
		tok.Structural(tok.S_BEGIN),
		tok.New(tok.WORD, "eitt", "eitt"),
		tok.Structural(tok.S_END),
		tok.Structural(tok.P_END),
		tok.Structural(tok.P_BEGIN),
		tok.Structural(tok.S_BEGIN),
		tok.New(tok.WORD, "tvö", "tvö"),
		tok.Structural(tok.S_END),
		tok.Structural(tok.P_END),
	}
	paras := Paragraphs(toks)
	if len(paras) != 2 {
		t.Fatalf("got %d paragraphs, want 2", len(paras))
	}
}

func TestCalculateIndexes(t *testing.T) {
	toks := []tok.Tok{
		tok.New(tok.WORD, "ab", "ab"),
		tok.New(tok.WORD, "cde", "cde"),
	}
	chars, bytes := CalculateIndexes(toks, false)
	if len(chars) != 2 || chars[0] != 0 || chars[1] != 2 {
		t.Errorf("chars = %v, want [0 2]", chars)
	}
	if len(bytes) != 2 || bytes[0] != 0 || bytes[1] != 2 {
		t.Errorf("bytes = %v, want [0 2]", bytes)
	}
}

func TestCalculateIndexes_LastIsEnd(t *testing.T) {
	toks := []tok.Tok{tok.New(tok.WORD, "ab", "ab")}
	chars, _ := CalculateIndexes(toks, true)
	if len(chars) != 2 || chars[1] != 2 {
		t.Errorf("chars = %v, want trailing entry at 2", chars)
	}
}

func TestDetokenizeAndTextFromTokens_Agree(t *testing.T) {
	toks := []tok.Tok{
		tok.New(tok.WORD, "Hæ", "Hæ"),
		tok.New(tok.PUNCTUATION, ",", ","),
		tok.New(tok.WORD, "heimur", "heimur"),
	}
	if got, want := Detokenize(toks, false), TextFromTokens(toks); got != want {
		t.Errorf("Detokenize(false) = %q, TextFromTokens = %q, want equal", got, want)
	}
}

func TestParseTokens_RoundTrips(t *testing.T) {
	original := tok.New(tok.WORD, "próf", "próf")
	data, err := original.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON error: %v", err)
	}
	toks := ParseTokens([]string{string(data), "", "not json"})
	if len(toks) != 1 {
		t.Fatalf("got %d tokens, want 1 (malformed lines skipped)", len(toks))
	}
	if toks[0].Txt != "próf" || toks[0].Kind != tok.WORD {
		t.Errorf("got %+v", toks[0])
	}
}
