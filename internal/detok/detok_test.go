package detok

import (
	"testing"

	"github.com/mideind/icetok/tok"
)

func TestCorrectSpaces_RemovesSpaceBeforeRightPunctuation(t *testing.T) {
	got := CorrectSpaces("Hæ , heimur !")
	want := "Hæ, heimur!"
	if got != want {
		t.Errorf("CorrectSpaces = %q, want %q", got, want)
	}
}

func TestCorrectSpaces_LeftPunctuationKeepsFollowingWordTight(t *testing.T) {
	got := CorrectSpaces("sagði ( innskot ) eitthvað")
	if got != "sagði (innskot) eitthvað" {
		t.Errorf("CorrectSpaces = %q, want %q", got, "sagði (innskot) eitthvað")
	}
}

func TestDetokenize_JoinsWordsWithSpacingMatrix(t *testing.T) {
	toks := []tok.Tok{
		tok.New(tok.WORD, "Hæ", "Hæ"),
		tok.New(tok.PUNCTUATION, ",", ","),
		tok.New(tok.WORD, "heimur", "heimur"),
	}
	got := Detokenize(toks, Options{})
	if got != "Hæ, heimur" {
		t.Errorf("Detokenize = %q, want %q", got, "Hæ, heimur")
	}
}

func TestDetokenize_StructuralTokensAreInvisible(t *testing.T) {
	toks := []tok.Tok{
		tok.Structural(tok.P_BEGIN),
		tok.Structural(tok.S_BEGIN),
		tok.New(tok.WORD, "eitt", "eitt"),
		tok.Structural(tok.S_END),
		tok.Structural(tok.P_END),
	}
	got := Detokenize(toks, Options{})
	if got != "eitt" {
		t.Errorf("Detokenize = %q, want %q", got, "eitt")
	}
}

func TestDetokenize_MultipleSentencesJoinedWithSpace(t *testing.T) {
	toks := []tok.Tok{
		tok.Structural(tok.S_BEGIN),
		tok.New(tok.WORD, "eitt", "eitt"),
		tok.Structural(tok.S_END),
		tok.Structural(tok.S_BEGIN),
		tok.New(tok.WORD, "tvö", "tvö"),
		tok.Structural(tok.S_END),
	}
	got := Detokenize(toks, Options{})
	if got != "eitt tvö" {
		t.Errorf("Detokenize = %q, want %q", got, "eitt tvö")
	}
}

func TestDetokenize_NormalizeCollapsesRepeatedEndPunctuation(t *testing.T) {
	toks := []tok.Tok{
		tok.New(tok.WORD, "Vá", "Vá"),
		tok.New(tok.PUNCTUATION, "...", "..."),
	}
	got := Detokenize(toks, Options{Normalize: true})
	if got != "Vá …" {
		t.Errorf("Detokenize(Normalize) = %q, want %q", got, "Vá …")
	}
}

func TestDetokenize_NormalizeRewritesStraightQuotesAlternately(t *testing.T) {
	toks := []tok.Tok{
		tok.New(tok.PUNCTUATION, "\"", "\""),
		tok.New(tok.WORD, "orð", "orð"),
		tok.New(tok.PUNCTUATION, "\"", "\""),
	}
	// A bare '"' classifies as CENTER spacing, so the unnormalized render
	// pads both sides; normalize then alternates the glyph open/close.
	got := Detokenize(toks, Options{Normalize: true})
	if got != "„ orð “" {
		t.Errorf("Detokenize(Normalize) = %q, want %q", got, "„ orð “")
	}
}
