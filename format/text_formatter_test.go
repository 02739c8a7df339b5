package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mideind/icetok/tok"
)

func TestTextFormatter_OneSentencePerLine(t *testing.T) {
	toks := []tok.Tok{
		tok.Structural(tok.S_BEGIN),
		tok.New(tok.WORD, "Halló", "Halló"),
		tok.New(tok.PUNCTUATION, ",", ","),
		tok.New(tok.WORD, "heimur", "heimur"),
		tok.New(tok.PUNCTUATION, "!", "!"),
		tok.Structural(tok.S_END),
		tok.Structural(tok.S_BEGIN),
		tok.New(tok.WORD, "Bless", "Bless"),
		tok.New(tok.PUNCTUATION, ".", "."),
		tok.Structural(tok.S_END),
	}

	var buf bytes.Buffer
	if err := (&TextFormatter{}).Format(&buf, toks, Options{}); err != nil {
		t.Fatalf("Format error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	if lines[0] != "Halló, heimur!" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "Bless." {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestTextFormatter_Moses(t *testing.T) {
	toks := []tok.Tok{
		tok.New(tok.PUNCTUATION, "(", "("),
		tok.New(tok.WORD, "dæmi", "dæmi"),
		tok.New(tok.PUNCTUATION, ")", ")"),
	}
	var buf bytes.Buffer
	if err := (&TextFormatter{}).Format(&buf, toks, Options{Moses: true}); err != nil {
		t.Fatalf("Format error: %v", err)
	}
	got := strings.TrimRight(buf.String(), "\n")
	if !strings.Contains(got, "-lrb-") || !strings.Contains(got, "-rrb-") {
		t.Errorf("got %q, want moses-escaped parens", got)
	}
}

func TestTextFormatter_NoBoundariesTreatedAsOneSentence(t *testing.T) {
	toks := []tok.Tok{
		tok.New(tok.WORD, "Eitt", "Eitt"),
		tok.New(tok.WORD, "orð", "orð"),
	}
	var buf bytes.Buffer
	if err := (&TextFormatter{}).Format(&buf, toks, Options{}); err != nil {
		t.Fatalf("Format error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), buf.String())
	}
}
