package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mideind/icetok/tok"
)

func TestCSVFormatter_Format(t *testing.T) {
	toks := []tok.Tok{
		tok.New(tok.WORD, "hæ", "hæ"),
		tok.Structural(tok.S_BEGIN), // no Txt: skipped
		tok.New(tok.PUNCTUATION, ".", "."),
	}
	var buf bytes.Buffer
	if err := (&CSVFormatter{}).Format(&buf, toks, Options{}); err != nil {
		t.Fatalf("Format error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	if lines[0] != `WORD,"hæ",` {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != `PUNCTUATION,".",` {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestQuoteCSV_EscapesQuotesAndBackslashes(t *testing.T) {
	got := quoteCSV(`a"b\c`)
	want := `"a\"b\\c"`
	if got != want {
		t.Errorf("quoteCSV = %q, want %q", got, want)
	}
}
