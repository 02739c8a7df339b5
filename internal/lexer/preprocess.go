package lexer

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/mideind/icetok/internal/definitions"
)

// Options controls the raw lexer's optional preprocessing and chunk rules
// (spec.md §4.2, §6). The zero value matches the documented defaults except
// ReplaceCompositeGlyphs, whose default is true — callers get it by using
// DefaultOptions().
type Options struct {
	ReplaceHTMLEscapes     bool
	ReplaceCompositeGlyphs bool

	// OneSentPerLine, when true, makes fillChunk emit an S_SPLIT marker at
	// every newline so stage 3 can force a sentence boundary there
	// regardless of punctuation (spec.md §6's one_sent_per_line).
	OneSentPerLine bool

	// KludgyOrdinals controls whether forms like "1sti"/"4ra" are left
	// alone, rewritten to their spelled-out word, or translated to ORDINAL
	// (spec.md §6's handle_kludgy_ordinals).
	KludgyOrdinals KludgyOrdinalMode
}

// DefaultOptions returns the documented default option set.
func DefaultOptions() Options {
	return Options{ReplaceHTMLEscapes: false, ReplaceCompositeGlyphs: true, KludgyOrdinals: PassThrough}
}

// preprocess runs the three unconditional/optional passes of spec.md §4.2
// over original before whitespace splitting: HTML entity expansion,
// composite-glyph collapsing, and zero-width/soft-hyphen stripping. It
// returns the rewritten rune buffer alongside a parallel origins slice
// mapping each output rune back to a rune index in original (spec.md's
// "origin_spans still map back to the &…; substring").
func preprocess(original []rune, opts Options) (text []rune, origins []int) {
	text = make([]rune, 0, len(original))
	origins = make([]int, 0, len(original))

	i := 0
	for i < len(original) {
		r := original[i]

		switch r {
		case definitions.SoftHyphen, definitions.ZeroWidthSp, definitions.ZeroWidthNBSP:
			i++
			continue
		}

		if opts.ReplaceHTMLEscapes && r == '&' {
			if expansion, consumed, ok := matchHTMLEntity(original[i:]); ok {
				for _, er := range expansion {
					text = append(text, er)
					origins = append(origins, i)
				}
				i += consumed
				continue
			}
		}

		if opts.ReplaceCompositeGlyphs && i+1 < len(original) {
			// A base vowel immediately followed by a combining acute/diaeresis
			// composes to a single precomposed Icelandic letter under NFC;
			// anything norm.NFC can't fold into one rune is left alone.
			if composed := norm.NFC.String(string(original[i : i+2])); utf8.RuneCountInString(composed) == 1 {
				text = append(text, []rune(composed)[0])
				origins = append(origins, i)
				i += 2
				continue
			}
		}

		text = append(text, r)
		origins = append(origins, i)
		i++
	}
	return text, origins
}

// matchHTMLEntity attempts to parse an HTML entity starting at buf[0]=='&'.
// It returns the expansion text, the number of runes consumed (including the
// leading '&' and trailing ';'), and whether a match was found.
func matchHTMLEntity(buf []rune) (expansion string, consumed int, ok bool) {
	limit := len(buf)
	if limit > 12 {
		limit = 12
	}
	semi := -1
	for j := 1; j < limit; j++ {
		if buf[j] == ';' {
			semi = j
			break
		}
	}
	if semi < 0 {
		return "", 0, false
	}
	body := string(buf[1:semi])
	consumed = semi + 1

	if strings.HasPrefix(body, "#x") || strings.HasPrefix(body, "#X") {
		if n, err := strconv.ParseInt(body[2:], 16, 32); err == nil {
			return string(rune(n)), consumed, true
		}
		return "", 0, false
	}
	if strings.HasPrefix(body, "#") {
		if n, err := strconv.ParseInt(body[1:], 10, 32); err == nil {
			return string(rune(n)), consumed, true
		}
		return "", 0, false
	}
	if rep, found := definitions.HTMLEntities[body]; found {
		return rep, consumed, true
	}
	return "", 0, false
}
