// Package abbrev implements the abbreviation table of spec.md §4.3: a
// lookup from abbreviation surface ("o.s.frv.") to its meaning, gender and
// word class, plus the derived FINISHER/NOT_FINISHER/NAME_FINISHER sets
// that the particle coalescer's sentence-boundary policy (§4.4) consults.
//
// Initialization follows the teacher's cmd/calcmark/config.Load() pattern:
// a sync.Once guards a single loader run; a fresh Table may be built
// independently for tests via New() + LoadFile(), mirroring the original
// tokenizer's Abbreviations.initialize()/add() split.
package abbrev

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// ConfigError reports a malformed abbreviation entry or configuration file.
// It is the only error type the tokenization core returns (spec.md §7);
// everything past initialization is reported as UNKNOWN tokens instead.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string { return e.Message }

// Entry is one resolved abbreviation: its expansion, grammatical gender,
// word class, and the surface form itself (kept for round-tripping into a
// WORD token's Meanings).
type Entry struct {
	Meaning  string
	Gender   string
	Class    string // default "skst" (skammstöfun, "abbreviation")
	Surface  string
}

// Table is the abbreviation lookup table and its derived views. The zero
// value is usable via New().
type Table struct {
	mu sync.Mutex

	dict     map[string]Entry
	meanings map[string]bool
	singles  map[string]bool

	finishers     map[string]bool
	notFinishers  map[string]bool
	nameFinishers map[string]bool
}

// New returns an empty, ready-to-load Table.
func New() *Table {
	return &Table{
		dict:          make(map[string]Entry),
		meanings:      make(map[string]bool),
		singles:       make(map[string]bool),
		finishers:     make(map[string]bool),
		notFinishers:  make(map[string]bool),
		nameFinishers: make(map[string]bool),
	}
}

// Default is the process-wide table used by the public tokenizer facade
// when the caller supplies no table of its own. It is populated once, by
// the first call to Default, mirroring §5's "abbreviation table is initialized once,
// under a mutex" requirement.
var (
	defaultOnce  sync.Once
	defaultTable = New()
)

// Default returns the shared table, initializing it from r exactly once.
// Subsequent calls (with any r, including nil) are no-ops once the first
// call has completed — §4.3's "Initialization is idempotent and
// thread-safe: only one initialization runs to completion".
func Default(r io.Reader) (*Table, error) {
	var err error
	defaultOnce.Do(func() {
		if r != nil {
			err = defaultTable.LoadFile(r)
		}
	})
	return defaultTable, err
}

// ResetDefault clears the shared table and its once-guard. Test-only, the
// way the teacher's config.Reload() resets its sync.Once for isolation.
func ResetDefault() {
	defaultOnce = sync.Once{}
	defaultTable = New()
}

// Add registers a single abbreviation (already split from its modifier
// suffix). Mirrors Abbreviations.add() in the original Python tokenizer.
func (t *Table) Add(abbrev, meaning, gender, class string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.add(abbrev, meaning, gender, class)
}

func (t *Table) add(abbrev, meaning, gender, class string) error {
	finisher, notFinisher, nameFinisher := false, false, false

	switch {
	case strings.HasSuffix(abbrev, "*"):
		finisher = true
		abbrev = abbrev[:len(abbrev)-1]
		if !strings.HasSuffix(abbrev, ".") {
			return &ConfigError{"only abbreviations ending with periods can be sentence finishers"}
		}
	case strings.HasSuffix(abbrev, "!"):
		notFinisher = true
		abbrev = abbrev[:len(abbrev)-1]
		if !strings.HasSuffix(abbrev, ".") {
			return &ConfigError{"only abbreviations ending with periods can be marked as not-finishers"}
		}
	case strings.HasSuffix(abbrev, "^"):
		nameFinisher = true
		abbrev = abbrev[:len(abbrev)-1]
		if !strings.HasSuffix(abbrev, ".") {
			return &ConfigError{"only abbreviations ending with periods can be marked as name finishers"}
		}
	}
	if strings.HasSuffix(abbrev, "!") || strings.HasSuffix(abbrev, "*") || strings.HasSuffix(abbrev, "^") {
		return &ConfigError{"!, * and ^ modifiers are mutually exclusive on abbreviations"}
	}

	if _, exists := t.dict[abbrev]; exists {
		return &ConfigError{fmt.Sprintf("abbreviation %q is defined more than once", abbrev)}
	}
	if class == "" {
		class = "skst"
	}
	t.dict[abbrev] = Entry{Meaning: meaning, Gender: gender, Class: class, Surface: abbrev}
	t.meanings[meaning] = true

	if strings.HasSuffix(abbrev, ".") && !strings.Contains(abbrev[:len(abbrev)-1], ".") {
		t.singles[abbrev[:len(abbrev)-1]] = true
	}
	if finisher {
		t.finishers[abbrev] = true
	}
	if notFinisher || nameFinisher {
		t.notFinishers[abbrev] = true
	}
	if nameFinisher {
		t.nameFinishers[abbrev] = true
	}
	return nil
}

// LoadFile merges the entries of an INI-like `[abbreviations]` section into
// the table. Lines are `abbrev[*|!|^] = "meaning" gender class`; `#`
// introduces a trailing comment; blank lines are ignored (spec.md §9).
// Multiple calls merge non-conflicting entries; a conflicting redefinition
// is a ConfigError (spec.md §5).
func (t *Table) LoadFile(r io.Reader) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if ix := strings.IndexByte(line, '#'); ix >= 0 {
			line = line[:ix]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "[") {
			if line != "[abbreviations]" {
				return &ConfigError{"wrong section header: " + line}
			}
			continue
		}
		if err := t.parseLine(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (t *Table) parseLine(s string) error {
	parts := strings.SplitN(s, "=", 2)
	if len(parts) != 2 {
		return &ConfigError{"wrong format for abbreviation: should be abbreviation = meaning"}
	}
	abbrev := strings.TrimSpace(parts[0])
	if abbrev == "" {
		return &ConfigError{"missing abbreviation: format should be abbreviation = meaning"}
	}

	rest := strings.TrimSpace(parts[1])
	segments := strings.Split(rest, "\"")
	if len(segments) < 2 {
		return &ConfigError{"missing quoted meaning for abbreviation " + abbrev}
	}
	meaning := segments[1]

	gender := "hk" // default: neutral
	class := ""
	if len(segments) >= 3 {
		trailer := strings.TrimSpace(segments[len(segments)-1])
		if trailer != "" {
			fields := strings.Fields(trailer)
			if len(fields) >= 1 {
				gender = fields[0]
			}
			if len(fields) >= 2 {
				class = fields[1]
			}
		}
	}
	return t.add(abbrev, meaning, gender, class)
}

// yamlEntry is one record of a YAML-format abbreviation fixture: a list of
// {abbrev, meaning, gender, class} maps. This is an alternate source used
// by tests and fixtures alongside LoadFile's INI-like production format.
type yamlEntry struct {
	Abbrev  string `yaml:"abbrev"`
	Meaning string `yaml:"meaning"`
	Gender  string `yaml:"gender"`
	Class   string `yaml:"class"`
}

// LoadYAML merges entries from a YAML abbreviation fixture into the
// table, applying the same FINISHER/NOT_FINISHER/NAME_FINISHER modifier
// and duplicate-entry rules as LoadFile.
func (t *Table) LoadYAML(r io.Reader) error {
	var entries []yamlEntry
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		return &ConfigError{"invalid YAML abbreviation fixture: " + err.Error()}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for _, e := range entries {
		if err := t.add(e.Abbrev, e.Meaning, e.Gender, e.Class); err != nil {
			return err
		}
	}
	return nil
}

// HasMeaning reports whether abbrev (with its trailing period) is a known
// abbreviation.
func (t *Table) HasMeaning(abbrev string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.dict[abbrev]
	return ok
}

// Lookup returns the Entry for abbrev, if any.
func (t *Table) Lookup(abbrev string) (Entry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.dict[abbrev]
	return e, ok
}

// IsSingle reports whether stem (without its trailing period) is an
// abbreviation whose only period is the trailing one — used to decide when
// a bare word followed by "." should be read as that abbreviation.
func (t *Table) IsSingle(stem string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.singles[stem]
}

// IsFinisher, IsNotFinisher and IsNameFinisher classify a (period-including)
// abbreviation surface per its §4.3 modifier.
func (t *Table) IsFinisher(abbrev string) bool { t.mu.Lock(); defer t.mu.Unlock(); return t.finishers[abbrev] }
func (t *Table) IsNotFinisher(abbrev string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.notFinishers[abbrev]
}
func (t *Table) IsNameFinisher(abbrev string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.nameFinishers[abbrev]
}
