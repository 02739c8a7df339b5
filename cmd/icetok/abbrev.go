package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mideind/icetok/internal/abbrev"
	"github.com/mideind/icetok/internal/config"
)

// loadAbbrevTable builds the abbreviation table the particle coalescer
// consults from cfg.Abbrev.FilePath, if one was configured. A ".yml"/
// ".yaml" path is parsed with LoadYAML, anything else with the INI-like
// LoadFile format. A nil table (FilePath unset) leaves icetok.Options to
// fall back to abbrev.Default's built-in table.
func loadAbbrevTable(cfg *config.Config) (*abbrev.Table, error) {
	path := cfg.Abbrev.FilePath
	if path == "" {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open abbreviation file: %w", err)
	}
	defer f.Close()

	table := abbrev.New()
	if strings.HasSuffix(path, ".yml") || strings.HasSuffix(path, ".yaml") {
		err = table.LoadYAML(f)
	} else {
		err = table.LoadFile(f)
	}
	if err != nil {
		return nil, fmt.Errorf("load abbreviation file %s: %w", path, err)
	}
	return table, nil
}
