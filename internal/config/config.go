package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

//go:embed defaults.toml
var defaultsToml string

var (
	cfg     *Config
	once    sync.Once
	loadErr error
)

// Load initializes configuration from embedded defaults and user config
// files. Safe to call multiple times; only loads once.
func Load() (*Config, error) {
	once.Do(func() {
		cfg, loadErr = load()
	})
	return cfg, loadErr
}

// Get returns the loaded configuration. Panics if Load() hasn't been called
// or failed.
func Get() *Config {
	if cfg == nil {
		panic("config.Load() must be called before config.Get()")
	}
	return cfg
}

// load performs the actual configuration loading: embedded defaults, then
// an optional ~/.icetokrc.toml, then the XDG-standard
// ~/.config/icetok/config.toml, each later file overriding the former.
func load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	if err := v.ReadConfig(strings.NewReader(defaultsToml)); err != nil {
		panic("invalid embedded defaults.toml: " + err.Error())
	}

	home, err := os.UserHomeDir()
	if err == nil && home != "" {
		fallbackPath := filepath.Join(home, ".icetokrc.toml")
		if _, statErr := os.Stat(fallbackPath); statErr == nil {
			v.SetConfigFile(fallbackPath)
			_ = v.MergeInConfig()
		}

		xdgPath := filepath.Join(home, ".config", "icetok", "config.toml")
		if _, statErr := os.Stat(xdgPath); statErr == nil {
			v.SetConfigFile(xdgPath)
			_ = v.MergeInConfig()
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Reload forces a fresh config load. Use for testing only.
func Reload() (*Config, error) {
	once = sync.Once{}
	cfg = nil
	loadErr = nil
	return Load()
}

// Error returns any error from the last load attempt.
func Error() error {
	return loadErr
}
