package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mideind/icetok/internal/pipeline"
)

func TestLoad_DefaultsOnly(t *testing.T) {
	cfg, err := Reload()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if !cfg.Tokenizer.ConvertNumbers {
		t.Error("expected convert_numbers true by default")
	}
	if !cfg.Tokenizer.ReplaceCompositeGlyphs {
		t.Error("expected replace_composite_glyphs true by default")
	}
	if cfg.Tokenizer.ReplaceHTMLEscapes {
		t.Error("expected replace_html_escapes false by default")
	}
	if cfg.Tokenizer.HandleKludgyOrdinals != "pass-through" {
		t.Errorf("expected default handle_kludgy_ordinals pass-through, got %s", cfg.Tokenizer.HandleKludgyOrdinals)
	}
	if cfg.Abbrev.FilePath != "" {
		t.Errorf("expected empty default abbrev file path, got %s", cfg.Abbrev.FilePath)
	}
}

func TestLoad_UserConfigMerge(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	configDir := filepath.Join(tmpHome, ".config", "icetok")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	userConfig := `[tokenizer]
handle_kludgy_ordinals = "translate"
`
	configPath := filepath.Join(configDir, "config.toml")
	if err := os.WriteFile(configPath, []byte(userConfig), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Reload()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Tokenizer.HandleKludgyOrdinals != "translate" {
		t.Errorf("expected user override translate, got %s", cfg.Tokenizer.HandleKludgyOrdinals)
	}
	if !cfg.Tokenizer.ConvertNumbers {
		t.Error("expected default convert_numbers preserved")
	}
}

func TestLoad_FallbackConfig(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	fallbackConfig := `[abbrev]
file_path = "/etc/icetok/abbrev.conf"
`
	fallbackPath := filepath.Join(tmpHome, ".icetokrc.toml")
	if err := os.WriteFile(fallbackPath, []byte(fallbackConfig), 0644); err != nil {
		t.Fatalf("failed to write fallback config: %v", err)
	}

	cfg, err := Reload()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Abbrev.FilePath != "/etc/icetok/abbrev.conf" {
		t.Errorf("expected fallback override, got %s", cfg.Abbrev.FilePath)
	}
}

func TestLoad_XDGPriorityOverFallback(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	fallbackConfig := `[abbrev]
file_path = "/fallback.conf"
`
	fallbackPath := filepath.Join(tmpHome, ".icetokrc.toml")
	if err := os.WriteFile(fallbackPath, []byte(fallbackConfig), 0644); err != nil {
		t.Fatalf("failed to write fallback: %v", err)
	}

	configDir := filepath.Join(tmpHome, ".config", "icetok")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	xdgConfig := `[abbrev]
file_path = "/xdg.conf"
`
	xdgPath := filepath.Join(configDir, "config.toml")
	if err := os.WriteFile(xdgPath, []byte(xdgConfig), 0644); err != nil {
		t.Fatalf("failed to write XDG config: %v", err)
	}

	cfg, err := Reload()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Abbrev.FilePath != "/xdg.conf" {
		t.Errorf("expected XDG priority, got %s", cfg.Abbrev.FilePath)
	}
}

func TestPipelineOptions_KludgyOrdinalModes(t *testing.T) {
	cases := []struct {
		in   string
		want pipeline.KludgyOrdinalMode
	}{
		{"pass-through", pipeline.PassThrough},
		{"modify", pipeline.Modify},
		{"translate", pipeline.Translate},
		{"", pipeline.PassThrough},
		{"bogus", pipeline.PassThrough},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			c := &Config{Tokenizer: TokenizerConfig{HandleKludgyOrdinals: tc.in}}
			if got := c.PipelineOptions().HandleKludgyOrdinals; got != tc.want {
				t.Errorf("HandleKludgyOrdinals for %q = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
