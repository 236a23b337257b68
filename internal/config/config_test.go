package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/linedit/internal/config/loader"
)

// noEnv is an env loader whose prefix matches nothing.
func noEnv() *loader.EnvLoader {
	return loader.NewEnvLoaderWithMapping("LINEDIT_TEST_UNSET_", map[string]string{})
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Log.Level != "info" {
		t.Errorf("log.level = %q, want info", cfg.Log.Level)
	}
	if cfg.History.MaxEntries != 0 {
		t.Errorf("history.max_entries = %d, want 0", cfg.History.MaxEntries)
	}
	if !cfg.Editor.Prompt {
		t.Error("editor.prompt should default to true")
	}
	if cfg.Script.TimeoutDuration() != 5*time.Second {
		t.Errorf("script.timeout = %q", cfg.Script.Timeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadNoPath(t *testing.T) {
	cfg, err := LoadFS(fstest.MapFS{}, "", noEnv())
	if err != nil {
		t.Fatalf("LoadFS failed: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := LoadFS(fstest.MapFS{}, "linedit.toml", noEnv())
	if err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if cfg.Source != "" {
		t.Errorf("Source = %q, want empty", cfg.Source)
	}
}

func TestLoadTOML(t *testing.T) {
	fsys := fstest.MapFS{
		"linedit.toml": {Data: []byte(`
watch = true

[log]
level = "debug"

[history]
max_entries = 100

[clipboard]
system = true
`)},
	}

	cfg, err := LoadFS(fsys, "linedit.toml", noEnv())
	if err != nil {
		t.Fatalf("LoadFS failed: %v", err)
	}

	want := Default()
	want.Log.Level = "debug"
	want.History.MaxEntries = 100
	want.Clipboard.System = true
	want.Watch = true
	want.Source = "linedit.toml"

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"linedit.yaml": {Data: []byte("editor:\n  prompt: false\nscript:\n  timeout: 250ms\n")},
	}

	cfg, err := LoadFS(fsys, "linedit.yaml", noEnv())
	if err != nil {
		t.Fatalf("LoadFS failed: %v", err)
	}
	if cfg.Editor.Prompt {
		t.Error("editor.prompt should be false")
	}
	if cfg.Script.TimeoutDuration() != 250*time.Millisecond {
		t.Errorf("script.timeout = %q, want 250ms", cfg.Script.Timeout)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("unset log.level changed: %q", cfg.Log.Level)
	}
}

func TestLoadParseError(t *testing.T) {
	fsys := fstest.MapFS{
		"linedit.toml": {Data: []byte("[log]\nverbosity = 3\n")},
	}

	_, err := LoadFS(fsys, "linedit.toml", noEnv())

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("LINEDIT_LOG_LEVEL", "error")
	t.Setenv("LINEDIT_HISTORY_MAX_ENTRIES", "7")
	t.Setenv("LINEDIT_CLIPBOARD_SYSTEM", "true")

	fsys := fstest.MapFS{
		"linedit.toml": {Data: []byte("[log]\nlevel = \"debug\"\n")},
	}

	cfg, err := LoadFS(fsys, "linedit.toml", loader.NewEnvLoader(loader.DefaultPrefix))
	if err != nil {
		t.Fatalf("LoadFS failed: %v", err)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("log.level = %q, want error", cfg.Log.Level)
	}
	if cfg.History.MaxEntries != 7 {
		t.Errorf("history.max_entries = %d, want 7", cfg.History.MaxEntries)
	}
	if !cfg.Clipboard.System {
		t.Error("clipboard.system should be true")
	}
}

func TestApplyEnvInvalid(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
	}{
		{"max entries", map[string]string{"history.max_entries": "lots"}},
		{"clipboard", map[string]string{"clipboard.system": "maybe"}},
		{"prompt", map[string]string{"editor.prompt": "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Default().ApplyEnv(tt.values)
			if !errors.Is(err, ErrInvalidValue) {
				t.Errorf("expected ErrInvalidValue, got %v", err)
			}
		})
	}
}

func TestApplyEnvIgnoresUnknown(t *testing.T) {
	cfg := Default()
	if err := cfg.ApplyEnv(map[string]string{"ui.theme": "dark"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config changed (-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		path   string
	}{
		{"bad level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
		{"negative history", func(c *Config) { c.History.MaxEntries = -1 }, "history.max_entries"},
		{"bad timeout", func(c *Config) { c.Script.Timeout = "soon" }, "script.timeout"},
		{"negative timeout", func(c *Config) { c.Script.Timeout = "-1s" }, "script.timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if !errors.Is(err, ErrValidationFailed) {
				t.Fatalf("expected ErrValidationFailed, got %v", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) || verr.Path != tt.path {
				t.Errorf("got %v, want path %q", err, tt.path)
			}
		})
	}
}

func TestLoadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linedit.yml")
	if err := os.WriteFile(path, []byte("log:\n  level: warn\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, want %q", cfg.Source, path)
	}
}
