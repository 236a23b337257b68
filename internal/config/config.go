package config

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/dshills/linedit/internal/config/loader"
)

// Defaults.
const (
	DefaultLogLevel      = "info"
	DefaultScriptTimeout = "5s"
)

// Levels lists the accepted log.level values.
var Levels = []string{"debug", "info", "warn", "error"}

// Config holds every linedit setting.
type Config struct {
	Log       LogConfig       `toml:"log" yaml:"log"`
	History   HistoryConfig   `toml:"history" yaml:"history"`
	Clipboard ClipboardConfig `toml:"clipboard" yaml:"clipboard"`
	Editor    EditorConfig    `toml:"editor" yaml:"editor"`
	Script    ScriptConfig    `toml:"script" yaml:"script"`

	// Watch reloads the log level when the config file changes.
	Watch bool `toml:"watch" yaml:"watch"`

	// Source is the file the config was read from, or "".
	Source string `toml:"-" yaml:"-"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
	// File receives log output; empty means stderr.
	File string `toml:"file" yaml:"file"`
}

// HistoryConfig configures undo history.
type HistoryConfig struct {
	// MaxEntries bounds the undo stack; zero means unbounded.
	MaxEntries int `toml:"max_entries" yaml:"max_entries"`
}

// ClipboardConfig configures the clipboard.
type ClipboardConfig struct {
	// System mirrors every cut and copy to the OS clipboard.
	System bool `toml:"system" yaml:"system"`
}

// EditorConfig configures the menu front end.
type EditorConfig struct {
	// Prompt prints the menu and input prompts.
	Prompt bool `toml:"prompt" yaml:"prompt"`
}

// ScriptConfig configures the Lua script runner.
type ScriptConfig struct {
	// Timeout aborts a script that runs longer, as a Go duration string.
	// "0" disables the limit.
	Timeout string `toml:"timeout" yaml:"timeout"`
}

// TimeoutDuration returns Timeout parsed. Call Validate first; an
// unparsable value yields zero.
func (s ScriptConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(s.Timeout)
	return d
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: DefaultLogLevel},
		Editor: EditorConfig{Prompt: true},
		Script: ScriptConfig{Timeout: DefaultScriptTimeout},
	}
}

// Load resolves the configuration from defaults, the file at path (if path is
// not empty) and the environment, then validates it.
func Load(path string) (*Config, error) {
	return LoadFS(loader.DefaultFS(), path, loader.NewEnvLoader(loader.DefaultPrefix))
}

// LoadFS is Load with an explicit file system and environment loader.
func LoadFS(fsys loader.FileSystem, path string, env *loader.EnvLoader) (*Config, error) {
	cfg := Default()

	if path != "" {
		found, err := loader.Decode(fsys, path, cfg)
		if err != nil {
			return nil, err
		}
		if found {
			cfg.Source = path
		}
	}

	if env != nil {
		if err := cfg.ApplyEnv(env.Load()); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv sets fields from config path -> raw value pairs. Unknown paths are
// ignored.
func (c *Config) ApplyEnv(values map[string]string) error {
	for path, raw := range values {
		var err error
		switch path {
		case "log.level":
			c.Log.Level = raw
		case "log.file":
			c.Log.File = raw
		case "history.max_entries":
			c.History.MaxEntries, err = strconv.Atoi(raw)
		case "clipboard.system":
			c.Clipboard.System, err = strconv.ParseBool(raw)
		case "editor.prompt":
			c.Editor.Prompt, err = strconv.ParseBool(raw)
		case "script.timeout":
			c.Script.Timeout = raw
		}
		if err != nil {
			return fmt.Errorf("environment %s=%q: %w", path, raw, ErrInvalidValue)
		}
	}
	return nil
}

// Validate checks every setting and returns the first problem found.
func (c *Config) Validate() error {
	if !slices.Contains(Levels, c.Log.Level) {
		return &ValidationError{Path: "log.level", Message: "must be one of debug, info, warn, error", Value: c.Log.Level}
	}
	if c.History.MaxEntries < 0 {
		return &ValidationError{Path: "history.max_entries", Message: "must not be negative", Value: c.History.MaxEntries}
	}
	d, err := time.ParseDuration(c.Script.Timeout)
	if err != nil {
		return &ValidationError{Path: "script.timeout", Message: "must be a duration such as 5s", Value: c.Script.Timeout}
	}
	if d < 0 {
		return &ValidationError{Path: "script.timeout", Message: "must not be negative", Value: c.Script.Timeout}
	}
	return nil
}
