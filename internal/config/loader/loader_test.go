package loader

import (
	"errors"
	"testing"
	"testing/fstest"
)

type fileConfig struct {
	Log struct {
		Level string `toml:"level" yaml:"level"`
		File  string `toml:"file" yaml:"file"`
	} `toml:"log" yaml:"log"`
	History struct {
		MaxEntries int `toml:"max_entries" yaml:"max_entries"`
	} `toml:"history" yaml:"history"`
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"linedit.toml", FormatTOML, false},
		{"dir/linedit.TOML", FormatTOML, false},
		{"linedit.yaml", FormatYAML, false},
		{"linedit.yml", FormatYAML, false},
		{"linedit.json", 0, true},
		{"linedit", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFor(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("expected ErrUnknownFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecodeTOML(t *testing.T) {
	fsys := fstest.MapFS{
		"linedit.toml": {Data: []byte(`
[log]
level = "debug"

[history]
max_entries = 50
`)},
	}

	var cfg fileConfig
	cfg.Log.File = "keep.log"

	found, err := Decode(fsys, "linedit.toml", &cfg)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !found {
		t.Fatal("expected file to be found")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.History.MaxEntries != 50 {
		t.Errorf("history.max_entries = %d, want 50", cfg.History.MaxEntries)
	}
	if cfg.Log.File != "keep.log" {
		t.Errorf("absent key overwrote field: %q", cfg.Log.File)
	}
}

func TestDecodeYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"linedit.yaml": {Data: []byte("log:\n  level: warn\nhistory:\n  max_entries: 3\n")},
	}

	var cfg fileConfig
	if _, err := Decode(fsys, "linedit.yaml", &cfg); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if cfg.Log.Level != "warn" || cfg.History.MaxEntries != 3 {
		t.Errorf("got %+v", cfg)
	}
}

func TestDecodeEmptyYAML(t *testing.T) {
	fsys := fstest.MapFS{"linedit.yml": {Data: []byte("")}}

	var cfg fileConfig
	cfg.Log.Level = "info"
	if _, err := Decode(fsys, "linedit.yml", &cfg); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("empty document changed config: %+v", cfg)
	}
}

func TestDecodeMissingFile(t *testing.T) {
	var cfg fileConfig
	found, err := Decode(fstest.MapFS{}, "missing.toml", &cfg)
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if found {
		t.Error("expected found = false")
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		data     string
		wantLine int
	}{
		{"toml syntax", "bad.toml", "[log\nlevel = 1\n", 0},
		{"toml unknown key", "bad.toml", "[log]\nlevel = \"info\"\ncolour = true\n", 3},
		{"toml type", "bad.toml", "[history]\nmax_entries = \"many\"\n", 0},
		{"yaml unknown key", "bad.yaml", "log:\n  level: info\n  colour: true\n", 3},
		{"yaml syntax", "bad.yaml", "log:\n  level: [\n", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{tt.path: {Data: []byte(tt.data)}}

			var cfg fileConfig
			_, err := Decode(fsys, tt.path, &cfg)

			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError, got %T: %v", err, err)
			}
			if perr.Path != tt.path {
				t.Errorf("Path = %q, want %q", perr.Path, tt.path)
			}
			if tt.wantLine > 0 && perr.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d (%v)", perr.Line, tt.wantLine, perr)
			}
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	tests := []struct {
		err  ParseError
		want string
	}{
		{ParseError{Path: "a.toml", Message: "bad"}, "parse error in a.toml: bad"},
		{ParseError{Path: "a.toml", Line: 2, Message: "bad"}, "parse error in a.toml at line 2: bad"},
		{ParseError{Path: "a.toml", Line: 2, Column: 5, Message: "bad"}, "parse error in a.toml at line 2, column 5: bad"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}
