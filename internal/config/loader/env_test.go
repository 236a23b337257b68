package loader

import "testing"

func TestEnvLoaderMapped(t *testing.T) {
	t.Setenv("LINEDIT_LOG_LEVEL", "debug")
	t.Setenv("LINEDIT_HISTORY_MAX_ENTRIES", "10")
	t.Setenv("LINEDIT_LOG_FILE", "")

	got := NewEnvLoader(DefaultPrefix).Load()

	want := map[string]string{
		"log.level":           "debug",
		"history.max_entries": "10",
		"log.file":            "",
	}
	for path, val := range want {
		if got[path] != val {
			t.Errorf("%s = %q, want %q", path, got[path], val)
		}
		if _, ok := got[path]; !ok {
			t.Errorf("%s missing", path)
		}
	}
}

func TestEnvLoaderScansPrefix(t *testing.T) {
	t.Setenv("LINEDIT_SCRIPT_TIMEOUT", "1s")
	t.Setenv("LINEDIT_NOSECTION", "x")

	got := NewEnvLoader(DefaultPrefix).Load()

	if got["script.timeout"] != "1s" {
		t.Errorf("script.timeout = %q", got["script.timeout"])
	}
	for path := range got {
		if path == "nosection" || path == "" {
			t.Errorf("unexpected path %q", path)
		}
	}
}

func TestEnvLoaderCustomMapping(t *testing.T) {
	t.Setenv("TEST_LEVEL", "warn")

	l := NewEnvLoaderWithMapping("TEST_", map[string]string{})
	l.AddMapping("TEST_LEVEL", "log.level")

	if got := l.Load()["log.level"]; got != "warn" {
		t.Errorf("log.level = %q, want %q", got, "warn")
	}
}

func TestEnvToPath(t *testing.T) {
	l := NewEnvLoader(DefaultPrefix)

	tests := []struct {
		env  string
		want string
	}{
		{"LINEDIT_LOG_LEVEL", "log.level"},
		{"LINEDIT_EDITOR_PROMPT", "editor.prompt"},
		{"LINEDIT_SCRIPT_TIMEOUT", "script.timeout"},
		{"LINEDIT_WATCH", ""},
		{"LINEDIT_", ""},
	}

	for _, tt := range tests {
		if got := l.envToPath(tt.env); got != tt.want {
			t.Errorf("envToPath(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}
