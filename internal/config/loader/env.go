package loader

import (
	"os"
	"strings"
)

// DefaultPrefix is the prefix of linedit environment variables.
const DefaultPrefix = "LINEDIT_"

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	prefix  string            // Environment variable prefix (e.g., "LINEDIT_")
	mapping map[string]string // Env var -> config path
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore (e.g., "LINEDIT_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(prefix),
	}
}

// NewEnvLoaderWithMapping creates a loader with custom environment variable mappings.
func NewEnvLoaderWithMapping(prefix string, mapping map[string]string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: mapping,
	}
}

// defaultEnvMapping returns the default environment variable mappings.
func defaultEnvMapping(prefix string) map[string]string {
	return map[string]string{
		prefix + "LOG_LEVEL":           "log.level",
		prefix + "LOG_FILE":            "log.file",
		prefix + "HISTORY_MAX_ENTRIES": "history.max_entries",
		prefix + "CLIPBOARD_SYSTEM":    "clipboard.system",
	}
}

// Load reads environment variables and returns config path -> raw value.
// Empty values are kept; a variable that is set but empty is still set.
func (l *EnvLoader) Load() map[string]string {
	values := make(map[string]string)

	// First, load explicitly mapped variables
	for env, path := range l.mapping {
		if val, ok := os.LookupEnv(env); ok {
			values[path] = val
		}
	}

	// Then, scan for additional prefixed variables not in mapping
	for _, env := range os.Environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		if _, mapped := l.mapping[name]; mapped {
			continue
		}
		if path := l.envToPath(name); path != "" {
			values[path] = value
		}
	}

	return values
}

// AddMapping adds a custom environment variable mapping.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	if l.mapping == nil {
		l.mapping = make(map[string]string)
	}
	l.mapping[envVar] = configPath
}

// envToPath converts LINEDIT_HISTORY_MAX_ENTRIES to
// history.max_entries. Names without a key part map to "".
func (l *EnvLoader) envToPath(env string) string {
	name := strings.ToLower(strings.TrimPrefix(env, l.prefix))
	section, key, ok := strings.Cut(name, "_")
	if !ok || section == "" || key == "" {
		return ""
	}
	return section + "." + key
}
