// Package config provides layered configuration loading.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the resolved configuration.
type Config struct {
	// Storage settings
	StateDir string `json:"state_dir" yaml:"state_dir"`

	// Appearance settings
	ThemeFile string `json:"theme_file,omitempty" yaml:"theme_file,omitempty"`

	// Logging settings
	LogFile string `json:"log_file,omitempty" yaml:"log_file,omitempty"`
	Verbose *int   `json:"verbose,omitempty" yaml:"verbose,omitempty"`

	// Output settings
	Format string `json:"format" yaml:"format"`

	// Sources tracks where each value came from (for debugging).
	Sources map[string]string `json:"-" yaml:"-"`
}

// Source indicates where a config value came from.
type Source string

const (
	SourceDefault Source = "default"
	SourceGlobal  Source = "global"
	SourceLocal   Source = "local"
	SourceEnv     Source = "env"
	SourceFlag    Source = "flag"
)

// FlagOverrides holds command-line flag values.
type FlagOverrides struct {
	StateDir  string
	ThemeFile string
	LogFile   string
	Format    string
}

// Default returns the default configuration.
func Default() *Config {
	cfg := &Config{
		StateDir: DefaultStateDir(),
		Format:   "auto",
		Sources:  make(map[string]string),
	}
	cfg.Sources["state_dir"] = string(SourceDefault)
	cfg.Sources["format"] = string(SourceDefault)
	return cfg
}

// Load loads configuration from all sources with proper precedence.
// Precedence: flags > env > local > global > defaults
func Load(overrides FlagOverrides) (*Config, error) {
	cfg := Default()

	for _, path := range globalConfigPaths() {
		if loadFromFile(cfg, path, SourceGlobal) {
			break
		}
	}
	for _, path := range localConfigPaths() {
		if loadFromFile(cfg, path, SourceLocal) {
			break
		}
	}

	LoadFromEnv(cfg)
	ApplyOverrides(cfg, overrides)

	if cfg.StateDir == "" {
		return nil, fmt.Errorf("state_dir resolved to an empty path")
	}
	return cfg, nil
}

// loadFromFile merges the file at path into cfg. YAML is a superset of JSON,
// so one decoder handles both config.yaml and config.json. Reports whether
// the file existed.
func loadFromFile(cfg *Config, path string, source Source) bool {
	data, err := os.ReadFile(path) //nolint:gosec // G304: Path is from trusted config locations
	if err != nil {
		return false // File doesn't exist, skip
	}

	var fileCfg map[string]any
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		fmt.Fprintf(os.Stderr, "warning: skipping malformed config at %s: %v\n", path, err)
		return true
	}

	if v, ok := fileCfg["state_dir"].(string); ok && v != "" {
		cfg.StateDir = expandHome(v)
		cfg.Sources["state_dir"] = string(source)
	}
	if v, ok := fileCfg["theme_file"].(string); ok && v != "" {
		cfg.ThemeFile = expandHome(v)
		cfg.Sources["theme_file"] = string(source)
	}
	if v, ok := fileCfg["log_file"].(string); ok && v != "" {
		cfg.LogFile = expandHome(v)
		cfg.Sources["log_file"] = string(source)
	}
	if v, ok := fileCfg["format"].(string); ok && v != "" {
		cfg.Format = v
		cfg.Sources["format"] = string(source)
	}
	if v, ok := fileCfg["verbose"]; ok {
		if iv, ok := verboseLevel(v); ok {
			cfg.Verbose = &iv
			cfg.Sources["verbose"] = string(source)
		}
	}
	return true
}

// verboseLevel accepts integral values 0..2 in either YAML (int) or JSON
// (float64) decoding.
func verboseLevel(v any) (int, bool) {
	var iv int
	switch val := v.(type) {
	case int:
		iv = val
	case float64:
		iv = int(val)
		if val != float64(iv) {
			return 0, false
		}
	default:
		return 0, false
	}
	if iv < 0 || iv > 2 {
		return 0, false
	}
	return iv, true
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv(cfg *Config) {
	if v := os.Getenv("TASKLIST_STATE_DIR"); v != "" {
		cfg.StateDir = v
		cfg.Sources["state_dir"] = string(SourceEnv)
	}
	if v := os.Getenv("TASKLIST_THEME_FILE"); v != "" {
		cfg.ThemeFile = v
		cfg.Sources["theme_file"] = string(SourceEnv)
	}
	if v := os.Getenv("TASKLIST_LOG_FILE"); v != "" {
		cfg.LogFile = v
		cfg.Sources["log_file"] = string(SourceEnv)
	}
	if v := os.Getenv("TASKLIST_DEBUG"); v != "" {
		// TASKLIST_DEBUG can be "1", "2", or "true" (treated as 2 for full debug)
		level, err := strconv.Atoi(v)
		if err != nil && strings.EqualFold(v, "true") {
			level, err = 2, nil
		}
		if err == nil && level >= 0 {
			level = min(level, 2)
			cfg.Verbose = &level
			cfg.Sources["verbose"] = string(SourceEnv)
		}
	}
}

// ApplyOverrides applies non-empty flag overrides to cfg.
func ApplyOverrides(cfg *Config, o FlagOverrides) {
	if o.StateDir != "" {
		cfg.StateDir = o.StateDir
		cfg.Sources["state_dir"] = string(SourceFlag)
	}
	if o.ThemeFile != "" {
		cfg.ThemeFile = o.ThemeFile
		cfg.Sources["theme_file"] = string(SourceFlag)
	}
	if o.LogFile != "" {
		cfg.LogFile = o.LogFile
		cfg.Sources["log_file"] = string(SourceFlag)
	}
	if o.Format != "" {
		cfg.Format = o.Format
		cfg.Sources["format"] = string(SourceFlag)
	}
}

// VerboseLevel returns the configured verbosity, or 0 when unset.
func (cfg *Config) VerboseLevel() int {
	if cfg == nil || cfg.Verbose == nil {
		return 0
	}
	return *cfg.Verbose
}

// ResolvedLogFile returns the log file path, defaulting into the state dir.
func (cfg *Config) ResolvedLogFile() string {
	if cfg.LogFile != "" {
		return cfg.LogFile
	}
	return filepath.Join(cfg.StateDir, "tasklist.log")
}

// Path helpers

// GlobalConfigDir returns the global config directory path.
func GlobalConfigDir() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, _ := os.UserHomeDir()
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "tasklist")
}

// DefaultStateDir returns $XDG_STATE_HOME/tasklist, falling back to
// ~/.local/state/tasklist and finally the temp directory.
func DefaultStateDir() string {
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		return filepath.Join(stateDir, "tasklist")
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".local", "state", "tasklist")
	}
	return filepath.Join(os.TempDir(), "tasklist")
}

func globalConfigPaths() []string {
	dir := GlobalConfigDir()
	return []string{
		filepath.Join(dir, "config.yaml"),
		filepath.Join(dir, "config.json"),
	}
}

// localConfigPaths only looks in the current directory; there is no parent
// traversal.
func localConfigPaths() []string {
	dir, err := os.Getwd()
	if err != nil {
		return nil
	}
	return []string{
		filepath.Join(dir, ".tasklist", "config.yaml"),
		filepath.Join(dir, ".tasklist", "config.json"),
	}
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
