package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every config location at temp dirs and clears env.
func isolate(t *testing.T) (configHome, workDir string) {
	t.Helper()
	configHome = t.TempDir()
	workDir = t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_STATE_HOME", filepath.Join(configHome, "state"))
	t.Setenv("TASKLIST_STATE_DIR", "")
	t.Setenv("TASKLIST_THEME_FILE", "")
	t.Setenv("TASKLIST_LOG_FILE", "")
	t.Setenv("TASKLIST_DEBUG", "")
	t.Chdir(workDir)
	return configHome, workDir
}

func TestDefault(t *testing.T) {
	home, _ := isolate(t)
	cfg := Default()

	assert.Equal(t, filepath.Join(home, "state", "tasklist"), cfg.StateDir)
	assert.Equal(t, "auto", cfg.Format)
	assert.Empty(t, cfg.ThemeFile)
	assert.Equal(t, 0, cfg.VerboseLevel())
	assert.Equal(t, "default", cfg.Sources["state_dir"])
}

func TestLoadFromFileJSON(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	testConfig := map[string]any{
		"state_dir":  "/tmp/tasklist-state",
		"theme_file": "/tmp/colors.toml",
		"log_file":   "/tmp/tasklist.log",
		"format":     "json",
		"verbose":    1,
	}
	data, err := json.Marshal(testConfig)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(configPath, data, 0644))

	cfg := Default()
	assert.True(t, loadFromFile(cfg, configPath, SourceGlobal))

	assert.Equal(t, "/tmp/tasklist-state", cfg.StateDir)
	assert.Equal(t, "/tmp/colors.toml", cfg.ThemeFile)
	assert.Equal(t, "/tmp/tasklist.log", cfg.LogFile)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 1, cfg.VerboseLevel())
	assert.Equal(t, "global", cfg.Sources["state_dir"])
	assert.Equal(t, "global", cfg.Sources["verbose"])
}

func TestLoadFromFileYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	content := "state_dir: /var/tmp/tl\nverbose: 2\nformat: styled\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg := Default()
	loadFromFile(cfg, configPath, SourceLocal)

	assert.Equal(t, "/var/tmp/tl", cfg.StateDir)
	assert.Equal(t, 2, cfg.VerboseLevel())
	assert.Equal(t, "styled", cfg.Format)
	assert.Equal(t, "local", cfg.Sources["format"])
}

func TestLoadFromFileRejectsOutOfRangeVerbose(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("verbose: 7\n"), 0644))

	cfg := Default()
	loadFromFile(cfg, configPath, SourceGlobal)

	assert.Nil(t, cfg.Verbose)
}

func TestLoadFromFileSkipsMalformed(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte("{not: [valid"), 0644))

	cfg := Default()
	want := cfg.StateDir
	loadFromFile(cfg, configPath, SourceGlobal)

	assert.Equal(t, want, cfg.StateDir)
}

func TestLoadFromFileSkipsMissingFile(t *testing.T) {
	cfg := Default()
	assert.False(t, loadFromFile(cfg, "/nonexistent/path/config.json", SourceGlobal))
}

func TestLoadPrecedence(t *testing.T) {
	home, work := isolate(t)

	globalDir := filepath.Join(home, "tasklist")
	require.NoError(t, os.MkdirAll(globalDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(globalDir, "config.yaml"),
		[]byte("state_dir: /global/state\ntheme_file: /global/colors.toml\nformat: json\n"), 0644))

	localDir := filepath.Join(work, ".tasklist")
	require.NoError(t, os.MkdirAll(localDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(localDir, "config.json"),
		[]byte(`{"state_dir": "/local/state"}`), 0644))

	t.Setenv("TASKLIST_THEME_FILE", "/env/colors.toml")

	cfg, err := Load(FlagOverrides{Format: "styled"})
	require.NoError(t, err)

	assert.Equal(t, "/local/state", cfg.StateDir)
	assert.Equal(t, "local", cfg.Sources["state_dir"])
	assert.Equal(t, "/env/colors.toml", cfg.ThemeFile)
	assert.Equal(t, "env", cfg.Sources["theme_file"])
	assert.Equal(t, "styled", cfg.Format)
	assert.Equal(t, "flag", cfg.Sources["format"])
}

func TestLoadPrefersYAMLOverJSONInSameDir(t *testing.T) {
	home, _ := isolate(t)

	globalDir := filepath.Join(home, "tasklist")
	require.NoError(t, os.MkdirAll(globalDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(globalDir, "config.yaml"), []byte("format: yaml-wins\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(globalDir, "config.json"), []byte(`{"format": "json-loses"}`), 0644))

	cfg, err := Load(FlagOverrides{})
	require.NoError(t, err)
	assert.Equal(t, "yaml-wins", cfg.Format)
}

func TestLoadFromEnvDebug(t *testing.T) {
	tests := []struct {
		value string
		want  int
		set   bool
	}{
		{"1", 1, true},
		{"2", 2, true},
		{"5", 2, true},
		{"true", 2, true},
		{"TRUE", 2, true},
		{"nope", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			isolate(t)
			t.Setenv("TASKLIST_DEBUG", tt.value)

			cfg := Default()
			LoadFromEnv(cfg)

			if !tt.set {
				assert.Nil(t, cfg.Verbose)
				return
			}
			assert.Equal(t, tt.want, cfg.VerboseLevel())
			assert.Equal(t, "env", cfg.Sources["verbose"])
		})
	}
}

func TestApplyOverridesIgnoresEmpty(t *testing.T) {
	cfg := Default()
	cfg.ThemeFile = "/keep/me.toml"

	ApplyOverrides(cfg, FlagOverrides{StateDir: "/flag/state"})

	assert.Equal(t, "/flag/state", cfg.StateDir)
	assert.Equal(t, "/keep/me.toml", cfg.ThemeFile)
	assert.Equal(t, "flag", cfg.Sources["state_dir"])
}

func TestResolvedLogFile(t *testing.T) {
	cfg := &Config{StateDir: "/s"}
	assert.Equal(t, filepath.Join("/s", "tasklist.log"), cfg.ResolvedLogFile())

	cfg.LogFile = "/elsewhere.log"
	assert.Equal(t, "/elsewhere.log", cfg.ResolvedLogFile())
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "x", "y"), expandHome("~/x/y"))
	assert.Equal(t, "/abs/path", expandHome("/abs/path"))
	assert.Equal(t, "rel/~path", expandHome("rel/~path"))
}
