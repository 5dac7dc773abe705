// Package tui provides terminal user interface components.
package tui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"

	"github.com/basecamp/tasklist/internal/config"
)

// ResolveTheme loads a palette with the following precedence:
//  1. NO_COLOR env var set → returns NoColorTheme
//  2. TASKLIST_THEME env var → parse that colors.toml file
//  3. themeFile (from config theme_file) → parse that colors.toml file
//  4. User theme from $XDG_CONFIG_HOME/tasklist/theme/colors.toml
//  5. Default palette
//
// Users can symlink the theme directory to a system theme:
//
//	ln -s ~/.config/omarchy/current/theme ~/.config/tasklist/theme
func ResolveTheme(themeFile string) Theme {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return NoColorTheme()
	}

	for _, path := range []string{os.Getenv("TASKLIST_THEME"), themeFile} {
		if path == "" {
			continue
		}
		if th, err := LoadThemeFromFile(path); err == nil {
			return th
		}
		// Fall through on error
	}

	if th, err := LoadUserTheme(); err == nil {
		return th
	}

	return DefaultTheme()
}

// NoColorTheme returns a theme with empty colors (honors NO_COLOR standard).
// Lipgloss treats empty strings as "no color", resulting in plain text output.
func NoColorTheme() Theme {
	empty := lipgloss.AdaptiveColor{Light: "", Dark: ""}
	return Theme{
		Primary:    empty,
		Secondary:  empty,
		Success:    empty,
		Warning:    empty,
		Error:      empty,
		Muted:      empty,
		Background: empty,
		Foreground: empty,
		Border:     empty,
	}
}

// UserThemePath is where LoadUserTheme looks.
func UserThemePath() string {
	return filepath.Join(config.GlobalConfigDir(), "theme", "colors.toml")
}

// LoadUserTheme attempts to load a theme from the user's config dir.
// The theme directory can be a symlink to another theme system.
func LoadUserTheme() (Theme, error) {
	return LoadThemeFromFile(UserThemePath())
}

// LoadThemeFromFile parses a colors.toml file and returns a Theme.
func LoadThemeFromFile(path string) (Theme, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: Path from trusted config
	if err != nil {
		return Theme{}, err
	}

	dark, light, err := parseColorsTOML(data)
	if err != nil {
		return Theme{}, err
	}

	return mapColorsToTheme(dark, light), nil
}

// parseColorsTOML decodes a colors.toml file. Top-level keys are the dark
// palette (terminal themes are typically dark); an optional [light] table
// supplies the light palette. Values that are not hex colors are dropped.
func parseColorsTOML(data []byte) (dark, light map[string]string, err error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, nil, err
	}

	dark = hexColors(raw)
	light = map[string]string{}
	if table, ok := raw["light"].(map[string]any); ok {
		light = hexColors(table)
	}
	return dark, light, nil
}

func hexColors(m map[string]any) map[string]string {
	out := make(map[string]string)
	for k, v := range m {
		s, ok := v.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if isValidHexColor(s) {
			out[k] = s
		}
	}
	return out
}

// isValidHexColor checks if a string is a valid hex color (#RGB or #RRGGBB).
func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	for _, c := range hex {
		isDigit := c >= '0' && c <= '9'
		isLower := c >= 'a' && c <= 'f'
		isUpper := c >= 'A' && c <= 'F'
		if !isDigit && !isLower && !isUpper {
			return false
		}
	}
	return true
}

// mapColorsToTheme maps colors.toml color names to Theme semantics.
//
// Supported color keys (compatible with terminal theme formats):
//
//	accent = "#89b4fa"       → Primary
//	foreground = "#cdd6f4"   → Foreground
//	background = "#1e1e2e"   → Background
//	color0 = "#45475a"       → (black)
//	color1 = "#f38ba8"       → Error (red)
//	color2 = "#a6e3a1"       → Success (green)
//	color3 = "#f9e2af"       → Warning (yellow)
//	color4 = "#89b4fa"       → Primary fallback (blue)
//	color7 = "#bac2de"       → Secondary (white/light)
//	color8 = "#585b70"       → Muted, Border (bright black)
//
// The same keys under [light] fill the Light variants.
func mapColorsToTheme(dark, light map[string]string) Theme {
	defaults := DefaultTheme()

	color := func(def lipgloss.AdaptiveColor, keys ...string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{
			Light: getOrDefault(lookup(light, keys...), def.Light),
			Dark:  getOrDefault(lookup(dark, keys...), def.Dark),
		}
	}

	return Theme{
		Primary:    color(defaults.Primary, "accent", "color4"),
		Secondary:  color(defaults.Secondary, "color7"),
		Success:    color(defaults.Success, "color2"),
		Warning:    color(defaults.Warning, "color3"),
		Error:      color(defaults.Error, "color1"),
		Muted:      color(defaults.Muted, "color8", "color0"),
		Background: color(defaults.Background, "background"),
		Foreground: color(defaults.Foreground, "foreground"),
		Border:     color(defaults.Border, "color8", "color0"),
	}
}

// lookup returns the first present key.
func lookup(colors map[string]string, keys ...string) string {
	for _, k := range keys {
		if v, ok := colors[k]; ok {
			return v
		}
	}
	return ""
}

// getOrDefault returns value if non-empty, otherwise returns defaultValue.
func getOrDefault(value, defaultValue string) string {
	if value != "" {
		return value
	}
	return defaultValue
}
