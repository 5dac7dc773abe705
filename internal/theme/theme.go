// Package theme holds the persisted light/dark display preference.
//
// The preference is read once at startup (missing or unrecognized values
// fall back to dark) and written through to the store on every change.
// Components that render with the active mode register an apply hook with
// OnChange and restyle themselves when it fires.
package theme

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/basecamp/tasklist/internal/prefs"
)

// StoreKey is the preference key holding the theme mode.
const StoreKey = "theme"

// Mode is a display theme.
type Mode string

const (
	Dark  Mode = "dark"
	Light Mode = "light"
)

// Default is used when nothing valid is stored.
const Default = Dark

// Modes lists every valid mode in display order.
func Modes() []Mode {
	return []Mode{Dark, Light}
}

// ParseMode parses a stored or user-supplied mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Dark:
		return Dark, nil
	case Light:
		return Light, nil
	}
	return "", fmt.Errorf("unknown theme %q (want dark or light)", s)
}

// Opposite returns the other mode.
func (m Mode) Opposite() Mode {
	if m == Light {
		return Dark
	}
	return Light
}

// Icon is the toggle indicator: a sun while dark (switch to light), a moon
// while light.
func (m Mode) Icon() string {
	if m == Light {
		return "☾"
	}
	return "☀"
}

func (m Mode) String() string {
	return string(m)
}

// ApplyFunc receives the mode after every change.
type ApplyFunc func(Mode)

// Preference is the process-wide theme state backed by a prefs.Store.
type Preference struct {
	mu     sync.Mutex
	store  prefs.Store
	logger *slog.Logger
	mode   Mode
	hooks  []ApplyFunc
}

// Load reads the stored mode, defaulting to dark. Read failures are logged
// and never returned, so startup cannot fail on a broken store.
func Load(store prefs.Store, logger *slog.Logger) *Preference {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	p := &Preference{store: store, logger: logger}
	mode, err := p.read()
	if err != nil {
		logger.Warn("theme: reading preference failed, using default", "error", err, "default", Default)
	}
	p.mode = mode
	return p
}

// read returns the stored mode, or Default when the key is absent or holds
// an unknown value. The error is only for an unreadable store.
func (p *Preference) read() (Mode, error) {
	raw, ok, err := p.store.Get(StoreKey)
	if err != nil {
		return Default, err
	}
	if !ok {
		return Default, nil
	}
	mode, err := ParseMode(raw)
	if err != nil {
		p.logger.Warn("theme: ignoring stored value", "value", raw, "default", Default)
		return Default, nil
	}
	return mode, nil
}

// Mode returns the active mode.
func (p *Preference) Mode() Mode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mode
}

// OnChange registers fn to run after every mode change. It does not fire for
// the current mode; callers apply that themselves at registration.
func (p *Preference) OnChange(fn ApplyFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hooks = append(p.hooks, fn)
}

// Toggle flips dark and light.
func (p *Preference) Toggle() (Mode, error) {
	next := p.Mode().Opposite()
	return next, p.Set(next)
}

// Set makes mode active, persists it, and runs the apply hooks. The mode
// changes in memory and the hooks run even if the write fails; the write
// error is returned.
func (p *Preference) Set(mode Mode) error {
	p.mu.Lock()
	p.mode = mode
	hooks := append([]ApplyFunc(nil), p.hooks...)
	p.mu.Unlock()

	err := p.store.Set(StoreKey, string(mode))
	if err != nil {
		p.logger.Warn("theme: persisting preference failed", "mode", mode, "error", err)
		err = fmt.Errorf("save theme: %w", err)
	} else {
		p.logger.Info("theme: applied", "mode", mode)
	}

	for _, fn := range hooks {
		fn(mode)
	}
	return err
}

// Reload re-reads the store and applies the stored mode if it differs from
// the active one. An unreadable store leaves the mode alone. Reports
// whether the mode changed.
func (p *Preference) Reload() bool {
	stored, err := p.read()
	if err != nil {
		p.logger.Warn("theme: reload failed", "error", err)
		return false
	}

	p.mu.Lock()
	if stored == p.mode {
		p.mu.Unlock()
		return false
	}
	p.mode = stored
	hooks := append([]ApplyFunc(nil), p.hooks...)
	p.mu.Unlock()

	p.logger.Info("theme: reloaded from store", "mode", stored)
	for _, fn := range hooks {
		fn(stored)
	}
	return true
}
