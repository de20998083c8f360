// Package config provides YAML-based application configuration: engine
// pacing, screen size, key and colour overrides, storage and SSH settings.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/consolekit/internal/core"
	"github.com/vovakirdan/consolekit/internal/input"
	"github.com/vovakirdan/consolekit/internal/ui"
)

// Drivers.
const (
	DriverTea   = "tea"
	DriverTcell = "tcell"
)

// Config contains all application configuration.
type Config struct {
	DelayMS int           `yaml:"delay_ms"`
	Driver  string        `yaml:"driver"`
	Screen  ScreenConfig  `yaml:"screen"`
	Keys    KeysConfig    `yaml:"keys"`
	Storage StorageConfig `yaml:"storage"`
	Skin    SkinConfig    `yaml:"skin"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// ScreenConfig is the size of the output surface.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// KeysConfig overrides the parent window keys. Empty names keep the
// layout's own keys.
type KeysConfig struct {
	Focus   string `yaml:"focus"`
	Close   string `yaml:"close"`
	Confirm string `yaml:"confirm"`
}

// StorageConfig locates the entries database.
type StorageConfig struct {
	DB string `yaml:"db"`
}

// SkinConfig overrides the parent window colours.
type SkinConfig struct {
	Border     ColorPair `yaml:"border"`
	Background ColorPair `yaml:"background"`
}

// ColorPair names a foreground and a background colour. Both must be set
// for the pair to apply.
type ColorPair struct {
	Fg string `yaml:"fg"`
	Bg string `yaml:"bg"`
}

// SSHConfig configures the SSH server.
type SSHConfig struct {
	Address        string `yaml:"address"`
	HostKey        string `yaml:"host_key"`
	IdleTimeoutMin int    `yaml:"idle_timeout_min"`
}

// Delay returns the step delay override, or zero.
func (c Config) Delay() time.Duration {
	return time.Duration(c.DelayMS) * time.Millisecond
}

// IdleTimeout returns the SSH idle timeout.
func (s SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMin) * time.Minute
}

// Validate checks the values a run depends on.
func (c Config) Validate() error {
	if c.DelayMS < 0 {
		return fmt.Errorf("config: delay_ms %d is negative", c.DelayMS)
	}
	if c.Driver != DriverTea && c.Driver != DriverTcell {
		return fmt.Errorf("config: unknown driver %q", c.Driver)
	}
	if c.Screen.Width < 0 || c.Screen.Height < 0 {
		return fmt.Errorf("config: screen %dx%d", c.Screen.Width, c.Screen.Height)
	}
	for _, name := range []string{c.Keys.Focus, c.Keys.Close, c.Keys.Confirm} {
		if name == "" {
			continue
		}
		if _, err := input.ParseKey(name); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	for _, p := range []ColorPair{c.Skin.Border, c.Skin.Background} {
		if _, _, err := p.attr(); err != nil {
			return err
		}
	}
	return nil
}

// Apply overrides pw's delay, keys and colours with the values that are
// set. It does nothing for a value that fails to parse.
func (c Config) Apply(pw *ui.ParentWindow) {
	if c.DelayMS > 0 {
		pw.Delay = c.Delay()
	}
	setKey(&pw.FocusKey, c.Keys.Focus)
	setKey(&pw.CloseKey, c.Keys.Close)
	setKey(&pw.ConfirmKey, c.Keys.Confirm)
	if a, ok, err := c.Skin.Border.attr(); ok && err == nil {
		pw.Border = a
	}
	if a, ok, err := c.Skin.Background.attr(); ok && err == nil {
		pw.Background = a
	}
}

func setKey(dst *input.Key, name string) {
	if name == "" {
		return
	}
	if k, err := input.ParseKey(name); err == nil {
		*dst = k
	}
}

// attr reports whether both colours are set and parses them.
func (p ColorPair) attr() (core.Attr, bool, error) {
	if p.Fg == "" || p.Bg == "" {
		return 0, false, nil
	}
	fg, ok := core.ParseColor(p.Fg)
	if !ok {
		return 0, true, fmt.Errorf("config: unknown colour %q", p.Fg)
	}
	bg, ok := core.ParseColor(p.Bg)
	if !ok {
		return 0, true, fmt.Errorf("config: unknown colour %q", p.Bg)
	}
	return core.MakeAttr(fg, bg), true, nil
}
