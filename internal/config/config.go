// Package config loads gitpet settings from a TOML file in the user's
// configuration directory. A missing file yields defaults; the pet never
// fails to start because of configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is the settings file inside the gitpet config dir.
const ConfigFileName = "config.toml"

// Config holds user-tunable settings. Decay rates and activity effects
// are deliberately not configurable; they define the game.
type Config struct {
	// WatchRoots are directories scanned for git repositories. Empty
	// means the built-in defaults (~/projects, ~/code, ~/dev, ~/work,
	// ~/repos, ~/src and the current directory).
	WatchRoots []string `toml:"watch_roots,omitempty"`

	// MaxRepos caps how many repositories the watcher tracks.
	MaxRepos int `toml:"max_repos"`

	// RefreshInterval is the interactive view's decay/redraw tick.
	RefreshInterval Duration `toml:"refresh_interval"`

	// PollInterval is the background git-log backstop tick.
	PollInterval Duration `toml:"poll_interval"`

	// WatchInterval is how often the watcher stats .git metadata files.
	WatchInterval Duration `toml:"watch_interval"`

	// Theme forces the color scheme: "auto", "dark", or "light".
	Theme string `toml:"theme,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MaxRepos:        20,
		RefreshInterval: Duration{2 * time.Second},
		PollInterval:    Duration{60 * time.Second},
		WatchInterval:   Duration{2 * time.Second},
		Theme:           "auto",
	}
}

// Path returns the config file location (<UserConfigDir>/gitpet/config.toml).
func Path() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config dir: %w", err)
	}
	return filepath.Join(base, "gitpet", ConfigFileName), nil
}

// Load reads the config file, filling in defaults for anything unset.
// A missing file is not an error.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(path)
}

// LoadFrom reads configuration from an explicit path.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config: %w", err)
	}

	// Guard against zeroed or nonsense intervals from partial files.
	def := Default()
	if cfg.MaxRepos <= 0 {
		cfg.MaxRepos = def.MaxRepos
	}
	if cfg.RefreshInterval.Duration <= 0 {
		cfg.RefreshInterval = def.RefreshInterval
	}
	if cfg.PollInterval.Duration <= 0 {
		cfg.PollInterval = def.PollInterval
	}
	if cfg.WatchInterval.Duration <= 0 {
		cfg.WatchInterval = def.WatchInterval
	}
	return cfg, nil
}

// Duration wraps time.Duration for TOML marshaling ("90s", "2m").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML encoding.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}
