// Package config loads the user configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the user configuration. Every field has a working default so
// the tool runs with no file present.
type Config struct {
	Menu   Menu   `toml:"menu"`
	Editor Editor `toml:"editor"`
}

// Menu configures the external picker process.
type Menu struct {
	// Command is the picker executable.
	Command string `toml:"command"`
	// Prompt is the text shown for the main menu.
	Prompt string `toml:"prompt"`
	// Args are extra arguments passed to the picker verbatim.
	Args []string `toml:"args"`
	// PassphraseHelper, when set, names a pinentry program used for
	// secret entry instead of the picker itself.
	PassphraseHelper string `toml:"passphrase_helper"`
}

// Editor configures how the connection editor is launched.
type Editor struct {
	// Terminal runs the fallback text editor (nmtui).
	Terminal string `toml:"terminal"`
	// GUIIfAvailable prefers the graphical editor when its binary is on
	// the PATH.
	GUIIfAvailable bool `toml:"gui_if_available"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Menu:   Menu{Command: "dmenu", Prompt: "Network"},
		Editor: Editor{Terminal: "xterm", GUIIfAvailable: true},
	}
}

// DefaultPath returns the XDG location of the configuration file.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "netmenu", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "netmenu", "config.toml")
}

// Load reads the configuration at path, or the default path when empty.
// A missing file is not an error; defaults apply, overridden by whatever
// keys the file does set.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
