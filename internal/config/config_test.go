package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[menu]
command = "rofi"
args = ["-theme", "solarized"]
passphrase_helper = "pinentry-gnome3"

[editor]
terminal = "alacritty"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "rofi", cfg.Menu.Command)
	assert.Equal(t, []string{"-theme", "solarized"}, cfg.Menu.Args)
	assert.Equal(t, "pinentry-gnome3", cfg.Menu.PassphraseHelper)
	assert.Equal(t, "alacritty", cfg.Editor.Terminal)
	// Keys the file does not set keep their defaults.
	assert.Equal(t, "Network", cfg.Menu.Prompt)
}

func TestLoadBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[menu\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefaultPathRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, "/tmp/xdg/netmenu/config.toml", DefaultPath())
}
