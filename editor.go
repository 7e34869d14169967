package main

import (
	"os/exec"

	"github.com/shazow/netmenu/internal/config"
)

// launchEditor starts the system connection editor: the graphical one when
// preferred and present, otherwise nmtui inside the configured terminal.
// The editor is detached; we do not wait for it.
func launchEditor(cfg config.Editor) error {
	if cfg.GUIIfAvailable {
		if path, err := exec.LookPath("nm-connection-editor"); err == nil {
			return exec.Command(path).Start()
		}
	}
	term := cfg.Terminal
	if term == "" {
		term = "xterm"
	}
	return exec.Command(term, "-e", "nmtui").Start()
}
