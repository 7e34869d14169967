package networkmanager

import (
	"errors"
	"fmt"
	"os/exec"
)

// runner executes a command and returns its combined output, injected so
// tests can fake the nmcli binary.
type runner func(name string, args ...string) (string, error)

func runCommand(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).CombinedOutput()
	return string(out), err
}

// CLI is the nmcli command-line fallback. Creating a connection from
// scratch through it is far simpler than assembling the full settings map
// over D-Bus, and its status output tells us whether activation happened.
type CLI struct {
	run runner
}

// NewCLI returns a CLI backed by the system nmcli binary.
func NewCLI() *CLI {
	return &CLI{run: runCommand}
}

// Connect joins the given SSID, creating a profile named after it as a
// side effect. The returned output is nmcli's human-readable status text.
func (c *CLI) Connect(ssid, password, iface string) (string, error) {
	args := []string{"device", "wifi", "connect", ssid}
	if password != "" {
		args = append(args, "password", password)
	}
	if iface != "" {
		args = append(args, "ifname", iface)
	}
	out, err := c.run("nmcli", args...)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// nmcli ran and reported failure; the output text carries
			// the activation state and drives the compensating delete.
			return out, nil
		}
		return out, fmt.Errorf("nmcli connect: %w", err)
	}
	return out, nil
}

// Delete removes a saved profile by its identifier.
func (c *CLI) Delete(profileID string) error {
	if _, err := c.run("nmcli", "connection", "delete", "id", profileID); err != nil {
		return fmt.Errorf("nmcli delete: %w", err)
	}
	return nil
}
