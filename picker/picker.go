// Package picker invokes the external line-oriented menu process (dmenu,
// rofi or compatible) and the optional pinentry passphrase helper.
package picker

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shazow/netmenu/netmenu"
)

// Picker runs an external menu command. The command receives the display
// lines newline-joined on stdin plus the visible line count and prompt as
// arguments, and writes the chosen line to stdout.
type Picker struct {
	// Command is the menu executable, e.g. "dmenu" or "rofi".
	Command string
	// Args are extra arguments passed through verbatim after the
	// generated ones.
	Args []string
}

// rofi needs -dmenu to read a menu from stdin, and supports a dedicated
// obscured-entry mode we use for passphrases.
func (p *Picker) isRofi() bool {
	return filepath.Base(p.Command) == "rofi"
}

// commandArgs builds the argument list for one invocation.
func (p *Picker) commandArgs(numLines int, prompt string, secret bool) []string {
	var args []string
	if p.isRofi() {
		args = append(args, "-dmenu", "-i")
		if secret {
			args = append(args, "-password")
		}
	}
	args = append(args, "-l", strconv.Itoa(numLines), "-p", prompt)
	return append(args, p.Args...)
}

// Select offers lines through the picker and returns the chosen one.
// Cancellation (empty response, or the picker exiting non-zero the way
// dmenu does on escape) returns ErrCancelled.
func (p *Picker) Select(lines []string, prompt string) (string, error) {
	return p.invoke(lines, prompt, false)
}

// Secret prompts for a single secret line with no menu content offered.
func (p *Picker) Secret(prompt string) (string, error) {
	return p.invoke(nil, prompt, true)
}

func (p *Picker) invoke(lines []string, prompt string, secret bool) (string, error) {
	cmd := exec.Command(p.Command, p.commandArgs(len(lines), prompt, secret)...)
	cmd.Stdin = strings.NewReader(strings.Join(lines, "\n"))
	cmd.Stderr = os.Stderr

	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", netmenu.ErrCancelled
		}
		return "", fmt.Errorf("running %s: %w", p.Command, err)
	}

	choice := strings.TrimSuffix(out.String(), "\n")
	if strings.TrimSpace(choice) == "" {
		return "", netmenu.ErrCancelled
	}
	return choice, nil
}
