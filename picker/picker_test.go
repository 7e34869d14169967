package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shazow/netmenu/netmenu"
)

func TestCommandArgsDmenu(t *testing.T) {
	p := &Picker{Command: "dmenu", Args: []string{"-fn", "monospace-12"}}

	args := p.commandArgs(7, "Network", false)
	assert.Equal(t, []string{"-l", "7", "-p", "Network", "-fn", "monospace-12"}, args)
}

func TestCommandArgsRofi(t *testing.T) {
	p := &Picker{Command: "/usr/bin/rofi"}

	args := p.commandArgs(3, "Adapter", false)
	assert.Equal(t, []string{"-dmenu", "-i", "-l", "3", "-p", "Adapter"}, args)

	args = p.commandArgs(0, "Passphrase", true)
	assert.Equal(t, []string{"-dmenu", "-i", "-password", "-l", "0", "-p", "Passphrase"}, args)
}

func TestSelectEmptyOutputIsCancellation(t *testing.T) {
	// `true` ignores its arguments and prints nothing.
	p := &Picker{Command: "true"}

	_, err := p.Select([]string{"a", "b"}, "Network")
	assert.ErrorIs(t, err, netmenu.ErrCancelled)
}

func TestSelectNonZeroExitIsCancellation(t *testing.T) {
	// dmenu exits 1 when the user presses escape.
	p := &Picker{Command: "false"}

	_, err := p.Select([]string{"a"}, "Network")
	assert.ErrorIs(t, err, netmenu.ErrCancelled)
}

func TestSelectMissingCommand(t *testing.T) {
	p := &Picker{Command: "netmenu-test-no-such-picker"}

	_, err := p.Select([]string{"a"}, "Network")
	require.Error(t, err)
	assert.NotErrorIs(t, err, netmenu.ErrCancelled)
}

func TestSelectReturnsTrimmedChoice(t *testing.T) {
	// `echo` reflects the generated arguments back, standing in for a
	// picker that echoes a chosen line with trailing newline.
	p := &Picker{Command: "echo"}

	choice, err := p.Select([]string{"one", "two"}, "Network")
	require.NoError(t, err)
	assert.Equal(t, "-l 2 -p Network", choice)
}
