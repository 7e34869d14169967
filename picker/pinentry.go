package picker

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/shazow/netmenu/netmenu"
)

// answerPrefix marks the data line in a pinentry response.
const answerPrefix = "D "

// Pinentry obtains a secret through an Assuan pinentry program. The
// helper gets a fixed two-line script on stdin and answers with the secret
// on a "D "-prefixed line.
type Pinentry struct {
	Command string
}

// Secret asks the helper for a passphrase, using description as the
// dialog text. A response without a data line means the user cancelled.
func (p *Pinentry) Secret(description string) (string, error) {
	script := fmt.Sprintf("SETDESC %s\nGETPIN\n", description)
	cmd := exec.Command(p.Command)
	cmd.Stdin = strings.NewReader(script)
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("running %s: %w", p.Command, err)
	}
	return parsePinentry(string(out))
}

func parsePinentry(output string) (string, error) {
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, answerPrefix) {
			return strings.TrimPrefix(line, answerPrefix), nil
		}
	}
	return "", netmenu.ErrCancelled
}
