package netmenu

import (
	"fmt"
	"log/slog"
	"strings"
)

// Manager executes a chosen action against the backend. Collaborators that
// involve the user or the host environment are injected as functions so the
// manager stays testable against fakes.
type Manager struct {
	Backend Backend
	Tool    CommandTool

	// Passphrase obtains a secret for a secured network. It returns
	// ErrCancelled when the user backs out.
	Passphrase func(prompt string) (string, error)
	// PromptSSID obtains a free-form SSID for hidden network joins.
	PromptSSID func() (string, error)
	// LaunchEditor starts the system connection editor.
	LaunchEditor func() error
	// ShowQR renders a join QR code for an active wifi connection.
	ShowQR func(ssid, secret string) error

	Log *slog.Logger
}

// Dispatch runs the operation the action was bound to. Activation and
// deactivation are requested asynchronously from the management service and
// not waited on; the process exits immediately after, trading completion
// guarantees for responsiveness.
func (m *Manager) Dispatch(action Action) error {
	switch action.Kind {
	case OpActivateProfile:
		m.logger().Debug("activating profile", "id", action.Profile.ID, "type", action.Profile.Type.String())
		return m.Backend.ActivateProfile(action.Profile)
	case OpDeactivateActive:
		m.logger().Debug("deactivating connection", "id", action.Active.ProfileID)
		return m.Backend.DeactivateConnection(action.Active)
	case OpCreateWifi:
		return m.createWifi(action)
	case OpToggleWifi:
		return m.Backend.SetWireless(action.Enable)
	case OpToggleNetworking:
		return m.Backend.SetNetworking(action.Enable)
	case OpLaunchEditor:
		return m.LaunchEditor()
	case OpRescan:
		return m.Backend.RequestScan(action.Adapter)
	case OpShowQR:
		return m.showQR(action)
	case OpJoinHidden:
		return m.joinHidden(action)
	}
	return fmt.Errorf("unhandled action kind %d: %w", action.Kind, ErrOperationFailed)
}

// createWifi joins a network with no saved profile via the command tool,
// then verifies the tool reported an activation. A failed attempt leaves a
// half-created profile behind, so it is deleted again right away. The
// delete is best-effort cleanup, not atomic with the failed create.
func (m *Manager) createWifi(action Action) error {
	var password string
	if action.AP.Secured() {
		var err error
		password, err = m.Passphrase(fmt.Sprintf("Passphrase for %s", action.AP.DisplayName()))
		if err != nil {
			return err
		}
	}

	out, err := m.Tool.Connect(action.AP.SSID, password, action.Adapter)
	if err != nil {
		return fmt.Errorf("connect command: %w", err)
	}
	if activationReported(out) {
		return nil
	}

	m.logger().Debug("connect attempt did not report activation, deleting profile", "ssid", action.AP.SSID, "output", out)
	if err := m.Tool.Delete(action.AP.SSID); err != nil {
		m.logger().Debug("compensating delete failed", "ssid", action.AP.SSID, "error", err)
	}
	return nil
}

func (m *Manager) joinHidden(action Action) error {
	ssid, err := m.PromptSSID()
	if err != nil {
		return err
	}
	ssid = strings.TrimSpace(ssid)
	if ssid == "" {
		return ErrCancelled
	}
	password, err := m.Passphrase(fmt.Sprintf("Passphrase for %s", ssid))
	if err != nil {
		return err
	}
	return m.Backend.JoinHiddenNetwork(ssid, password, action.Adapter)
}

func (m *Manager) showQR(action Action) error {
	secret, err := m.Backend.GetSecret(action.Active.ProfileUUID)
	if err != nil {
		return fmt.Errorf("reading secret for %s: %w", action.Active.ProfileID, err)
	}
	return m.ShowQR(action.Active.ProfileID, secret)
}

func (m *Manager) logger() *slog.Logger {
	if m.Log == nil {
		return slog.Default()
	}
	return m.Log
}

// activationReported checks the command tool's status text for the
// keywords that indicate the connection came up (or is coming up).
func activationReported(output string) bool {
	return strings.Contains(output, "activated") || strings.Contains(output, "activating")
}
