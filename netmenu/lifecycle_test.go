package netmenu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shazow/netmenu/netmenu"
	"github.com/shazow/netmenu/netmenu/mock"
)

func newManager(b *mock.Backend, tool *mock.Tool) *netmenu.Manager {
	return &netmenu.Manager{
		Backend:      b,
		Tool:         tool,
		Passphrase:   func(prompt string) (string, error) { return "hunter2", nil },
		PromptSSID:   func() (string, error) { return "", netmenu.ErrCancelled },
		LaunchEditor: func() error { return nil },
		ShowQR:       func(ssid, secret string) error { return nil },
	}
}

func TestDispatchActivate(t *testing.T) {
	b := mock.New()
	m := newManager(b, &mock.Tool{})

	err := m.Dispatch(netmenu.Action{
		Kind:    netmenu.OpActivateProfile,
		Profile: netmenu.ConnectionProfile{ID: "work", UUID: "uuid-work-vpn", Type: netmenu.ProfileVPN},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"uuid-work-vpn"}, b.Activated)
}

func TestDispatchDeactivate(t *testing.T) {
	b := mock.New()
	m := newManager(b, &mock.Tool{})

	err := m.Dispatch(netmenu.Action{
		Kind:   netmenu.OpDeactivateActive,
		Active: netmenu.ActiveConnection{ProfileID: "home", ProfileUUID: "uuid-home"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"uuid-home"}, b.Deactivated)
}

func TestCreateWifiSuccessKeepsProfile(t *testing.T) {
	b := mock.New()
	tool := &mock.Tool{Output: "Device 'wlan0' successfully activated with 'guest-uuid'."}
	m := newManager(b, tool)

	err := m.Dispatch(netmenu.Action{
		Kind:    netmenu.OpCreateWifi,
		AP:      netmenu.AccessPoint{SSID: "Guest", Security: netmenu.SecurityNone},
		Adapter: "wlan0",
	})
	require.NoError(t, err)

	require.Len(t, tool.Connects, 1)
	assert.Equal(t, mock.ConnectCall{SSID: "Guest", Password: "", Iface: "wlan0"}, tool.Connects[0])
	assert.Empty(t, tool.Deletes, "successful create must not be rolled back")
}

func TestCreateWifiFailureDeletesProfile(t *testing.T) {
	b := mock.New()
	tool := &mock.Tool{Output: "Error: Connection activation failed: (7) Secrets were required."}
	m := newManager(b, tool)

	err := m.Dispatch(netmenu.Action{
		Kind:    netmenu.OpCreateWifi,
		AP:      netmenu.AccessPoint{SSID: "Office", BSSID: "55:55", Security: "WPA2"},
		Adapter: "wlan0",
	})
	// The failed create is handled locally; no error surfaces.
	require.NoError(t, err)

	require.Len(t, tool.Connects, 1)
	assert.Equal(t, "hunter2", tool.Connects[0].Password)
	assert.Equal(t, []string{"Office"}, tool.Deletes)
}

func TestCreateWifiSecuredPromptsPassphrase(t *testing.T) {
	b := mock.New()
	tool := &mock.Tool{Output: "activated"}
	m := newManager(b, tool)

	prompted := ""
	m.Passphrase = func(prompt string) (string, error) {
		prompted = prompt
		return "s3cret", nil
	}

	err := m.Dispatch(netmenu.Action{
		Kind:    netmenu.OpCreateWifi,
		AP:      netmenu.AccessPoint{SSID: "Office", Security: "WPA2"},
		Adapter: "wlan0",
	})
	require.NoError(t, err)
	assert.Contains(t, prompted, "Office")
	assert.Equal(t, "s3cret", tool.Connects[0].Password)
}

func TestCreateWifiPassphraseCancelled(t *testing.T) {
	b := mock.New()
	tool := &mock.Tool{}
	m := newManager(b, tool)
	m.Passphrase = func(prompt string) (string, error) { return "", netmenu.ErrCancelled }

	err := m.Dispatch(netmenu.Action{
		Kind: netmenu.OpCreateWifi,
		AP:   netmenu.AccessPoint{SSID: "Office", Security: "WPA2"},
	})
	assert.ErrorIs(t, err, netmenu.ErrCancelled)
	assert.Empty(t, tool.Connects, "cancelled prompt must not attempt a connect")
}

func TestDispatchToggles(t *testing.T) {
	b := mock.New()
	m := newManager(b, &mock.Tool{})

	require.NoError(t, m.Dispatch(netmenu.Action{Kind: netmenu.OpToggleWifi, Enable: false}))
	assert.Equal(t, []bool{false}, b.WirelessSet)

	require.NoError(t, m.Dispatch(netmenu.Action{Kind: netmenu.OpToggleNetworking, Enable: true}))
	assert.Equal(t, []bool{true}, b.NetworkingSet)
}

func TestDispatchRescan(t *testing.T) {
	b := mock.New()
	m := newManager(b, &mock.Tool{})

	require.NoError(t, m.Dispatch(netmenu.Action{Kind: netmenu.OpRescan, Adapter: "wlan0"}))
	assert.Equal(t, []string{"wlan0"}, b.Scanned)
}

func TestDispatchJoinHidden(t *testing.T) {
	b := mock.New()
	m := newManager(b, &mock.Tool{})
	m.PromptSSID = func() (string, error) { return "secret-net", nil }

	require.NoError(t, m.Dispatch(netmenu.Action{Kind: netmenu.OpJoinHidden, Adapter: "wlan0"}))
	assert.Equal(t, []string{"secret-net"}, b.Joined)
}

func TestDispatchJoinHiddenEmptySSID(t *testing.T) {
	b := mock.New()
	m := newManager(b, &mock.Tool{})
	m.PromptSSID = func() (string, error) { return "   ", nil }

	err := m.Dispatch(netmenu.Action{Kind: netmenu.OpJoinHidden})
	assert.ErrorIs(t, err, netmenu.ErrCancelled)
	assert.Empty(t, b.Joined)
}

func TestDispatchShowQR(t *testing.T) {
	b := mock.New()
	m := newManager(b, &mock.Tool{})

	var gotSSID, gotSecret string
	m.ShowQR = func(ssid, secret string) error {
		gotSSID, gotSecret = ssid, secret
		return nil
	}

	err := m.Dispatch(netmenu.Action{
		Kind:   netmenu.OpShowQR,
		Active: netmenu.ActiveConnection{ProfileID: "Password is password", ProfileUUID: "uuid-home", Type: netmenu.ProfileWifi},
	})
	require.NoError(t, err)
	assert.Equal(t, "Password is password", gotSSID)
	assert.Equal(t, "password", gotSecret)
}
