package mock

import (
	"fmt"

	"github.com/shazow/netmenu/netmenu"
)

// Backend is an in-memory netmenu.Backend for tests and for running the
// menu without a NetworkManager instance (-backend mock).
type Backend struct {
	Adapters []netmenu.Adapter
	Profiles []netmenu.ConnectionProfile
	Active   []netmenu.ActiveConnection
	Secrets  map[string]string // by profile UUID

	WirelessEnabled   bool
	NetworkingEnabled bool

	SnapshotErr   error
	ActivateErr   error
	DeactivateErr error
	JoinErr       error

	// Call records, in order of invocation.
	Activated     []string // profile UUIDs
	Deactivated   []string // profile UUIDs
	Joined        []string // hidden SSIDs
	Scanned       []string // interface names
	WirelessSet   []bool
	NetworkingSet []bool
}

var (
	_ netmenu.Backend     = (*Backend)(nil)
	_ netmenu.CommandTool = (*Tool)(nil)
)

// New returns a backend with a small plausible network neighborhood: one
// adapter, an active home network, a known VPN and an open cafe network.
func New() *Backend {
	aps := []netmenu.AccessPoint{
		{SSID: "Password is password", BSSID: "AA:BB:CC:00:00:01", Strength: 84, Security: "WPA2"},
		{SSID: "Unencrypted Honeypot", BSSID: "AA:BB:CC:00:00:02", Strength: 61, Security: netmenu.SecurityNone},
		{SSID: "GET off my LAN", BSSID: "AA:BB:CC:00:00:03", Strength: 47, Security: "WPA1 WPA2"},
		{SSID: "I See Dead Packets", BSSID: "AA:BB:CC:00:00:04", Strength: 12, Security: "WEP"},
	}
	return &Backend{
		Adapters: []netmenu.Adapter{{
			Interface:    "wlan0",
			SupportsWifi: true,
			AccessPoints: aps,
			ActiveBSSID:  "AA:BB:CC:00:00:01",
		}},
		Profiles: []netmenu.ConnectionProfile{
			{ID: "Password is password", UUID: "uuid-home", Type: netmenu.ProfileWifi, SSID: "Password is password"},
			{ID: "work", UUID: "uuid-work-vpn", Type: netmenu.ProfileVPN},
			{ID: "roaming", UUID: "uuid-roaming", Type: netmenu.ProfileGSM},
		},
		Active: []netmenu.ActiveConnection{
			{ProfileID: "Password is password", ProfileUUID: "uuid-home", Type: netmenu.ProfileWifi, BSSID: "AA:BB:CC:00:00:01"},
		},
		Secrets: map[string]string{
			"uuid-home": "password",
		},
		WirelessEnabled:   true,
		NetworkingEnabled: true,
	}
}

func (b *Backend) Snapshot(rescan bool) (*netmenu.Snapshot, error) {
	if b.SnapshotErr != nil {
		return nil, b.SnapshotErr
	}
	return netmenu.NewSnapshot(b.Adapters, b.Profiles, b.Active), nil
}

func (b *Backend) ActivateProfile(p netmenu.ConnectionProfile) error {
	b.Activated = append(b.Activated, p.UUID)
	return b.ActivateErr
}

func (b *Backend) DeactivateConnection(a netmenu.ActiveConnection) error {
	b.Deactivated = append(b.Deactivated, a.ProfileUUID)
	return b.DeactivateErr
}

func (b *Backend) JoinHiddenNetwork(ssid, password, iface string) error {
	b.Joined = append(b.Joined, ssid)
	return b.JoinErr
}

func (b *Backend) GetSecret(profileUUID string) (string, error) {
	secret, ok := b.Secrets[profileUUID]
	if !ok {
		return "", fmt.Errorf("no secret for %s: %w", profileUUID, netmenu.ErrNotFound)
	}
	return secret, nil
}

func (b *Backend) IsWirelessEnabled() (bool, error) { return b.WirelessEnabled, nil }

func (b *Backend) SetWireless(enabled bool) error {
	b.WirelessSet = append(b.WirelessSet, enabled)
	b.WirelessEnabled = enabled
	return nil
}

func (b *Backend) IsNetworkingEnabled() (bool, error) { return b.NetworkingEnabled, nil }

func (b *Backend) SetNetworking(enabled bool) error {
	b.NetworkingSet = append(b.NetworkingSet, enabled)
	b.NetworkingEnabled = enabled
	return nil
}

func (b *Backend) RequestScan(iface string) error {
	b.Scanned = append(b.Scanned, iface)
	return nil
}

// ConnectCall records one Tool.Connect invocation.
type ConnectCall struct {
	SSID     string
	Password string
	Iface    string
}

// Tool is an in-memory netmenu.CommandTool.
type Tool struct {
	Output     string // returned from Connect
	ConnectErr error
	DeleteErr  error

	Connects []ConnectCall
	Deletes  []string
}

func (t *Tool) Connect(ssid, password, iface string) (string, error) {
	t.Connects = append(t.Connects, ConnectCall{SSID: ssid, Password: password, Iface: iface})
	return t.Output, t.ConnectErr
}

func (t *Tool) Delete(profileID string) error {
	t.Deletes = append(t.Deletes, profileID)
	return t.DeleteErr
}
