package netmenu

// ProfileType classifies a saved connection profile.
type ProfileType int

const (
	ProfileOther ProfileType = iota
	ProfileWifi
	ProfileVPN
	ProfileGSM
)

func (t ProfileType) String() string {
	switch t {
	case ProfileWifi:
		return "wifi"
	case ProfileVPN:
		return "VPN"
	case ProfileGSM:
		return "GSM"
	}
	return "other"
}

// AccessPoint is a visible wireless network as reported by one adapter.
type AccessPoint struct {
	SSID     string
	BSSID    string
	Strength uint8  // 0-100
	Security string // derived descriptor, SecurityNone when open
}

// Secured reports whether joining this access point requires a secret.
func (ap AccessPoint) Secured() bool {
	return ap.Security != SecurityNone && ap.Security != ""
}

// DisplayName returns the SSID, falling back to the BSSID for hidden networks.
func (ap AccessPoint) DisplayName() string {
	if ap.SSID == "" {
		return ap.BSSID
	}
	return ap.SSID
}

// Adapter is a physical or virtual network interface.
type Adapter struct {
	Interface    string
	SupportsWifi bool
	AccessPoints []AccessPoint
	// ActiveBSSID is the hardware address of the currently associated
	// access point, empty when the adapter is not associated.
	ActiveBSSID string
}

// ConnectionProfile is a saved, reusable network configuration.
type ConnectionProfile struct {
	ID   string
	UUID string
	Type ProfileType
	// SSID is set for wifi profiles so visible access points can be
	// matched back to their saved configuration.
	SSID string
}

// ActiveConnection is a currently-up instantiation of a ConnectionProfile.
type ActiveConnection struct {
	ProfileID   string
	ProfileUUID string
	Type        ProfileType
	// BSSID is the access point a wifi connection is bound to.
	BSSID string
}

// Backend defines the query and command surface over the system's network
// management service. All state is read fresh via Snapshot on every
// invocation; nothing is cached across runs.
type Backend interface {
	// Snapshot reads adapters, access points, saved profiles and active
	// connections, optionally requesting a scan first.
	Snapshot(rescan bool) (*Snapshot, error)
	// ActivateProfile asynchronously activates a saved profile. It does
	// not wait for the activation to complete.
	ActivateProfile(profile ConnectionProfile) error
	// DeactivateConnection asynchronously takes down an active connection.
	DeactivateConnection(active ActiveConnection) error
	// JoinHiddenNetwork creates and activates a profile for a hidden SSID
	// on the given adapter.
	JoinHiddenNetwork(ssid, password, iface string) error
	// GetSecret retrieves the stored passphrase for a profile.
	GetSecret(profileUUID string) (string, error)

	// IsWirelessEnabled checks if the wireless radio is enabled.
	IsWirelessEnabled() (bool, error)
	// SetWireless enables or disables the wireless radio.
	SetWireless(enabled bool) error
	// IsNetworkingEnabled checks if networking is enabled globally.
	IsNetworkingEnabled() (bool, error)
	// SetNetworking enables or disables networking globally.
	SetNetworking(enabled bool) error
	// RequestScan asks the given adapter to rescan for access points.
	RequestScan(iface string) error
}

// CommandTool is the command-line fallback used to create brand-new wifi
// connections, where the management service's D-Bus API would require
// assembling the full settings map by hand.
type CommandTool interface {
	// Connect joins the given SSID, creating a profile as a side effect,
	// and returns the tool's human-readable status output.
	Connect(ssid, password, iface string) (output string, err error)
	// Delete removes a saved profile by its identifier.
	Delete(profileID string) error
}
