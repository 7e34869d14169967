//go:build linux

package networkmanager

import (
	"fmt"
	"log/slog"

	gonetworkmanager "github.com/Wifx/gonetworkmanager/v3"
	"github.com/godbus/dbus/v5"
	"github.com/google/uuid"

	"github.com/shazow/netmenu/netmenu"
)

const (
	nmDest            = "org.freedesktop.NetworkManager"
	nmPath            = dbus.ObjectPath("/org/freedesktop/NetworkManager")
	nmSettingsPath    = dbus.ObjectPath("/org/freedesktop/NetworkManager/Settings")
	nmSettingsIface   = "org.freedesktop.NetworkManager.Settings"
	nmConnectionIface = "org.freedesktop.NetworkManager.Settings.Connection"
	nmActiveIface     = "org.freedesktop.NetworkManager.Connection.Active"
	nmDeviceIface     = "org.freedesktop.NetworkManager.Device"
)

// 802.1X key management bit in the AP's WPA/RSN flag words.
const apSecKeyMgmt8021X = 0x200

// Backend implements netmenu.Backend over the NetworkManager D-Bus API.
// Wireless devices and access points go through the gonetworkmanager
// wrapper; profile and active-connection operations use the bus directly
// because the wrapper has no device-independent activation surface.
type Backend struct {
	NM  gonetworkmanager.NetworkManager
	bus *dbus.Conn
	log *slog.Logger

	// Resolved during Snapshot so later operations can map domain values
	// back to their D-Bus objects. Valid for one invocation only.
	profilePaths map[string]dbus.ObjectPath                 // by profile UUID
	activePaths  map[string]dbus.ObjectPath                 // by profile UUID
	wifiDevices  map[string]gonetworkmanager.DeviceWireless // by interface
}

// New creates a Backend connected to the system bus.
func New(logger *slog.Logger) (*Backend, error) {
	nm, err := gonetworkmanager.NewNetworkManager()
	if err != nil {
		return nil, fmt.Errorf("failed to create network manager client: %w", netmenu.ErrNotAvailable)
	}
	bus, err := dbus.SystemBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to system bus: %w", netmenu.ErrNotAvailable)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Backend{
		NM:  nm,
		bus: bus,
		log: logger,
	}, nil
}

// Snapshot reads adapters, access points, saved profiles and active
// connections in one pass.
func (b *Backend) Snapshot(rescan bool) (*netmenu.Snapshot, error) {
	b.profilePaths = make(map[string]dbus.ObjectPath)
	b.activePaths = make(map[string]dbus.ObjectPath)
	b.wifiDevices = make(map[string]gonetworkmanager.DeviceWireless)

	adapters, activeBSSIDs, err := b.listAdapters(rescan)
	if err != nil {
		return nil, err
	}
	profiles, err := b.listProfiles()
	if err != nil {
		return nil, err
	}
	active, err := b.listActive(activeBSSIDs)
	if err != nil {
		return nil, err
	}
	return netmenu.NewSnapshot(adapters, profiles, active), nil
}

// listAdapters enumerates wireless devices and their visible access
// points. The second return maps interface name to the BSSID the device is
// currently associated with.
func (b *Backend) listAdapters(rescan bool) ([]netmenu.Adapter, map[string]string, error) {
	devices, err := b.NM.GetDevices()
	if err != nil {
		return nil, nil, err
	}

	var adapters []netmenu.Adapter
	activeBSSIDs := make(map[string]string)
	for _, device := range devices {
		dev, ok := device.(gonetworkmanager.DeviceWireless)
		if !ok {
			continue
		}
		iface, err := dev.GetPropertyInterface()
		if err != nil {
			continue
		}

		if rescan {
			// Best effort; stale scan results are still usable.
			if err := dev.RequestScan(); err != nil {
				b.log.Debug("scan request failed", "interface", iface, "error", err)
			}
		}

		raw, err := dev.GetAccessPoints()
		if err != nil {
			return nil, nil, err
		}
		var aps []netmenu.AccessPoint
		for _, ap := range raw {
			ssid, err := ap.GetPropertySSID()
			if err != nil {
				continue
			}
			bssid, err := ap.GetPropertyHWAddress()
			if err != nil {
				continue
			}
			strength, _ := ap.GetPropertyStrength()
			flags, _ := ap.GetPropertyFlags()
			wpaFlags, _ := ap.GetPropertyWPAFlags()
			rsnFlags, _ := ap.GetPropertyRSNFlags()
			aps = append(aps, newAccessPoint(ssid, bssid, strength, uint32(flags), uint32(wpaFlags), uint32(rsnFlags)))
		}

		var activeBSSID string
		if activeAP, err := dev.GetPropertyActiveAccessPoint(); err == nil && activeAP != nil {
			if hw, err := activeAP.GetPropertyHWAddress(); err == nil {
				activeBSSID = hw
			}
		}

		b.wifiDevices[iface] = dev
		activeBSSIDs[iface] = activeBSSID
		adapters = append(adapters, netmenu.Adapter{
			Interface:    iface,
			SupportsWifi: true,
			AccessPoints: aps,
			ActiveBSSID:  activeBSSID,
		})
	}
	return adapters, activeBSSIDs, nil
}

// newAccessPoint builds the domain access point from raw D-Bus property
// values.
func newAccessPoint(ssid, bssid string, strength uint8, flags, wpaFlags, rsnFlags uint32) netmenu.AccessPoint {
	security := netmenu.SecurityDescriptor(netmenu.SecurityFlags{
		Privacy:    flags&uint32(gonetworkmanager.Nm80211APFlagsPrivacy) != 0,
		WPA:        wpaFlags > 0,
		RSN:        rsnFlags > 0,
		Enterprise: wpaFlags&apSecKeyMgmt8021X != 0 || rsnFlags&apSecKeyMgmt8021X != 0,
	})
	return netmenu.AccessPoint{
		SSID:     ssid,
		BSSID:    bssid,
		Strength: strength,
		Security: security,
	}
}

func (b *Backend) listProfiles() ([]netmenu.ConnectionProfile, error) {
	var paths []dbus.ObjectPath
	obj := b.bus.Object(nmDest, nmSettingsPath)
	if err := obj.Call(nmSettingsIface+".ListConnections", 0).Store(&paths); err != nil {
		return nil, fmt.Errorf("listing connections: %w", err)
	}

	var profiles []netmenu.ConnectionProfile
	for _, path := range paths {
		settings, err := b.connectionSettings(path)
		if err != nil {
			b.log.Debug("skipping unreadable connection", "path", string(path), "error", err)
			continue
		}
		conn := settings["connection"]
		p := netmenu.ConnectionProfile{
			ID:   variantString(conn, "id"),
			UUID: variantString(conn, "uuid"),
			Type: profileType(variantString(conn, "type")),
		}
		if p.Type == netmenu.ProfileWifi {
			if wireless, ok := settings["802-11-wireless"]; ok {
				if v, ok := wireless["ssid"]; ok {
					if raw, ok := v.Value().([]byte); ok {
						p.SSID = string(raw)
					}
				}
			}
		}
		b.profilePaths[p.UUID] = path
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// listActive reads the active connections, binding wifi ones to the BSSID
// their owning device is associated with.
func (b *Backend) listActive(activeBSSIDs map[string]string) ([]netmenu.ActiveConnection, error) {
	v, err := b.bus.Object(nmDest, nmPath).GetProperty(nmDest + ".ActiveConnections")
	if err != nil {
		return nil, fmt.Errorf("reading active connections: %w", err)
	}
	var paths []dbus.ObjectPath
	if err := v.Store(&paths); err != nil {
		return nil, err
	}

	var active []netmenu.ActiveConnection
	for _, path := range paths {
		obj := b.bus.Object(nmDest, path)
		a := netmenu.ActiveConnection{
			ProfileID:   activeProp(obj, "Id"),
			ProfileUUID: activeProp(obj, "Uuid"),
			Type:        profileType(activeProp(obj, "Type")),
		}
		if a.Type == netmenu.ProfileWifi {
			a.BSSID = b.activeConnectionBSSID(obj, activeBSSIDs)
		}
		b.activePaths[a.ProfileUUID] = path
		active = append(active, a)
	}
	return active, nil
}

// activeConnectionBSSID resolves the BSSID of a wifi active connection
// through its owning device's interface name.
func (b *Backend) activeConnectionBSSID(obj dbus.BusObject, activeBSSIDs map[string]string) string {
	v, err := obj.GetProperty(nmActiveIface + ".Devices")
	if err != nil {
		return ""
	}
	var devPaths []dbus.ObjectPath
	if err := v.Store(&devPaths); err != nil {
		return ""
	}
	for _, devPath := range devPaths {
		dv, err := b.bus.Object(nmDest, devPath).GetProperty(nmDeviceIface + ".Interface")
		if err != nil {
			continue
		}
		var iface string
		if err := dv.Store(&iface); err != nil {
			continue
		}
		if bssid := activeBSSIDs[iface]; bssid != "" {
			return bssid
		}
	}
	return ""
}

// ActivateProfile requests activation and returns without waiting for the
// connection to come up.
func (b *Backend) ActivateProfile(p netmenu.ConnectionProfile) error {
	path, ok := b.profilePaths[p.UUID]
	if !ok {
		return fmt.Errorf("profile %q: %w", p.ID, netmenu.ErrNotFound)
	}
	// "/" lets NetworkManager pick the device and specific object.
	call := b.bus.Object(nmDest, nmPath).Call(nmDest+".ActivateConnection", 0,
		path, dbus.ObjectPath("/"), dbus.ObjectPath("/"))
	if call.Err != nil {
		return fmt.Errorf("activating %q: %w", p.ID, call.Err)
	}
	return nil
}

// DeactivateConnection requests deactivation and returns without waiting.
func (b *Backend) DeactivateConnection(a netmenu.ActiveConnection) error {
	path, ok := b.activePaths[a.ProfileUUID]
	if !ok {
		return fmt.Errorf("active connection %q: %w", a.ProfileID, netmenu.ErrNotFound)
	}
	call := b.bus.Object(nmDest, nmPath).Call(nmDest+".DeactivateConnection", 0, path)
	if call.Err != nil {
		return fmt.Errorf("deactivating %q: %w", a.ProfileID, call.Err)
	}
	return nil
}

// JoinHiddenNetwork creates and activates a profile for a hidden SSID on
// the given adapter.
func (b *Backend) JoinHiddenNetwork(ssid, password, iface string) error {
	dev, ok := b.wifiDevices[iface]
	if !ok {
		return fmt.Errorf("no wireless device %q: %w", iface, netmenu.ErrNotFound)
	}

	connection := map[string]map[string]interface{}{
		"connection": {
			"id":             ssid,
			"uuid":           uuid.New().String(),
			"type":           "802-11-wireless",
			"interface-name": iface,
			"autoconnect":    true,
		},
		"802-11-wireless": {
			"mode":   "infrastructure",
			"ssid":   []byte(ssid),
			"hidden": true,
		},
		"ipv4": {"method": "auto"},
		"ipv6": {"method": "auto"},
	}
	if password != "" {
		connection["802-11-wireless"]["security"] = "802-11-wireless-security"
		connection["802-11-wireless-security"] = map[string]interface{}{
			"key-mgmt": "wpa-psk",
			"psk":      password,
		}
	}

	_, err := b.NM.AddAndActivateConnection(connection, dev)
	return err
}

// GetSecret retrieves the stored wifi passphrase for a profile.
func (b *Backend) GetSecret(profileUUID string) (string, error) {
	path, ok := b.profilePaths[profileUUID]
	if !ok {
		return "", fmt.Errorf("profile %s: %w", profileUUID, netmenu.ErrNotFound)
	}
	var secrets map[string]map[string]dbus.Variant
	obj := b.bus.Object(nmDest, path)
	if err := obj.Call(nmConnectionIface+".GetSecrets", 0, "802-11-wireless-security").Store(&secrets); err != nil {
		return "", fmt.Errorf("failed to get secrets: %w", netmenu.ErrOperationFailed)
	}
	if sec, ok := secrets["802-11-wireless-security"]; ok {
		if psk, ok := sec["psk"]; ok {
			if p, ok := psk.Value().(string); ok {
				return p, nil
			}
		}
	}
	return "", nil
}

func (b *Backend) IsWirelessEnabled() (bool, error) {
	return b.NM.GetPropertyWirelessEnabled()
}

// SetWireless enables or disables the wireless radio. The change is
// assumed successful; not all NetworkManager versions support confirming
// it via signals.
func (b *Backend) SetWireless(enabled bool) error {
	return b.NM.SetPropertyWirelessEnabled(enabled)
}

func (b *Backend) IsNetworkingEnabled() (bool, error) {
	v, err := b.bus.Object(nmDest, nmPath).GetProperty(nmDest + ".NetworkingEnabled")
	if err != nil {
		return false, err
	}
	var enabled bool
	if err := v.Store(&enabled); err != nil {
		return false, err
	}
	return enabled, nil
}

func (b *Backend) SetNetworking(enabled bool) error {
	return b.bus.Object(nmDest, nmPath).Call(nmDest+".Enable", 0, enabled).Err
}

func (b *Backend) RequestScan(iface string) error {
	dev, ok := b.wifiDevices[iface]
	if !ok {
		return fmt.Errorf("no wireless device %q: %w", iface, netmenu.ErrNotFound)
	}
	return dev.RequestScan()
}

// profileType maps a NetworkManager connection type string to the domain
// type tag.
func profileType(t string) netmenu.ProfileType {
	switch t {
	case "802-11-wireless":
		return netmenu.ProfileWifi
	case "vpn", "wireguard":
		return netmenu.ProfileVPN
	case "gsm":
		return netmenu.ProfileGSM
	}
	return netmenu.ProfileOther
}

func (b *Backend) connectionSettings(path dbus.ObjectPath) (map[string]map[string]dbus.Variant, error) {
	var settings map[string]map[string]dbus.Variant
	obj := b.bus.Object(nmDest, path)
	if err := obj.Call(nmConnectionIface+".GetSettings", 0).Store(&settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func variantString(section map[string]dbus.Variant, key string) string {
	if v, ok := section[key]; ok {
		if s, ok := v.Value().(string); ok {
			return s
		}
	}
	return ""
}

func activeProp(obj dbus.BusObject, name string) string {
	v, err := obj.GetProperty(nmActiveIface + "." + name)
	if err != nil {
		return ""
	}
	var s string
	if err := v.Store(&s); err != nil {
		return ""
	}
	return s
}
