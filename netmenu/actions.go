package netmenu

import "fmt"

// OpKind identifies the operation a menu action performs. The set is
// closed; Manager.Dispatch switches over it.
type OpKind int

const (
	OpActivateProfile OpKind = iota
	OpDeactivateActive
	OpCreateWifi
	OpToggleWifi
	OpToggleNetworking
	OpLaunchEditor
	OpRescan
	OpShowQR
	OpJoinHidden
)

// Action pairs a display label with an operation and the arguments it was
// bound to at menu-build time. Only the fields relevant to Kind are set.
type Action struct {
	Label string
	Kind  OpKind

	Profile ConnectionProfile // OpActivateProfile
	Active  ActiveConnection  // OpDeactivateActive, OpShowQR
	AP      AccessPoint       // OpCreateWifi
	Adapter string            // OpCreateWifi, OpRescan, OpJoinHidden
	Enable  bool              // OpToggleWifi, OpToggleNetworking: state to set
}

const (
	activeMarker   = "**"
	inactiveMarker = "  "
)

// Menu holds the four action categories in their fixed display order.
type Menu struct {
	AccessPoints []Action
	VPN          []Action
	GSM          []Action
	Other        []Action
}

// BuildMenu maps a snapshot (plus the selected adapter, nil when no wifi
// adapter exists) into the full menu. It is pure apart from reading its
// inputs; all label widths are local to this one menu.
func BuildMenu(snap *Snapshot, adapter *Adapter, wifiEnabled, networkingEnabled bool) (*Menu, error) {
	m := &Menu{}

	if adapter != nil && wifiEnabled {
		aps, err := buildAccessPointActions(snap, *adapter)
		if err != nil {
			return nil, err
		}
		m.AccessPoints = aps
	}

	vpn, err := buildProfileActions(snap, ProfileVPN)
	if err != nil {
		return nil, err
	}
	m.VPN = vpn

	gsm, err := buildProfileActions(snap, ProfileGSM)
	if err != nil {
		return nil, err
	}
	m.GSM = gsm

	m.Other = buildOtherActions(snap, adapter, wifiEnabled, networkingEnabled)

	if err := m.checkLabels(); err != nil {
		return nil, err
	}
	return m, nil
}

// buildAccessPointActions turns the adapter's visible access points into
// connect/deactivate actions, strongest signal first.
func buildAccessPointActions(snap *Snapshot, adapter Adapter) ([]Action, error) {
	aps := dedupeAccessPoints(adapter)
	SortAccessPoints(aps)

	var nameWidth, secWidth int
	for _, ap := range aps {
		if n := len(ap.DisplayName()); n > nameWidth {
			nameWidth = n
		}
		if n := len(ap.Security); n > secWidth {
			secWidth = n
		}
	}

	var actions []Action
	for _, ap := range aps {
		isActive := adapter.ActiveBSSID != "" && ap.BSSID == adapter.ActiveBSSID
		marker := inactiveMarker
		if isActive {
			marker = activeMarker
		}
		label := fmt.Sprintf("%s %-*s %-*s %s",
			marker, nameWidth, ap.DisplayName(), secWidth, ap.Security, signalBars(ap.Strength))

		if isActive {
			active, ok := snap.ActiveByBSSID(ap.BSSID)
			if !ok {
				return nil, fmt.Errorf("adapter %s reports active access point %s but no active connection is bound to it: %w",
					adapter.Interface, ap.BSSID, ErrNotFound)
			}
			actions = append(actions, Action{Label: label, Kind: OpDeactivateActive, Active: active})
			continue
		}

		profile, ok, err := snap.WifiProfileForSSID(ap.SSID)
		if err != nil {
			return nil, err
		}
		if ok {
			actions = append(actions, Action{Label: label, Kind: OpActivateProfile, Profile: profile})
		} else {
			actions = append(actions, Action{Label: label, Kind: OpCreateWifi, AP: ap, Adapter: adapter.Interface})
		}
	}
	return actions, nil
}

// dedupeAccessPoints collapses access points sharing an SSID down to one
// entry: the one the adapter is associated with if present, else the
// strongest. Hidden networks (empty SSID) are kept per BSSID.
func dedupeAccessPoints(adapter Adapter) []AccessPoint {
	best := make(map[string]AccessPoint)
	var order []string
	for _, ap := range adapter.AccessPoints {
		key := ap.SSID
		if key == "" {
			key = ap.BSSID
		}
		existing, seen := best[key]
		if !seen {
			best[key] = ap
			order = append(order, key)
			continue
		}
		if existing.BSSID == adapter.ActiveBSSID && adapter.ActiveBSSID != "" {
			continue
		}
		if ap.BSSID == adapter.ActiveBSSID && adapter.ActiveBSSID != "" || ap.Strength > existing.Strength {
			best[key] = ap
		}
	}
	out := make([]AccessPoint, 0, len(order))
	for _, key := range order {
		out = append(out, best[key])
	}
	return out
}

// buildProfileActions builds one action per saved profile of the given
// type. A profile flagged active must match exactly one active connection;
// zero cannot occur by construction and more than one aborts.
func buildProfileActions(snap *Snapshot, t ProfileType) ([]Action, error) {
	var actions []Action
	for _, p := range snap.ProfilesOfType(t) {
		matches := snap.ActiveFor(p.UUID)
		switch len(matches) {
		case 0:
			label := fmt.Sprintf("%s %s:%s", inactiveMarker, p.ID, t)
			actions = append(actions, Action{Label: label, Kind: OpActivateProfile, Profile: p})
		case 1:
			label := fmt.Sprintf("%s %s:%s", activeMarker, p.ID, t)
			actions = append(actions, Action{Label: label, Kind: OpDeactivateActive, Active: matches[0]})
		default:
			return nil, fmt.Errorf("profile %q has %d active connections: %w", p.ID, len(matches), ErrAmbiguous)
		}
	}
	return actions, nil
}

// buildOtherActions builds the toggle and utility actions. Toggle labels
// name the action to be taken, not the current state.
func buildOtherActions(snap *Snapshot, adapter *Adapter, wifiEnabled, networkingEnabled bool) []Action {
	var actions []Action

	if wifiEnabled {
		actions = append(actions, Action{Label: "Disable wifi", Kind: OpToggleWifi, Enable: false})
	} else {
		actions = append(actions, Action{Label: "Enable wifi", Kind: OpToggleWifi, Enable: true})
	}
	if networkingEnabled {
		actions = append(actions, Action{Label: "Disable networking", Kind: OpToggleNetworking, Enable: false})
	} else {
		actions = append(actions, Action{Label: "Enable networking", Kind: OpToggleNetworking, Enable: true})
	}
	actions = append(actions, Action{Label: "Launch Connection Manager", Kind: OpLaunchEditor})

	if adapter != nil && wifiEnabled {
		actions = append(actions,
			Action{Label: "Rescan networks", Kind: OpRescan, Adapter: adapter.Interface},
			Action{Label: "Connect to hidden network", Kind: OpJoinHidden, Adapter: adapter.Interface},
		)
	}
	if active, ok := snap.ActiveWifi(); ok {
		actions = append(actions, Action{Label: "Show QR code", Kind: OpShowQR, Active: active})
	}
	return actions
}

// signalBars encodes strength into the 0-4 bar glyphs NetworkManager's own
// tools use.
func signalBars(strength uint8) string {
	switch {
	case strength > 80:
		return "▂▄▆█"
	case strength > 55:
		return "▂▄▆_"
	case strength > 30:
		return "▂▄__"
	case strength > 5:
		return "▂___"
	}
	return "____"
}
