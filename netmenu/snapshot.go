package netmenu

import "fmt"

// Snapshot is the state of the management service at one moment, indexed by
// identifier and by type so the menu builders never re-scan the raw lists.
// It is built once per invocation and discarded at process exit.
type Snapshot struct {
	Adapters []Adapter
	Profiles []ConnectionProfile
	Active   []ActiveConnection

	profilesByUUID map[string]ConnectionProfile
	profilesByType map[ProfileType][]ConnectionProfile
	wifiBySSID     map[string][]ConnectionProfile
	activeByUUID   map[string][]ActiveConnection
	activeByBSSID  map[string]ActiveConnection
}

// NewSnapshot indexes the given entities. The inputs are not copied; the
// caller hands over ownership.
func NewSnapshot(adapters []Adapter, profiles []ConnectionProfile, active []ActiveConnection) *Snapshot {
	s := &Snapshot{
		Adapters: adapters,
		Profiles: profiles,
		Active:   active,

		profilesByUUID: make(map[string]ConnectionProfile),
		profilesByType: make(map[ProfileType][]ConnectionProfile),
		wifiBySSID:     make(map[string][]ConnectionProfile),
		activeByUUID:   make(map[string][]ActiveConnection),
		activeByBSSID:  make(map[string]ActiveConnection),
	}
	for _, p := range profiles {
		s.profilesByUUID[p.UUID] = p
		s.profilesByType[p.Type] = append(s.profilesByType[p.Type], p)
		if p.Type == ProfileWifi && p.SSID != "" {
			s.wifiBySSID[p.SSID] = append(s.wifiBySSID[p.SSID], p)
		}
	}
	for _, a := range active {
		s.activeByUUID[a.ProfileUUID] = append(s.activeByUUID[a.ProfileUUID], a)
		if a.BSSID != "" {
			s.activeByBSSID[a.BSSID] = a
		}
	}
	return s
}

// WifiAdapters returns the adapters capable of wifi, in enumeration order.
func (s *Snapshot) WifiAdapters() []Adapter {
	var out []Adapter
	for _, a := range s.Adapters {
		if a.SupportsWifi {
			out = append(out, a)
		}
	}
	return out
}

// AdapterByName resolves an interface name to exactly one wifi adapter.
// More than one match means the snapshot broke interface-name uniqueness
// and is reported as ErrAmbiguous.
func (s *Snapshot) AdapterByName(name string) (Adapter, error) {
	var found []Adapter
	for _, a := range s.WifiAdapters() {
		if a.Interface == name {
			found = append(found, a)
		}
	}
	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return Adapter{}, fmt.Errorf("adapter %q: %w", name, ErrNotFound)
	}
	return Adapter{}, fmt.Errorf("adapter %q matches %d interfaces: %w", name, len(found), ErrAmbiguous)
}

// ProfilesOfType returns the saved profiles with the given type tag.
func (s *Snapshot) ProfilesOfType(t ProfileType) []ConnectionProfile {
	return s.profilesByType[t]
}

// WifiProfileForSSID looks up the saved profile for an SSID. A second
// return of false means no profile exists; multiple saved profiles for one
// SSID is a reportable inconsistency, not silently resolved.
func (s *Snapshot) WifiProfileForSSID(ssid string) (ConnectionProfile, bool, error) {
	matches := s.wifiBySSID[ssid]
	switch len(matches) {
	case 0:
		return ConnectionProfile{}, false, nil
	case 1:
		return matches[0], true, nil
	}
	return ConnectionProfile{}, false, fmt.Errorf("%d saved profiles for SSID %q: %w", len(matches), ssid, ErrAmbiguous)
}

// ActiveFor returns the active connections instantiating the given profile.
func (s *Snapshot) ActiveFor(profileUUID string) []ActiveConnection {
	return s.activeByUUID[profileUUID]
}

// ActiveByBSSID returns the active connection bound to an access point.
func (s *Snapshot) ActiveByBSSID(bssid string) (ActiveConnection, bool) {
	a, ok := s.activeByBSSID[bssid]
	return a, ok
}

// ActiveWifi returns the first active wifi connection, if any.
func (s *Snapshot) ActiveWifi() (ActiveConnection, bool) {
	for _, a := range s.Active {
		if a.Type == ProfileWifi {
			return a, true
		}
	}
	return ActiveConnection{}, false
}
