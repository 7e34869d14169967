package netmenu

import "strings"

// SecurityNone is the descriptor shown for open networks.
const SecurityNone = "--"

// SecurityFlags carries the raw capability bits reported for an access
// point, already decoded from the management service's flag words.
type SecurityFlags struct {
	// Privacy is the WEP-era privacy bit on the access point itself.
	Privacy bool
	// WPA and RSN report WPA1 and WPA2/WPA3 key management support.
	WPA bool
	RSN bool
	// Enterprise reports 802.1X key management.
	Enterprise bool
}

// SecurityDescriptor summarizes security flags into the short string shown
// in menu labels, e.g. "WPA2", "WPA1 WPA2 802.1X", "WEP" or "--".
func SecurityDescriptor(f SecurityFlags) string {
	var parts []string
	if f.Privacy && !f.WPA && !f.RSN {
		parts = append(parts, "WEP")
	}
	if f.WPA {
		parts = append(parts, "WPA1")
	}
	if f.RSN {
		parts = append(parts, "WPA2")
	}
	if f.Enterprise {
		parts = append(parts, "802.1X")
	}
	if len(parts) == 0 {
		return SecurityNone
	}
	return strings.Join(parts, " ")
}
