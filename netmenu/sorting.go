package netmenu

import "sort"

// SortAccessPoints sorts access points in place by signal strength,
// strongest first. The sort is stable so equal-strength entries keep the
// order the adapter enumerated them in.
func SortAccessPoints(aps []AccessPoint) {
	sort.SliceStable(aps, func(i, j int) bool {
		return aps[i].Strength > aps[j].Strength
	})
}
