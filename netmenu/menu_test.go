package netmenu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuLinesSeparators(t *testing.T) {
	m := &Menu{
		AccessPoints: []Action{{Label: "ap1"}, {Label: "ap2"}},
		GSM:          []Action{{Label: "roaming:GSM"}},
		Other:        []Action{{Label: "Launch Connection Manager"}},
	}

	// Empty VPN category vanishes along with its separator.
	want := []string{"ap1", "ap2", "", "roaming:GSM", "", "Launch Connection Manager"}
	assert.Equal(t, want, m.Lines())
}

func TestMenuLinesAllEmpty(t *testing.T) {
	m := &Menu{}
	assert.Empty(t, m.Lines())
}

func TestMenuResolveRoundTrip(t *testing.T) {
	snap, adapter := testSnapshot()
	menu, err := BuildMenu(snap, &adapter, true, true)
	require.NoError(t, err)

	// Every label must resolve back to the action that produced it.
	for _, a := range menu.Actions() {
		got, err := menu.Resolve(a.Label)
		require.NoError(t, err, "label %q", a.Label)
		assert.Equal(t, a, got)
	}
}

func TestMenuResolveTrailingNewline(t *testing.T) {
	m := &Menu{Other: []Action{{Label: "Rescan networks", Kind: OpRescan}}}

	a, err := m.Resolve("Rescan networks\n")
	require.NoError(t, err)
	assert.Equal(t, OpRescan, a.Kind)
}

func TestMenuResolveCancellation(t *testing.T) {
	m := &Menu{Other: []Action{{Label: "Rescan networks"}}}

	for _, choice := range []string{"", "\n", "   ", " \n"} {
		_, err := m.Resolve(choice)
		assert.ErrorIs(t, err, ErrCancelled, "choice %q", choice)
	}
}

func TestMenuResolveUnknown(t *testing.T) {
	m := &Menu{Other: []Action{{Label: "Rescan networks"}}}

	_, err := m.Resolve("something the picker made up")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMenuResolveDuplicate(t *testing.T) {
	// Defensive check: if a duplicate label slipped past construction,
	// resolution must refuse rather than pick one.
	m := &Menu{
		VPN: []Action{{Label: "dup"}},
		GSM: []Action{{Label: "dup"}},
	}
	_, err := m.Resolve("dup")
	assert.ErrorIs(t, err, ErrAmbiguous)
}
