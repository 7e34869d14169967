package networkmanager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRun struct {
	calls  [][]string
	output string
	err    error
}

func (f *fakeRun) run(name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return f.output, f.err
}

func TestCLIConnect(t *testing.T) {
	f := &fakeRun{output: "Device 'wlan0' successfully activated."}
	c := &CLI{run: f.run}

	out, err := c.Connect("Guest", "hunter2", "wlan0")
	require.NoError(t, err)
	assert.Equal(t, f.output, out)

	require.Len(t, f.calls, 1)
	assert.Equal(t, []string{
		"nmcli", "device", "wifi", "connect", "Guest", "password", "hunter2", "ifname", "wlan0",
	}, f.calls[0])
}

func TestCLIConnectOpenNetwork(t *testing.T) {
	f := &fakeRun{}
	c := &CLI{run: f.run}

	_, err := c.Connect("Guest", "", "")
	require.NoError(t, err)
	require.Len(t, f.calls, 1)
	assert.Equal(t, []string{"nmcli", "device", "wifi", "connect", "Guest"}, f.calls[0])
}

func TestCLIDelete(t *testing.T) {
	f := &fakeRun{}
	c := &CLI{run: f.run}

	require.NoError(t, c.Delete("Office"))
	require.Len(t, f.calls, 1)
	assert.Equal(t, []string{"nmcli", "connection", "delete", "id", "Office"}, f.calls[0])
}
