package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/shazow/netmenu/internal/config"
	"github.com/shazow/netmenu/netmenu"
	"github.com/shazow/netmenu/picker"
)

// selector is the slice of the picker the menu flow needs, so tests can
// script selections.
type selector interface {
	Select(lines []string, prompt string) (string, error)
	Secret(prompt string) (string, error)
}

// runMenu executes one invocation end to end: snapshot, adapter choice,
// menu build, picker round-trip, dispatch.
func runMenu(cfg config.Config, b netmenu.Backend, tool netmenu.CommandTool, pick selector, rescan bool) error {
	menu, err := buildMenu(b, pick, rescan)
	if err != nil {
		return err
	}

	choice, err := pick.Select(menu.Lines(), cfg.Menu.Prompt)
	if err != nil {
		return err
	}
	action, err := menu.Resolve(choice)
	if err != nil {
		return err
	}

	mgr := &netmenu.Manager{
		Backend:    b,
		Tool:       tool,
		Passphrase: passphraseFunc(cfg, pick),
		PromptSSID: func() (string, error) {
			return pick.Select(nil, "SSID")
		},
		LaunchEditor: func() error {
			return launchEditor(cfg.Editor)
		},
		ShowQR: func(ssid, secret string) error {
			return printWifiQR(os.Stdout, ssid, secret)
		},
		Log: slog.Default(),
	}
	return mgr.Dispatch(action)
}

func buildMenu(b netmenu.Backend, pick selector, rescan bool) (*netmenu.Menu, error) {
	snap, err := b.Snapshot(rescan)
	if err != nil {
		return nil, fmt.Errorf("reading network state: %w", err)
	}
	adapter, err := chooseAdapter(snap, pick)
	if err != nil {
		return nil, err
	}
	wifiEnabled, err := b.IsWirelessEnabled()
	if err != nil {
		return nil, err
	}
	networkingEnabled, err := b.IsNetworkingEnabled()
	if err != nil {
		return nil, err
	}
	return netmenu.BuildMenu(snap, adapter, wifiEnabled, networkingEnabled)
}

// chooseAdapter resolves to exactly one wifi adapter: none means wifi
// actions are simply omitted, one is taken silently, several go through a
// picker sub-menu on interface name.
func chooseAdapter(snap *netmenu.Snapshot, pick selector) (*netmenu.Adapter, error) {
	adapters := snap.WifiAdapters()
	switch len(adapters) {
	case 0:
		return nil, nil
	case 1:
		return &adapters[0], nil
	}

	names := make([]string, 0, len(adapters))
	for _, a := range adapters {
		names = append(names, a.Interface)
	}
	choice, err := pick.Select(names, "Adapter")
	if err != nil {
		return nil, err
	}
	adapter, err := snap.AdapterByName(choice)
	if err != nil {
		return nil, err
	}
	return &adapter, nil
}

// runList prints the menu lines without invoking the picker. With several
// wifi adapters it takes the first; list output is for scripting, not
// interaction.
func runList(w io.Writer, b netmenu.Backend, rescan bool) error {
	snap, err := b.Snapshot(rescan)
	if err != nil {
		return fmt.Errorf("reading network state: %w", err)
	}
	var adapter *netmenu.Adapter
	if adapters := snap.WifiAdapters(); len(adapters) > 0 {
		adapter = &adapters[0]
	}
	wifiEnabled, err := b.IsWirelessEnabled()
	if err != nil {
		return err
	}
	networkingEnabled, err := b.IsNetworkingEnabled()
	if err != nil {
		return err
	}
	menu, err := netmenu.BuildMenu(snap, adapter, wifiEnabled, networkingEnabled)
	if err != nil {
		return err
	}
	for _, line := range menu.Lines() {
		fmt.Fprintln(w, line)
	}
	return nil
}

// passphraseFunc picks the secret-entry route: a configured pinentry
// helper, or the picker's own obscured mode.
func passphraseFunc(cfg config.Config, pick selector) func(prompt string) (string, error) {
	if cfg.Menu.PassphraseHelper != "" {
		pe := &picker.Pinentry{Command: cfg.Menu.PassphraseHelper}
		return pe.Secret
	}
	return pick.Secret
}
