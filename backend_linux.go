//go:build linux

package main

import (
	"fmt"
	"log/slog"

	"github.com/shazow/netmenu/netmenu"
	"github.com/shazow/netmenu/netmenu/mock"
	"github.com/shazow/netmenu/netmenu/networkmanager"
)

func getBackend(name string, logger *slog.Logger) (netmenu.Backend, netmenu.CommandTool, error) {
	switch name {
	case "mock":
		return mock.New(), &mock.Tool{Output: "activated"}, nil
	case "", "networkmanager":
		b, err := networkmanager.New(logger)
		if err != nil {
			return nil, nil, err
		}
		return b, networkmanager.NewCLI(), nil
	}
	return nil, nil, fmt.Errorf("unknown backend %q", name)
}
