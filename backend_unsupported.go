//go:build !linux

package main

import (
	"fmt"
	"log/slog"

	"github.com/shazow/netmenu/netmenu"
	"github.com/shazow/netmenu/netmenu/mock"
)

func getBackend(name string, logger *slog.Logger) (netmenu.Backend, netmenu.CommandTool, error) {
	if name == "mock" {
		return mock.New(), &mock.Tool{Output: "activated"}, nil
	}
	return nil, nil, fmt.Errorf("no network management service on this platform: %w", netmenu.ErrNotAvailable)
}
