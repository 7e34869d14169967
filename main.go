package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/shazow/netmenu/internal/config"
	"github.com/shazow/netmenu/netmenu"
	"github.com/shazow/netmenu/picker"
)

var (
	// Version is the version of the application. It is set at build time.
	Version string = "dev"
)

func main() {
	var (
		rootFlagSet = flag.NewFlagSet("netmenu", flag.ExitOnError)
		configPath  = rootFlagSet.String("config", "", "path to config file (env: NETMENU_CONFIG)")
		backendName = rootFlagSet.String("backend", "", "backend to use: networkmanager or mock (env: NETMENU_BACKEND)")
		noScan      = rootFlagSet.Bool("no-scan", false, "do not request a wifi scan before building the menu")
		verbose     = rootFlagSet.Bool("v", false, "verbose logging")
		version     = rootFlagSet.Bool("version", false, "display version")
	)

	var (
		cfg  config.Config
		b    netmenu.Backend
		tool netmenu.CommandTool
	)

	listCmd := &ffcli.Command{
		Name:      "list",
		ShortHelp: "Print the menu lines without invoking the picker",
		Exec: func(ctx context.Context, args []string) error {
			return runList(os.Stdout, b, !*noScan)
		},
	}

	rootOptions := []ff.Option{
		ff.WithEnvVarPrefix("NETMENU"),
		ff.WithIgnoreUndefined(true),
	}
	root := &ffcli.Command{
		ShortUsage:  "netmenu [flags] [subcommand]",
		FlagSet:     rootFlagSet,
		Options:     rootOptions,
		Subcommands: []*ffcli.Command{listCmd},
		Exec: func(ctx context.Context, args []string) error {
			pick := &picker.Picker{Command: cfg.Menu.Command, Args: cfg.Menu.Args}
			return runMenu(cfg, b, tool, pick, !*noScan)
		},
	}

	// Parse once up front so config and backend flags are available before
	// the command tree dispatches. ParseAndRun parses again; same options,
	// same result.
	err := ff.Parse(rootFlagSet, os.Args[1:], rootOptions...)
	if err != nil {
		if err == flag.ErrHelp {
			root.FlagSet.Usage()
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error parsing flags: %v\n", err)
		os.Exit(1)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *version {
		fmt.Println(Version)
		os.Exit(0)
	}

	cfg, err = config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(1)
	}

	b, tool, err = getBackend(*backendName, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := root.ParseAndRun(context.Background(), os.Args[1:]); err != nil {
		// Backing out of any prompt is a clean exit, not a failure.
		if errors.Is(err, netmenu.ErrCancelled) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
