// Package main is the entry point for the herald scenario runner.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dshills/herald/internal/scenario"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if opts.showVersion {
		fmt.Printf("herald %s (%s)\n", version, commit)
		return 0
	}
	if opts.scenarioPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -scenario is required")
		flag.Usage()
		return 2
	}

	initLogger(opts.logLevel)

	sc, err := scenario.Load(opts.scenarioPath)
	if err != nil {
		slog.Error("failed to load scenario", "err", err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	runner := scenario.NewRunner(slog.Default())
	deliveries, err := runner.Run(ctx, sc)
	if err != nil {
		slog.Error("scenario failed", "scenario", sc.Name, "err", err)
		return 1
	}

	for _, d := range deliveries {
		fmt.Printf("%-12s %s %s %v\n", d.Kind, d.Slot, d.Message, d.Args)
	}
	slog.Info("scenario complete", "scenario", sc.Name, "deliveries", len(deliveries))
	return 0
}

type options struct {
	scenarioPath string
	logLevel     string
	timeout      time.Duration
	showVersion  bool
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.scenarioPath, "scenario", "", "Path to scenario YAML file")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.DurationVar(&opts.timeout, "timeout", 10*time.Second, "Maximum time to wait for pending waits")
	flag.BoolVar(&opts.showVersion, "version", false, "Print version and exit")
	flag.Parse()
	return opts
}

func initLogger(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
