// Package main is the entry point for the canvasforge terminal demo.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mveld/canvasforge/internal/config"
	"github.com/mveld/canvasforge/internal/engine"
	"github.com/mveld/canvasforge/internal/log"
	"github.com/mveld/canvasforge/internal/script"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath string
	scriptPath string
	logLevel   string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		return 1
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	eng := engine.New(
		engine.WithConfig(cfg),
		engine.WithLogger(logger),
	)
	if err := eng.CreateCanvas(cfg.Canvas.Width, cfg.Canvas.Height, cfg.Grid.Size); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create canvas: %v\n", err)
		return 1
	}

	// Run a scene script before entering the UI, if one was given.
	if opts.scriptPath != "" {
		runner := script.NewRunner(eng)
		err := runner.DoFile(opts.scriptPath)
		runner.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: script failed: %v\n", err)
			return 1
		}
	}

	ui, err := newUI(eng, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	defer ui.Shutdown()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signals
		ui.Quit()
	}()

	if err := ui.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newLogger(cfg config.Config) (*log.Logger, error) {
	level := log.ParseLevel(cfg.Log.Level)

	// The terminal UI owns stderr, so logs go to a file when debugging.
	var output io.Writer = os.Stderr
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		output = f
	}

	return log.New(log.Config{Level: level, Output: output, Prefix: "canvasforge"}), nil
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.scriptPath, "script", "", "Lua scene script to run on startup")
	flag.StringVar(&opts.scriptPath, "s", "", "Lua scene script to run on startup (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Canvasforge - infinite canvas state engine demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: canvasforge [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  arrows      pan the camera\n")
		fmt.Fprintf(os.Stderr, "  + / -       zoom in / out at the center\n")
		fmt.Fprintf(os.Stderr, "  a           add an object at the view center\n")
		fmt.Fprintf(os.Stderr, "  d           delete the newest object\n")
		fmt.Fprintf(os.Stderr, "  u / r       undo / redo\n")
		fmt.Fprintf(os.Stderr, "  g           toggle grid snapping\n")
		fmt.Fprintf(os.Stderr, "  q           quit\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Canvasforge %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	return opts
}
