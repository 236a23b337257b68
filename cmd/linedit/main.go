// Package main is the entry point for the linedit editor.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/linedit/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// cliOptions holds flags that do not belong to app.Options.
type cliOptions struct {
	app    app.Options
	script string
	output string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	application, err := app.New(opts.app)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if opts.script != "" {
		if err := application.RunScript(ctx, opts.script, opts.output); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	// The menu blocks on stdin; leave on the first signal.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			application.Close()
			os.Exit(130)
		case <-done:
		}
	}()

	if err := application.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func parseFlags() cliOptions {
	var opts cliOptions
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.app.ConfigPath, "config", "", "Path to configuration file (.toml, .yaml)")
	flag.StringVar(&opts.app.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.app.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.script, "script", "", "Run a Lua script against the file and exit")
	flag.StringVar(&opts.script, "s", "", "Run a Lua script (shorthand)")
	flag.StringVar(&opts.output, "o", "", "Save the result of -script to this file instead of printing it")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "linedit - line editor with undo and redo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: linedit [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  linedit                          Start with an empty buffer\n")
		fmt.Fprintf(os.Stderr, "  linedit notes.txt                Load a file\n")
		fmt.Fprintf(os.Stderr, "  linedit -s fix.lua -o out.txt in.txt   Apply a script and save\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("linedit %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch flag.NArg() {
	case 0:
	case 1:
		opts.app.File = flag.Arg(0)
	default:
		fmt.Fprintf(os.Stderr, "Error: expected at most one file, got %d\n", flag.NArg())
		os.Exit(1)
	}

	return opts
}
