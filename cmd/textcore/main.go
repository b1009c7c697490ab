// Package main is the entry point of the textcore edit-script runner.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/dshills/textcore/internal/engine"
	"github.com/dshills/textcore/internal/engine/buffer"
	"github.com/dshills/textcore/internal/hook"
	"github.com/dshills/textcore/internal/script"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath string
	bufferName string
	content    string
	onCreate   string
	logLevel   string
	script     string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	logger, err := newLogger(opts.logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	e := engine.New(engine.WithLogger(logger))
	defer e.CloseAll()

	if opts.configPath != "" {
		f, err := os.Open(opts.configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to open config: %v\n", err)
			return 1
		}
		switch filepath.Ext(opts.configPath) {
		case ".yaml", ".yml":
			err = e.LoadOptionsYAML(f)
		default:
			err = e.LoadOptions(f)
		}
		f.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	if opts.onCreate != "" {
		fn, err := hook.LuaFunc(opts.onCreate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -on-create hook: %v\n", err)
			return 1
		}
		if err := e.Hooks().Add(engine.HookBufCreate, "cmdline", fn); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	if _, err := e.Create(opts.bufferName, buffer.FlagNone, opts.content); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	r, err := script.New(e, opts.bufferName, os.Stdout, script.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer r.Close()

	var src io.Reader = os.Stdin
	if opts.script != "" && opts.script != "-" {
		f, err := os.Open(opts.script)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to open script: %v\n", err)
			return 1
		}
		defer f.Close()
		src = f
	}

	// Stop between commands on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := r.Run(ctx, src); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newLogger(level string) (*slog.Logger, error) {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", level)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})), nil
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "", "Path to a TOML or YAML (.yaml, .yml) file of global options")
	flag.StringVar(&opts.configPath, "c", "", "Path to a TOML or YAML file of global options (shorthand)")
	flag.StringVar(&opts.bufferName, "name", "*scratch*", "Name of the edited buffer")
	flag.StringVar(&opts.content, "content", buffer.DefaultContent, "Initial buffer content")
	flag.StringVar(&opts.onCreate, "on-create", "", "Lua chunk run by the BufCreate hook")
	flag.StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "textcore - replay edit scripts against an in-memory buffer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: textcore [options] [script]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  textcore edits.txt                 Run a script file\n")
		fmt.Fprintf(os.Stderr, "  echo 'print' | textcore -content x  Read the script from stdin\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("textcore %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	opts.script = flag.Arg(0)
	return opts
}
