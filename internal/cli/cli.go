// Package cli holds the flag handling and process wiring shared by the
// commands: every command reads an optional YAML file, writes into an
// output directory and logs through zap.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"

	"github.com/sigworks/sigscope/internal/logging"
)

// Options are the flags common to every command.
type Options struct {
	ConfigPath string
	OutDir     string
	LogLevel   string
}

// Resolve joins name onto the output directory. The -out flag wins over
// dir from the configuration file.
func (o Options) Resolve(dir, name string) string {
	if o.OutDir != "" {
		dir = o.OutDir
	}
	return filepath.Join(dir, name)
}

// RunFunc is the body of a command.
type RunFunc func(ctx context.Context, opts Options, log *zap.Logger) error

// Parse reads the common flags from args.
func Parse(name, usage string, args []string, stderr io.Writer) (Options, error) {
	var opts Options
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.ConfigPath, "config", "", "YAML file overriding the built-in parameters")
	fs.StringVar(&opts.OutDir, "out", "", "output directory (default: from config, else current directory)")
	fs.StringVar(&opts.LogLevel, "log-level", "info", "log level: debug, info, warn, error")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [flags]\n\n%s\n\nFlags:\n", name, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	if fs.NArg() > 0 {
		return Options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

// Main parses args, builds the logger, installs SIGINT/SIGTERM handling and
// runs fn. It returns the process exit code.
func Main(name, usage string, args []string, fn RunFunc) int {
	opts, err := Parse(name, usage, args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		return 2
	}

	logger, err := logging.New(opts.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		return 2
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.Named(name)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := fn(ctx, opts, logger); err != nil {
		logger.Error("command failed", zap.Error(err))
		return 1
	}
	return 0
}
