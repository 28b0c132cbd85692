// Command envelope-demo plots exponentially growing, decaying and constant
// sine waves, their Bode amplitude and phase, and a transfer-function note
// for each component.
//
// Usage:
//
//	envelope-demo [-config scenario.yaml] [-out dir] [-log-level debug]
package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/sigworks/sigscope/analysis"
	"github.com/sigworks/sigscope/internal/cli"
	"github.com/sigworks/sigscope/internal/config"
	"github.com/sigworks/sigscope/internal/export"
)

const usage = "Complex wave generation with transfer function notes."

func main() {
	os.Exit(cli.Main("envelope-demo", usage, os.Args[1:], run))
}

func run(ctx context.Context, opts cli.Options, log *zap.Logger) error {
	cfg, err := config.Load(opts.ConfigPath, config.EnvelopeDemo())
	if err != nil {
		return err
	}

	res, err := analysis.NewPipeline(analysis.WithLogger(log)).Run(cfg)
	if err != nil {
		return err
	}

	fig, err := buildFigure(cfg, res)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	path := opts.Resolve(cfg.Output.Dir, cfg.Output.HTML)
	if err := fig.WriteFile(path); err != nil {
		return err
	}
	log.Info("plot written", zap.String("path", path))

	files, err := export.WriteResult(res, opts.Resolve(cfg.Output.Dir, ""), cfg.Output.WAV, cfg.Output.Parquet)
	if err != nil {
		return err
	}
	for _, f := range files {
		log.Info("series exported", zap.String("path", f))
	}
	return nil
}
