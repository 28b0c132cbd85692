// Command transforms compares the Fourier and Laplace transforms of
// f(t) = e^(-t). It writes two HTML pages: the FFT magnitude of f sampled
// over [0, 10] s and the numerical Laplace transform over real s, plotted
// with the closed form 1/(s+1).
//
// Usage:
//
//	transforms [-config scenario.yaml] [-out dir] [-log-level debug]
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/sigworks/sigscope/internal/cli"
	"github.com/sigworks/sigscope/internal/config"
	"github.com/sigworks/sigscope/internal/render"
)

const usage = "Fourier and Laplace transforms of e^(-t)."

func main() {
	os.Exit(cli.Main("transforms", usage, os.Args[1:], run))
}

func run(ctx context.Context, opts cli.Options, log *zap.Logger) error {
	cfg, err := config.Load(opts.ConfigPath, config.Transforms())
	if err != nil {
		return err
	}
	if cfg.Laplace == nil {
		return fmt.Errorf("%w: transforms needs a laplace section", config.ErrInvalidConfig)
	}

	ft, err := fourier(cfg)
	if err != nil {
		return err
	}
	log.Debug("fourier transform",
		zap.Int("samples", ft.N),
		zap.Float64("resolution_hz", ft.Resolution()))

	lt, err := laplaceCurve(cfg.Laplace)
	if err != nil {
		return err
	}
	log.Debug("laplace transform",
		zap.Int("points", len(lt.S)),
		zap.Float64("max_abs_error", lt.MaxError()))

	fourierFig, err := fourierFigure(cfg, ft)
	if err != nil {
		return err
	}
	laplaceFig, err := laplaceFigure(lt)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	for _, out := range []struct {
		name string
		fig  *render.Figure
	}{
		{cfg.Output.HTML, fourierFig},
		{cfg.Laplace.HTML, laplaceFig},
	} {
		path := opts.Resolve(cfg.Output.Dir, out.name)
		if err := out.fig.WriteFile(path); err != nil {
			return err
		}
		log.Info("plot written", zap.String("path", path))
	}
	return nil
}
