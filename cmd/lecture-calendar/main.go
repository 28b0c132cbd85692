// Command lecture-calendar writes the Signals and Systems lecture schedule
// as an iCalendar (.ics) file: twelve weekly topics, three one-hour
// lectures per week, each lecture two days after the previous one.
//
// Usage:
//
//	lecture-calendar [-config calendar.yaml] [-out dir] [-log-level debug]
package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/sigworks/sigscope/internal/calendar"
	"github.com/sigworks/sigscope/internal/cli"
	"github.com/sigworks/sigscope/internal/config"
	"github.com/sigworks/sigscope/internal/lectures"
)

const usage = "Lecture schedule calendar generator."

func main() {
	os.Exit(cli.Main("lecture-calendar", usage, os.Args[1:], run))
}

func run(ctx context.Context, opts cli.Options, log *zap.Logger) error {
	cfg, err := config.LoadCalendar(opts.ConfigPath, config.LectureCalendar())
	if err != nil {
		return err
	}

	sched, err := schedule(cfg)
	if err != nil {
		return err
	}
	records, err := sched.Records()
	if err != nil {
		return err
	}
	log.Debug("schedule built",
		zap.Int("lectures", len(records)),
		zap.Time("first", records[0].Start),
		zap.Time("last", records[len(records)-1].Start))

	if err := ctx.Err(); err != nil {
		return err
	}

	path := opts.Resolve(cfg.Dir, cfg.FileName)
	if err := calendar.New(calendar.WithName(cfg.Name)).WriteFile(path, records); err != nil {
		return err
	}
	log.Info("calendar written", zap.String("path", path), zap.Int("events", len(records)))
	return nil
}

func schedule(cfg *config.Calendar) (lectures.Schedule, error) {
	start, err := cfg.StartTime()
	if err != nil {
		return lectures.Schedule{}, err
	}
	return lectures.Schedule{
		Start:           start,
		Weeks:           cfg.Weeks,
		LecturesPerWeek: cfg.LecturesPerWeek,
		Duration:        cfg.LectureDuration(),
		Spacing:         cfg.Spacing(),
		Topics:          cfg.Topics,
		Objectives:      cfg.Objectives,
	}, nil
}
