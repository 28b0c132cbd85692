package config

import (
	"fmt"
	"time"
)

// DateLayout is the layout of Calendar.Start.
const DateLayout = "2006-01-02"

// Calendar is the parameter set of the lecture calendar command.
type Calendar struct {
	Name            string   `yaml:"name" validate:"required"`
	Start           string   `yaml:"start" validate:"required,datetime=2006-01-02"`
	Weeks           int      `yaml:"weeks" validate:"gt=0"`
	LecturesPerWeek int      `yaml:"lectures_per_week" validate:"gt=0"`
	LectureMinutes  int      `yaml:"lecture_minutes" validate:"gt=0"`
	SpacingDays     int      `yaml:"spacing_days" validate:"gt=0"`
	Topics          []string `yaml:"topics" validate:"omitempty,dive,required"`
	Objectives      []string `yaml:"objectives" validate:"omitempty,dive,required"`
	Dir             string   `yaml:"dir"`
	FileName        string   `yaml:"file_name" validate:"required"`
}

// StartTime parses Start as midnight UTC.
func (c *Calendar) StartTime() (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, c.Start, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: start: %w", ErrInvalidConfig, err)
	}
	return t, nil
}

// LectureDuration returns LectureMinutes as a duration.
func (c *Calendar) LectureDuration() time.Duration {
	return time.Duration(c.LectureMinutes) * time.Minute
}

// Spacing returns the gap between consecutive lecture starts.
func (c *Calendar) Spacing() time.Duration {
	return time.Duration(c.SpacingDays) * 24 * time.Hour
}

// Validate checks struct tags and that topic overrides cover every week.
func (c *Calendar) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, formatValidationError(err))
	}
	if len(c.Topics) > 0 && len(c.Topics) < c.Weeks {
		return fmt.Errorf("%w: topics must cover %d weeks: %d", ErrInvalidConfig, c.Weeks, len(c.Topics))
	}
	if len(c.Objectives) > 0 && len(c.Objectives) < c.Weeks {
		return fmt.Errorf("%w: objectives must cover %d weeks: %d", ErrInvalidConfig, c.Weeks, len(c.Objectives))
	}
	return nil
}

// LoadCalendar reads path over a copy of base and validates the result.
func LoadCalendar(path string, base Calendar) (*Calendar, error) {
	cfg := base
	cfg.Topics = append([]string(nil), base.Topics...)
	cfg.Objectives = append([]string(nil), base.Objectives...)
	if err := decodeFile(path, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
