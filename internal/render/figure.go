// Package render turns named x/y series into a self-contained interactive
// HTML page. A Figure is a grid of panels; every panel becomes one line chart.
package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Dash selects the stroke pattern of a series.
type Dash string

const (
	Solid  Dash = "solid"
	Dashed Dash = "dashed"
	Dotted Dash = "dotted"
)

// ErrOutOfRange is returned when a panel coordinate lies outside the grid.
var ErrOutOfRange = errors.New("render: panel out of range")

const (
	defaultPageWidth = 1200
	defaultRowHeight = 360
)

// Series is one named line.
type Series struct {
	Name  string
	X     []float64
	Y     []float64
	Color string
	Width float32
	Dash  Dash
}

func (s Series) validate() error {
	if len(s.X) != len(s.Y) {
		return fmt.Errorf("series %q: x and y lengths differ: %d vs %d", s.Name, len(s.X), len(s.Y))
	}
	switch s.Dash {
	case "", Solid, Dashed, Dotted:
	default:
		return fmt.Errorf("series %q: unknown dash %q", s.Name, s.Dash)
	}
	if s.Width < 0 {
		return fmt.Errorf("series %q: width must be >= 0: %f", s.Name, s.Width)
	}
	return nil
}

// Panel holds the series and axis decoration of one grid cell.
type Panel struct {
	Title  string
	XLabel string
	YLabel string
	LogX   bool
	// Annotation is free text shown under the title. Newlines are kept.
	Annotation string

	series []Series
}

// Series returns the series added to p, in insertion order.
func (p *Panel) Series() []Series {
	return p.series
}

// Option configures a Figure.
type Option func(*Figure)

// WithPageWidth sets the total page width in pixels.
func WithPageWidth(px int) Option {
	return func(f *Figure) {
		if px > 0 {
			f.pageWidth = px
		}
	}
}

// WithRowHeight sets the height of one panel row in pixels.
func WithRowHeight(px int) Option {
	return func(f *Figure) {
		if px > 0 {
			f.rowHeight = px
		}
	}
}

// Figure is a Rows x Cols grid of panels.
type Figure struct {
	title     string
	rows      int
	cols      int
	panels    []*Panel
	pageWidth int
	rowHeight int
}

// NewFigure creates an empty figure with rows x cols panels.
func NewFigure(title string, rows, cols int, options ...Option) (*Figure, error) {
	if rows <= 0 {
		return nil, fmt.Errorf("rows must be > 0: %d", rows)
	}
	if cols <= 0 {
		return nil, fmt.Errorf("cols must be > 0: %d", cols)
	}

	f := &Figure{
		title:     title,
		rows:      rows,
		cols:      cols,
		panels:    make([]*Panel, rows*cols),
		pageWidth: defaultPageWidth,
		rowHeight: defaultRowHeight,
	}
	for i := range f.panels {
		f.panels[i] = &Panel{}
	}
	for _, o := range options {
		o(f)
	}
	return f, nil
}

// Title returns the page title.
func (f *Figure) Title() string { return f.title }

// Rows returns the number of panel rows.
func (f *Figure) Rows() int { return f.rows }

// Cols returns the number of panel columns.
func (f *Figure) Cols() int { return f.cols }

// Panel returns the panel at (row, col), zero-based.
func (f *Figure) Panel(row, col int) (*Panel, error) {
	if row < 0 || row >= f.rows || col < 0 || col >= f.cols {
		return nil, fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfRange, row, col, f.rows, f.cols)
	}
	return f.panels[row*f.cols+col], nil
}

// Add appends s to the panel at (row, col).
func (f *Figure) Add(row, col int, s Series) error {
	p, err := f.Panel(row, col)
	if err != nil {
		return err
	}
	if err := s.validate(); err != nil {
		return err
	}
	p.series = append(p.series, s)
	return nil
}

// Render writes the figure as an HTML page to w.
func (f *Figure) Render(w io.Writer) error {
	page := components.NewPage().
		SetPageTitle(f.title).
		SetLayout(components.PageFlexLayout)

	width := fmt.Sprintf("%dpx", f.pageWidth/f.cols)
	height := fmt.Sprintf("%dpx", f.rowHeight)
	for _, p := range f.panels {
		page.AddCharts(p.chart(width, height))
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render %q: %w", f.title, err)
	}
	return nil
}

// WriteFile renders the figure into path, creating parent directories.
func (f *Figure) WriteFile(path string) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	return f.Render(file)
}

func (p *Panel) chart(width, height string) *charts.Line {
	xType := "value"
	if p.LogX {
		xType = "log"
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: width, Height: height}),
		charts.WithTitleOpts(opts.Title{Title: p.Title, Subtitle: p.Annotation}),
		charts.WithXAxisOpts(opts.XAxis{Type: xType, Name: p.XLabel, NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: p.YLabel}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(len(p.series) > 1), Top: "bottom"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}),
	)

	for _, s := range p.series {
		dash := s.Dash
		if dash == "" {
			dash = Solid
		}
		line.AddSeries(s.Name, points(s.X, s.Y, p.LogX),
			charts.WithLineStyleOpts(opts.LineStyle{Color: s.Color, Width: s.Width, Type: string(dash)}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}),
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		)
	}
	return line
}

// points pairs x and y, dropping samples the chart cannot encode: any
// non-finite coordinate, and x <= 0 on a logarithmic axis.
func points(x, y []float64, logX bool) []opts.LineData {
	data := make([]opts.LineData, 0, len(x))
	for i := range x {
		if !finite(x[i]) || !finite(y[i]) {
			continue
		}
		if logX && x[i] <= 0 {
			continue
		}
		data = append(data, opts.LineData{Value: []float64{x[i], y[i]}})
	}
	return data
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
