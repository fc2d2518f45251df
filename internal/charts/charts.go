// Package charts renders the dashboard aggregate tables as SVG.
package charts

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"html/template"
	"io"
	"math"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/mr1hm/wildlife-strikes/internal/dataset"
	"github.com/mr1hm/wildlife-strikes/internal/observability"
)

const (
	NameSpecies = "species"
	NameTrend   = "trend"
	NamePhases  = "phases"
)

// Names lists the charts in dashboard order.
var Names = []string{NameSpecies, NameTrend, NamePhases}

var titles = map[string]string{
	NameSpecies: "Top Species by Incident Count",
	NameTrend:   "Incidents Over Time",
	NamePhases:  "Incidents by Flight Phase",
}

var ErrUnknownChart = errors.New("unknown chart")

var steelBlue = drawing.ColorFromHex("4682b4")

const (
	chartWidth  = 960
	chartHeight = 420
)

// Chart is one rendered panel. Empty is set when there was nothing to draw,
// in which case SVG is blank.
type Chart struct {
	Name  string        `json:"name"`
	Title string        `json:"title"`
	SVG   template.HTML `json:"-"`
	Empty bool          `json:"empty"`
}

type Renderer struct {
	metrics *observability.Metrics
}

func NewRenderer(metrics *observability.Metrics) *Renderer {
	return &Renderer{metrics: metrics}
}

func Title(name string) string {
	return titles[name]
}

// Render dispatches to the chart called name.
func (r *Renderer) Render(name string, t dataset.Table) (Chart, error) {
	switch name {
	case NameSpecies:
		return r.Species(t)
	case NameTrend:
		return r.Trend(t)
	case NamePhases:
		return r.Phases(t)
	}
	return Chart{}, fmt.Errorf("%w: %s", ErrUnknownChart, name)
}

// Species draws the species ranking as steelblue bars.
func (r *Renderer) Species(t dataset.Table) (Chart, error) {
	return r.render(NameSpecies, t, func(w io.Writer) error {
		bars := make([]chart.Value, len(t.Rows))
		for i, row := range t.Rows {
			bars[i] = chart.Value{
				Label: html.EscapeString(row.Label),
				Value: float64(row.Count),
				Style: chart.Style{FillColor: steelBlue, StrokeColor: steelBlue},
			}
		}
		return barChart(Title(NameSpecies), bars).Render(chart.SVG, w)
	})
}

// Phases draws one bar per flight phase, each in its own colour.
func (r *Renderer) Phases(t dataset.Table) (Chart, error) {
	return r.render(NamePhases, t, func(w io.Writer) error {
		bars := make([]chart.Value, len(t.Rows))
		for i, row := range t.Rows {
			color := chart.GetDefaultColor(i)
			bars[i] = chart.Value{
				Label: html.EscapeString(row.Label),
				Value: float64(row.Count),
				Style: chart.Style{FillColor: color, StrokeColor: color},
			}
		}
		return barChart(Title(NamePhases), bars).Render(chart.SVG, w)
	})
}

// Trend draws the yearly counts as a line with a dot per year.
func (r *Renderer) Trend(t dataset.Table) (Chart, error) {
	return r.render(NameTrend, t, func(w io.Writer) error {
		xs := make([]float64, 0, len(t.Rows))
		ys := make([]float64, 0, len(t.Rows))
		for _, row := range t.Rows {
			year, err := strconv.Atoi(row.Label)
			if err != nil {
				return fmt.Errorf("invalid year label %q: %w", row.Label, err)
			}
			xs = append(xs, float64(year))
			ys = append(ys, float64(row.Count))
		}

		graph := chart.Chart{
			Title:      Title(NameTrend),
			Width:      chartWidth,
			Height:     chartHeight,
			Background: chart.Style{Padding: chart.Box{Top: 50, Left: 16, Right: 24, Bottom: 16}},
			XAxis: chart.XAxis{
				Name:  "Year",
				Ticks: yearTicks(xs),
			},
			YAxis: countAxis(ys),
			Series: []chart.Series{
				chart.ContinuousSeries{
					Name:    "Incidents",
					XValues: xs,
					YValues: ys,
					Style: chart.Style{
						StrokeColor: steelBlue,
						StrokeWidth: 2,
						DotColor:    steelBlue,
						DotWidth:    4,
					},
				},
			},
		}
		return graph.Render(chart.SVG, w)
	})
}

func (r *Renderer) render(name string, t dataset.Table, draw func(io.Writer) error) (Chart, error) {
	c := Chart{Name: name, Title: Title(name)}
	if t.Len() == 0 {
		c.Empty = true
		return c, nil
	}

	timer := prometheus.NewTimer(r.metrics.ChartRenderDuration.WithLabelValues(name))
	defer timer.ObserveDuration()

	var buf bytes.Buffer
	if err := draw(&buf); err != nil {
		r.metrics.ChartRenderErrors.WithLabelValues(name).Inc()
		c.Empty = true
		return c, fmt.Errorf("error rendering %s chart: %w", name, err)
	}

	c.SVG = template.HTML(buf.String())
	return c, nil
}

func barChart(title string, bars []chart.Value) chart.BarChart {
	values := make([]float64, len(bars))
	for i, b := range bars {
		values[i] = b.Value
	}

	return chart.BarChart{
		Title:      title,
		Width:      chartWidth,
		Height:     chartHeight,
		BarWidth:   32,
		Background: chart.Style{Padding: chart.Box{Top: 50, Bottom: 160}},
		XAxis:      chart.Style{TextRotationDegrees: 45, TextWrap: chart.TextWrapNone},
		YAxis:      countAxis(values),
		Bars:       bars,
	}
}

// countAxis starts at zero with whole-number ticks and leaves headroom above
// the tallest value, so a single row still has a non-zero range.
func countAxis(values []float64) chart.YAxis {
	top := 0.0
	for _, v := range values {
		top = math.Max(top, v)
	}

	step := math.Max(1, math.Ceil(top/5))
	limit := math.Max(step, step*math.Ceil(top*1.1/step))

	var ticks []chart.Tick
	for v := 0.0; v <= limit; v += step {
		ticks = append(ticks, chart.Tick{Value: v, Label: strconv.Itoa(int(v))})
	}

	return chart.YAxis{
		Range: &chart.ContinuousRange{Min: 0, Max: limit},
		Ticks: ticks,
	}
}

// yearTicks labels every year from one before the first to one after the
// last.
func yearTicks(years []float64) []chart.Tick {
	lo, hi := years[0], years[0]
	for _, y := range years {
		lo = math.Min(lo, y)
		hi = math.Max(hi, y)
	}

	var ticks []chart.Tick
	for y := lo - 1; y <= hi+1; y++ {
		ticks = append(ticks, chart.Tick{Value: y, Label: strconv.Itoa(int(y))})
	}
	return ticks
}
