package charts

import (
	"strconv"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mr1hm/wildlife-strikes/internal/dataset"
	"github.com/mr1hm/wildlife-strikes/internal/observability"
)

func table(label string, rows ...dataset.Count) dataset.Table {
	return dataset.Table{
		Columns: [2]string{label, dataset.LabelCount},
		Rows:    append([]dataset.Count{}, rows...),
	}
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestRenderer_EmptyTables(t *testing.T) {
	r := NewRenderer(observability.NewMetricsForTesting())

	for _, name := range Names {
		t.Run(name, func(t *testing.T) {
			c, err := r.Render(name, table(dataset.LabelSpecies))
			require.NoError(t, err)
			assert.True(t, c.Empty)
			assert.Empty(t, c.SVG)
			assert.Equal(t, name, c.Name)
			assert.Equal(t, Title(name), c.Title)
		})
	}
}

func TestRenderer_Species(t *testing.T) {
	r := NewRenderer(observability.NewMetricsForTesting())

	c, err := r.Species(table(dataset.LabelSpecies,
		dataset.Count{Label: "GULLS&TERNS", Count: 5},
		dataset.Count{Label: "KILLDEER", Count: 3},
	))
	require.NoError(t, err)

	svg := string(c.SVG)
	assert.False(t, c.Empty)
	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.Contains(t, svg, "GULLS&amp;TERNS")
	assert.NotContains(t, svg, "GULLS&TERNS")
	assert.Contains(t, svg, "KILLDEER")
	assert.Contains(t, svg, "Top Species by Incident Count")
}

func TestRenderer_SingleRow(t *testing.T) {
	r := NewRenderer(observability.NewMetricsForTesting())

	species, err := r.Species(table(dataset.LabelSpecies, dataset.Count{Label: "KILLDEER", Count: 1}))
	require.NoError(t, err)
	assert.False(t, species.Empty)

	trend, err := r.Trend(table(dataset.LabelYear, dataset.Count{Label: "2005", Count: 1}))
	require.NoError(t, err)
	assert.False(t, trend.Empty)
	assert.Contains(t, string(trend.SVG), "2005")

	phases, err := r.Phases(table(dataset.LabelPhase, dataset.Count{Label: "CLIMB", Count: 1}))
	require.NoError(t, err)
	assert.False(t, phases.Empty)
}

func TestRenderer_Trend(t *testing.T) {
	r := NewRenderer(observability.NewMetricsForTesting())

	var rows []dataset.Count
	for y := 1990; y <= 2015; y++ {
		rows = append(rows, dataset.Count{Label: strconv.Itoa(y), Count: y - 1980})
	}

	c, err := r.Trend(table(dataset.LabelYear, rows...))
	require.NoError(t, err)

	svg := string(c.SVG)
	assert.Contains(t, svg, "1990")
	assert.Contains(t, svg, "2015")
	assert.Contains(t, svg, "<circle")
}

func TestRenderer_TrendInvalidYear(t *testing.T) {
	metrics := observability.NewMetricsForTesting()
	r := NewRenderer(metrics)

	c, err := r.Trend(table(dataset.LabelYear, dataset.Count{Label: "NaN", Count: 2}))
	require.Error(t, err)
	assert.True(t, c.Empty)
	assert.Equal(t, 1.0, counterValue(t, metrics.ChartRenderErrors.WithLabelValues(NameTrend)))
}

func TestRenderer_ManyPhases(t *testing.T) {
	r := NewRenderer(observability.NewMetricsForTesting())

	var rows []dataset.Count
	for i := 0; i < 25; i++ {
		rows = append(rows, dataset.Count{Label: "PHASE" + strconv.Itoa(i), Count: 25 - i})
	}

	c, err := r.Phases(table(dataset.LabelPhase, rows...))
	require.NoError(t, err)
	assert.Contains(t, string(c.SVG), ">PHASE24<")
}

func TestRenderer_MultiWordLabelsStayWhole(t *testing.T) {
	r := NewRenderer(observability.NewMetricsForTesting())

	names := []string{
		"MOURNING DOVE", "AMERICAN KESTREL", "BARN SWALLOW", "EUROPEAN STARLING",
		"UNKNOWN MEDIUM BIRD", "HORNED LARK", "ROCK PIGEON", "KILLDEER",
		"RED-TAILED HAWK", "CANADA GOOSE", "BARN OWL", "CLIFF SWALLOW",
		"EASTERN MEADOWLARK", "HERRING GULL", "RING-BILLED GULL", "CHIMNEY SWIFT",
		"UNKNOWN SMALL BIRD", "AMERICAN ROBIN", "TREE SWALLOW", "SAVANNAH SPARROW",
	}
	var rows []dataset.Count
	for i, name := range names {
		rows = append(rows, dataset.Count{Label: name, Count: 100 - i})
	}

	species, err := r.Species(table(dataset.LabelSpecies, rows...))
	require.NoError(t, err)
	for _, name := range names {
		assert.Contains(t, string(species.SVG), ">"+name+"<")
	}

	phases, err := r.Phases(table(dataset.LabelPhase,
		dataset.Count{Label: "LANDING ROLL", Count: 4},
		dataset.Count{Label: "TAKEOFF RUN", Count: 2},
	))
	require.NoError(t, err)
	assert.Contains(t, string(phases.SVG), ">LANDING ROLL<")
	assert.Contains(t, string(phases.SVG), ">TAKEOFF RUN<")
}

func TestRenderer_UnknownChart(t *testing.T) {
	r := NewRenderer(observability.NewMetricsForTesting())

	_, err := r.Render("pie", table(dataset.LabelSpecies))
	assert.ErrorIs(t, err, ErrUnknownChart)
}

func TestCountAxis(t *testing.T) {
	axis := countAxis([]float64{1})
	assert.Equal(t, 0.0, axis.Range.GetMin())
	assert.Equal(t, 2.0, axis.Range.GetMax())

	axis = countAxis([]float64{40, 100})
	assert.Equal(t, 120.0, axis.Range.GetMax())
	assert.Equal(t, "120", axis.Ticks[len(axis.Ticks)-1].Label)
}
