package dataset

import (
	"sort"
	"strconv"

	"github.com/mr1hm/wildlife-strikes/internal/models"
)

// TopSpecies is the number of rows kept by SpeciesRanking.
const TopSpecies = 20

// Column labels of the aggregate tables.
const (
	LabelSpecies = "Species"
	LabelYear    = "Incident Year"
	LabelPhase   = "Phase"
	LabelCount   = "Count"
)

// Count is one (label, count) row of an aggregate table.
type Count struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Table is a ranked (label, count) aggregate. A table with no rows still
// carries its column labels and a non-nil Rows slice.
type Table struct {
	Columns [2]string `json:"columns"`
	Rows    []Count   `json:"rows"`
}

func newTable(label string, rows []Count) Table {
	if rows == nil {
		rows = []Count{}
	}
	return Table{Columns: [2]string{label, LabelCount}, Rows: rows}
}

func (t Table) Len() int { return len(t.Rows) }

// Total sums the counts of every row.
func (t Table) Total() int {
	total := 0
	for _, r := range t.Rows {
		total += r.Count
	}
	return total
}

// SpeciesRanking counts records per species and keeps the TopSpecies most
// frequent, highest first. Equal counts keep first-encounter order.
func SpeciesRanking(v View) Table {
	counts := countBy(v.incidents, func(in models.Incident) string { return in.Species })
	rankDescending(counts)
	if len(counts) > TopSpecies {
		counts = counts[:TopSpecies]
	}
	return newTable(LabelSpecies, counts)
}

// YearlyTrend counts records per year in ascending year order.
func YearlyTrend(v View) Table {
	perYear := make(map[int]int)
	for _, in := range v.incidents {
		if in.Year.Valid {
			perYear[in.Year.Value]++
		}
	}

	years := make([]int, 0, len(perYear))
	for y := range perYear {
		years = append(years, y)
	}
	sort.Ints(years)

	rows := make([]Count, 0, len(years))
	for _, y := range years {
		rows = append(rows, Count{Label: strconv.Itoa(y), Count: perYear[y]})
	}
	return newTable(LabelYear, rows)
}

// PhaseBreakdown counts records per flight phase, highest first. Every
// phase present in the view appears exactly once.
func PhaseBreakdown(v View) Table {
	counts := countBy(v.incidents, func(in models.Incident) string { return in.FlightPhase })
	rankDescending(counts)
	return newTable(LabelPhase, counts)
}

// countBy returns one row per distinct key in first-encounter order.
func countBy(incidents []models.Incident, key func(models.Incident) string) []Count {
	index := make(map[string]int)
	counts := make([]Count, 0)
	for _, in := range incidents {
		k := key(in)
		if i, ok := index[k]; ok {
			counts[i].Count++
			continue
		}
		index[k] = len(counts)
		counts = append(counts, Count{Label: k, Count: 1})
	}
	return counts
}

func rankDescending(counts []Count) {
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
}

// Summary bundles the three aggregates computed for one filter.
type Summary struct {
	Scope   models.OutcomeScope `json:"scope"`
	YearMin int                 `json:"year_min"`
	YearMax int                 `json:"year_max"`
	Total   int                 `json:"total"`
	Species Table               `json:"species"`
	Yearly  Table               `json:"yearly"`
	Phases  Table               `json:"phases"`
}

func Summarize(v View) Summary {
	return Summary{
		Scope:   v.Scope,
		YearMin: v.YearMin,
		YearMax: v.YearMax,
		Total:   v.Len(),
		Species: SpeciesRanking(v),
		Yearly:  YearlyTrend(v),
		Phases:  PhaseBreakdown(v),
	}
}
