// Package dataset holds the cleaned strike records and the filter and
// aggregation steps that run against them on every dashboard request.
//
// A Dataset is built once at start-up and never mutated afterwards, so it is
// safe to share between request goroutines without locking.
package dataset

import (
	"time"

	"github.com/mr1hm/wildlife-strikes/internal/models"
)

// Dataset is the cleaned record set plus where and when it was loaded.
type Dataset struct {
	incidents []models.Incident
	columns   []string
	source    string
	loadedAt  time.Time
	fallback  bool
}

// New copies incidents and columns into an immutable Dataset.
func New(source string, columns []string, incidents []models.Incident, loadedAt time.Time) *Dataset {
	return &Dataset{
		incidents: append([]models.Incident(nil), incidents...),
		columns:   append([]string(nil), columns...),
		source:    source,
		loadedAt:  loadedAt,
	}
}

// Empty returns the dataset used when the source cannot be read. It has no
// records but keeps the minimal column schema.
func Empty(source string, loadedAt time.Time) *Dataset {
	ds := New(source, models.FallbackColumns, nil, loadedAt)
	ds.fallback = true
	return ds
}

func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.incidents)
}

func (d *Dataset) Source() string {
	if d == nil {
		return ""
	}
	return d.source
}

func (d *Dataset) LoadedAt() time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.loadedAt
}

// Fallback reports whether the dataset is the empty substitute for an
// unreadable source.
func (d *Dataset) Fallback() bool {
	return d != nil && d.fallback
}

func (d *Dataset) Columns() []string {
	if d == nil {
		return []string{}
	}
	return append([]string(nil), d.columns...)
}

// AircraftTypes counts records per normalised aircraft type. Records from
// sources without a type column are not counted.
func (d *Dataset) AircraftTypes() map[string]int {
	counts := make(map[string]int)
	if d == nil {
		return counts
	}
	for _, in := range d.incidents {
		if in.AircraftType != "" {
			counts[in.AircraftType]++
		}
	}
	return counts
}
