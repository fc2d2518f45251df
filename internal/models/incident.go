package models

import "strconv"

// Column names as they appear in the FAA wildlife strike export.
const (
	ColIncidentYear   = "Incident Year"
	ColSpeciesName    = "Species Name"
	ColAircraftDamage = "Aircraft Damage"
	ColInjuries       = "Injuries"
	ColFatalities     = "Fatalities"
	ColFlightPhase    = "Flight Phase"
	ColAircraftType   = "Aircraft Type"
)

// FallbackColumns is the schema carried by an empty dataset when the source
// could not be read.
var FallbackColumns = []string{
	ColIncidentYear,
	ColSpeciesName,
	ColAircraftDamage,
	ColInjuries,
	ColFatalities,
	ColFlightPhase,
}

const (
	DefaultSpecies      = "UNKNOWN BIRD"
	DefaultFlightPhase  = "UNKNOWN"
	UnknownAircraftType = "Unknown"
)

// Bounds of the year selector.
const (
	MinYear = 1990
	MaxYear = 2015
)

// ClampYear limits y to [MinYear, MaxYear].
func ClampYear(y int) int {
	return min(max(y, MinYear), MaxYear)
}

// OptionalYear is an incident year that may be missing from the source.
type OptionalYear struct {
	Value int
	Valid bool
}

func YearOf(v int) OptionalYear {
	return OptionalYear{Value: v, Valid: true}
}

// Within reports whether lo <= year <= hi. A missing year fails every bound.
func (y OptionalYear) Within(lo, hi int) bool {
	return y.Valid && y.Value >= lo && y.Value <= hi
}

func (y OptionalYear) String() string {
	if !y.Valid {
		return "NaN"
	}
	return strconv.Itoa(y.Value)
}

// Incident is one cleaned strike record.
type Incident struct {
	Year           OptionalYear
	Species        string
	FlightPhase    string
	AircraftType   string // empty when the source has no type column
	Injuries       float64
	Fatalities     float64
	AircraftDamage float64 // 1 when the aircraft was damaged
}
