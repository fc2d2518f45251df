package ingestion

import (
	"math"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/mr1hm/wildlife-strikes/internal/models"
)

// prunedColumns are dropped when present; none of them feed a chart.
var prunedColumns = []string{
	"Engine1 Position",
	"Engine2 Position",
	"Engine3 Position",
	"Engine4 Position",
	"Engine Make",
	"Engine Model",
	"Engine Type",
	"Aircraft Make",
	"Aircraft Model",
	"Aircraft Mass",
	"Warning Issued",
	"Airport",
	"Distance",
	"Species ID",
	"Record ID",
	"Operator ID",
}

var aircraftTypes = map[string]string{
	"A": "Airplane",
	"B": "Helicopter",
	"J": "Other",
}

// Clean prunes, normalises, fills and coerces a raw string frame. The
// returned frame has float columns for year, damage, injuries and fatalities.
func Clean(df dataframe.DataFrame) dataframe.DataFrame {
	df = prune(df)

	if hasColumn(df, models.ColAircraftType) {
		df = df.Mutate(mapAircraftType(df.Col(models.ColAircraftType)))
	}

	df = fillString(df, models.ColFlightPhase, models.DefaultFlightPhase)
	df = fillString(df, models.ColSpeciesName, models.DefaultSpecies)

	df = coerceNumeric(df, models.ColIncidentYear, math.NaN())
	df = coerceNumeric(df, models.ColAircraftDamage, 0)
	df = coerceNumeric(df, models.ColInjuries, 0)
	df = coerceNumeric(df, models.ColFatalities, 0)

	return df
}

func prune(df dataframe.DataFrame) dataframe.DataFrame {
	var present []string
	for _, name := range prunedColumns {
		if hasColumn(df, name) {
			present = append(present, name)
		}
	}
	if len(present) == 0 {
		return df
	}
	return df.Drop(present)
}

func mapAircraftType(s series.Series) series.Series {
	values := s.Records()
	for i, v := range values {
		if label, ok := aircraftTypes[strings.TrimSpace(v)]; ok && !s.Elem(i).IsNA() {
			values[i] = label
		} else {
			values[i] = models.UnknownAircraftType
		}
	}
	return series.New(values, series.String, s.Name)
}

// fillString replaces missing cells with def, adding the column when the
// source lacks it.
func fillString(df dataframe.DataFrame, col, def string) dataframe.DataFrame {
	values := make([]string, df.Nrow())
	if hasColumn(df, col) {
		s := df.Col(col)
		for i, v := range s.Records() {
			if s.Elem(i).IsNA() {
				v = def
			}
			values[i] = v
		}
	} else {
		for i := range values {
			values[i] = def
		}
	}
	return df.Mutate(series.New(values, series.String, col))
}

// coerceNumeric parses col as float. Unparseable and missing cells become
// def; NaN leaves them missing.
func coerceNumeric(df dataframe.DataFrame, col string, def float64) dataframe.DataFrame {
	values := make([]float64, df.Nrow())
	for i := range values {
		values[i] = def
	}

	if hasColumn(df, col) {
		s := df.Col(col)
		records := s.Records()
		trimmed := make([]string, len(records))
		for i, v := range records {
			trimmed[i] = strings.TrimSpace(v)
			if s.Elem(i).IsNA() {
				trimmed[i] = naCell
			}
		}
		parsed := series.New(trimmed, series.Float, col).Float()
		for i, v := range parsed {
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				values[i] = v
			}
		}
	}

	return df.Mutate(series.New(values, series.Float, col))
}

func hasColumn(df dataframe.DataFrame, col string) bool {
	for _, name := range df.Names() {
		if name == col {
			return true
		}
	}
	return false
}

// toIncidents reads the cleaned frame row by row.
func toIncidents(df dataframe.DataFrame) []models.Incident {
	n := df.Nrow()
	years := df.Col(models.ColIncidentYear).Float()
	damage := df.Col(models.ColAircraftDamage).Float()
	injuries := df.Col(models.ColInjuries).Float()
	fatalities := df.Col(models.ColFatalities).Float()
	species := df.Col(models.ColSpeciesName).Records()
	phases := df.Col(models.ColFlightPhase).Records()

	var types []string
	if hasColumn(df, models.ColAircraftType) {
		types = df.Col(models.ColAircraftType).Records()
	}

	incidents := make([]models.Incident, n)
	for i := 0; i < n; i++ {
		in := models.Incident{
			Year:           yearOf(years[i]), // fractional years such as 2001.5 are missing
			Species:        species[i],
			FlightPhase:    phases[i],
			Injuries:       injuries[i],
			Fatalities:     fatalities[i],
			AircraftDamage: damage[i],
		}
		if types != nil {
			in.AircraftType = types[i]
		}
		incidents[i] = in
	}
	return incidents
}

// yearOf accepts only finite integral values.
func yearOf(v float64) models.OptionalYear {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return models.OptionalYear{}
	}
	return models.YearOf(int(v))
}
