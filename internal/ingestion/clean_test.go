package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mr1hm/wildlife-strikes/internal/models"
)

func TestNewFrame_RaggedRows(t *testing.T) {
	df, err := newFrame(
		[]string{"Incident Year", "Species Name", "Flight Phase"},
		[][]string{
			{"2001", "GULL"},
			{"2002", "HAWK", "CLIMB", "extra"},
		},
	)
	require.NoError(t, err)

	assert.Equal(t, 2, df.Nrow())
	assert.Equal(t, 3, df.Ncol())
	assert.True(t, df.Col("Flight Phase").Elem(0).IsNA())
	assert.Equal(t, "CLIMB", df.Col("Flight Phase").Elem(1).String())
}

func TestNewFrame_MissingTokens(t *testing.T) {
	df, err := newFrame(
		[]string{"Species Name"},
		[][]string{{""}, {"NA"}, {"nan"}, {" N/A "}, {"null"}, {"OWL"}},
	)
	require.NoError(t, err)

	s := df.Col("Species Name")
	for i := 0; i < 5; i++ {
		assert.True(t, s.Elem(i).IsNA(), "row %d", i)
	}
	assert.False(t, s.Elem(5).IsNA())
}

func TestNewFrame_HeaderCleanup(t *testing.T) {
	df, err := newFrame([]string{"\ufeffIncident Year ", "Species Name", "Species Name", ""}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"Incident Year", "Species Name", "Species Name_1", "Column 4"}, df.Names())
	assert.Equal(t, 0, df.Nrow())
}

func TestNewFrame_NoColumns(t *testing.T) {
	_, err := newFrame(nil, [][]string{{"x"}})
	assert.Error(t, err)
}

func TestClean_PrunesColumns(t *testing.T) {
	df, err := newFrame(
		[]string{"Record ID", "Incident Year", "Airport", "Engine1 Position", "Species Name", "Flight Phase", "State"},
		[][]string{{"1", "2001", "KSFO", "2", "GULL", "CLIMB", "CA"}},
	)
	require.NoError(t, err)

	names := Clean(df).Names()

	assert.NotContains(t, names, "Record ID")
	assert.NotContains(t, names, "Airport")
	assert.NotContains(t, names, "Engine1 Position")
	assert.Contains(t, names, "State")
	assert.Contains(t, names, models.ColIncidentYear)
}

func TestClean_AircraftType(t *testing.T) {
	df, err := newFrame(
		[]string{"Aircraft Type"},
		[][]string{{"A"}, {"B"}, {"J"}, {"X"}, {""}},
	)
	require.NoError(t, err)

	got := Clean(df).Col(models.ColAircraftType).Records()
	assert.Equal(t, []string{"Airplane", "Helicopter", "Other", "Unknown", "Unknown"}, got)
}

func TestClean_FillsDefaults(t *testing.T) {
	df, err := newFrame(
		[]string{"Incident Year", "Species Name", "Flight Phase", "Injuries", "Fatalities", "Aircraft Damage"},
		[][]string{{"2001", "", "", "", "", ""}},
	)
	require.NoError(t, err)

	incidents := toIncidents(Clean(df))
	require.Len(t, incidents, 1)

	in := incidents[0]
	assert.Equal(t, models.DefaultSpecies, in.Species)
	assert.Equal(t, models.DefaultFlightPhase, in.FlightPhase)
	assert.Zero(t, in.Injuries)
	assert.Zero(t, in.Fatalities)
	assert.Zero(t, in.AircraftDamage)
	assert.Empty(t, in.AircraftType)
}

func TestClean_AddsMissingColumns(t *testing.T) {
	df, err := newFrame([]string{"State"}, [][]string{{"CA"}, {"TX"}})
	require.NoError(t, err)

	cleaned := Clean(df)
	for _, col := range models.FallbackColumns {
		assert.Contains(t, cleaned.Names(), col)
	}

	incidents := toIncidents(cleaned)
	require.Len(t, incidents, 2)
	for _, in := range incidents {
		assert.False(t, in.Year.Valid)
		assert.Equal(t, models.DefaultSpecies, in.Species)
		assert.Equal(t, models.DefaultFlightPhase, in.FlightPhase)
	}
}

func TestClean_NumericCoercion(t *testing.T) {
	df, err := newFrame(
		[]string{"Incident Year", "Aircraft Damage", "Injuries", "Fatalities"},
		[][]string{
			{"2001", "1", "2", "0"},
			{" 2002.0 ", "yes", "x", "1"},
			{"unknown", "0", "", "Inf"},
			{"2003.5", "", "1.5", ""},
		},
	)
	require.NoError(t, err)

	incidents := toIncidents(Clean(df))
	require.Len(t, incidents, 4)

	assert.Equal(t, models.YearOf(2001), incidents[0].Year)
	assert.Equal(t, 1.0, incidents[0].AircraftDamage)
	assert.Equal(t, 2.0, incidents[0].Injuries)

	assert.Equal(t, models.YearOf(2002), incidents[1].Year)
	assert.Zero(t, incidents[1].AircraftDamage)
	assert.Zero(t, incidents[1].Injuries)
	assert.Equal(t, 1.0, incidents[1].Fatalities)

	assert.False(t, incidents[2].Year.Valid)
	assert.Zero(t, incidents[2].Fatalities)

	assert.False(t, incidents[3].Year.Valid)
	assert.Equal(t, 1.5, incidents[3].Injuries)
}
