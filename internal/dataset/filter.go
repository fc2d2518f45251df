package dataset

import "github.com/mr1hm/wildlife-strikes/internal/models"

// View is the request-scoped subset of a Dataset matching one filter.
type View struct {
	Scope     models.OutcomeScope
	YearMin   int
	YearMax   int
	incidents []models.Incident
}

// Filter keeps records with yearMin <= year <= yearMax, then applies the
// outcome scope. Records without a year never match. The dataset is not
// modified and the view preserves dataset order.
func Filter(ds *Dataset, scope models.OutcomeScope, yearMin, yearMax int) View {
	scope = models.ParseOutcomeScope(string(scope))
	v := View{
		Scope:     scope,
		YearMin:   yearMin,
		YearMax:   yearMax,
		incidents: []models.Incident{},
	}
	if ds == nil {
		return v
	}

	for _, in := range ds.incidents {
		if !in.Year.Within(yearMin, yearMax) {
			continue
		}
		if !matchesScope(in, scope) {
			continue
		}
		v.incidents = append(v.incidents, in)
	}
	return v
}

func matchesScope(in models.Incident, scope models.OutcomeScope) bool {
	switch scope {
	case models.ScopeDamage:
		return in.AircraftDamage == 1
	case models.ScopeInjury:
		return in.Injuries > 0
	case models.ScopeDeath:
		return in.Fatalities > 0
	default:
		return true
	}
}

func (v View) Len() int { return len(v.incidents) }

// Incidents returns a copy of the matching records.
func (v View) Incidents() []models.Incident {
	return append(make([]models.Incident, 0, len(v.incidents)), v.incidents...)
}
