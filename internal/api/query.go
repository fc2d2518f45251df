package api

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mr1hm/wildlife-strikes/internal/models"
)

// Query holds the dashboard filter controls.
type Query struct {
	Scope   models.OutcomeScope
	YearMin int
	YearMax int
}

// parseQuery reads scope, year_min and year_max. Unparseable years fall back
// to the selector bounds and out-of-range years are clamped to them. An
// inverted range is kept as is and matches nothing.
func parseQuery(c *gin.Context) Query {
	return Query{
		Scope:   models.ParseOutcomeScope(c.Query("scope")),
		YearMin: parseYear(c.Query("year_min"), models.MinYear),
		YearMax: parseYear(c.Query("year_max"), models.MaxYear),
	}
}

func parseYear(s string, fallback int) int {
	y, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return models.ClampYear(y)
}
