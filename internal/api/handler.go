package api

import (
	_ "embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mr1hm/wildlife-strikes/internal/charts"
	"github.com/mr1hm/wildlife-strikes/internal/dataset"
	"github.com/mr1hm/wildlife-strikes/internal/models"
)

//go:embed templates/dashboard.html
var dashboardHTML string

const dashboardTemplate = "dashboard.html"

var page = template.Must(template.New(dashboardTemplate).Parse(dashboardHTML))

type Handler struct {
	ds       *dataset.Dataset
	renderer *charts.Renderer
}

func NewHandler(ds *dataset.Dataset, renderer *charts.Renderer) *Handler {
	return &Handler{
		ds:       ds,
		renderer: renderer,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.SetHTMLTemplate(page)

	r.GET("/", h.dashboard)
	r.GET("/api/summary", h.getSummary)
	r.GET("/api/charts/:name", h.getChart)
	r.GET("/health", h.health)
}

type scopeOption struct {
	Value    models.OutcomeScope
	Label    string
	Selected bool
}

type dashboardData struct {
	Query    Query
	Scopes   []scopeOption
	MinYear  int
	MaxYear  int
	Total    int
	Records  int
	Fallback bool
	Charts   []charts.Chart
}

func (h *Handler) summarize(q Query) dataset.Summary {
	return dataset.Summarize(dataset.Filter(h.ds, q.Scope, q.YearMin, q.YearMax))
}

func (h *Handler) dashboard(c *gin.Context) {
	q := parseQuery(c)
	summary := h.summarize(q)

	scopes := make([]scopeOption, len(models.OutcomeScopes))
	for i, s := range models.OutcomeScopes {
		scopes[i] = scopeOption{Value: s, Label: s.Label(), Selected: s == q.Scope}
	}

	panels := make([]charts.Chart, 0, len(charts.Names))
	for _, name := range charts.Names {
		chart, err := h.renderer.Render(name, tableFor(summary, name))
		if err != nil {
			slog.Error("chart render failed", "chart", name, "scope", q.Scope, "error", err)
		}
		panels = append(panels, chart)
	}

	c.HTML(http.StatusOK, dashboardTemplate, dashboardData{
		Query:    q,
		Scopes:   scopes,
		MinYear:  models.MinYear,
		MaxYear:  models.MaxYear,
		Total:    summary.Total,
		Records:  h.ds.Len(),
		Fallback: h.ds.Fallback(),
		Charts:   panels,
	})
}

func (h *Handler) getSummary(c *gin.Context) {
	c.JSON(http.StatusOK, toSummaryResponse(h.summarize(parseQuery(c))))
}

func (h *Handler) getChart(c *gin.Context) {
	name, ok := strings.CutSuffix(c.Param("name"), ".svg")
	if !ok || charts.Title(name) == "" {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "unknown chart",
		})
		return
	}

	q := parseQuery(c)
	chart, err := h.renderer.Render(name, tableFor(h.summarize(q), name))
	if errors.Is(err, charts.ErrUnknownChart) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "unknown chart",
		})
		return
	}
	if err != nil {
		slog.Error("chart render failed", "chart", name, "scope", q.Scope, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to render chart",
		})
		return
	}
	if chart.Empty {
		c.Status(http.StatusNoContent)
		return
	}

	c.Data(http.StatusOK, "image/svg+xml", []byte(chart.SVG))
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, toHealthResponse(h.ds))
}

func tableFor(s dataset.Summary, name string) dataset.Table {
	switch name {
	case charts.NameSpecies:
		return s.Species
	case charts.NameTrend:
		return s.Yearly
	case charts.NamePhases:
		return s.Phases
	}
	return dataset.Table{}
}
