package api

import (
	"time"

	"github.com/mr1hm/wildlife-strikes/internal/dataset"
)

type SummaryResponse struct {
	dataset.Summary
	ScopeLabel string `json:"scope_label"`
}

type HealthResponse struct {
	Status        string         `json:"status"`
	Source        string         `json:"source"`
	Records       int            `json:"records"`
	Fallback      bool           `json:"fallback"`
	LoadedAt      time.Time      `json:"loaded_at"`
	AircraftTypes map[string]int `json:"aircraft_types"`
}

func toSummaryResponse(s dataset.Summary) SummaryResponse {
	return SummaryResponse{
		Summary:    s,
		ScopeLabel: s.Scope.Label(),
	}
}

func toHealthResponse(ds *dataset.Dataset) HealthResponse {
	return HealthResponse{
		Status:        "ok",
		Source:        ds.Source(),
		Records:       ds.Len(),
		Fallback:      ds.Fallback(),
		LoadedAt:      ds.LoadedAt(),
		AircraftTypes: ds.AircraftTypes(),
	}
}
