package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/mr1hm/wildlife-strikes/internal/observability"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("failed to read counter: %v", err)
	}
	return m.GetCounter().GetValue()
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	metrics := observability.NewMetricsForTesting()

	router := gin.New()
	router.Use(RateLimitMiddleware(2, metrics))
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	var limited int
	for i := 0; i < 5; i++ {
		if w := get(router, "/health"); w.Code == http.StatusTooManyRequests {
			limited++
		}
	}

	if limited == 0 {
		t.Error("expected some requests to be rate limited")
	}
	if got := counterValue(t, metrics.RateLimited); got != float64(limited) {
		t.Errorf("expected %d rate limited requests counted, got %v", limited, got)
	}
}

func TestMetricsMiddleware(t *testing.T) {
	router, metrics := setupTestRouter(testDataset())

	get(router, "/api/summary?scope=injury")
	get(router, "/api/summary?scope=injury")
	get(router, "/api/charts/trend.svg")
	get(router, "/nope")

	if got := counterValue(t, metrics.Requests.WithLabelValues("/api/summary", "injury")); got != 2 {
		t.Errorf("expected 2 summary requests, got %v", got)
	}
	if got := counterValue(t, metrics.Requests.WithLabelValues("/api/charts/:name", "all")); got != 1 {
		t.Errorf("expected 1 chart request, got %v", got)
	}
	if got := counterValue(t, metrics.Requests.WithLabelValues("unmatched", "all")); got != 1 {
		t.Errorf("expected 1 unmatched request, got %v", got)
	}
}
