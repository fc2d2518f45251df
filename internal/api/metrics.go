package api

import (
	"github.com/gin-gonic/gin"

	"github.com/mr1hm/wildlife-strikes/internal/models"
	"github.com/mr1hm/wildlife-strikes/internal/observability"
)

// MetricsMiddleware counts requests by route template and outcome scope.
func MetricsMiddleware(metrics *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		scope := models.ParseOutcomeScope(c.Query("scope"))
		metrics.Requests.WithLabelValues(endpoint, string(scope)).Inc()
	}
}
