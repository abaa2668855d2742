package endpoint

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/seqkit/observability"
)

// Health reports service health aggregated from checkers. A down component
// turns the response into a 503.
func Health(serviceName, serviceVersion string, checkers ...observability.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := observability.NewServiceHealth(serviceName, serviceVersion)
		for _, checker := range checkers {
			health.AddComponent(checker.CheckHealth(c.Request.Context()))
		}

		status := http.StatusOK
		if health.Status == observability.HealthStatusDown {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, health)
	}
}
