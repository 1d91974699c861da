package monitoring

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, route and status",
		},
		[]string{"method", "path", "status"},
	)

	moderationDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moderation_decisions_total",
			Help: "Admin approve/reject decisions on ticket listings",
		},
		[]string{"decision"},
	)

	advertiseToggles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advertise_toggles_total",
			Help: "Advertisement toggle attempts by outcome",
		},
		[]string{"outcome"},
	)
)

// Middleware counts every request against its matched route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

func TrackModeration(decision string) {
	moderationDecisions.WithLabelValues(decision).Inc()
}

// TrackAdvertiseToggle records an outcome: "on", "off", "capped".
func TrackAdvertiseToggle(outcome string) {
	advertiseToggles.WithLabelValues(outcome).Inc()
}
