package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Creativeuseoftechnology/CUT-Blog-generator/logging"
)

// StatsTracking records unique visitors on every request.
func StatsTracking(stats *logging.Statistics) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats.TrackVisitor(c.ClientIP())
		c.Next()
	}
}
