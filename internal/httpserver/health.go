package httpserver

import (
	"net/http"

	"smap-engine/pkg/errors"
	"smap-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// healthCheck reports overall service health including storage dependencies.
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(http.StatusServiceUnavailable, "PostgreSQL connection failed"))
		return
	}

	if err := srv.redis.Ping(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(http.StatusServiceUnavailable, "Redis connection failed"))
		return
	}

	response.OK(c, gin.H{
		"status":   "healthy",
		"version":  "1.0.0",
		"service":  "smap-engine",
		"postgres": "connected",
		"redis":    "connected",
	})
}

// readyCheck reports whether the service is ready to serve traffic.
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(http.StatusServiceUnavailable, "PostgreSQL connection not available"))
		return
	}

	if err := srv.redis.Ping(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(http.StatusServiceUnavailable, "Redis connection not available"))
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"service": "smap-engine",
	})
}

// liveCheck reports process liveness only.
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": "smap-engine",
	})
}
