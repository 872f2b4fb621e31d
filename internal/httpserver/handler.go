package httpserver

import (
	alertruleHTTP "smap-engine/internal/alertrule/delivery/http"
	"smap-engine/internal/middleware"
	quotaHTTP "smap-engine/internal/quota/delivery/http"
)

const InternalApi = "/internal/api/v1"

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.logger, srv.internalKey)

	srv.gin.Use(middleware.Recovery(srv.logger))
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Internal API routes, gateway-authenticated
	api := srv.gin.Group(InternalApi)
	api.Use(mw.Auth())

	alertruleHTTP.New(srv.logger, srv.alertRuleUC).RegisterRoutes(api)
	quotaHTTP.New(srv.logger, srv.quotaUC).RegisterRoutes(api)

	return nil
}
