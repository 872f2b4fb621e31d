package httpserver

import (
	"database/sql"
	"errors"

	"smap-engine/internal/alertrule"
	"smap-engine/internal/quota"
	"smap-engine/internal/spike"
	"smap-engine/pkg/log"
	pkgRedis "smap-engine/pkg/redis"

	"github.com/gin-gonic/gin"
)

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them.
// Run() (in httpserver.go) is responsible for starting background services and HTTP serving.
type HTTPServer struct {
	// Server configuration
	gin         *gin.Engine
	logger      log.Logger
	port        int
	environment string
	internalKey string

	// Domain use cases
	alertRuleUC alertrule.UseCase
	quotaUC     quota.UseCase

	// Background services
	spikeScheduler *spike.Scheduler

	// External services
	db    *sql.DB
	redis pkgRedis.IRedis
}

// Config is the constructor input for HTTPServer.
// Keep this minimal: only fields really needed by HTTPServer.
type Config struct {
	// Server configuration
	Port        int
	Environment string
	InternalKey string

	// Domain use cases
	AlertRuleUC alertrule.UseCase
	QuotaUC     quota.UseCase

	// Background services
	SpikeScheduler *spike.Scheduler

	// External services
	DB    *sql.DB
	Redis pkgRedis.IRedis
}

// New creates a new HTTPServer instance with the provided configuration.
// Note: This does NOT start any goroutines. Use (*HTTPServer).Run() to start the service.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Environment) // cfg.Environment should map to gin mode by convention

	srv := &HTTPServer{
		// Server configuration
		gin:         gin.New(),
		logger:      logger,
		port:        cfg.Port,
		environment: cfg.Environment,
		internalKey: cfg.InternalKey,

		// Domain use cases
		alertRuleUC: cfg.AlertRuleUC,
		quotaUC:     cfg.QuotaUC,

		// Background services
		spikeScheduler: cfg.SpikeScheduler,

		// External services
		db:    cfg.DB,
		redis: cfg.Redis,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.logger == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.internalKey == "" {
		return errors.New("internal key is required")
	}
	if srv.alertRuleUC == nil {
		return errors.New("alert rule use case is required")
	}
	if srv.quotaUC == nil {
		return errors.New("quota use case is required")
	}
	if srv.spikeScheduler == nil {
		return errors.New("spike scheduler is required")
	}
	if srv.db == nil {
		return errors.New("database connection is required")
	}
	if srv.redis == nil {
		return errors.New("Redis client is required")
	}

	return nil
}
