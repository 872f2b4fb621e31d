package main

import (
	"context"
	"fmt"

	"smap-engine/config"
	configPostgre "smap-engine/config/postgre"
	configRedis "smap-engine/config/redis"
	actionUsecase "smap-engine/internal/action/usecase"
	alertruleUsecase "smap-engine/internal/alertrule/usecase"
	quotaUsecase "smap-engine/internal/quota/usecase"
	"smap-engine/internal/spike"
	spikeUsecase "smap-engine/internal/spike/usecase"
	"smap-engine/pkg/log"
	"smap-engine/pkg/mailer"
	"smap-engine/pkg/notifier"
	"smap-engine/pkg/webhook"

	actionPostgre "smap-engine/internal/action/repository/postgre"
	alertrulePostgre "smap-engine/internal/alertrule/repository/postgre"
	quotaPostgre "smap-engine/internal/quota/repository/postgre"
	quotaRedis "smap-engine/internal/quota/repository/redis"

	"smap-engine/internal/httpserver"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config:", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting SMAP Engine...")

	// PostgreSQL - rules, events, quotas, mentions, submissions
	db, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer func() {
		if err := configPostgre.Disconnect(db); err != nil {
			logger.Errorf(ctx, "Failed to disconnect PostgreSQL: %v", err)
		}
	}()
	logger.Info(ctx, "PostgreSQL client initialized")

	// Redis - quota period counters and notification pub/sub
	redisClient, err := configRedis.Connect(cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Errorf(ctx, "Failed to close Redis client: %v", err)
		}
	}()
	logger.Info(ctx, "Redis client initialized")

	// Outbound delivery clients
	notifierClient := notifier.New(logger, redisClient)
	mailerClient := mailer.New(mailer.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		User:     cfg.SMTP.User,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		FromName: cfg.SMTP.FromName,
	})
	webhookClient := webhook.New(logger, webhook.Config{
		Timeout: cfg.Engine.WebhookTimeout,
	})

	// Repositories
	actionRepo := actionPostgre.New(logger, db)
	alertRuleRepo := alertrulePostgre.New(logger, db)
	quotaRepo := quotaPostgre.New(logger, db)
	quotaCounters := quotaRedis.New(logger, redisClient)

	// Use cases
	actionUC := actionUsecase.New(logger, actionRepo, notifierClient, mailerClient, webhookClient, cfg.WebApp.URL)
	alertRuleUC := alertruleUsecase.New(logger, alertRuleRepo, actionUC)
	quotaUC := quotaUsecase.New(logger, quotaRepo, quotaCounters)
	spikeUC := spikeUsecase.New(logger, alertRuleRepo, actionUC)

	// Background spike sweep
	spikeScheduler := spike.NewScheduler(logger, spikeUC, cfg.Engine.SpikeInterval)

	// HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Port:           cfg.Server.Port,
		Environment:    cfg.Server.Mode,
		InternalKey:    cfg.Internal.APIKey,
		AlertRuleUC:    alertRuleUC,
		QuotaUC:        quotaUC,
		SpikeScheduler: spikeScheduler,
		DB:             db,
		Redis:          redisClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create HTTP server: %v", err)
		return
	}

	if err := srv.Run(); err != nil {
		logger.Errorf(ctx, "HTTP server stopped with error: %v", err)
	}
}
