package httpserver

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Run starts the HTTP server and all background services, then blocks until
// a shutdown signal arrives:
//  1. Map HTTP handlers and routes
//  2. Start the volume spike scheduler
//  3. Start the HTTP server
//  4. Wait for shutdown signal
func (srv *HTTPServer) Run() error {
	ctx := context.Background()

	if err := srv.mapHandlers(); err != nil {
		srv.logger.Fatalf(ctx, "Failed to map handlers: %v", err)
		return err
	}

	srv.spikeScheduler.Start()
	srv.logger.Info(ctx, "Volume spike scheduler started")

	go func() {
		if err := srv.gin.Run(fmt.Sprintf(":%d", srv.port)); err != nil {
			srv.logger.Errorf(ctx, "HTTP server error: %v", err)
		}
	}()

	srv.logger.Infof(ctx, "HTTP server started on port: %d", srv.port)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	srv.logger.Info(ctx, <-ch)
	srv.logger.Info(ctx, "Stopping engine...")

	srv.spikeScheduler.Stop()
	srv.logger.Info(ctx, "Volume spike scheduler stopped")

	return nil
}
