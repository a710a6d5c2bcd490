package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/namada-indexer/internal/api/rest"
	"github.com/feral-file/namada-indexer/internal/api/server"
	"github.com/feral-file/namada-indexer/internal/cache"
	"github.com/feral-file/namada-indexer/internal/config"
	"github.com/feral-file/namada-indexer/internal/logger"
	"github.com/feral-file/namada-indexer/internal/store"
)

const WEBSERVER_SERVICE = "webserver"

// RunWebserver serves the read API until a signal is received
func RunWebserver(cfg *config.WebserverConfig) error {
	if err := initLogger(WEBSERVER_SERVICE, cfg.BaseConfig); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Flush(2 * time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger.InfoCtx(ctx, "Starting Namada indexer webserver", zap.String("commit", cfg.GitSHA))

	db, err := openDatabase(ctx, cfg.Database, cfg.Debug)
	if err != nil {
		return err
	}
	dataStore := store.NewPGStore(db)

	responseCache := cache.NewNoopCache()
	cacheClient, err := connectCache(ctx, cfg.Cache)
	if err != nil {
		return err
	}
	if cacheClient != nil {
		defer func() { _ = cacheClient.Close() }()
		responseCache = cache.NewCache(cacheClient, cfg.Cache.TTL)
	}

	srv := server.New(WEBSERVER_SERVICE, serverConfig(cfg.Server, cfg.Debug), func(router *gin.Engine) {
		rest.SetupRoutes(router, rest.NewHandler(dataStore, responseCache, cfg.GitSHA))
	})

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	var serveErr error
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case serveErr = <-errCh:
		logger.ErrorCtx(ctx, serveErr, zap.String("component", "server"))
	}
	cancel()

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("Webserver stopped")
	return serveErr
}
