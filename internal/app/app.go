package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"

	"github.com/feral-file/namada-indexer/internal/adapter"
	"github.com/feral-file/namada-indexer/internal/api/server"
	"github.com/feral-file/namada-indexer/internal/config"
	"github.com/feral-file/namada-indexer/internal/logger"
	"github.com/feral-file/namada-indexer/internal/store"
)

const CACHE_PING_TIMEOUT = 3 * time.Second

// initLogger initializes the global logger for a service
func initLogger(service string, base config.BaseConfig) error {
	return logger.Initialize(logger.Config{
		Debug:           base.Debug,
		SentryDSN:       base.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": service,
		},
		Fields: []zap.Field{zap.String("service", service)},
	})
}

// openDatabase connects to PostgreSQL, routing reads to the replica when one is configured
func openDatabase(ctx context.Context, cfg config.DatabaseConfig, debug bool) (*gorm.DB, error) {
	gormConfig := &gorm.Config{}
	if !debug {
		gormConfig.Logger = gormlogger.Default.LogMode(gormlogger.Silent)
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.ReadHost != "" {
		err := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{postgres.Open(cfg.ReadDSN())},
			Policy:   dbresolver.RandomPolicy{},
		}))
		if err != nil {
			return nil, fmt.Errorf("failed to register read replica: %w", err)
		}
		logger.InfoCtx(ctx, "Registered read replica", zap.String("read_host", cfg.ReadHost))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime, cfg.ConnMaxIdleTime); err != nil {
		return nil, fmt.Errorf("failed to configure connection pool: %w", err)
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.MaxIdleConns),
	)

	return db, nil
}

// connectCache returns a Redis client, or nil when caching is disabled
func connectCache(ctx context.Context, cfg config.CacheConfig) (adapter.CacheClient, error) {
	if cfg.URL == "" {
		logger.WarnCtx(ctx, "Cache URL not configured, caching disabled")
		return nil, nil
	}

	client, err := adapter.NewRedisClient(cfg.URL)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, CACHE_PING_TIMEOUT)
	defer cancel()
	if err := client.Ping(pingCtx); err != nil {
		// the cache is best-effort, start anyway
		logger.WarnCtx(ctx, "Cache is not reachable", zap.Error(err))
	}

	return client, nil
}

// serverConfig converts the configured server section
func serverConfig(cfg config.ServerConfig, debug bool) server.Config {
	return server.Config{
		Debug:          debug,
		Host:           cfg.Host,
		Port:           cfg.Port,
		ReadTimeout:    time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.IdleTimeout) * time.Second,
		RequestTimeout: cfg.RequestTimeout,
	}
}
