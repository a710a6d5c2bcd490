package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/feral-file/namada-indexer/internal/adapter"
	"github.com/feral-file/namada-indexer/internal/api/server"
	"github.com/feral-file/namada-indexer/internal/api/status"
	"github.com/feral-file/namada-indexer/internal/cache"
	"github.com/feral-file/namada-indexer/internal/chain"
	"github.com/feral-file/namada-indexer/internal/config"
	"github.com/feral-file/namada-indexer/internal/domain"
	"github.com/feral-file/namada-indexer/internal/extractor"
	"github.com/feral-file/namada-indexer/internal/ingest"
	"github.com/feral-file/namada-indexer/internal/logger"
	"github.com/feral-file/namada-indexer/internal/notify"
	"github.com/feral-file/namada-indexer/internal/store"
)

// IndexerOptions selects what an indexer process runs
type IndexerOptions struct {
	// Service names the process in logs and on the status endpoint
	Service string

	// Domains are indexed by one loop each
	Domains []domain.Domain

	// ResetTo resets the checkpoints to this height and exits, negative disables
	ResetTo int64
}

// RunIndexer runs the ingestion loops of opts.Domains until a signal or a halt
func RunIndexer(cfg *config.IndexerConfig, opts IndexerOptions) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if len(opts.Domains) == 0 {
		return errors.New("no domain to index")
	}

	if err := initLogger(opts.Service, cfg.BaseConfig); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Flush(2 * time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger.InfoCtx(ctx, "Starting Namada indexer", zap.Strings("domains", domainNames(opts.Domains)))

	db, err := openDatabase(ctx, cfg.Database, cfg.Debug)
	if err != nil {
		return err
	}
	dataStore := store.NewPGStore(db)

	if opts.ResetTo >= 0 {
		return resetCheckpoints(ctx, dataStore, opts.Domains, uint64(opts.ResetTo))
	}

	checkpoints := make([]*domain.Checkpoint, 0, len(opts.Domains))
	for _, d := range opts.Domains {
		cp, err := dataStore.EnsureCheckpoint(ctx, d, cfg.StartHeightFor(d))
		if err != nil {
			return fmt.Errorf("failed to load checkpoint of %s: %w", d, err)
		}
		checkpoints = append(checkpoints, cp)
	}

	// Consensus client
	rpc, err := adapter.NewCometRPC(cfg.Chain.RPCURL, cfg.Chain.RequestTimeout)
	if err != nil {
		return err
	}
	clock := adapter.NewClock()
	client := chain.WithHeadCache(chain.NewClient(rpc, chain.Config{
		InitialRetryInterval: cfg.Chain.InitialQueryRetryTime,
		MaxRetryInterval:     cfg.Chain.MaxQueryRetryTime,
		RetryBudget:          cfg.Chain.QueryRetryBudget,
		RequestsPerSecond:    cfg.Chain.RequestsPerSecond,
	}), chain.HeadConfig{
		TTL:         cfg.Chain.HeadTTL,
		StaleWindow: cfg.Chain.HeadStaleWindow,
	}, clock)

	// Cache invalidation
	invalidator := cache.NewNoopInvalidator()
	cacheClient, err := connectCache(ctx, cfg.Cache)
	if err != nil {
		return err
	}
	if cacheClient != nil {
		defer func() { _ = cacheClient.Close() }()
		invalidator = cache.NewInvalidator(cacheClient, cache.InvalidatorConfig{
			WorkerPoolSize:  cfg.Cache.Worker.WorkerPoolSize,
			WorkerQueueSize: cfg.Cache.Worker.WorkerQueueSize,
			Timeout:         cfg.Cache.InvalidationTimeout,
		})
	}
	defer invalidator.Close()

	// Commit notifications
	notifier := newNotifier(ctx, cfg.NATS, opts.Service)
	defer notifier.Close()

	loops := make([]ingest.Loop, 0, len(opts.Domains))
	for _, d := range opts.Domains {
		ext, err := extractor.New(d)
		if err != nil {
			return err
		}
		loops = append(loops, ingest.NewLoop(loopConfig(cfg), client, ext, dataStore, invalidator, notifier, clock))
	}

	srv := server.New(opts.Service, serverConfig(cfg.Server, cfg.Debug), func(router *gin.Engine) {
		status.SetupRoutes(router, status.NewHandler(opts.Service, dataStore, loops))
	})

	g, gCtx := errgroup.WithContext(ctx)

	for i, l := range loops {
		cp := *checkpoints[i]
		g.Go(func() error {
			return runLoop(gCtx, l, cp, cfg.ExitOnHalt)
		})
	}

	g.Go(srv.Start)

	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	})

	// Signal handler
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	g.Go(func() error {
		select {
		case sig := <-sigCh:
			logger.InfoCtx(gCtx, "Received shutdown signal", zap.String("signal", sig.String()))
			cancel()
		case <-gCtx.Done():
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(err, zap.String("message", "Indexer stopped with error"))
		return err
	}

	logger.Info("Indexer stopped")
	return nil
}

// runLoop runs l until ctx is cancelled.
// A halted loop keeps its status and metrics served until shutdown, unless exitOnHalt stops the process.
func runLoop(ctx context.Context, l ingest.Loop, checkpoint domain.Checkpoint, exitOnHalt bool) error {
	err := l.Run(ctx, checkpoint)
	if err == nil || exitOnHalt {
		return err
	}

	logger.ErrorCtx(ctx, err,
		zap.String("message", "Ingestion loop halted, serving its status until shutdown"),
		zap.String("domain", string(l.Status().Domain)))
	return nil
}

func resetCheckpoints(ctx context.Context, st store.CheckpointStore, domains []domain.Domain, height uint64) error {
	for _, d := range domains {
		if err := st.ResetCheckpoint(ctx, d, height); err != nil {
			return fmt.Errorf("failed to reset checkpoint of %s: %w", d, err)
		}
	}
	logger.InfoCtx(ctx, "Checkpoints reset",
		zap.Strings("domains", domainNames(domains)),
		zap.Uint64("height", height))
	return nil
}

// publishingNotifier owns the broker connection of a notifier
type publishingNotifier struct {
	notify.Notifier
	publisher notify.Publisher
}

func (n *publishingNotifier) Close() {
	n.Notifier.Close()
	n.publisher.Close()
}

// newNotifier connects to NATS, falling back to a no-op notifier when it is disabled or unreachable
func newNotifier(ctx context.Context, cfg config.NATSConfig, service string) notify.Notifier {
	if cfg.URL == "" {
		return notify.NewNoopNotifier()
	}

	connectionName := cfg.ConnectionName
	if connectionName == "" {
		connectionName = service
	}

	publisher, err := notify.NewPublisher(ctx, notify.Config{
		URL:            cfg.URL,
		StreamName:     cfg.StreamName,
		SubjectPrefix:  cfg.SubjectPrefix,
		MaxReconnects:  cfg.MaxReconnects,
		ReconnectWait:  cfg.ReconnectWait,
		ConnectionName: connectionName,
	}, adapter.NewNatsJetStream())
	if err != nil {
		logger.WarnCtx(ctx, "Commit notifications disabled", zap.Error(err))
		return notify.NewNoopNotifier()
	}

	return &publishingNotifier{
		Notifier: notify.NewNotifier(publisher, notify.NotifierConfig{
			Timeout:   cfg.PublishTimeout,
			QueueSize: cfg.QueueSize,
		}),
		publisher: publisher,
	}
}

func loopConfig(cfg *config.IndexerConfig) ingest.Config {
	return ingest.Config{
		InitialRetryInterval: cfg.Chain.InitialQueryRetryTime,
		MaxRetryInterval:     cfg.Chain.MaxQueryRetryTime,
		TipPollInterval:      cfg.Chain.TipPollInterval,
		SkipMalformedBlocks:  cfg.SkipMalformedBlocks,
		MissingHeightRetries: cfg.Chain.MissingHeightRetries,
	}
}

func domainNames(domains []domain.Domain) []string {
	names := make([]string, 0, len(domains))
	for _, d := range domains {
		names = append(names, string(d))
	}
	return names
}
