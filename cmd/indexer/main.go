package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-journal/internal/adapter"
	"github.com/feral-file/ff-journal/internal/config"
	"github.com/feral-file/ff-journal/internal/indexer"
	"github.com/feral-file/ff-journal/internal/logger"
	"github.com/feral-file/ff-journal/internal/messaging"
	"github.com/feral-file/ff-journal/internal/providers/jetstream"
	"github.com/feral-file/ff-journal/internal/store"
	"github.com/feral-file/ff-journal/internal/sui"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadIndexerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "journal-indexer",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Feral File Journal indexer")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database")

	dataStore := store.NewPGStore(db)
	cursorStore := store.NewCursorStore(db)

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()
	suiClient := sui.NewClient(cfg.Sui.RPCEndpoint(), adapter.NewRateLimitedHTTPClient(cfg.Sui.RequestTimeout, cfg.Sui.RateLimit, cfg.Sui.RateBurst), jsonAdapter)

	// Event fan-out is optional
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		natsPublisher, err := jetstream.NewPublisher(
			ctx,
			jetstream.Config{
				URL:             cfg.NATS.URL,
				StreamName:      cfg.NATS.StreamName,
				MaxReconnects:   cfg.NATS.MaxReconnects,
				ReconnectWait:   cfg.NATS.ReconnectWait,
				ConnectionName:  cfg.NATS.ConnectionName,
				DuplicateWindow: cfg.NATS.DuplicateWindow,
			}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create NATS publisher", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		defer natsPublisher.Close()
		publisher = natsPublisher
		logger.InfoCtx(ctx, "Connected to NATS JetStream", zap.String("stream", cfg.NATS.StreamName))
	}

	processors := indexer.NewProcessors(cfg.Sui.PackageID, dataStore, jsonAdapter, publisher)
	eventIndexer := indexer.NewIndexer(
		indexer.Config{
			PackageID:    cfg.Sui.PackageID,
			PollInterval: cfg.Indexer.PollInterval,
			PageSize:     cfg.Indexer.PageSize,
		},
		suiClient,
		cursorStore,
		processors,
		clock,
	)

	// Run indexer in a goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- eventIndexer.Run(ctx)
	}()

	// Wait for interrupt signal or indexer exit
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil {
			logger.ErrorCtx(ctx, err, zap.String("component", "indexer"))
		}
		cancel()
	}

	logger.Info("Journal indexer stopped")
}
