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
	"github.com/feral-file/ff-journal/internal/api/middleware"
	"github.com/feral-file/ff-journal/internal/api/server"
	"github.com/feral-file/ff-journal/internal/config"
	"github.com/feral-file/ff-journal/internal/gasstation"
	"github.com/feral-file/ff-journal/internal/logger"
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
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
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
			"service": "journal-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Feral File Journal API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewPGStore(db)

	// Initialize chain client
	httpClient := adapter.NewRateLimitedHTTPClient(cfg.Sui.RequestTimeout, cfg.Sui.RateLimit, cfg.Sui.RateBurst)
	suiClient := sui.NewClient(cfg.Sui.RPCEndpoint(), httpClient, adapter.NewJSON())
	logger.InfoCtx(ctx, "Using Sui fullnode",
		zap.String("network", string(cfg.Sui.Network)),
		zap.String("rpc_url", cfg.Sui.RPCEndpoint()),
	)

	// Load sponsor keypair, the gas station stays offline without one
	var signer sui.Signer
	if cfg.GasStation.SponsorPrivateKey != "" {
		keypair, err := sui.ParsePrivateKey(cfg.GasStation.SponsorPrivateKey)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to parse sponsor private key", zap.Error(err))
		}
		signer = keypair
		logger.InfoCtx(ctx, "Loaded sponsor keypair", zap.String("sponsor", keypair.Address()))
	} else {
		logger.WarnCtx(ctx, "Sponsor private key not configured, gas station is offline")
	}

	var policy *gasstation.Policy
	if cfg.Sui.PackageID != "" {
		policy, err = gasstation.NewPolicy(cfg.Sui.PackageID)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create sponsorship policy", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Sponsorship policy loaded", zap.Strings("targets", policy.Targets()))
	} else {
		logger.WarnCtx(ctx, "Journal package id not configured, no transaction will be sponsored")
	}

	selector, err := gasstation.NewCoinSelector(cfg.GasStation.CoinSelection)
	if err != nil {
		logger.FatalCtx(ctx, "Invalid coin selection strategy", zap.Error(err))
	}

	gasStation := gasstation.NewGasStation(suiClient, dataStore, signer, policy, selector)

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		CORSOrigins:  cfg.Server.CORSOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	srv := server.New(serverConfig, dataStore, gasStation)

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
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
