package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	// Loads a .env file, if present, before config reads the environment.
	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"

	"github.com/PratikDhanave/adfriend-backend/internal/config"
	"github.com/PratikDhanave/adfriend-backend/internal/httpserver"
	"github.com/PratikDhanave/adfriend-backend/internal/logger"
	"github.com/PratikDhanave/adfriend-backend/internal/store"
)

// main boots the service: config → logger → store → indexes → HTTP server.
func main() {
	boot := logger.Bootstrap()

	// Load runtime config from environment (PORT, MONGODB_URI, ...).
	cfg, err := config.Load()
	if err != nil {
		boot.Fatal().Err(err).Msg("invalid configuration")
	}

	log, err := logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		boot.Fatal().Err(err).Msg("invalid logger configuration")
	}

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// run owns the store for its whole lifetime, so the client is disconnected
// on every return path before main exits.
func run(cfg config.Config, log zerolog.Logger) error {
	// Build the store client. This does not dial; the server is contacted lazily.
	st, err := store.NewMongoStore(store.Options{
		URI:                    cfg.MongoURI,
		Database:               cfg.MongoDatabase,
		ServerSelectionTimeout: cfg.ServerSelectionTimeout,
	})
	if err != nil {
		return fmt.Errorf("MongoDB client setup: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.Close(ctx); err != nil {
			log.Error().Err(err).Msg("MongoDB disconnect failed")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// An unreachable store is logged, not fatal: requests will return 500
	// until it comes back.
	go connect(ctx, st, cfg, log)

	router, err := httpserver.NewRouter(cfg, st, log)
	if err != nil {
		return fmt.Errorf("router setup: %w", err)
	}

	ln, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return fmt.Errorf("listen on port %s: %w", cfg.Port, err)
	}

	return httpserver.Run(ctx, cfg, ln, router, log)
}

// connect checks the store once at startup and ensures indexes exist.
func connect(ctx context.Context, st *store.MongoStore, cfg config.Config, log zerolog.Logger) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ServerSelectionTimeout+5*time.Second)
	defer cancel()

	if err := st.Ping(ctx); err != nil {
		log.Error().Err(err).Str("database", cfg.MongoDatabase).Msg("MongoDB connection error")
		return
	}
	log.Info().Str("database", cfg.MongoDatabase).Msg("Connected to MongoDB")

	if err := st.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("could not ensure indexes")
	}
}
