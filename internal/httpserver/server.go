package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/PratikDhanave/adfriend-backend/internal/config"
	"github.com/PratikDhanave/adfriend-backend/internal/handlers"
	"github.com/PratikDhanave/adfriend-backend/internal/metrics"
	"github.com/PratikDhanave/adfriend-backend/internal/middleware"
)

// Store is everything the router needs from persistence.
type Store interface {
	handlers.AnalyticsStore
	handlers.FeedbackStore
	Ping(ctx context.Context) error
}

// NewRouter wires probes, metrics and the event APIs.
// Probes: /health, /ready
// Events: /analytics, /feedback
func NewRouter(cfg config.Config, st Store, log zerolog.Logger) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)

	corsMW, err := middleware.CORS(cfg.AllowAllOrigins(), cfg.CORSAllowedOrigins)
	if err != nil {
		return nil, fmt.Errorf("cors: %w", err)
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(log),
		corsMW,
	)
	if cfg.MetricsEnabled {
		r.Use(metrics.PrometheusMiddleware())
		r.GET("/metrics", metrics.Handler())
	}

	// Liveness: confirms the process is running.
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Readiness: confirms the store is reachable.
	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := st.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	handlers.RegisterAnalyticsRoutes(r, st)
	handlers.RegisterFeedbackRoutes(r, st)

	return r, nil
}

// Run serves h on ln until ctx is cancelled, then shuts down gracefully
// within cfg.ShutdownTimeout.
func Run(ctx context.Context, cfg config.Config, ln net.Listener, h http.Handler, log zerolog.Logger) error {
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", ln.Addr().String()).Msgf("Server is running on port %s", cfg.Port)
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}
	return nil
}
