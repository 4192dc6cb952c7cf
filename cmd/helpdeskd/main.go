package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Avraham885/Customers-Services/internal/blob"
	"github.com/Avraham885/Customers-Services/internal/config"
	"github.com/Avraham885/Customers-Services/internal/httpapi"
	"github.com/Avraham885/Customers-Services/internal/logging"
	"github.com/Avraham885/Customers-Services/internal/store/postgres"
	"github.com/Avraham885/Customers-Services/internal/telemetry"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	cfg := config.Load()
	logger := logging.New()

	shutdownTelemetry := telemetry.Setup("helpdesk", logger)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTelemetry(ctx)
	}()

	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	storage, err := blob.Open(context.Background(), blob.ProviderFromEnv())
	if err != nil {
		logger.Fatalf("storage init: %v", err)
	}

	store := postgres.NewStore(pool, postgres.Options{
		SessionTTL: cfg.SessionTTL,
	})
	handler := httpapi.NewHandler(store, storage, logger, httpapi.Options{
		SearchResultLimit: cfg.SearchResultLimit,
		Location:          cfg.Location,
	})
	limiter := httpapi.NewRateLimiter(httpapi.RateLimitConfig{
		IPPerMinute:       cfg.RateLimitPerMinute,
		IPBurst:           cfg.RateLimitBurst,
		BusinessPerMinute: cfg.BusinessRateLimitPerMinute,
		BusinessBurst:     cfg.BusinessRateLimitBurst,
	})

	otelHandler := otelhttp.NewHandler(httpapi.LoggingMiddleware(logger, limiter.Middleware(handler.Routes())), "helpdesk")
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      otelHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infof("helpdesk listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("shutdown error: %v", err)
	}
}
