package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := NewAPIConfig(os.Stdout)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	cfg.logger.Debug("configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := initTracerProvider(ctx, cfg.serviceName, cfg.otelEndpoint)
	if err != nil {
		cfg.logger.Error("failed to initialize tracing provider", "error", err)
		os.Exit(1)
	}
	if cfg.otelEndpoint != "" {
		cfg.logger.Info("tracing enabled", "endpoint", cfg.otelEndpoint)
	}

	server := &http.Server{
		Addr:              ":" + cfg.port,
		Handler:           cfg.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		cfg.logger.Info("starting server", "port", cfg.port)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			cfg.logger.Error("server startup failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		cfg.logger.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		cfg.logger.Error("error during server shutdown", "error", err)
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		cfg.logger.Error("error during tracer shutdown", "error", err)
	}
}

const (
	weatherRoute = "/api/weather"
	healthRoute  = "/healthz"
	metricsRoute = "/metrics"
)

// routes registers the application's endpoints and wraps them in the
// middleware chain.
func (cfg *apiConfig) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc(weatherRoute, cfg.handlerWeather)
	mux.HandleFunc(healthRoute, cfg.handlerHealth)
	mux.Handle(metricsRoute, promhttp.Handler())

	var handler http.Handler = mux
	handler = cfg.recoverMiddleware(handler)
	handler = metricsMiddleware(handler, weatherRoute, healthRoute, metricsRoute)
	handler = corsMiddleware(handler)
	handler = requestIDMiddleware(handler)
	return handler
}
