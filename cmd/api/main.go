package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"percentcalc/internal/config"
	"percentcalc/internal/observability"
	"percentcalc/internal/percent"
	"percentcalc/internal/server"
)

func main() {

	ctx := context.Background()

	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	// Logger
	if err := observability.InitLogger(cfg.LogLevel); err != nil {
		panic(err)
	}
	defer observability.SyncLogger()

	// Tracing, logs, metrics
	telemetryShutdown, err := initTelemetry(ctx, cfg)
	if err != nil {
		panic(err)
	}
	defer telemetryShutdown(ctx)

	formatter, err := percent.NewFormatterForLocale(cfg.Locale)
	if err != nil {
		observability.Logger.Fatal("invalid locale", zap.String("locale", cfg.Locale), zap.Error(err))
	}

	// Router
	router := server.NewRouter(percent.NewCalculator(formatter))

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		observability.Logger.Info("server started",
			zap.String("addr", cfg.Addr),
			zap.String("locale", cfg.Locale),
			zap.Bool("telemetry", cfg.Telemetry),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			observability.Logger.Fatal("server failed", zap.Error(err))
		}
	}()

	waitForShutdown(srv)
}

func waitForShutdown(srv *http.Server) {

	stop := make(chan os.Signal, 1)

	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		observability.Logger.Error("graceful shutdown failed", zap.Error(err))
	}
	observability.Logger.Info("server stopped")
}
