package main

import (
	"context"
	"errors"

	"percentcalc/internal/calculator"
	"percentcalc/internal/config"
	"percentcalc/internal/observability"
)

type shutdownFunc func(context.Context) error

// initTelemetry starts the OTLP trace, log and metric pipelines when enabled
// and registers the calculator's instruments either way. Without telemetry
// the OTel globals stay no-op.
func initTelemetry(ctx context.Context, cfg config.Config) (shutdownFunc, error) {
	var shutdowns []shutdownFunc

	shutdown := func(ctx context.Context) error {
		var errs []error
		for i := len(shutdowns) - 1; i >= 0; i-- {
			errs = append(errs, shutdowns[i](ctx))
		}
		return errors.Join(errs...)
	}

	if cfg.Telemetry {
		for _, start := range []func(context.Context, string) (func(context.Context) error, error){
			observability.InitTracing,
			observability.InitLogging,
			observability.InitMetrics,
		} {
			stop, err := start(ctx, cfg.ServiceName)
			if err != nil {
				_ = shutdown(ctx)
				return nil, err
			}
			shutdowns = append(shutdowns, stop)
		}
	}

	if err := calculator.InitMetrics(); err != nil {
		_ = shutdown(ctx)
		return nil, err
	}

	return shutdown, nil
}
