package calculator

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments, set by InitMetrics.
var (
	opsCounter   metric.Int64Counter
	opsHistogram metric.Float64Histogram
	errorCounter metric.Int64Counter
	resultGauge  metric.Float64Gauge
)

// InitMetrics registers the percent calculator's OTel instruments.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("percent")

	var err error

	opsCounter, err = meter.Int64Counter("percent.calculations.total",
		metric.WithDescription("Total number of successful percentage calculations"),
		metric.WithUnit("{calculation}"),
	)
	if err != nil {
		return fmt.Errorf("creating calculations counter: %w", err)
	}

	opsHistogram, err = meter.Float64Histogram("percent.calculation.duration",
		metric.WithDescription("Duration of percentage calculations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating calculation histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("percent.errors.total",
		metric.WithDescription("Total number of rejected calculation requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	resultGauge, err = meter.Float64Gauge("percent.last_result",
		metric.WithDescription("The numeric result of the last calculation"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating result gauge: %w", err)
	}

	return nil
}
