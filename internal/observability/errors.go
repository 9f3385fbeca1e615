package observability

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// coder is implemented by errors that carry a stable machine-readable code.
type coder interface {
	Code() string
}

// ErrorCode returns the code carried by err or anything it wraps, or "".
func ErrorCode(err error) string {
	var c coder
	if errors.As(err, &c) {
		return c.Code()
	}
	return ""
}

// RecordError centralises error handling across all domains: records the error
// on the span, increments the provided error counter, logs with trace context,
// and writes a JSON error HTTP response. Client errors (4xx) log at warn.
func RecordError(ctx context.Context, span trace.Span, logger *zap.Logger, counter metric.Int64Counter, opName, msg string, err error, status int, w http.ResponseWriter) {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)

	code := ErrorCode(err)

	counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", opName),
		attribute.String("code", code),
	))

	log := logger.Error
	if status < http.StatusInternalServerError {
		log = logger.Warn
	}
	log(msg,
		zap.String("operation", opName),
		zap.String("code", code),
		zap.Error(err),
		zap.String("request_id", RequestIDFromContext(ctx)),
	)

	body := map[string]string{"error": msg}
	if code != "" {
		body["code"] = code
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
