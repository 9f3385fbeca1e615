package calculator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"percentcalc/internal/handlers"
	"percentcalc/internal/observability"
	"percentcalc/internal/percent"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("percent")

// MaxBatchItems bounds the number of calculations in one batch request.
const MaxBatchItems = 100

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

const unknownOperation = "unknown"

// Handler serves the percent calculator endpoints.
type Handler struct {
	calc *percent.Calculator
}

func NewHandler(calc *percent.Calculator) *Handler {
	return &Handler{calc: calc}
}

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

// Modes handles GET /percent/modes
func (h *Handler) Modes(w http.ResponseWriter, r *http.Request) {
	resp := ModesResponse{Modes: make([]ModeInfo, 0, len(percent.Modes))}
	for _, m := range percent.Modes {
		info := ModeInfo{ID: m.String(), Title: m.Title(), Fields: m.Fields()}
		if m.TakesDirection() {
			info.Directions = []string{string(percent.Increase), string(percent.Decrease)}
		}
		resp.Modes = append(resp.Modes, info)
	}
	handlers.WriteJSON(w, http.StatusOK, resp)
}

// Calculate handles POST /percent/{mode}. The body is either a JSON object of
// field values or an urlencoded form.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)
	mode, modeErr := percent.ParseMode(chi.URLParam(r, "mode"))
	label := operationLabel(mode, modeErr)

	ctx, span := tracer.Start(ctx, "percent."+label,
		trace.WithAttributes(
			attribute.String("percent.mode", label),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	if modeErr != nil {
		observability.RecordError(ctx, span, logger, errorCounter, label, "unknown calculation mode", modeErr, http.StatusNotFound, w)
		return
	}

	in, err := decodeInput(w, r)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, label, "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	start := time.Now()
	res, err := h.calc.Calculate(mode, in)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, label, err.Error(), err, http.StatusBadRequest, w)
		return
	}

	recordSuccess(ctx, span, res, elapsed)

	logger.Info("percent calculation completed",
		zap.String("mode", label),
		zap.String("display", res.Display),
		zap.String("outcome", string(res.Outcome)),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, NewCalcResponse(res))
}

// Batch handles POST /percent/batch. It evaluates independent calculations in
// parallel, one child span per item. A failing item does not fail the batch.
func (h *Handler) Batch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "percent.batch",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req BatchRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "batch", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	switch {
	case len(req.Items) == 0:
		observability.RecordError(ctx, span, logger, errorCounter, "batch", "no items provided", errors.New("items array is empty"), http.StatusBadRequest, w)
		return
	case len(req.Items) > MaxBatchItems:
		observability.RecordError(ctx, span, logger, errorCounter, "batch", fmt.Sprintf("too many items (max %d)", MaxBatchItems),
			fmt.Errorf("%d items", len(req.Items)), http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(attribute.Int("batch.items_count", len(req.Items)))

	results := make([]BatchResult, len(req.Items))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, item := range req.Items {
		g.Go(func() error {
			mode, modeErr := percent.ParseMode(item.Mode)
			label := operationLabel(mode, modeErr)

			_, itemSpan := tracer.Start(ctx, fmt.Sprintf("percent.batch.item.%d.%s", i, label),
				trace.WithAttributes(
					attribute.Int("batch.item.index", i),
					attribute.String("percent.mode", label),
				),
			)
			defer itemSpan.End()

			start := time.Now()
			results[i] = h.evaluate(item)
			elapsed := float64(time.Since(start).Microseconds()) / 1000.0

			if results[i].Error != "" {
				itemSpan.SetStatus(codes.Error, results[i].Error)
				errorCounter.Add(ctx, 1, metric.WithAttributes(
					attribute.String("operation", label),
					attribute.String("code", results[i].Code),
				))
				return nil
			}

			attrs := metric.WithAttributes(attribute.String("operation", label))
			opsCounter.Add(ctx, 1, attrs)
			opsHistogram.Record(ctx, elapsed, attrs)
			itemSpan.SetStatus(codes.Ok, "")
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, res := range results {
		if res.Error != "" {
			failed++
		}
	}

	span.AddEvent("batch.complete", trace.WithAttributes(
		attribute.Int("total_items", len(results)),
		attribute.Int("failed_items", failed),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("percent batch completed",
		zap.Int("items", len(results)),
		zap.Int("failed", failed),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, BatchResponse{Results: results})
}

// operationLabel names a mode in span names and metric attributes. Ids that do
// not resolve collapse into "unknown" so client input cannot grow label sets.
func operationLabel(mode percent.Mode, err error) string {
	if err != nil {
		return unknownOperation
	}
	return mode.String()
}

func (h *Handler) evaluate(item BatchItem) BatchResult {
	out := BatchResult{Mode: item.Mode}

	mode, err := percent.ParseMode(item.Mode)
	if err != nil {
		out.Error = err.Error()
		out.Code = "unknown_mode"
		return out
	}

	res, err := h.calc.Calculate(mode, item.Inputs.Input())
	if err != nil {
		out.Error = err.Error()
		out.Code = observability.ErrorCode(err)
		return out
	}

	resp := NewCalcResponse(res)
	out.Result = &resp
	return out
}

func recordSuccess(ctx context.Context, span trace.Span, res percent.Result, elapsedMS float64) {
	attrs := metric.WithAttributes(attribute.String("operation", res.Mode.String()))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsedMS, attrs)
	if res.Numeric {
		resultGauge.Record(ctx, res.Value, attrs)
	}

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.String("display", res.Display),
		attribute.Float64("duration_ms", elapsedMS),
	))
	if res.Numeric {
		span.SetAttributes(attribute.Float64("percent.result", res.Value))
	}
	if res.Outcome != "" {
		span.SetAttributes(attribute.String("percent.outcome", string(res.Outcome)))
	}
	span.SetStatus(codes.Ok, "")
}

// decodeInput reads the request's field values from an urlencoded or multipart
// form, or from a JSON object. An empty body yields empty input, which the
// validator rejects.
func decodeInput(w http.ResponseWriter, r *http.Request) (percent.Input, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return nil, err
		}
		in := make(percent.Input, len(r.PostForm))
		for k := range r.PostForm {
			in[k] = r.PostForm.Get(k)
		}
		return in, nil
	}

	var req CalcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return percent.Input{}, nil
		}
		return nil, err
	}
	return req.Input(), nil
}
