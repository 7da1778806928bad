package api

import (
	"fmt"
	"net/http"
	"recruit/pkg/metrics"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// statusRecorder wraps http.ResponseWriter to capture the final HTTP status
// code written by the downstream handler.
type statusRecorder struct {
	http.ResponseWriter

	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// requestMetrics builds a chi middleware that records per-route request counts
// and latencies through OpenTelemetry. Routes are labeled by their chi pattern
// rather than the raw path to keep attribute cardinality bounded.
func requestMetrics(provider metric.MeterProvider) (func(http.Handler) http.Handler, error) {
	meter := provider.Meter("recruit/internal/api")

	requests, err := meter.Int64Counter("http_server_requests_total",
		metric.WithDescription("Number of handled HTTP requests"))
	if err != nil {
		return nil, fmt.Errorf("could not create request counter: %w", err)
	}

	duration, err := meter.Float64Histogram("http_server_request_duration_seconds",
		metric.WithDescription("HTTP request handling duration in seconds"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			// the pattern is only known after routing
			route := chi.RouteContext(r.Context()).RoutePattern()
			attrs := metric.WithAttributes(
				attribute.String("method", r.Method),
				attribute.String("route", route),
				attribute.Int("status", rec.status),
			)
			requests.Add(r.Context(), 1, attrs)
			duration.Record(r.Context(), time.Since(start).Seconds(), attrs)
		})
	}, nil
}
