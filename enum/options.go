package enum

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Option configures a Cache.
type Option func(*cacheConfig)

// cacheConfig holds configuration for a Cache instance.
type cacheConfig struct {
	logger *slog.Logger
	tracer trace.Tracer
	meter  metric.Meter
}

// WithLogger sets a custom logger for the cache.
// If not provided, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *cacheConfig) {
		c.logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer. A span is recorded each time the
// cache builds a new wrapper.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *cacheConfig) {
		c.tracer = tracer
	}
}

// WithMeter sets an OpenTelemetry meter for cache hit, miss and error
// counters.
func WithMeter(meter metric.Meter) Option {
	return func(c *cacheConfig) {
		c.meter = meter
	}
}
