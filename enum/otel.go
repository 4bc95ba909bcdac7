package enum

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// cacheMetrics holds the OpenTelemetry instruments for a Cache.
type cacheMetrics struct {
	// hits increments when a wrapper is served from the cache
	hits metric.Int64Counter

	// misses increments when a new wrapper is built and stored
	misses metric.Int64Counter

	// errors increments when an object cannot be wrapped
	errors metric.Int64Counter
}

// newCacheMetrics creates the cache instruments on meter.
func newCacheMetrics(meter metric.Meter) (*cacheMetrics, error) {
	m := &cacheMetrics{}
	var err error

	m.hits, err = meter.Int64Counter(
		"enum.cache.hits",
		metric.WithDescription("Wrappers served from the cache"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create hits counter: %w", err)
	}

	m.misses, err = meter.Int64Counter(
		"enum.cache.misses",
		metric.WithDescription("Wrappers built on first use"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create misses counter: %w", err)
	}

	m.errors, err = meter.Int64Counter(
		"enum.cache.errors",
		metric.WithDescription("Objects rejected while building a wrapper"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create errors counter: %w", err)
	}

	return m, nil
}

// noopCacheMetrics returns instruments that record nothing.
func noopCacheMetrics() *cacheMetrics {
	m, _ := newCacheMetrics(noop.NewMeterProvider().Meter("enum"))
	return m
}

func valueTypeAttr(valueType string) metric.MeasurementOption {
	return metric.WithAttributes(attribute.String("enum.value_type", valueType))
}

func (m *cacheMetrics) hit(valueType string) {
	m.hits.Add(context.Background(), 1, valueTypeAttr(valueType))
}

func (m *cacheMetrics) miss(valueType string) {
	m.misses.Add(context.Background(), 1, valueTypeAttr(valueType))
}

func (m *cacheMetrics) fail(valueType string) {
	m.errors.Add(context.Background(), 1, valueTypeAttr(valueType))
}
