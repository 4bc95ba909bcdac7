package enum

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/zero-day-ai/enumkit/enumerr"
)

func TestCacheIdentity(t *testing.T) {
	c := NewCache()
	obj := &numbers{A: 1, B: 2, C: 3}

	first, err := WrapIn[int](c, obj)
	require.NoError(t, err)
	second, err := WrapIn[int](c, obj)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, first.ID(), second.ID())
	assert.Equal(t, 1, c.Len())
}

func TestCacheDistinctEqualObjects(t *testing.T) {
	c := NewCache()
	m1 := &numbers{A: 1, B: 2, C: 3}
	m2 := &numbers{A: 1, B: 2, C: 3}

	w1, err := WrapIn[int](c, m1)
	require.NoError(t, err)
	w2, err := WrapIn[int](c, m2)
	require.NoError(t, err)

	assert.NotSame(t, w1, w2)
	assert.NotEqual(t, w1.ID(), w2.ID())
	assert.Equal(t, w1.ListEntries(), w2.ListEntries())
	assert.Equal(t, 2, c.Len())
}

func TestCacheValueTypesAreSeparate(t *testing.T) {
	c := NewCache()
	obj := &numbers{A: 1, B: 2, C: 3}

	ints, err := WrapIn[int](c, obj)
	require.NoError(t, err)
	anys, err := WrapIn[any](c, obj)
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, ints.ListKeys(), anys.ListKeys())
	assert.True(t, anys.IsValue(2))
}

func TestCachesAreIsolated(t *testing.T) {
	obj := &colours{Red: "r", Green: "g", Blue: "b"}

	w1, err := WrapIn[string](NewCache(), obj)
	require.NoError(t, err)
	w2, err := WrapIn[string](NewCache(), obj)
	require.NoError(t, err)

	assert.NotSame(t, w1, w2)
}

func TestDefaultCache(t *testing.T) {
	obj := &colours{Red: "r", Green: "g", Blue: "b"}

	w, err := Wrap[string](obj)
	require.NoError(t, err)
	assert.Same(t, w, MustWrap[string](obj))

	again, err := WrapIn[string](Default(), obj)
	require.NoError(t, err)
	assert.Same(t, w, again)
}

func TestMustWrapPanics(t *testing.T) {
	assert.Panics(t, func() { MustWrap[int](nil) })
	assert.Panics(t, func() { MustWrap[int](numbers{}) })
}

func TestFailedBuildNotCached(t *testing.T) {
	c := NewCache()
	obj := &numbers{}
	calls := 0
	failing := func() ([]Entry[int], error) {
		calls++
		return nil, errors.New("boom")
	}

	_, err := Load(c, obj, failing)
	require.Error(t, err)
	_, err = Load(c, obj, failing)
	require.Error(t, err)

	assert.Equal(t, 2, calls)
	assert.Equal(t, 0, c.Len())
}

func TestLoadBuildsOnce(t *testing.T) {
	c := NewCache()
	obj := &struct{}{}
	calls := 0
	build := func() ([]Entry[string], error) {
		calls++
		return []Entry[string]{{Key: "X", Value: "x"}, {Key: "Y", Value: "y"}}, nil
	}

	w1, err := Load(c, obj, build)
	require.NoError(t, err)
	w2, err := Load(c, obj, build)
	require.NoError(t, err)

	assert.Same(t, w1, w2)
	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"X", "Y"}, w1.ListKeys())
}

func TestLoadRejectsBadIdentity(t *testing.T) {
	c := NewCache()
	build := func() ([]Entry[int], error) { return nil, nil }

	_, err := Load(c, nil, build)
	require.Error(t, err)
	assert.ErrorIs(t, err, enumerr.ErrInvalidObject)

	_, err = Load(c, []int{1}, build)
	require.Error(t, err)
	assert.ErrorIs(t, err, enumerr.ErrInvalidObject)
	assert.Contains(t, err.Error(), "not comparable")

	var loaded *Wrapper[int]
	assert.NotPanics(t, func() {
		loaded, err = Load(c, struct{ X any }{X: []int{1}}, build)
	})
	require.Error(t, err)
	assert.Nil(t, loaded)
	assert.ErrorIs(t, err, enumerr.ErrInvalidObject)
	assert.Equal(t, 0, c.Len())
}

func TestLoadRejectsDuplicateKeys(t *testing.T) {
	c := NewCache()
	_, err := Load(c, &struct{}{}, func() ([]Entry[int], error) {
		return []Entry[int]{{Key: "A", Value: 1}, {Key: "A", Value: 2}}, nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, enumerr.ErrInvalidObject)
	assert.Contains(t, err.Error(), `duplicate key "A"`)
}

func TestCacheConcurrentIdentity(t *testing.T) {
	c := NewCache()
	obj := &colours{Red: "r", Green: "g", Blue: "b"}

	const numGoroutines = 50
	results := make([]*Wrapper[string], numGoroutines)

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			w, err := WrapIn[string](c, obj)
			if err != nil {
				t.Errorf("WrapIn failed: %v", err)
				return
			}
			results[id] = w
		}(i)
	}
	wg.Wait()

	for _, w := range results {
		assert.Same(t, results[0], w)
	}
	assert.Equal(t, 1, c.Len())
}

func TestCacheLogsMiss(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := NewCache(WithLogger(logger))

	w, err := WrapIn[int](c, &numbers{A: 1, B: 2, C: 3})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "wrapped enum-like object")
	assert.Contains(t, out, "component=enum")
	assert.Contains(t, out, "id="+w.ID().String())
	assert.Contains(t, out, "entries=3")

	buf.Reset()
	_, err = WrapIn[int](c, &numbers{})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "entries=3")
}

func TestCacheTracing(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	c := NewCache(WithTracer(tp.Tracer("enum-test")))
	obj := &colours{Red: "r", Green: "g", Blue: "b"}

	w, err := WrapIn[string](c, obj)
	require.NoError(t, err)
	_, err = WrapIn[string](c, obj)
	require.NoError(t, err)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1, "only the cache miss is traced")
	span := spans[0]
	assert.Equal(t, "enum.wrap", span.Name)

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, w.ID().String(), attrs["enum.id"].AsString())
	assert.Equal(t, "string", attrs["enum.value_type"].AsString())
	assert.Equal(t, int64(3), attrs["enum.entries"].AsInt64())
}

func TestCacheTracingRecordsErrors(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	c := NewCache(WithTracer(tp.Tracer("enum-test")))
	_, err := WrapIn[int](c, &struct{ A []int }{})
	require.Error(t, err)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	require.NotEmpty(t, spans[0].Events)
	assert.Equal(t, "exception", spans[0].Events[0].Name)
}

func TestCacheWithMeter(t *testing.T) {
	c := NewCache(WithMeter(metricnoop.NewMeterProvider().Meter("enum-test")))
	obj := &numbers{A: 1}

	_, err := WrapIn[int](c, obj)
	require.NoError(t, err)
	_, err = WrapIn[int](c, obj)
	require.NoError(t, err)
	_, err = WrapIn[int](c, &struct{ A bool }{})
	require.Error(t, err)

	assert.Equal(t, 1, c.Len())
}
