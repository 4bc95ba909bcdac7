package enum

import (
	"context"
	"log/slog"
	"reflect"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zero-day-ai/enumkit/enumerr"
	"github.com/zero-day-ai/enumkit/index"
)

// cacheKey identifies a wrapper: the raw object's identity plus the value
// type it was wrapped with.
type cacheKey struct {
	identity  any
	valueType reflect.Type
}

// Cache maps enum-like object identity to its Wrapper. Entries are never
// evicted. A Cache is safe for concurrent use.
type Cache struct {
	mu       sync.RWMutex
	wrappers map[cacheKey]any

	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *cacheMetrics
}

// defaultCache backs Wrap and MustWrap. Enum-like objects are expected to be
// package-level values that live as long as the process.
var defaultCache = NewCache()

// Default returns the process-wide cache.
func Default() *Cache {
	return defaultCache
}

// NewCache creates an empty cache.
func NewCache(opts ...Option) *Cache {
	cfg := &cacheConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	c := &Cache{
		wrappers: make(map[cacheKey]any),
		logger:   cfg.logger,
		tracer:   cfg.tracer,
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.tracer == nil {
		c.tracer = noop.NewTracerProvider().Tracer("enum")
	}

	c.metrics = noopCacheMetrics()
	if cfg.meter != nil {
		m, err := newCacheMetrics(cfg.meter)
		if err != nil {
			c.logger.Warn("failed to create cache metrics", "component", "enum", "error", err)
		} else {
			c.metrics = m
		}
	}

	return c
}

// Len returns the number of cached wrappers.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.wrappers)
}

// Load returns the wrapper cached for identity and value type V, calling
// build to produce its entries on first use. identity must be comparable;
// pointers and descriptor interfaces are typical. A failed build is not
// cached.
//
// build runs while the cache is locked and must not call back into c.
func Load[V comparable](c *Cache, identity any, build func() ([]Entry[V], error)) (*Wrapper[V], error) {
	const op = "enum.Load"

	if identity == nil {
		return nil, enumerr.InvalidObject(op, identity, "object is nil")
	}
	// A comparable type can still hold incomparable values in interface
	// fields, so check the value itself.
	if !reflect.ValueOf(identity).Comparable() {
		return nil, enumerr.InvalidObject(op, identity, "object identity of type "+reflect.TypeOf(identity).String()+" is not comparable")
	}

	valueType := reflect.TypeFor[V]()
	key := cacheKey{identity: identity, valueType: valueType}

	c.mu.RLock()
	cached, ok := c.wrappers[key]
	c.mu.RUnlock()
	if ok {
		c.metrics.hit(valueType.String())
		return cached.(*Wrapper[V]), nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another goroutine may have built it while we waited for the lock.
	if cached, ok := c.wrappers[key]; ok {
		c.metrics.hit(valueType.String())
		return cached.(*Wrapper[V]), nil
	}

	w, err := buildWrapper(c, identity, valueType, build)
	if err != nil {
		c.metrics.fail(valueType.String())
		return nil, err
	}

	c.wrappers[key] = w
	c.metrics.miss(valueType.String())
	c.logger.Debug("wrapped enum-like object",
		"component", "enum",
		"id", w.id,
		"object", reflect.TypeOf(identity).String(),
		"value_type", valueType.String(),
		"entries", w.Len())

	return w, nil
}

// buildWrapper runs build and indexes its entries inside an "enum.wrap"
// span.
func buildWrapper[V comparable](c *Cache, identity any, valueType reflect.Type, build func() ([]Entry[V], error)) (*Wrapper[V], error) {
	id := uuid.New()

	_, span := c.tracer.Start(context.Background(), "enum.wrap",
		trace.WithAttributes(
			attribute.String("enum.id", id.String()),
			attribute.String("enum.object", reflect.TypeOf(identity).String()),
			attribute.String("enum.value_type", valueType.String()),
		))
	defer span.End()

	entries, err := build()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	keys := make([]string, len(entries))
	values := make([]V, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
		values[i] = e.Value
	}

	idx, err := index.New(keys, values)
	if err != nil {
		wrapped := enumerr.InvalidObject("enum.Load", identity, "cannot index entries").WithCause(err)
		span.RecordError(wrapped)
		span.SetStatus(codes.Error, wrapped.Error())
		return nil, wrapped
	}

	span.SetAttributes(attribute.Int("enum.entries", idx.Len()))

	return &Wrapper[V]{id: id, idx: idx}, nil
}

// Wrap returns the cached wrapper for obj from the process-wide cache,
// building it on first use. obj must be a non-nil pointer to a struct.
func Wrap[V comparable](obj any) (*Wrapper[V], error) {
	return WrapIn[V](defaultCache, obj)
}

// WrapIn is Wrap against an explicit cache.
func WrapIn[V comparable](c *Cache, obj any) (*Wrapper[V], error) {
	const op = "enum.Wrap"

	if err := checkObject(op, obj); err != nil {
		return nil, err
	}
	return Load(c, obj, func() ([]Entry[V], error) {
		return entriesOf[V](op, obj)
	})
}

// MustWrap is like Wrap but panics if obj cannot be wrapped. It suits
// package-level wrapper variables.
func MustWrap[V comparable](obj any) *Wrapper[V] {
	w, err := Wrap[V](obj)
	if err != nil {
		panic(err)
	}
	return w
}
