// Package enum provides typed reflection over enum-like objects.
//
// An enum-like object is a fixed, ordered set of string keys mapped to
// number or string values. In Go the natural form is a pointer to a struct
// whose exported fields are the entries:
//
//	var Direction = &struct {
//	    Up, Down, Left, Right int
//	}{1, 2, 3, 4}
//
//	w := enum.MustWrap[int](Direction)
//	w.ListKeys()              // [Up Down Left Right]
//	w.GetKeyOrDefault(3, "")  // "Left"
//
// Field declaration order is the enum's declaration order. A field's key is
// its name unless overridden with an `enum:"name"` tag; `enum:"-"` and
// unexported fields are skipped. Values must be strings or numbers. Use
// V = any for enums that mix both.
//
// # Caching
//
// Wrappers are cached by object identity: wrapping the same pointer twice
// returns the same *Wrapper, while a different pointer with equal contents
// gets its own wrapper. Wrap and MustWrap use a process-wide cache that is
// never evicted; NewCache creates an isolated one. Cache population is safe
// for concurrent use.
//
// # Errors
//
// Every fallible lookup comes in two forms. The plain form (AsKey, GetValue,
// ...) returns an *enumerr.Error naming the offending input. The OrDefault
// form returns a caller-supplied fallback and never fails.
//
// # Observability
//
// Caches log wrapper construction at debug level through log/slog and can
// report spans and cache counters through OpenTelemetry when configured with
// WithTracer and WithMeter.
package enum
