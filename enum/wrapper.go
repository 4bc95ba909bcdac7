package enum

import (
	"iter"
	"reflect"

	"github.com/google/uuid"

	"github.com/zero-day-ai/enumkit/enumerr"
	"github.com/zero-day-ai/enumkit/index"
)

// Entry is one key/value pair of an enum.
type Entry[V comparable] struct {
	Key   string
	Value V
}

// Iteratee is called once per entry, in declaration order, with the entry's
// value, key, the wrapper being iterated and the entry's position.
type Iteratee[V comparable, R any] func(value V, key string, w *Wrapper[V], index int) R

// Wrapper is a read-only, typed view over one enum-like object. Wrappers are
// obtained from a Cache and are safe for concurrent use.
type Wrapper[V comparable] struct {
	id  uuid.UUID
	idx *index.Dual[V]
}

// ID returns the wrapper's instance identifier.
func (w *Wrapper[V]) ID() uuid.UUID {
	return w.id
}

// String identifies the wrapper type, not its contents.
func (w *Wrapper[V]) String() string {
	return "enum.Wrapper[" + reflect.TypeFor[V]().String() + "]"
}

// Len returns the number of entries.
func (w *Wrapper[V]) Len() int {
	return w.idx.Len()
}

// At returns the i-th entry in declaration order. It panics if i is out of
// range.
func (w *Wrapper[V]) At(i int) Entry[V] {
	return Entry[V]{Key: w.idx.Key(i), Value: w.idx.Value(i)}
}

// Keys returns an iterator over the keys in declaration order.
func (w *Wrapper[V]) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := 0; i < w.idx.Len(); i++ {
			if !yield(w.idx.Key(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the values in declaration order.
// Duplicate values are yielded once per entry.
func (w *Wrapper[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := 0; i < w.idx.Len(); i++ {
			if !yield(w.idx.Value(i)) {
				return
			}
		}
	}
}

// Entries returns an iterator over the entries in declaration order.
func (w *Wrapper[V]) Entries() iter.Seq[Entry[V]] {
	return func(yield func(Entry[V]) bool) {
		for i := 0; i < w.idx.Len(); i++ {
			if !yield(w.At(i)) {
				return
			}
		}
	}
}

// All returns an iterator over key/value pairs in declaration order:
//
//	for key, value := range w.All() { ... }
func (w *Wrapper[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for i := 0; i < w.idx.Len(); i++ {
			if !yield(w.idx.Key(i), w.idx.Value(i)) {
				return
			}
		}
	}
}

// ForEach calls fn once per entry in declaration order.
func (w *Wrapper[V]) ForEach(fn func(value V, key string, w *Wrapper[V], index int)) {
	for i := 0; i < w.idx.Len(); i++ {
		fn(w.idx.Value(i), w.idx.Key(i), w, i)
	}
}

// Map collects the results of calling fn on each entry of w, in declaration
// order.
func Map[V comparable, R any](w *Wrapper[V], fn Iteratee[V, R]) []R {
	out := make([]R, 0, w.Len())
	for i := 0; i < w.idx.Len(); i++ {
		out = append(out, fn(w.idx.Value(i), w.idx.Key(i), w, i))
	}
	return out
}

// ListKeys returns a new slice of the keys in declaration order.
func (w *Wrapper[V]) ListKeys() []string {
	return w.idx.Keys()
}

// ListValues returns a new slice of the values in declaration order.
// Duplicate values appear once per entry.
func (w *Wrapper[V]) ListValues() []V {
	return w.idx.Values()
}

// ListEntries returns a new slice of the entries in declaration order.
func (w *Wrapper[V]) ListEntries() []Entry[V] {
	out := make([]Entry[V], w.idx.Len())
	for i := range out {
		out[i] = w.At(i)
	}
	return out
}

// IndexOfKey returns the declaration position of key, or -1.
func (w *Wrapper[V]) IndexOfKey(key string) int {
	return w.idx.IndexOfKey(key)
}

// IndexOfValue returns the declaration position of the first entry holding
// value, or -1.
func (w *Wrapper[V]) IndexOfValue(value V) int {
	return w.idx.IndexOfValue(value)
}

// IsKey reports whether key is a key of the enum.
func (w *Wrapper[V]) IsKey(key string) bool {
	return w.idx.HasKey(key)
}

// AsKey returns key if it is a key of the enum.
func (w *Wrapper[V]) AsKey(key string) (string, error) {
	if !w.IsKey(key) {
		return "", enumerr.InvalidKey("Wrapper.AsKey", key)
	}
	return key, nil
}

// AsKeyOrDefault returns key if it is a key of the enum, otherwise
// defaultKey. defaultKey itself is not validated.
func (w *Wrapper[V]) AsKeyOrDefault(key, defaultKey string) string {
	if !w.IsKey(key) {
		return defaultKey
	}
	return key
}

// IsValue reports whether value is a value of the enum.
func (w *Wrapper[V]) IsValue(value V) bool {
	return w.idx.HasValue(value)
}

// AsValue returns value if it is a value of the enum.
func (w *Wrapper[V]) AsValue(value V) (V, error) {
	if !w.IsValue(value) {
		var zero V
		return zero, enumerr.InvalidValue("Wrapper.AsValue", value)
	}
	return value, nil
}

// AsValueOrDefault returns value if it is a value of the enum, otherwise
// defaultValue. defaultValue itself is not validated.
func (w *Wrapper[V]) AsValueOrDefault(value, defaultValue V) V {
	if !w.IsValue(value) {
		return defaultValue
	}
	return value
}

// GetKey returns the key holding value. If several keys hold value, the
// first in declaration order is returned.
func (w *Wrapper[V]) GetKey(value V) (string, error) {
	key, ok := w.idx.KeyOf(value)
	if !ok {
		return "", enumerr.InvalidValue("Wrapper.GetKey", value)
	}
	return key, nil
}

// GetKeyOrDefault is GetKey returning defaultKey for an invalid value.
func (w *Wrapper[V]) GetKeyOrDefault(value V, defaultKey string) string {
	key, ok := w.idx.KeyOf(value)
	if !ok {
		return defaultKey
	}
	return key
}

// GetValue returns the value stored under key.
func (w *Wrapper[V]) GetValue(key string) (V, error) {
	value, ok := w.idx.ValueOf(key)
	if !ok {
		return value, enumerr.InvalidKey("Wrapper.GetValue", key)
	}
	return value, nil
}

// GetValueOrDefault is GetValue returning defaultValue for an invalid key.
func (w *Wrapper[V]) GetValueOrDefault(key string, defaultValue V) V {
	value, ok := w.idx.ValueOf(key)
	if !ok {
		return defaultValue
	}
	return value
}
