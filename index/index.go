// Package index provides the ordered dual index behind every enum wrapper:
// keys and values in declaration order plus a reverse value to key map.
package index

import (
	"fmt"
	"reflect"
	"slices"
)

// Dual is an immutable ordered bidirectional index over enum entries.
//
// keys[i] and values[i] describe the i-th entry in declaration order.
// Values may repeat; the reverse map keeps the first key that holds a value.
type Dual[V comparable] struct {
	keys    []string
	values  []V
	byKey   map[string]int
	byValue map[V]int

	// dynamic is set when V is an interface type, whose values may hold
	// incomparable dynamic types.
	dynamic bool
}

// New builds a Dual from parallel key and value slices in a single pass.
// The slices are copied. It fails if the lengths differ or a key repeats.
func New[V comparable](keys []string, values []V) (*Dual[V], error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("index: %d keys but %d values", len(keys), len(values))
	}

	d := &Dual[V]{
		keys:    make([]string, 0, len(keys)),
		values:  make([]V, 0, len(values)),
		byKey:   make(map[string]int, len(keys)),
		byValue: make(map[V]int, len(values)),
		dynamic: reflect.TypeFor[V]().Kind() == reflect.Interface,
	}

	for i, key := range keys {
		if !d.lookupable(values[i]) {
			return nil, fmt.Errorf("index: value for key %q is not comparable", key)
		}
		if _, dup := d.byKey[key]; dup {
			return nil, fmt.Errorf("index: duplicate key %q", key)
		}
		value := values[i]

		d.keys = append(d.keys, key)
		d.values = append(d.values, value)
		d.byKey[key] = i

		// First occurrence wins.
		if _, seen := d.byValue[value]; !seen {
			d.byValue[value] = i
		}
	}

	return d, nil
}

// Len returns the number of entries.
func (d *Dual[V]) Len() int {
	return len(d.keys)
}

// Key returns the i-th key. It panics if i is out of range.
func (d *Dual[V]) Key(i int) string {
	return d.keys[i]
}

// Value returns the i-th value. It panics if i is out of range.
func (d *Dual[V]) Value(i int) V {
	return d.values[i]
}

// Keys returns a copy of the keys in declaration order.
func (d *Dual[V]) Keys() []string {
	return slices.Clone(d.keys)
}

// Values returns a copy of the values in declaration order, duplicates
// included.
func (d *Dual[V]) Values() []V {
	return slices.Clone(d.values)
}

// HasKey reports whether key is indexed.
func (d *Dual[V]) HasKey(key string) bool {
	_, ok := d.byKey[key]
	return ok
}

// HasValue reports whether value is indexed.
func (d *Dual[V]) HasValue(value V) bool {
	_, ok := d.position(value)
	return ok
}

// ValueOf returns the value stored under key.
func (d *Dual[V]) ValueOf(key string) (V, bool) {
	i, ok := d.byKey[key]
	if !ok {
		var zero V
		return zero, false
	}
	return d.values[i], true
}

// KeyOf returns the first key, in declaration order, that holds value.
func (d *Dual[V]) KeyOf(value V) (string, bool) {
	i, ok := d.position(value)
	if !ok {
		return "", false
	}
	return d.keys[i], true
}

// IndexOfKey returns the position of key, or -1.
func (d *Dual[V]) IndexOfKey(key string) int {
	if i, ok := d.byKey[key]; ok {
		return i
	}
	return -1
}

// IndexOfValue returns the position of the first entry holding value, or -1.
func (d *Dual[V]) IndexOfValue(value V) int {
	if i, ok := d.position(value); ok {
		return i
	}
	return -1
}

// position looks value up in the reverse map.
func (d *Dual[V]) position(value V) (int, bool) {
	if !d.lookupable(value) {
		return 0, false
	}
	i, ok := d.byValue[value]
	return i, ok
}

// lookupable reports whether value can be used as a map key without
// panicking.
func (d *Dual[V]) lookupable(value V) bool {
	if !d.dynamic {
		return true
	}
	rv := reflect.ValueOf(&value).Elem()
	if rv.IsNil() {
		return true
	}
	return rv.Elem().Comparable()
}
