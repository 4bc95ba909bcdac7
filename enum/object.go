package enum

import (
	"fmt"
	"math"
	"reflect"

	"github.com/zero-day-ai/enumkit/enumerr"
)

// tagName is the struct tag that renames or skips an entry.
const tagName = "enum"

// checkObject verifies that obj is a non-nil pointer to a struct.
func checkObject(op string, obj any) error {
	if obj == nil {
		return enumerr.InvalidObject(op, obj, "object is nil")
	}
	rv := reflect.ValueOf(obj)
	if rv.Kind() != reflect.Pointer || rv.Type().Elem().Kind() != reflect.Struct {
		return enumerr.InvalidObject(op, obj, fmt.Sprintf("object must be a pointer to a struct, got %T", obj))
	}
	if rv.IsNil() {
		return enumerr.InvalidObject(op, obj, fmt.Sprintf("object is a nil %T", obj))
	}
	return nil
}

// entriesOf reads the entries of a struct pointer in field order. obj must
// have passed checkObject.
func entriesOf[V comparable](op string, obj any) ([]Entry[V], error) {
	elem := reflect.ValueOf(obj).Elem()
	rt := elem.Type()
	valueType := reflect.TypeFor[V]()

	entries := make([]Entry[V], 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		key := field.Name
		if tag, ok := field.Tag.Lookup(tagName); ok {
			if tag == "-" {
				continue
			}
			if tag != "" {
				key = tag
			}
		}

		fv := elem.Field(i)
		if fv.Kind() == reflect.Interface {
			if fv.IsNil() {
				return nil, enumerr.InvalidObject(op, obj, fmt.Sprintf("field %s is nil", field.Name))
			}
			fv = fv.Elem()
		}

		if !isPrimitive(fv.Kind()) {
			return nil, enumerr.InvalidObject(op, obj,
				fmt.Sprintf("field %s holds %s; values must be strings or numbers", field.Name, fv.Type()))
		}
		if isNaN(fv) {
			return nil, enumerr.InvalidObject(op, obj, fmt.Sprintf("field %s is NaN", field.Name))
		}
		if !fv.Type().AssignableTo(valueType) {
			return nil, enumerr.InvalidObject(op, obj,
				fmt.Sprintf("field %s of type %s is not assignable to %s", field.Name, fv.Type(), valueType))
		}

		entries = append(entries, Entry[V]{Key: key, Value: fv.Interface().(V)})
	}

	return entries, nil
}

func isPrimitive(k reflect.Kind) bool {
	switch k {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func isNaN(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(v.Float())
	default:
		return false
	}
}
