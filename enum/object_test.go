package enum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zero-day-ai/enumkit/enumerr"
)

type status string

type tagged struct {
	Pending  status `enum:"pending"`
	Active   status
	Archived status `enum:"-"`
	internal status
	Done     status `enum:""`
}

func TestEntriesOfTags(t *testing.T) {
	obj := &tagged{Pending: "P", Active: "A", Archived: "X", internal: "I", Done: "D"}

	w, err := WrapIn[status](NewCache(), obj)
	require.NoError(t, err)

	assert.Equal(t, []string{"pending", "Active", "Done"}, w.ListKeys())
	assert.Equal(t, []status{"P", "A", "D"}, w.ListValues())
	assert.False(t, w.IsKey("Archived"))
	assert.False(t, w.IsKey("internal"))
	assert.False(t, w.IsKey("Pending"))
}

func TestEntriesOfNumericKinds(t *testing.T) {
	obj := &struct {
		Small int8
		Big   uint64
		Ratio float64
	}{Small: -1, Big: math.MaxUint64, Ratio: 0.25}

	w, err := WrapIn[any](NewCache(), obj)
	require.NoError(t, err)

	assert.Equal(t, []any{int8(-1), uint64(math.MaxUint64), 0.25}, w.ListValues())
}

func TestWrapRejections(t *testing.T) {
	var nilPtr *numbers

	tests := []struct {
		name   string
		obj    any
		errMsg string
	}{
		{
			name:   "nil",
			obj:    nil,
			errMsg: "object is nil",
		},
		{
			name:   "struct value",
			obj:    numbers{},
			errMsg: "must be a pointer to a struct, got enum.numbers",
		},
		{
			name:   "map",
			obj:    map[string]int{"A": 1},
			errMsg: "must be a pointer to a struct",
		},
		{
			name:   "pointer to int",
			obj:    new(int),
			errMsg: "must be a pointer to a struct",
		},
		{
			name:   "nil struct pointer",
			obj:    nilPtr,
			errMsg: "object is a nil *enum.numbers",
		},
		{
			name:   "slice field",
			obj:    &struct{ A []int }{},
			errMsg: "field A holds []int",
		},
		{
			name:   "bool field",
			obj:    &struct{ A bool }{},
			errMsg: "field A holds bool",
		},
		{
			name:   "nested struct field",
			obj:    &struct{ A struct{ B int } }{},
			errMsg: "values must be strings or numbers",
		},
		{
			name:   "nil interface field",
			obj:    &struct{ A any }{},
			errMsg: "field A is nil",
		},
		{
			name:   "NaN",
			obj:    &struct{ A float64 }{A: math.NaN()},
			errMsg: "field A is NaN",
		},
		{
			name:   "value type mismatch",
			obj:    &struct{ A string }{A: "a"},
			errMsg: "field A of type string is not assignable to int",
		},
		{
			name:   "duplicate tagged key",
			obj:    &struct{ A, B int `enum:"A"` }{},
			errMsg: `duplicate key "A"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := WrapIn[int](NewCache(), tt.obj)
			require.Error(t, err)
			assert.Nil(t, w)
			assert.ErrorIs(t, err, enumerr.ErrInvalidObject)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestWrapNeverMutatesObject(t *testing.T) {
	obj := &numbers{A: 1, B: 2, C: 1}
	before := *obj

	w, err := WrapIn[int](NewCache(), obj)
	require.NoError(t, err)
	w.ListValues()[0] = 99
	_ = w.ListEntries()

	assert.Equal(t, before, *obj)
}
