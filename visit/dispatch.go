package visit

import (
	"maps"

	"github.com/zero-day-ai/enumkit/enum"
	"github.com/zero-day-ai/enumkit/enumerr"
)

// ErrorFactory builds the error returned when dispatch finds no usable
// handler. It receives the offending value as reported by Input.Raw.
type ErrorFactory func(unhandled any) error

// DefaultErrorFactory reports an enumerr ErrCodeUnhandledValue error with
// op "visit". It renders as
//
//	enum [visit/UNHANDLED_VALUE]: unhandled value: <value>
//
// where <value> is formatted by enumerr.Describe: strings are quoted, null
// is "null", undefined is "undefined" and other values use %v. Match on
// enumerr.ErrUnhandledValue with errors.Is rather than on the message.
func DefaultErrorFactory(unhandled any) error {
	return enumerr.Unhandled("visit", unhandled)
}

// Option configures a dispatch call or Dispatcher.
type Option func(*config)

type config struct {
	errorFactory ErrorFactory
}

// WithErrorFactory replaces DefaultErrorFactory.
func WithErrorFactory(f ErrorFactory) Option {
	return func(c *config) {
		c.errorFactory = f
	}
}

func newConfig(opts []Option) config {
	cfg := config{errorFactory: DefaultErrorFactory}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.errorFactory == nil {
		cfg.errorFactory = DefaultErrorFactory
	}
	return cfg
}

func (c config) fail(in any) error {
	if err := c.errorFactory(in); err != nil {
		return err
	}
	return DefaultErrorFactory(in)
}

// Map dispatches in to its arm of t and returns the handler's result.
// It fails if the selected arm is absent or Unhandled. Handler panics are
// not recovered.
func Map[V comparable, R any](w *enum.Wrapper[V], in Input[V], t Table[V, R], opts ...Option) (R, error) {
	return dispatch(w, in, t, newConfig(opts))
}

// Visit is Map for tables run for effect.
func Visit[V comparable](w *enum.Wrapper[V], in Input[V], t Table[V, struct{}], opts ...Option) error {
	_, err := Map(w, in, t, opts...)
	return err
}

func dispatch[V comparable, R any](w *enum.Wrapper[V], in Input[V], t Table[V, R], cfg config) (R, error) {
	h := t.route(w, in)
	if h.kind != handlerFunc {
		var zero R
		return zero, cfg.fail(in.Raw())
	}
	return h.fn(in), nil
}

// Dispatcher is a Table checked against one wrapper, ready for repeated
// dispatch. It is safe for concurrent use if its handlers are.
type Dispatcher[V comparable, R any] struct {
	w   *enum.Wrapper[V]
	t   Table[V, R]
	cfg config
}

// Compile checks t against w and returns a Dispatcher. The table's Keys map
// is copied, so later changes to it have no effect.
func Compile[V comparable, R any](w *enum.Wrapper[V], t Table[V, R], opts ...Option) (*Dispatcher[V, R], error) {
	if err := t.Check(w); err != nil {
		return nil, err
	}
	t.Keys = maps.Clone(t.Keys)
	return &Dispatcher[V, R]{w: w, t: t, cfg: newConfig(opts)}, nil
}

// Wrapper returns the wrapper d dispatches over.
func (d *Dispatcher[V, R]) Wrapper() *enum.Wrapper[V] {
	return d.w
}

// Map dispatches in.
func (d *Dispatcher[V, R]) Map(in Input[V]) (R, error) {
	return dispatch(d.w, in, d.t, d.cfg)
}

// MapValue dispatches Of(v).
func (d *Dispatcher[V, R]) MapValue(v V) (R, error) {
	return d.Map(Of(v))
}
