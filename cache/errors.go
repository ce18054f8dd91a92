package cache

import "reflect"

// Sentinel errors returned by New and the mutating operations.
// Callers can test for them with errors.Is; New wraps them with
// the offending value for context.
var (
	// ErrInvalidCapacity is returned by New when Options.Capacity is negative.
	ErrInvalidCapacity = errorsNew("cache: invalid capacity")
	// ErrInvalidStrategy is returned by New when Options.Strategy is not a
	// known Strategy value.
	ErrInvalidStrategy = errorsNew("cache: unknown eviction strategy")
	// ErrNilKey is returned by Put/Add when the key is nil.
	ErrNilKey = errorsNew("cache: nil key")
	// ErrNilValue is returned by Put/Add when the value is nil.
	ErrNilValue = errorsNew("cache: nil value")
	// ErrNoLoader is returned by GetOrLoad when no Loader was configured in Options.
	ErrNoLoader = errorsNew("cache: no Loader provided")
)

// lightweight local errors.New to avoid importing std 'errors' everywhere
func errorsNew(s string) error { return &strErr{s} }

type strErr struct{ s string }

func (e *strErr) Error() string { return e.s }

// nilable reports whether values of type T can be nil at all. Computed
// once in New so caches keyed by ints or strings never pay for the
// reflection check on the hot path.
func nilable[T any]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.UnsafePointer, reflect.Interface:
		return true
	default:
		return false
	}
}

// isNil reports whether v boxes a nil pointer, map, slice, channel,
// function, or interface. Zero values of value kinds (0, "", struct{}{})
// are not nil and are perfectly valid keys and values.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.UnsafePointer, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
