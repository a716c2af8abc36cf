package domain

// Outcome is the tagged result shared by every resolution operation: either
// a value or a taxonomy error, never both and never neither. A successful
// outcome can additionally be marked as served from cache and as stale
// (not confirmed against the remote catalog).
type Outcome[T any] struct {
	value     T
	err       *Error
	ok        bool
	fromCache bool
	stale     bool
}

// OK wraps a fresh success.
func OK[T any](v T) Outcome[T] {
	return Outcome[T]{value: v, ok: true}
}

// Cached wraps a success served from a cache tier.
func Cached[T any](v T) Outcome[T] {
	return Outcome[T]{value: v, ok: true, fromCache: true}
}

// Stale wraps a cache-served success that could not be confirmed against
// the remote catalog (for example while offline).
func Stale[T any](v T) Outcome[T] {
	return Outcome[T]{value: v, ok: true, fromCache: true, stale: true}
}

// Fail wraps a taxonomy error.
func Fail[T any](err *Error) Outcome[T] {
	if err == nil {
		err = UnknownError("failure without error", nil)
	}
	return Outcome[T]{err: err}
}

// Ok reports whether the outcome carries a value.
func (o Outcome[T]) Ok() bool { return o.ok }

// Value returns the carried value; only meaningful when Ok.
func (o Outcome[T]) Value() T { return o.value }

// Err returns the carried error, nil on success.
func (o Outcome[T]) Err() *Error { return o.err }

// FromCache reports whether the value was served from a cache tier.
func (o Outcome[T]) FromCache() bool { return o.fromCache }

// IsStale reports whether the value may be outdated.
func (o Outcome[T]) IsStale() bool { return o.stale }
