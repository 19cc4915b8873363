package api

import (
	"errors"
	"fmt"
)

// ErrConnectivity marks transport-level failures (DNS, refused connection,
// canceled context) as opposed to an API-level rejection.
var ErrConnectivity = errors.New("connectivity_error")

// Error is a non-success answer from the remote API: either a non-2xx status
// or a well-formed envelope with success=false.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("api error (status %d)", e.Status)
}

// Result is the tagged outcome of a gateway call: either Ok with a value or
// Err with a reason. Callers must unwrap explicitly; there is no nil/false
// sentinel convention at this boundary.
type Result[T any] struct {
	value T
	err   error
}

func Ok[T any](v T) Result[T] { return Result[T]{value: v} }

func Err[T any](err error) Result[T] { return Result[T]{err: err} }

// Unwrap returns the value and error; the value is the zero value on error.
func (r Result[T]) Unwrap() (T, error) { return r.value, r.err }

func (r Result[T]) Err() error { return r.err }

func (r Result[T]) IsOk() bool { return r.err == nil }
