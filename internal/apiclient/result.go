package apiclient

import (
	"fmt"
)

// FailureKind classifies why a call did not produce data.
type FailureKind string

const (
	// KindTransport covers DNS, connect, reset, timeout and cancellation.
	KindTransport FailureKind = "transport"
	// KindStatus is a response outside the 2xx range.
	KindStatus FailureKind = "status"
	// KindDecode is a 2xx body that is not the expected shape.
	KindDecode FailureKind = "decode"
)

// Failure describes a call that did not succeed. StatusCode is zero when no
// response was received.
type Failure struct {
	Kind       FailureKind `json:"kind"`
	Message    string      `json:"message"`
	StatusCode int         `json:"statusCode,omitempty"`
}

// Error implements the error interface
func (f *Failure) Error() string {
	if f.StatusCode != 0 {
		return fmt.Sprintf("%s failure (status %d): %s", f.Kind, f.StatusCode, f.Message)
	}
	return fmt.Sprintf("%s failure: %s", f.Kind, f.Message)
}

// Result is either Data (Err == nil) or a Failure.
type Result[T any] struct {
	Data T
	Err  *Failure
}

// OK reports whether the call succeeded.
func (r Result[T]) OK() bool {
	return r.Err == nil
}

// Unwrap returns the data, or the failure as an error.
func (r Result[T]) Unwrap() (T, error) {
	if r.Err != nil {
		var zero T
		return zero, r.Err
	}
	return r.Data, nil
}

func success[T any](data T) Result[T] {
	return Result[T]{Data: data}
}

func failure[T any](kind FailureKind, status int, format string, args ...any) Result[T] {
	return Result[T]{Err: &Failure{
		Kind:       kind,
		Message:    fmt.Sprintf(format, args...),
		StatusCode: status,
	}}
}
