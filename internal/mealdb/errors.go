package mealdb

import (
	"errors"
	"fmt"
)

// ErrEmptyResult means the query matched nothing or its input was blank.
var ErrEmptyResult = errors.New("no recipe found")

// NetworkError reports a transport failure, a non-2xx status or a body that
// is not a valid meals envelope. Transient and permanent failures are not
// distinguished.
type NetworkError struct {
	Op         string // query description
	URL        string
	StatusCode int // 0 when no response was received
	RequestID  string
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: GET %s: status %d: %v", e.Op, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: GET %s: %v", e.Op, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsEmptyResult is a shorthand for errors.Is(err, ErrEmptyResult)
func IsEmptyResult(err error) bool {
	return errors.Is(err, ErrEmptyResult)
}

// IsNetworkError is a shorthand for errors.As with *NetworkError
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}
