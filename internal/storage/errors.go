package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable is returned by backends that cannot persist anything.
	ErrUnavailable = errors.New("storage unavailable")
	// ErrClosed is returned after Close.
	ErrClosed = errors.New("storage closed")
)

// OpError records which backend operation failed and for which key.
type OpError struct {
	Op  string
	Key string
	Err error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("%s %q: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapErr(op, key string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Key: key, Err: err}
}
