package usecase

import "github.com/pkg/errors"

// ErrRetryable marks failures that are expected to succeed on redelivery.
var ErrRetryable = errors.New("retryable")

type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return "retryable: " + e.err.Error()
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func (e *retryableError) Is(target error) bool {
	return target == ErrRetryable
}

// Retryable wraps err so that errors.Is(err, ErrRetryable) holds.
func Retryable(err error) error {
	if err == nil {
		return nil
	}

	return &retryableError{err: err}
}
