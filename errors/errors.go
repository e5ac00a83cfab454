package errors

import (
	"errors"
	"fmt"
)

var (
	ErrWorkerPanic         = fmt.Errorf("worker panic")
	ErrPoolClosed          = fmt.Errorf("store pool is closed")
	ErrAlreadyRegistered   = fmt.Errorf("connection already registered")
	ErrConnectionLost      = fmt.Errorf("connection lost")
	ErrMalformedPayload    = fmt.Errorf("malformed payload")
	ErrStoreUnavailable    = fmt.Errorf("store unavailable")
	ErrRequestNotFound     = fmt.Errorf("request not found")
	ErrFactNotFound        = fmt.Errorf("fact not found")
	ErrEmptyEmbedding      = fmt.Errorf("embedding is empty")
	ErrProviderUnavailable = fmt.Errorf("provider unavailable")
	ErrProviderError       = fmt.Errorf("provider error")
	ErrInvalidPatch        = fmt.Errorf("invalid fact patch")
)

// Is and As forward to the standard library so callers only import this package.
func Is(err, target error) bool { return errors.Is(err, target) }

func As(err error, target any) bool { return errors.As(err, target) }
