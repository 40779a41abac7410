package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Domain failures the controllers translate to HTTP. Anything else
// coming out of the service is a store error and crosses unchanged.
var (
	ErrNotFound               = errors.New("payment not found")
	ErrInvalidTransition      = errors.New("invalid payment transition")
	ErrConcurrentModification = errors.New("payment modified concurrently")
)

// ValidationError rejects an operation before any store mutation and
// carries the offending fields.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("validation failed: %s", strings.Join(keys, ", "))
}

func newValidationError(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}

// AsValidationError unwraps err into a *ValidationError when possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
