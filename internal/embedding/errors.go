package embedding

import (
	"errors"
	"fmt"
)

// ErrModelUnavailable indicates the embedding backend could not be reached
// or failed to initialize. Callers map this to a 503 at the API boundary.
var ErrModelUnavailable = errors.New("embedding model unavailable")

// EmbedError wraps a backend failure with the provider that produced it.
type EmbedError struct {
	Provider string
	Cause    error
}

func (e *EmbedError) Error() string {
	return fmt.Sprintf("embedding failed (provider %s): %v", e.Provider, e.Cause)
}

func (e *EmbedError) Unwrap() error {
	return e.Cause
}
