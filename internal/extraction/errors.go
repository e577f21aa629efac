package extraction

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned when the uploaded file's declared type has
// no text extractor (e.g. legacy binary .doc). Callers reject the upload
// rather than retrying.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// ExtractionError wraps a failure from the underlying document converter.
type ExtractionError struct {
	Filename string
	Cause    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.Filename, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
