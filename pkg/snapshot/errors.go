package snapshot

import (
	"errors"
	"fmt"
)

// ErrMissingAnchor is returned when the anchored style is used without a repository name.
var ErrMissingAnchor = errors.New("repository name is required")

// ReadError reports a file whose content could not be read. It aborts the whole run.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("error reading file %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }
