package templates

import (
	"errors"
	"fmt"
)

// ErrInvalidPath is reported when an empty template path is requested.
var ErrInvalidPath = errors.New("invalid template path")

// NotFoundError is reported when a template path is not resolvable
// in any configured source.
type NotFoundError struct {
	// Path is the logical template path that was requested.
	Path string
}

// Error returns error message.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not locate template: %s", e.Path)
}

// SourceNotFoundError is reported when a copy source directory is absent.
type SourceNotFoundError struct {
	// Path is the missing source directory.
	Path string
}

// Error returns error message.
func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("source path %s does not exist", e.Path)
}

// DestExistsError is reported when a destination file already exists
// and overwriting was not requested.
type DestExistsError struct {
	// Path is the already existing destination file.
	Path string
}

// Error returns error message.
func (e *DestExistsError) Error() string {
	return fmt.Sprintf("destination file already exists: %s", e.Path)
}
