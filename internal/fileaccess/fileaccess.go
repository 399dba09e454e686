// Package fileaccess validates that an input path refers to a readable,
// regular file before any image processing is attempted.
package fileaccess

import (
	"fmt"
	"os"

	"github.com/RUBENmukkirwar/Handwritten-Text-Recognition-Application/internal/logger"
)

// Reason identifies which access check failed.
type Reason string

const (
	// ReasonNotFound means the path does not exist.
	ReasonNotFound Reason = "file does not exist"

	// ReasonNotReadable means the current process lacks read permission.
	ReasonNotReadable Reason = "file is not readable: permission denied"

	// ReasonNotRegular means the path is a directory, device, or other
	// special file.
	ReasonNotRegular Reason = "file is not a regular file"
)

// AccessError reports a path that failed one of the access checks.
type AccessError struct {
	Path   string
	Reason Reason
	Err    error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

func (e *AccessError) Unwrap() error { return e.Err }

// Validate checks that path exists, is readable by the current process, and
// denotes a regular file. The checks run in that order and stop at the first
// failure, each producing a distinct *AccessError reason.
func Validate(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &AccessError{Path: path, Reason: ReasonNotFound, Err: err}
		}
		return &AccessError{Path: path, Reason: ReasonNotReadable, Err: err}
	}

	f, err := os.Open(path)
	if err != nil {
		return &AccessError{Path: path, Reason: ReasonNotReadable, Err: err}
	}
	_ = f.Close()

	logger.Get().WithFields(
		"path", path,
		"permissions", fmt.Sprintf("%#o", info.Mode().Perm()),
	).Debug("Checked file access")

	if !info.Mode().IsRegular() {
		return &AccessError{Path: path, Reason: ReasonNotRegular}
	}

	return nil
}
