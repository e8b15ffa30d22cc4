package watcher

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPath    = errors.New("invalid path")
	ErrNotRegularFile = errors.New("path is not a regular file")
)

// WatchSetupError is returned by New when the watch cannot be established.
type WatchSetupError struct {
	Path string
	Err  error
}

func (e *WatchSetupError) Error() string {
	return fmt.Sprintf("failed to watch %s: %v", e.Path, e.Err)
}

func (e *WatchSetupError) Unwrap() error {
	return e.Err
}

// FileReadError reports a failed read of the watched file. It is delivered
// on the watcher's error channel and never stops the watcher.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}
