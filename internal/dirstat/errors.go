package dirstat

import "errors"

var (
	// ErrNotFound is returned when the root path does not exist.
	ErrNotFound = errors.New("path not found")
	// ErrInvalidArgument is returned when the root path is empty or not a directory.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrEmptyInput is returned when aggregating an index without any files.
	ErrEmptyInput = errors.New("no files to aggregate")
)
