package wosfile

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat is returned when a stream is not valid Web of Science data:
	// unrecognized header, wrong banner or version, missing ER or EF marker,
	// or a tab-delimited row with the wrong column count.
	ErrFormat = errors.New("invalid Web of Science format")

	// ErrUnknownTag is returned when a field tag is absent from the tag
	// dictionary, so its multi-value split policy is undefined.
	ErrUnknownTag = errors.New("unknown field tag")
)

// ParseError reports where in the stream a read failed.
type ParseError struct {
	Line int
	Err  error
}

// Error formats the parse error with the stored line number.
func (e *ParseError) Error() string {
	return fmt.Sprintf("wosfile: parse error on line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying error so errors.Is sees through ParseError.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// formatErrAt builds a ParseError of the ErrFormat class at the given line.
func formatErrAt(line int, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return &ParseError{Line: line, Err: fmt.Errorf("%w: %s", ErrFormat, msg)}
}
