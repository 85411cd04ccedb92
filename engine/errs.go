package engine

import "errors"

var (
	// ErrEmptyDocument is returned by BuildTree when the markup contains
	// nothing to lay out.
	ErrEmptyDocument = errors.New("empty document")

	// ErrParse wraps failures of the underlying HTML parser.
	ErrParse = errors.New("parse error")

	// ErrFault is returned when a configured failpoint fires.
	ErrFault = errors.New("engine fault injected")
)
