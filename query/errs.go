package query

import "errors"

var (
	// ErrCompile wraps filter compilation failures.
	ErrCompile = errors.New("query compile error")
	// ErrEval wraps filter evaluation failures.
	ErrEval = errors.New("query eval error")
)
