package config

import "errors"

var (
	// ErrBadSetting is returned when a setting's text encoding cannot be
	// decoded.
	ErrBadSetting = errors.New("bad setting")
	// ErrBadPatch is returned when a merge patch cannot be applied.
	ErrBadPatch = errors.New("bad settings patch")
)
