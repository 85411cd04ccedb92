package desc

import "errors"

// ErrBadFormat is returned for an unknown rendering format.
var ErrBadFormat = errors.New("bad format")
