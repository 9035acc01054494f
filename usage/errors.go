package usage

import "errors"

var (
	// ErrProcessUnavailable indicates the current process handle could not be opened.
	ErrProcessUnavailable = errors.New("usage: process handle unavailable")
)
