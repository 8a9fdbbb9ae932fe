package navigation

import "errors"

var (
	// ErrInvalidInput indicates a missing session or view.
	ErrInvalidInput = errors.New("invalid navigation input")
)
