package procurement

import "errors"

var (
	ErrRFQNotFound  = errors.New("rfq not found")
	ErrInvalidInput = errors.New("invalid procurement input")
)
