package reservation

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("reservation dates conflict")
	ErrNotFound   = errors.New("reservation not found")
)
