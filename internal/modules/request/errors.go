package request

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrDelivery   = errors.New("owner notification failed")
)
