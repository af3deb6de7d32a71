package catalog

import "errors"

var (
	ErrNegativeQuantity = errors.New("quantity must not be negative")
	ErrInvalidKind      = errors.New("invalid item kind")
)
