package view

import "errors"

var (
	ErrInvalidPurchaseQuantity = errors.New("purchase quantity out of range")
	ErrRowNotFound             = errors.New("row not found")
)
