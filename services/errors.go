package services

import "errors"

var (
	// ErrInvalidQuantity rejects negative cart quantities. Zero is legal
	// and removes the line item.
	ErrInvalidQuantity = errors.New("quantity must not be negative")

	// ErrInvalidStatus rejects status values outside the enumerated set.
	ErrInvalidStatus = errors.New("invalid order status")
)
