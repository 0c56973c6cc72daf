// Package errors provides custom error types for shop-related operations.
package errors

import "errors"

var ErrInsufficientQuantity = errors.New("existing quantity is less than quantity to remove")
var ErrInvalidQuantity = errors.New("quantity must not be negative")
var ErrInvalidCatalog = errors.New("invalid catalog")
