// Package usecase implements the business logic for the store feature.
package usecase

import "errors"

// ErrProductNotFound is returned when adding an unknown or inactive product
// to the cart.
var ErrProductNotFound = errors.New("product not found")
