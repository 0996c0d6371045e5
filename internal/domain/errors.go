package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrInvalidID indicates the supplied identifier is not well formed.
	ErrInvalidID = errors.New("invalid product id")

	// ErrDuplicateCode indicates another product already carries the code.
	ErrDuplicateCode = errors.New("product code already exists")

	// ErrMissingFields indicates a create submission without the required
	// name, code and positive count.
	ErrMissingFields = errors.New("name, code and count are required")
)
