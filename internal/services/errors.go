package services

import "errors"

// Sentinel errors returned by the service layer. The HTTP error handler maps
// these onto status codes; anything else surfaces as a store failure.
var (
	ErrNotFound        = errors.New("record not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrDuplicatePeriod = errors.New("a due already exists for this period")
)
