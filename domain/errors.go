package domain

import "errors"

// Sentinel errors raised synchronously at the point of invalid input.
// Callers surface these directly as validation feedback; no partial results
// accompany them.
var (
	ErrInvalidTerms       = errors.New("invalid loan terms")
	ErrInvalidRange       = errors.New("invalid date range")
	ErrInvalidAssumptions = errors.New("invalid assumptions")
)
