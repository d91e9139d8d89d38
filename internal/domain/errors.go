package domain

import "errors"

var (
	// ErrInvalidInput indicates a non-positive or non-numeric weight or
	// height, or an empty user id.
	ErrInvalidInput = errors.New("invalid input")
	// ErrImplausible indicates a value above the configured sanity limits.
	ErrImplausible = errors.New("implausible measurement")
	// ErrStorage indicates the record store failed to read or write.
	ErrStorage = errors.New("storage error")
)
