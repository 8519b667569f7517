package domain

import "errors"

var (
	// ErrSaveNotFound indicates no record exists for a namespace/key pair.
	ErrSaveNotFound = errors.New("save not found")

	// ErrInstanceNotFound indicates an inventory instance id is unknown.
	ErrInstanceNotFound = errors.New("card instance not found")

	// ErrCardNotFound indicates a catalog definition id is unknown.
	ErrCardNotFound = errors.New("card definition not found")

	// ErrCosmeticNotFound indicates a cosmetic id is unknown.
	ErrCosmeticNotFound = errors.New("cosmetic not found")
)
