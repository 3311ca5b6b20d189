package models

import "errors"

// Common errors
var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrAlreadyExists is returned when a resource already exists (e.g., duplicate name)
	ErrAlreadyExists = errors.New("resource already exists")

	// ErrNoFieldsToUpdate is returned when no fields are provided for an update
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// ErrInvalidUUID is returned when a UUID is invalid
	ErrInvalidUUID = errors.New("invalid UUID")

	// ErrInvalidKind is returned when a template's source kind is unknown
	ErrInvalidKind = errors.New("source kind must be blogger, ai-generated or manual")
)
