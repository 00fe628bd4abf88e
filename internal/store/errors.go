package store

import "errors"

// Common store errors
var (
	// ErrWrongType indicates a key exists but holds a value of a different
	// scalar type than requested. Getters still return the caller's default
	// alongside this error so engines can degrade rather than fail.
	ErrWrongType = errors.New("preference value has wrong type")

	// ErrKeyEmpty indicates an empty key was passed to a getter or setter.
	ErrKeyEmpty = errors.New("preference key cannot be empty")
)
