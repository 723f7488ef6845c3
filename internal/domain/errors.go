package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness constraint was violated.
	ErrAlreadyExists = errors.New("already exists")
	// ErrIdentityMissing indicates a cart request carried neither a user nor a session identifier.
	ErrIdentityMissing = errors.New("no user or session identifier")
	// ErrInvalidQuantity indicates a cart item quantity that is not a positive integer.
	ErrInvalidQuantity = errors.New("quantity must be positive")
)
