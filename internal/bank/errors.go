package bank

import "errors"

var (
	// ErrAccountNotFound is returned when no account is registered under an id.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicateAccount is returned when an id is already registered.
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrNegativeOpeningBalance is returned when an account would open below zero.
	ErrNegativeOpeningBalance = errors.New("opening balance must not be negative")
)
