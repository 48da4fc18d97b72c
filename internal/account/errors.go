package account

import "errors"

var (
	// ErrNonPositiveAmount is returned when a deposit or withdrawal amount is
	// zero or negative.
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")

	// ErrInsufficientFunds is returned when a withdrawal exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrUnknownKind is returned by ParseKind for unrecognised kinds.
	ErrUnknownKind = errors.New("unknown account kind")
)
