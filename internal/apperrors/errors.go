package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
var (
	// ErrUserNotFound indicates that a user with the given ID or username does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrHoldingNotFound indicates that a holding with the given ID does not exist.
	ErrHoldingNotFound = errors.New("holding not found")

	// ErrSymbolNotTracked indicates that a symbol is not on the watchlist.
	ErrSymbolNotTracked = errors.New("symbol not tracked")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrDuplicateSymbol indicates that a symbol is already on the watchlist.
	ErrDuplicateSymbol = errors.New("symbol already tracked")

	// ErrDuplicateUsername indicates that the username is already registered.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrInvalidCredentials indicates a failed username/password check.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidSessionToken indicates a missing, malformed, or expired session token.
	ErrInvalidSessionToken = errors.New("invalid or expired session token")

	// ErrEmptySymbol indicates that a required symbol parameter is empty.
	ErrEmptySymbol = errors.New("symbol cannot be empty")

	// ErrNonPositiveQuantity indicates a quantity that is zero or negative.
	ErrNonPositiveQuantity = errors.New("quantity must be greater than zero")

	// ErrNonPositiveBuyPrice indicates a buy price that is zero or negative.
	ErrNonPositiveBuyPrice = errors.New("buy price must be greater than zero")

	// ErrNotOwner indicates that a holding belongs to a different user.
	ErrNotOwner = errors.New("holding belongs to another user")
)
