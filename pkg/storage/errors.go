package storage

import "errors"

// ErrInsufficientFunds is returned when an account's balance cannot cover a debit.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrNotFound is returned for a missing, already-consumed or expired record.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when an actor tries to resolve state that belongs to someone else.
var ErrForbidden = errors.New("forbidden")

// ErrAlreadyResolved is returned when a one-shot state transition is attempted a second time.
var ErrAlreadyResolved = errors.New("already resolved")

// ErrDuplicateRoll is returned when a duel participant submits a second roll.
var ErrDuplicateRoll = errors.New("roll already submitted")

// ErrInvalidAmount is returned for negative, zero or out-of-bounds amounts, before any mutation.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrAccountBanned is returned when a banned account attempts a mutating operation.
var ErrAccountBanned = errors.New("account is banned")

// ErrNotOwned is returned when an asset mutation names an owner that does not hold the asset.
var ErrNotOwned = errors.New("asset not owned by account")

// ErrConflict is returned when an optimistic version check failed and the whole
// operation should be retried against fresh state.
var ErrConflict = errors.New("concurrent modification, retry")
