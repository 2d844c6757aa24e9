package wallet

import "errors"

// Service errors. Every precondition violation is detected before any
// mutation and maps to exactly one of these; infrastructure failures are
// wrapped and propagated as-is.
var (
	ErrWalletNotFound       = errors.New("wallet not found")
	ErrTargetWalletNotFound = errors.New("target wallet not found")
	ErrWalletAlreadyExists  = errors.New("wallet already exists")
	ErrInvalidName          = errors.New("invalid wallet name")
	ErrInvalidCurrency      = errors.New("invalid currency")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrInvalidRange         = errors.New("invalid filter range")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrCurrencyMismatch     = errors.New("currency mismatch")
	ErrSelfTransfer         = errors.New("cannot transfer to the same wallet")
	ErrConflict             = errors.New("operation conflicted with concurrent updates")
)
