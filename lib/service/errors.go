package service

import "errors"

// Sentinel errors the controllers translate into responses. Anything else
// bubbling out of the service is treated as a server error.
var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrDuplicateAccountCode = errors.New("account code already exists")
	ErrInvalidAccountType   = errors.New("invalid account type")
	ErrAccountHasEntries    = errors.New("cannot delete account with existing transactions")
	ErrAccountsNotFound     = errors.New("one or more accounts not found")
)
