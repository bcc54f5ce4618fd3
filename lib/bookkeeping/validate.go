package bookkeeping

import (
	"fmt"
	"math"
)

// BalanceTolerance absorbs float rounding when comparing monetary sums.
const BalanceTolerance = 0.01

const (
	ErrKindTooFewEntries      = "too_few_entries"
	ErrKindBothSidesPresent   = "both_sides_present"
	ErrKindNeitherSidePresent = "neither_side_present"
	ErrKindNegativeAmount     = "negative_amount"
	ErrKindUnbalanced         = "unbalanced"
)

// EntryInput is one proposed ledger line: a debit or a credit against an account.
type EntryInput struct {
	AccountID int64   `json:"accountId" validate:"required"`
	Debit     float64 `json:"debit"`
	Credit    float64 `json:"credit"`
}

// ValidationError is a client-caused rule violation. It carries a machine
// readable kind next to the human readable message.
type ValidationError struct {
	Kind    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(kind, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// ValidateEntries checks that a proposed entry set forms a legal double-entry
// transaction. The first violation wins: entry count, then per-entry amount
// rules in input order, then the debit/credit balance.
func ValidateEntries(entries []EntryInput) error {
	if len(entries) < 2 {
		return newValidationError(ErrKindTooFewEntries, "transaction must have at least 2 entries")
	}

	for i, entry := range entries {
		hasDebit := entry.Debit > 0
		hasCredit := entry.Credit > 0

		if hasDebit && hasCredit {
			return newValidationError(ErrKindBothSidesPresent, "entry %d: cannot have both debit and credit amounts", i+1)
		}
		if !hasDebit && !hasCredit {
			return newValidationError(ErrKindNeitherSidePresent, "entry %d: must have either debit or credit amount", i+1)
		}
		if entry.Debit < 0 || entry.Credit < 0 {
			return newValidationError(ErrKindNegativeAmount, "entry %d: amounts cannot be negative", i+1)
		}
	}

	var totalDebits, totalCredits float64
	for _, entry := range entries {
		totalDebits += entry.Debit
		totalCredits += entry.Credit
	}
	if math.Abs(totalDebits-totalCredits) > BalanceTolerance {
		return newValidationError(ErrKindUnbalanced, "total debits (%.2f) do not equal total credits (%.2f)", totalDebits, totalCredits)
	}

	return nil
}
