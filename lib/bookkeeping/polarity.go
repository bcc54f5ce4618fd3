package bookkeeping

import "github.com/getabacus/abacus.go/common"

// BalanceDelta maps an entry to the signed change it causes on an account's
// running balance. Debits increase assets and expenses; credits increase
// liabilities, equity and revenue.
func BalanceDelta(accountType string, debit, credit float64) float64 {
	if accountType == common.AccountTypeAsset || accountType == common.AccountTypeExpense {
		return debit - credit
	}
	return credit - debit
}

// ReverseDelta undoes a previously applied entry by swapping the debit and
// credit operands. Used when a transaction is edited or deleted.
func ReverseDelta(accountType string, debit, credit float64) float64 {
	return BalanceDelta(accountType, credit, debit)
}
