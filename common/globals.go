package common

const (
	AccountTypeAsset     = "ASSET"
	AccountTypeLiability = "LIABILITY"
	AccountTypeEquity    = "EQUITY"
	AccountTypeRevenue   = "REVENUE"
	AccountTypeExpense   = "EXPENSE"
)

// AccountTypes lists every valid account type in report order.
var AccountTypes = []string{
	AccountTypeAsset,
	AccountTypeLiability,
	AccountTypeEquity,
	AccountTypeRevenue,
	AccountTypeExpense,
}

func IsValidAccountType(accountType string) bool {
	for _, t := range AccountTypes {
		if t == accountType {
			return true
		}
	}
	return false
}
