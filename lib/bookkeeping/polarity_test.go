package bookkeeping

import (
	"testing"

	"github.com/getabacus/abacus.go/common"
	"github.com/stretchr/testify/assert"
)

func TestBalanceDeltaDebitPositiveTypes(t *testing.T) {
	for _, accountType := range []string{common.AccountTypeAsset, common.AccountTypeExpense} {
		assert.Equal(t, 100.0, BalanceDelta(accountType, 100, 0), accountType)
		assert.Equal(t, -100.0, BalanceDelta(accountType, 0, 100), accountType)
	}
}

func TestBalanceDeltaCreditPositiveTypes(t *testing.T) {
	for _, accountType := range []string{common.AccountTypeLiability, common.AccountTypeEquity, common.AccountTypeRevenue} {
		assert.Equal(t, 100.0, BalanceDelta(accountType, 0, 100), accountType)
		assert.Equal(t, -100.0, BalanceDelta(accountType, 100, 0), accountType)
	}
}

func TestReverseDeltaCancelsApply(t *testing.T) {
	for _, accountType := range common.AccountTypes {
		applied := BalanceDelta(accountType, 250, 0)
		reversed := ReverseDelta(accountType, 250, 0)
		assert.Equal(t, 0.0, applied+reversed, accountType)

		applied = BalanceDelta(accountType, 0, 99.5)
		reversed = ReverseDelta(accountType, 0, 99.5)
		assert.Equal(t, 0.0, applied+reversed, accountType)
	}
}
