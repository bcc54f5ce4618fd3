package service

import (
	"context"

	"github.com/getabacus/abacus.go/db/models"
	"github.com/getabacus/abacus.go/lib/bookkeeping"
	"github.com/uptrace/bun"
)

// The balance ledger: the only writer of account.balance. Both operations are
// unexported on purpose, they must only run inside the engine's RunInTx scope
// so that entry rows and balance increments commit or roll back together.

// applyEntryBalance increments the account's running balance by delta. The
// increment happens in SQL so concurrent postings against the same account
// serialize on the row instead of losing updates.
func (svc *LedgerService) applyEntryBalance(ctx context.Context, tx bun.Tx, accountID int64, delta float64) error {
	_, err := tx.NewUpdate().
		Model((*models.Account)(nil)).
		Set("balance = balance + ?", delta).
		Where("id = ?", accountID).
		Exec(ctx)
	return err
}

// reverseEntryBalance undoes a previously applied entry by applying the delta
// computed from swapped debit/credit operands.
func (svc *LedgerService) reverseEntryBalance(ctx context.Context, tx bun.Tx, accountType string, entry *models.Entry) error {
	delta := bookkeeping.ReverseDelta(accountType, entry.Debit, entry.Credit)
	return svc.applyEntryBalance(ctx, tx, entry.AccountID, delta)
}
