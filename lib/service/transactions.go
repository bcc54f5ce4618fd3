package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/getabacus/abacus.go/db/models"
	"github.com/getabacus/abacus.go/lib/bookkeeping"
	"github.com/uptrace/bun"
)

type CreateTransactionArgs struct {
	Date        time.Time // zero value means "now"
	Description string
	Reference   string
	Entries     []bookkeeping.EntryInput
}

// UpdateTransactionArgs uses pointers to distinguish "not provided" from an
// explicit value: a present-but-empty Reference clears the stored reference,
// a nil one keeps it. Nil Entries keeps the existing entry set.
type UpdateTransactionArgs struct {
	Date        *time.Time
	Description *string
	Reference   *string
	Entries     []bookkeeping.EntryInput
}

// CreateTransaction validates the entry set, then persists the transaction,
// its entries and every affected account balance as one atomic unit.
func (svc *LedgerService) CreateTransaction(ctx context.Context, args CreateTransactionArgs) (*models.Transaction, error) {
	if err := bookkeeping.ValidateEntries(args.Entries); err != nil {
		return nil, err
	}

	accounts, err := svc.resolveAccounts(ctx, args.Entries)
	if err != nil {
		return nil, err
	}

	date := args.Date
	if date.IsZero() {
		date = time.Now()
	}
	transaction := &models.Transaction{
		Date:        date,
		Description: args.Description,
		Reference:   args.Reference,
	}

	err = svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(transaction).Exec(ctx); err != nil {
			return err
		}
		entries := make([]*models.Entry, len(args.Entries))
		for i, input := range args.Entries {
			entries[i] = &models.Entry{
				TransactionID: transaction.ID,
				AccountID:     input.AccountID,
				Debit:         input.Debit,
				Credit:        input.Credit,
			}
		}
		if _, err := tx.NewInsert().Model(&entries).Exec(ctx); err != nil {
			return err
		}
		for _, entry := range entries {
			delta := bookkeeping.BalanceDelta(accounts[entry.AccountID].Type, entry.Debit, entry.Credit)
			if err := svc.applyEntryBalance(ctx, tx, entry.AccountID, delta); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return svc.FindTransaction(ctx, transaction.ID)
}

// UpdateTransaction replaces the entry set with a full reversal of the old
// entries followed by a re-application of the new ones. A diff-based patch
// was deliberately not used: reversing everything keeps the balance invariant
// independent of which entries changed, and entry counts are small.
func (svc *LedgerService) UpdateTransaction(ctx context.Context, id int64, args UpdateTransactionArgs) (*models.Transaction, error) {
	existing, err := svc.FindTransaction(ctx, id)
	if err != nil {
		return nil, err
	}

	if args.Entries != nil {
		if err := bookkeeping.ValidateEntries(args.Entries); err != nil {
			return nil, err
		}
	}

	// the provided entry set, or the original entries re-created as-is
	newEntries := args.Entries
	if newEntries == nil {
		newEntries = make([]bookkeeping.EntryInput, len(existing.Entries))
		for i, entry := range existing.Entries {
			newEntries[i] = bookkeeping.EntryInput{
				AccountID: entry.AccountID,
				Debit:     entry.Debit,
				Credit:    entry.Credit,
			}
		}
	}

	accounts, err := svc.resolveAccounts(ctx, newEntries)
	if err != nil {
		return nil, err
	}

	err = svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		for _, oldEntry := range existing.Entries {
			if err := svc.reverseEntryBalance(ctx, tx, oldEntry.Account.Type, oldEntry); err != nil {
				return err
			}
		}
		if _, err := tx.NewDelete().Model((*models.Entry)(nil)).Where("transaction_id = ?", id).Exec(ctx); err != nil {
			return err
		}

		if args.Date != nil {
			existing.Date = *args.Date
		}
		if args.Description != nil {
			existing.Description = *args.Description
		}
		if args.Reference != nil {
			existing.Reference = *args.Reference
		}
		if _, err := tx.NewUpdate().Model(existing).WherePK().Exec(ctx); err != nil {
			return err
		}

		entries := make([]*models.Entry, len(newEntries))
		for i, input := range newEntries {
			entries[i] = &models.Entry{
				TransactionID: id,
				AccountID:     input.AccountID,
				Debit:         input.Debit,
				Credit:        input.Credit,
			}
		}
		if _, err := tx.NewInsert().Model(&entries).Exec(ctx); err != nil {
			return err
		}
		for _, entry := range entries {
			delta := bookkeeping.BalanceDelta(accounts[entry.AccountID].Type, entry.Debit, entry.Credit)
			if err := svc.applyEntryBalance(ctx, tx, entry.AccountID, delta); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return svc.FindTransaction(ctx, id)
}

// DeleteTransaction reverses every owned entry's balance contribution, then
// removes the transaction and its entries.
func (svc *LedgerService) DeleteTransaction(ctx context.Context, id int64) error {
	existing, err := svc.FindTransaction(ctx, id)
	if err != nil {
		return err
	}

	return svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		for _, entry := range existing.Entries {
			if err := svc.reverseEntryBalance(ctx, tx, entry.Account.Type, entry); err != nil {
				return err
			}
		}
		if _, err := tx.NewDelete().Model((*models.Entry)(nil)).Where("transaction_id = ?", id).Exec(ctx); err != nil {
			return err
		}
		_, err := tx.NewDelete().Model(existing).WherePK().Exec(ctx)
		return err
	})
}

// FindTransaction returns the transaction with its entries in creation order,
// each entry carrying its account.
func (svc *LedgerService) FindTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	var transaction models.Transaction

	err := svc.DB.NewSelect().
		Model(&transaction).
		Where("transaction.id = ?", id).
		Relation("Entries", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("id ASC")
		}).
		Relation("Entries.Account").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return &transaction, nil
}

// Transactions lists transactions newest first with offset pagination and an
// optional date range. The second return value is the total row count for the
// filter, before paging.
func (svc *LedgerService) Transactions(ctx context.Context, startDate, endDate *time.Time, page, limit int) ([]models.Transaction, int, error) {
	transactions := []models.Transaction{}

	query := svc.DB.NewSelect().
		Model(&transactions).
		Relation("Entries", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("id ASC")
		}).
		Relation("Entries.Account").
		Order("date DESC")
	if startDate != nil {
		query = query.Where("date >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("date <= ?", *endDate)
	}

	total, err := query.Limit(limit).Offset((page - 1) * limit).ScanAndCount(ctx)
	if err != nil {
		return nil, 0, err
	}
	return transactions, total, nil
}

// resolveAccounts loads every distinct account referenced by the entry set.
// A count mismatch means at least one id does not exist.
func (svc *LedgerService) resolveAccounts(ctx context.Context, entries []bookkeeping.EntryInput) (map[int64]*models.Account, error) {
	ids := make([]int64, 0, len(entries))
	seen := make(map[int64]bool, len(entries))
	for _, entry := range entries {
		if !seen[entry.AccountID] {
			seen[entry.AccountID] = true
			ids = append(ids, entry.AccountID)
		}
	}

	accounts := []models.Account{}
	if err := svc.DB.NewSelect().Model(&accounts).Where("id IN (?)", bun.In(ids)).Scan(ctx); err != nil {
		return nil, err
	}
	if len(accounts) != len(ids) {
		return nil, ErrAccountsNotFound
	}

	byID := make(map[int64]*models.Account, len(accounts))
	for i := range accounts {
		byID[accounts[i].ID] = &accounts[i]
	}
	return byID, nil
}
