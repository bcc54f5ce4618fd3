package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/getabacus/abacus.go/common"
	"github.com/getabacus/abacus.go/db/models"
	"github.com/uptrace/bun"
)

func (svc *LedgerService) CreateAccount(ctx context.Context, code, name, accountType, description string) (*models.Account, error) {
	if !common.IsValidAccountType(accountType) {
		return nil, ErrInvalidAccountType
	}

	exists, err := svc.DB.NewSelect().Model((*models.Account)(nil)).Where("code = ?", code).Exists(ctx)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateAccountCode
	}

	account := &models.Account{
		Code:        code,
		Name:        name,
		Type:        accountType,
		Description: description,
		Balance:     0,
	}
	if _, err := svc.DB.NewInsert().Model(account).Exec(ctx); err != nil {
		return nil, err
	}
	return account, nil
}

// FindAccount returns the account together with its 10 most recent entries,
// each carrying its transaction.
func (svc *LedgerService) FindAccount(ctx context.Context, id int64) (*models.Account, error) {
	var account models.Account

	err := svc.DB.NewSelect().
		Model(&account).
		Where("account.id = ?", id).
		Relation("Entries", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("created_at DESC").Limit(10)
		}).
		Relation("Entries.Transaction").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

// Accounts lists all accounts, optionally restricted to one type, ordered by
// (type, code).
func (svc *LedgerService) Accounts(ctx context.Context, typeFilter string) ([]models.Account, error) {
	accounts := []models.Account{}

	query := svc.DB.NewSelect().Model(&accounts).Order("type ASC").Order("code ASC")
	if typeFilter != "" {
		query = query.Where("type = ?", typeFilter)
	}
	if err := query.Scan(ctx); err != nil {
		return nil, err
	}
	return accounts, nil
}

// UpdateAccount changes name and/or description. Code and type stay fixed.
func (svc *LedgerService) UpdateAccount(ctx context.Context, id int64, name, description *string) (*models.Account, error) {
	var account models.Account

	err := svc.DB.NewSelect().Model(&account).Where("id = ?", id).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	if name != nil {
		account.Name = *name
	}
	if description != nil {
		account.Description = *description
	}
	if _, err := svc.DB.NewUpdate().Model(&account).WherePK().Exec(ctx); err != nil {
		return nil, err
	}
	return &account, nil
}

// DeleteAccount removes an account that has never been posted against.
func (svc *LedgerService) DeleteAccount(ctx context.Context, id int64) error {
	var account models.Account

	err := svc.DB.NewSelect().Model(&account).Where("id = ?", id).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrAccountNotFound
		}
		return err
	}

	entryCount, err := svc.DB.NewSelect().Model((*models.Entry)(nil)).Where("account_id = ?", id).Count(ctx)
	if err != nil {
		return err
	}
	if entryCount > 0 {
		return ErrAccountHasEntries
	}

	_, err = svc.DB.NewDelete().Model(&account).WherePK().Exec(ctx)
	return err
}
