package service

import (
	"context"

	"github.com/getabacus/abacus.go/db/models"
)

type LedgerStats struct {
	Accounts     int `json:"accounts"`
	Transactions int `json:"transactions"`
	Entries      int `json:"entries"`
}

// Stats pings the database and returns row counts for the health endpoint.
func (svc *LedgerService) Stats(ctx context.Context) (*LedgerStats, error) {
	if err := svc.DB.PingContext(ctx); err != nil {
		return nil, err
	}

	stats := &LedgerStats{}
	var err error
	if stats.Accounts, err = svc.DB.NewSelect().Model((*models.Account)(nil)).Count(ctx); err != nil {
		return nil, err
	}
	if stats.Transactions, err = svc.DB.NewSelect().Model((*models.Transaction)(nil)).Count(ctx); err != nil {
		return nil, err
	}
	if stats.Entries, err = svc.DB.NewSelect().Model((*models.Entry)(nil)).Count(ctx); err != nil {
		return nil, err
	}
	return stats, nil
}
