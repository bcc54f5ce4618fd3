package service

import (
	"github.com/uptrace/bun"
	"github.com/ziflex/lecho/v3"
)

// LedgerService carries the dependencies shared by every operation. Account
// balances live in the database with the account rows, not in this struct;
// nothing here is request-scoped.
type LedgerService struct {
	Config *Config
	DB     *bun.DB
	Logger *lecho.Logger
}
