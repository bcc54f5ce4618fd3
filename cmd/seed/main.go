package main

import (
	"context"
	"fmt"
	"log"

	"github.com/getabacus/abacus.go/common"
	"github.com/getabacus/abacus.go/db"
	"github.com/getabacus/abacus.go/db/migrations"
	"github.com/getabacus/abacus.go/db/models"
	"github.com/getabacus/abacus.go/lib/logging"
	"github.com/getabacus/abacus.go/lib/service"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/uptrace/bun/migrate"
)

// Seeds the default chart of accounts. Accounts that already exist (by code)
// are left untouched, so re-running is safe.
func main() {
	c := &service.Config{}

	err := godotenv.Load(".env")
	if err != nil {
		fmt.Println("Failed to load .env file")
	}
	err = envconfig.Process("", c)
	if err != nil {
		log.Fatalf("Error loading environment variables: %v", err)
	}

	logger := logging.Logger(c.LogFilePath)

	dbConn, err := db.Open(c)
	if err != nil {
		logger.Fatalf("Error initializing db connection: %v", err)
	}

	ctx := context.Background()
	migrator := migrate.NewMigrator(dbConn, migrations.Migrations)
	if err = migrator.Init(ctx); err != nil {
		logger.Fatalf("Error initializing db migrator: %v", err)
	}
	if _, err = migrator.Migrate(ctx); err != nil {
		logger.Fatalf("Error migrating database: %v", err)
	}

	accounts := []models.Account{
		// Assets (1000-1999)
		{Code: "1001", Name: "Cash", Type: common.AccountTypeAsset},
		{Code: "1002", Name: "Accounts Receivable", Type: common.AccountTypeAsset},
		{Code: "1003", Name: "Inventory", Type: common.AccountTypeAsset},
		{Code: "1004", Name: "Prepaid Expenses", Type: common.AccountTypeAsset},

		// Liabilities (2000-2999)
		{Code: "2001", Name: "Accounts Payable", Type: common.AccountTypeLiability},
		{Code: "2002", Name: "Loans Payable", Type: common.AccountTypeLiability},
		{Code: "2003", Name: "Accrued Expenses", Type: common.AccountTypeLiability},

		// Equity (3000-3999)
		{Code: "3001", Name: "Owner's Capital", Type: common.AccountTypeEquity},
		{Code: "3002", Name: "Retained Earnings", Type: common.AccountTypeEquity},

		// Revenue (4000-4999)
		{Code: "4001", Name: "Sales Revenue", Type: common.AccountTypeRevenue},
		{Code: "4002", Name: "Service Revenue", Type: common.AccountTypeRevenue},

		// Expenses (5000-5999)
		{Code: "5001", Name: "Rent Expense", Type: common.AccountTypeExpense},
		{Code: "5002", Name: "Salaries Expense", Type: common.AccountTypeExpense},
		{Code: "5003", Name: "Utilities Expense", Type: common.AccountTypeExpense},
		{Code: "5004", Name: "Office Supplies", Type: common.AccountTypeExpense},
	}

	seeded := 0
	for _, account := range accounts {
		exists, err := dbConn.NewSelect().Model((*models.Account)(nil)).Where("code = ?", account.Code).Exists(ctx)
		if err != nil {
			logger.Fatalf("Error checking account %s: %v", account.Code, err)
		}
		if exists {
			continue
		}
		if _, err := dbConn.NewInsert().Model(&account).Exec(ctx); err != nil {
			logger.Fatalf("Error seeding account %s: %v", account.Code, err)
		}
		seeded++
	}
	logger.Infof("Seeded %d accounts", seeded)
}
