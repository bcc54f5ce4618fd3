package service

import (
	"context"
	"math"
	"time"

	"github.com/getabacus/abacus.go/common"
	"github.com/getabacus/abacus.go/db/models"
	"github.com/getabacus/abacus.go/lib/bookkeeping"
	"github.com/uptrace/bun"
)

// Reports are recomputed from the entries on every call. They never read the
// cached account.balance so they stay correct for historical as-of dates and
// against a ledger that is still being backfilled.

type AccountBalance struct {
	ID      int64   `json:"id"`
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	Balance float64 `json:"balance"`
}

type GroupedBalances struct {
	Assets      []AccountBalance `json:"assets"`
	Liabilities []AccountBalance `json:"liabilities"`
	Equity      []AccountBalance `json:"equity"`
	Revenue     []AccountBalance `json:"revenue"`
	Expenses    []AccountBalance `json:"expenses"`
}

type BalanceSheetTotals struct {
	Assets              float64 `json:"assets"`
	Liabilities         float64 `json:"liabilities"`
	Equity              float64 `json:"equity"`
	Revenue             float64 `json:"revenue"`
	Expenses            float64 `json:"expenses"`
	NetIncome           float64 `json:"netIncome"`
	EquityWithNetIncome float64 `json:"equityWithNetIncome"`
}

type AccountingEquation struct {
	Assets      float64 `json:"assets"`
	Liabilities float64 `json:"liabilities"`
	Equity      float64 `json:"equity"`
	Balances    bool    `json:"balances"`
}

type BalanceSheet struct {
	AsOfDate           time.Time          `json:"asOfDate"`
	AccountBalances    []AccountBalance   `json:"accountBalances"`
	GroupedBalances    GroupedBalances    `json:"groupedBalances"`
	Totals             BalanceSheetTotals `json:"totals"`
	AccountingEquation AccountingEquation `json:"accountingEquation"`
}

// BalanceSheet derives every account's balance from its entries up to asOf,
// grouped by type, with the accounting equation check
// assets == liabilities + equity (equity including net income).
func (svc *LedgerService) BalanceSheet(ctx context.Context, asOf time.Time) (*BalanceSheet, error) {
	if asOf.IsZero() {
		asOf = time.Now()
	}

	accounts := []models.Account{}
	err := svc.DB.NewSelect().
		Model(&accounts).
		Relation("Entries", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("created_at <= ?", asOf)
		}).
		Order("type ASC").
		Order("code ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	report := &BalanceSheet{
		AsOfDate:        asOf,
		AccountBalances: make([]AccountBalance, 0, len(accounts)),
		GroupedBalances: GroupedBalances{
			Assets:      []AccountBalance{},
			Liabilities: []AccountBalance{},
			Equity:      []AccountBalance{},
			Revenue:     []AccountBalance{},
			Expenses:    []AccountBalance{},
		},
	}

	for _, account := range accounts {
		var balance float64
		for _, entry := range account.Entries {
			balance += bookkeeping.BalanceDelta(account.Type, entry.Debit, entry.Credit)
		}
		accountBalance := AccountBalance{
			ID:      account.ID,
			Code:    account.Code,
			Name:    account.Name,
			Type:    account.Type,
			Balance: balance,
		}
		report.AccountBalances = append(report.AccountBalances, accountBalance)

		switch account.Type {
		case common.AccountTypeAsset:
			report.GroupedBalances.Assets = append(report.GroupedBalances.Assets, accountBalance)
			report.Totals.Assets += balance
		case common.AccountTypeLiability:
			report.GroupedBalances.Liabilities = append(report.GroupedBalances.Liabilities, accountBalance)
			report.Totals.Liabilities += balance
		case common.AccountTypeEquity:
			report.GroupedBalances.Equity = append(report.GroupedBalances.Equity, accountBalance)
			report.Totals.Equity += balance
		case common.AccountTypeRevenue:
			report.GroupedBalances.Revenue = append(report.GroupedBalances.Revenue, accountBalance)
			report.Totals.Revenue += balance
		case common.AccountTypeExpense:
			report.GroupedBalances.Expenses = append(report.GroupedBalances.Expenses, accountBalance)
			report.Totals.Expenses += balance
		}
	}

	report.Totals.NetIncome = report.Totals.Revenue - report.Totals.Expenses
	report.Totals.EquityWithNetIncome = report.Totals.Equity + report.Totals.NetIncome

	report.AccountingEquation = AccountingEquation{
		Assets:      report.Totals.Assets,
		Liabilities: report.Totals.Liabilities,
		Equity:      report.Totals.EquityWithNetIncome,
		Balances:    math.Abs(report.Totals.Assets-(report.Totals.Liabilities+report.Totals.EquityWithNetIncome)) < bookkeeping.BalanceTolerance,
	}

	return report, nil
}

type PeriodBalance struct {
	ID            int64   `json:"id"`
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	PeriodBalance float64 `json:"periodBalance"`
}

type IncomeStatementSection struct {
	Accounts []PeriodBalance `json:"accounts"`
	Total    float64         `json:"total"`
}

type ReportPeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type IncomeStatement struct {
	Period       ReportPeriod           `json:"period"`
	Revenues     IncomeStatementSection `json:"revenues"`
	Expenses     IncomeStatementSection `json:"expenses"`
	NetIncome    float64                `json:"netIncome"`
	ProfitMargin float64                `json:"profitMargin"`
}

// IncomeStatement sums revenue and expense entries inside [start, end].
// Start defaults to the first day of the current month, end to now. Accounts
// whose period balance is not positive are left off the itemized lists, and
// the totals cover the listed accounts only; that mirrors the report's
// documented display behavior.
func (svc *LedgerService) IncomeStatement(ctx context.Context, start, end time.Time) (*IncomeStatement, error) {
	now := time.Now()
	if start.IsZero() {
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
	if end.IsZero() {
		end = now
	}

	accounts := []models.Account{}
	err := svc.DB.NewSelect().
		Model(&accounts).
		Where("type IN (?)", bun.In([]string{common.AccountTypeRevenue, common.AccountTypeExpense})).
		Relation("Entries", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("created_at >= ?", start).Where("created_at <= ?", end)
		}).
		Order("code ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	report := &IncomeStatement{
		Period:   ReportPeriod{Start: start, End: end},
		Revenues: IncomeStatementSection{Accounts: []PeriodBalance{}},
		Expenses: IncomeStatementSection{Accounts: []PeriodBalance{}},
	}

	for _, account := range accounts {
		var periodBalance float64
		for _, entry := range account.Entries {
			periodBalance += bookkeeping.BalanceDelta(account.Type, entry.Debit, entry.Credit)
		}
		if periodBalance <= 0 {
			continue
		}
		balance := PeriodBalance{
			ID:            account.ID,
			Code:          account.Code,
			Name:          account.Name,
			Type:          account.Type,
			PeriodBalance: periodBalance,
		}
		if account.Type == common.AccountTypeRevenue {
			report.Revenues.Accounts = append(report.Revenues.Accounts, balance)
			report.Revenues.Total += periodBalance
		} else {
			report.Expenses.Accounts = append(report.Expenses.Accounts, balance)
			report.Expenses.Total += periodBalance
		}
	}

	report.NetIncome = report.Revenues.Total - report.Expenses.Total
	if report.Revenues.Total > 0 {
		report.ProfitMargin = report.NetIncome / report.Revenues.Total * 100
	}

	return report, nil
}

type JournalEntry struct {
	TransactionID int64     `json:"transactionId"`
	Date          time.Time `json:"date"`
	Description   string    `json:"description"`
	Reference     string    `json:"reference,omitempty"`
	AccountCode   string    `json:"accountCode"`
	AccountName   string    `json:"accountName"`
	Debit         float64   `json:"debit"`
	Credit        float64   `json:"credit"`
}

// Journal flattens transactions into one row per entry, oldest transaction
// first, debits before credits within a transaction. Pagination counts
// transactions, not rows, matching the page size of the transaction list.
func (svc *LedgerService) Journal(ctx context.Context, startDate, endDate *time.Time, page, limit int) ([]JournalEntry, int, error) {
	transactions := []models.Transaction{}

	query := svc.DB.NewSelect().
		Model(&transactions).
		Relation("Entries", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("debit DESC")
		}).
		Relation("Entries.Account").
		Order("date ASC").
		Order("created_at ASC")
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

	journalEntries := []JournalEntry{}
	for _, transaction := range transactions {
		for _, entry := range transaction.Entries {
			journalEntries = append(journalEntries, JournalEntry{
				TransactionID: transaction.ID,
				Date:          transaction.Date,
				Description:   transaction.Description,
				Reference:     transaction.Reference,
				AccountCode:   entry.Account.Code,
				AccountName:   entry.Account.Name,
				Debit:         entry.Debit,
				Credit:        entry.Credit,
			})
		}
	}
	return journalEntries, total, nil
}
