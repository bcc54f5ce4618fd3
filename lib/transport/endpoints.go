package transport

import (
	"github.com/getabacus/abacus.go/controllers"
	"github.com/getabacus/abacus.go/lib/service"
	"github.com/labstack/echo/v4"
)

// RegisterEndpoints wires every controller. Mutating endpoints go through the
// admin token middleware and the strict rate limiter; read endpoints stay open.
func RegisterEndpoints(svc *service.LedgerService, e *echo.Echo, adminMw echo.MiddlewareFunc, strictRateLimitMw echo.MiddlewareFunc, logMw echo.MiddlewareFunc) {
	e.GET("/health", controllers.NewHealthController(svc).Check)

	accountCtrl := controllers.NewAccountController(svc)
	e.GET("/accounts", accountCtrl.ListAccounts, logMw)
	e.GET("/accounts/:id", accountCtrl.GetAccount, logMw)
	e.POST("/accounts", accountCtrl.CreateAccount, strictRateLimitMw, adminMw, logMw)
	e.PUT("/accounts/:id", accountCtrl.UpdateAccount, strictRateLimitMw, adminMw, logMw)
	e.DELETE("/accounts/:id", accountCtrl.DeleteAccount, strictRateLimitMw, adminMw, logMw)

	transactionCtrl := controllers.NewTransactionController(svc)
	e.GET("/transactions", transactionCtrl.ListTransactions, logMw)
	e.GET("/transactions/:id", transactionCtrl.GetTransaction, logMw)
	e.POST("/transactions", transactionCtrl.CreateTransaction, strictRateLimitMw, adminMw, logMw)
	e.PUT("/transactions/:id", transactionCtrl.UpdateTransaction, strictRateLimitMw, adminMw, logMw)
	e.DELETE("/transactions/:id", transactionCtrl.DeleteTransaction, strictRateLimitMw, adminMw, logMw)

	e.GET("/reports/balance-sheet", controllers.NewBalanceSheetController(svc).BalanceSheet, logMw)
	e.GET("/reports/income-statement", controllers.NewIncomeStatementController(svc).IncomeStatement, logMw)
	e.GET("/reports/journal", controllers.NewJournalController(svc).Journal, logMw)
}
