package integration_tests

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"testing"

	"github.com/getabacus/abacus.go/common"
	"github.com/getabacus/abacus.go/controllers"
	"github.com/getabacus/abacus.go/db/models"
	"github.com/getabacus/abacus.go/lib/bookkeeping"
	"github.com/getabacus/abacus.go/lib/responses"
	"github.com/getabacus/abacus.go/lib/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type TransactionTestSuite struct {
	TestSuite
	service *service.LedgerService
	cash    models.Account
	revenue models.Account
	rent    models.Account
}

func (suite *TransactionTestSuite) SetupSuite() {
	svc, err := LedgerTestServiceInit()
	if err != nil {
		log.Fatalf("Error initializing test service: %v", err)
	}
	suite.service = svc
	suite.echo = newTestEcho(svc)
}

func (suite *TransactionTestSuite) SetupTest() {
	assert.NoError(suite.T(), clearLedger(suite.service))
	suite.cash = suite.createAccount("1001", "Cash", common.AccountTypeAsset)
	suite.revenue = suite.createAccount("4001", "Sales Revenue", common.AccountTypeRevenue)
	suite.rent = suite.createAccount("5001", "Rent Expense", common.AccountTypeExpense)
}

func (suite *TransactionTestSuite) TestCreateTransactionUpdatesBalances() {
	transaction := suite.createTransaction("Cash sale", []bookkeeping.EntryInput{
		{AccountID: suite.cash.ID, Debit: 1500},
		{AccountID: suite.revenue.ID, Credit: 1500},
	})
	assert.Equal(suite.T(), 2, len(transaction.Entries))

	assert.Equal(suite.T(), 1500.0, suite.getAccount(suite.cash.ID).Balance)
	assert.Equal(suite.T(), 1500.0, suite.getAccount(suite.revenue.ID).Balance)
}

func (suite *TransactionTestSuite) TestDeleteTransactionRestoresBalances() {
	transaction := suite.createTransaction("Cash sale", []bookkeeping.EntryInput{
		{AccountID: suite.cash.ID, Debit: 1500},
		{AccountID: suite.revenue.ID, Credit: 1500},
	})

	rec := suite.request(http.MethodDelete, fmt.Sprintf("/transactions/%d", transaction.ID), nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	assert.Equal(suite.T(), 0.0, suite.getAccount(suite.cash.ID).Balance)
	assert.Equal(suite.T(), 0.0, suite.getAccount(suite.revenue.ID).Balance)

	rec = suite.request(http.MethodGet, fmt.Sprintf("/transactions/%d", transaction.ID), nil)
	checkErrResponse(&suite.TestSuite, rec, http.StatusNotFound)
}

func (suite *TransactionTestSuite) TestCreateTransactionRejectsUnbalancedEntries() {
	rec := suite.request(http.MethodPost, "/transactions", &controllers.CreateTransactionRequestBody{
		Description: "Does not add up",
		Entries: []bookkeeping.EntryInput{
			{AccountID: suite.cash.ID, Debit: 100},
			{AccountID: suite.revenue.ID, Credit: 90},
		},
	})
	errorResponse := checkErrResponse(&suite.TestSuite, rec, http.StatusBadRequest)
	assert.Equal(suite.T(), "total debits (100.00) do not equal total credits (90.00)", errorResponse.Message)

	assert.Equal(suite.T(), 0.0, suite.getAccount(suite.cash.ID).Balance)
}

func (suite *TransactionTestSuite) TestCreateTransactionRejectsSingleEntry() {
	rec := suite.request(http.MethodPost, "/transactions", &controllers.CreateTransactionRequestBody{
		Description: "Half a transaction",
		Entries: []bookkeeping.EntryInput{
			{AccountID: suite.cash.ID, Debit: 100},
		},
	})
	errorResponse := checkErrResponse(&suite.TestSuite, rec, http.StatusBadRequest)
	assert.Equal(suite.T(), "transaction must have at least 2 entries", errorResponse.Message)
}

func (suite *TransactionTestSuite) TestCreateTransactionRejectsEntryWithBothSides() {
	rec := suite.request(http.MethodPost, "/transactions", &controllers.CreateTransactionRequestBody{
		Description: "Both sides",
		Entries: []bookkeeping.EntryInput{
			{AccountID: suite.cash.ID, Debit: 100, Credit: 100},
			{AccountID: suite.revenue.ID, Credit: 100},
		},
	})
	errorResponse := checkErrResponse(&suite.TestSuite, rec, http.StatusBadRequest)
	assert.Equal(suite.T(), "entry 1: cannot have both debit and credit amounts", errorResponse.Message)
}

func (suite *TransactionTestSuite) TestCreateTransactionRejectsUnknownAccount() {
	rec := suite.request(http.MethodPost, "/transactions", &controllers.CreateTransactionRequestBody{
		Description: "Ghost account",
		Entries: []bookkeeping.EntryInput{
			{AccountID: 123456, Debit: 100},
			{AccountID: suite.revenue.ID, Credit: 100},
		},
	})
	errorResponse := checkErrResponse(&suite.TestSuite, rec, http.StatusNotFound)
	assert.Equal(suite.T(), responses.AccountsNotFoundError.Message, errorResponse.Message)
}

func (suite *TransactionTestSuite) TestUpdateTransactionReplacesEntries() {
	transaction := suite.createTransaction("Cash sale", []bookkeeping.EntryInput{
		{AccountID: suite.cash.ID, Debit: 1500},
		{AccountID: suite.revenue.ID, Credit: 1500},
	})

	// the old 1500 must be reversed, not added to
	rec := suite.request(http.MethodPut, fmt.Sprintf("/transactions/%d", transaction.ID), &controllers.UpdateTransactionRequestBody{
		Entries: []bookkeeping.EntryInput{
			{AccountID: suite.cash.ID, Debit: 700},
			{AccountID: suite.revenue.ID, Credit: 700},
		},
	})
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	assert.Equal(suite.T(), 700.0, suite.getAccount(suite.cash.ID).Balance)
	assert.Equal(suite.T(), 700.0, suite.getAccount(suite.revenue.ID).Balance)
}

func (suite *TransactionTestSuite) TestUpdateTransactionCanMoveEntriesBetweenAccounts() {
	transaction := suite.createTransaction("Cash sale", []bookkeeping.EntryInput{
		{AccountID: suite.cash.ID, Debit: 500},
		{AccountID: suite.revenue.ID, Credit: 500},
	})

	rec := suite.request(http.MethodPut, fmt.Sprintf("/transactions/%d", transaction.ID), &controllers.UpdateTransactionRequestBody{
		Entries: []bookkeeping.EntryInput{
			{AccountID: suite.rent.ID, Debit: 500},
			{AccountID: suite.cash.ID, Credit: 500},
		},
	})
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	assert.Equal(suite.T(), -500.0, suite.getAccount(suite.cash.ID).Balance)
	assert.Equal(suite.T(), 0.0, suite.getAccount(suite.revenue.ID).Balance)
	assert.Equal(suite.T(), 500.0, suite.getAccount(suite.rent.ID).Balance)
}

func (suite *TransactionTestSuite) TestUpdateTransactionDescriptionOnlyKeepsBalances() {
	transaction := suite.createTransaction("Cash sale", []bookkeeping.EntryInput{
		{AccountID: suite.cash.ID, Debit: 1500},
		{AccountID: suite.revenue.ID, Credit: 1500},
	})

	newDescription := "Cash sale, corrected memo"
	rec := suite.request(http.MethodPut, fmt.Sprintf("/transactions/%d", transaction.ID), &controllers.UpdateTransactionRequestBody{
		Description: &newDescription,
	})
	updated := models.Transaction{}
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&updated))
	assert.Equal(suite.T(), newDescription, updated.Description)
	assert.Equal(suite.T(), 2, len(updated.Entries))

	assert.Equal(suite.T(), 1500.0, suite.getAccount(suite.cash.ID).Balance)
	assert.Equal(suite.T(), 1500.0, suite.getAccount(suite.revenue.ID).Balance)
}

func (suite *TransactionTestSuite) TestUpdateTransactionRejectsUnbalancedEntries() {
	transaction := suite.createTransaction("Cash sale", []bookkeeping.EntryInput{
		{AccountID: suite.cash.ID, Debit: 1500},
		{AccountID: suite.revenue.ID, Credit: 1500},
	})

	rec := suite.request(http.MethodPut, fmt.Sprintf("/transactions/%d", transaction.ID), &controllers.UpdateTransactionRequestBody{
		Entries: []bookkeeping.EntryInput{
			{AccountID: suite.cash.ID, Debit: 700},
			{AccountID: suite.revenue.ID, Credit: 900},
		},
	})
	checkErrResponse(&suite.TestSuite, rec, http.StatusBadRequest)

	// rejected update leaves the original amounts in place
	assert.Equal(suite.T(), 1500.0, suite.getAccount(suite.cash.ID).Balance)
	assert.Equal(suite.T(), 1500.0, suite.getAccount(suite.revenue.ID).Balance)
}

func (suite *TransactionTestSuite) TestListTransactionsPagination() {
	for i := 0; i < 3; i++ {
		suite.createTransaction(fmt.Sprintf("Sale %d", i+1), []bookkeeping.EntryInput{
			{AccountID: suite.cash.ID, Debit: 100},
			{AccountID: suite.revenue.ID, Credit: 100},
		})
	}

	rec := suite.request(http.MethodGet, "/transactions?page=1&limit=2", nil)
	responseBody := controllers.ListTransactionsResponseBody{}
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&responseBody))
	assert.Equal(suite.T(), 2, len(responseBody.Transactions))
	assert.Equal(suite.T(), 3, responseBody.Pagination.Total)
	assert.Equal(suite.T(), 2, responseBody.Pagination.TotalPages)
}

func (suite *TransactionTestSuite) TestGetTransactionMissing() {
	rec := suite.request(http.MethodGet, "/transactions/123456", nil)
	errorResponse := checkErrResponse(&suite.TestSuite, rec, http.StatusNotFound)
	assert.Equal(suite.T(), responses.TransactionNotFoundError.Message, errorResponse.Message)
}

func TestTransactionSuite(t *testing.T) {
	suite.Run(t, new(TransactionTestSuite))
}
