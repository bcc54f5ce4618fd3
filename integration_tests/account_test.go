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

type AccountTestSuite struct {
	TestSuite
	service *service.LedgerService
}

func (suite *AccountTestSuite) SetupSuite() {
	svc, err := LedgerTestServiceInit()
	if err != nil {
		log.Fatalf("Error initializing test service: %v", err)
	}
	suite.service = svc
	suite.echo = newTestEcho(svc)
}

func (suite *AccountTestSuite) SetupTest() {
	assert.NoError(suite.T(), clearLedger(suite.service))
}

func (suite *AccountTestSuite) TestCreateAndGetAccount() {
	created := suite.createAccount("1001", "Cash", common.AccountTypeAsset)
	assert.Equal(suite.T(), "1001", created.Code)
	assert.Equal(suite.T(), common.AccountTypeAsset, created.Type)
	assert.Equal(suite.T(), 0.0, created.Balance)

	fetched := suite.getAccount(created.ID)
	assert.Equal(suite.T(), created.ID, fetched.ID)
	assert.Equal(suite.T(), "Cash", fetched.Name)
	assert.Empty(suite.T(), fetched.Entries)
}

func (suite *AccountTestSuite) TestCreateAccountRejectsDuplicateCode() {
	suite.createAccount("1001", "Cash", common.AccountTypeAsset)

	rec := suite.request(http.MethodPost, "/accounts", &controllers.CreateAccountRequestBody{
		Code: "1001",
		Name: "Petty Cash",
		Type: common.AccountTypeAsset,
	})
	errorResponse := checkErrResponse(&suite.TestSuite, rec, http.StatusBadRequest)
	assert.Equal(suite.T(), responses.DuplicateAccountCodeError.Message, errorResponse.Message)
}

func (suite *AccountTestSuite) TestCreateAccountRejectsUnknownType() {
	rec := suite.request(http.MethodPost, "/accounts", &controllers.CreateAccountRequestBody{
		Code: "9001",
		Name: "Weird",
		Type: "GOODWILL",
	})
	errorResponse := checkErrResponse(&suite.TestSuite, rec, http.StatusBadRequest)
	assert.Equal(suite.T(), responses.InvalidAccountTypeError.Message, errorResponse.Message)
}

func (suite *AccountTestSuite) TestListAccountsFilteredByType() {
	suite.createAccount("1001", "Cash", common.AccountTypeAsset)
	suite.createAccount("4001", "Sales Revenue", common.AccountTypeRevenue)
	suite.createAccount("1002", "Inventory", common.AccountTypeAsset)

	rec := suite.request(http.MethodGet, fmt.Sprintf("/accounts?type=%s", common.AccountTypeAsset), nil)
	accounts := []models.Account{}
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&accounts))
	assert.Equal(suite.T(), 2, len(accounts))
	// ordered by code within the type
	assert.Equal(suite.T(), "1001", accounts[0].Code)
	assert.Equal(suite.T(), "1002", accounts[1].Code)
}

func (suite *AccountTestSuite) TestUpdateAccountKeepsCodeAndType() {
	created := suite.createAccount("1001", "Cash", common.AccountTypeAsset)

	newName := "Cash on Hand"
	rec := suite.request(http.MethodPut, fmt.Sprintf("/accounts/%d", created.ID), &controllers.UpdateAccountRequestBody{
		Name: &newName,
	})
	updated := models.Account{}
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&updated))
	assert.Equal(suite.T(), "Cash on Hand", updated.Name)
	assert.Equal(suite.T(), created.Code, updated.Code)
	assert.Equal(suite.T(), created.Type, updated.Type)
}

func (suite *AccountTestSuite) TestDeleteAccountWithoutEntries() {
	created := suite.createAccount("1001", "Cash", common.AccountTypeAsset)

	rec := suite.request(http.MethodDelete, fmt.Sprintf("/accounts/%d", created.ID), nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	rec = suite.request(http.MethodGet, fmt.Sprintf("/accounts/%d", created.ID), nil)
	checkErrResponse(&suite.TestSuite, rec, http.StatusNotFound)
}

func (suite *AccountTestSuite) TestDeleteAccountWithEntriesFails() {
	cash := suite.createAccount("1001", "Cash", common.AccountTypeAsset)
	revenue := suite.createAccount("4001", "Sales Revenue", common.AccountTypeRevenue)
	suite.createTransaction("Cash sale", []bookkeeping.EntryInput{
		{AccountID: cash.ID, Debit: 100},
		{AccountID: revenue.ID, Credit: 100},
	})

	rec := suite.request(http.MethodDelete, fmt.Sprintf("/accounts/%d", cash.ID), nil)
	errorResponse := checkErrResponse(&suite.TestSuite, rec, http.StatusBadRequest)
	assert.Equal(suite.T(), responses.AccountHasEntriesError.Message, errorResponse.Message)

	// still there, balance untouched
	fetched := suite.getAccount(cash.ID)
	assert.Equal(suite.T(), 100.0, fetched.Balance)
}

func (suite *AccountTestSuite) TestGetAccountMissing() {
	rec := suite.request(http.MethodGet, "/accounts/123456", nil)
	errorResponse := checkErrResponse(&suite.TestSuite, rec, http.StatusNotFound)
	assert.Equal(suite.T(), responses.AccountNotFoundError.Message, errorResponse.Message)
}

func TestAccountSuite(t *testing.T) {
	suite.Run(t, new(AccountTestSuite))
}
