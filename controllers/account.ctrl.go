package controllers

import (
	"errors"
	"net/http"

	"github.com/getabacus/abacus.go/lib/responses"
	"github.com/getabacus/abacus.go/lib/service"
	"github.com/labstack/echo/v4"
)

// AccountController : Account controller struct
type AccountController struct {
	svc *service.LedgerService
}

func NewAccountController(svc *service.LedgerService) *AccountController {
	return &AccountController{svc: svc}
}

type CreateAccountRequestBody struct {
	Code        string `json:"code" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Description string `json:"description"`
}

type UpdateAccountRequestBody struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// ListAccounts godoc
// @Summary      List accounts
// @Description  Returns the chart of accounts ordered by type and code, optionally filtered by type
// @Accept       json
// @Produce      json
// @Tags         Account
// @Param        type  query     string  false  "Account type filter"
// @Success      200   {object}  []models.Account
// @Failure      500   {object}  responses.ErrorResponse
// @Router       /accounts [get]
func (controller *AccountController) ListAccounts(c echo.Context) error {
	accounts, err := controller.svc.Accounts(c.Request().Context(), c.QueryParam("type"))
	if err != nil {
		c.Logger().Errorf("Failed to fetch accounts: %v", err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, &accounts)
}

// GetAccount godoc
// @Summary      Retrieve an account
// @Description  Returns an account with its most recent entries
// @Accept       json
// @Produce      json
// @Tags         Account
// @Param        id   path      int  true  "Account ID"
// @Success      200  {object}  models.Account
// @Failure      404  {object}  responses.ErrorResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /accounts/{id} [get]
func (controller *AccountController) GetAccount(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	account, err := controller.svc.FindAccount(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			return c.JSON(http.StatusNotFound, responses.AccountNotFoundError)
		}
		c.Logger().Errorf("Failed to fetch account account_id:%v error: %v", id, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, account)
}

// CreateAccount godoc
// @Summary      Create an account
// @Description  Creates a ledger account with a unique code and a fixed type
// @Accept       json
// @Produce      json
// @Tags         Account
// @Param        account  body      CreateAccountRequestBody  true  "Create Account"
// @Success      201      {object}  models.Account
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      500      {object}  responses.ErrorResponse
// @Router       /accounts [post]
func (controller *AccountController) CreateAccount(c echo.Context) error {
	var body CreateAccountRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load create account request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid create account request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	account, err := controller.svc.CreateAccount(c.Request().Context(), body.Code, body.Name, body.Type, body.Description)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateAccountCode):
			return c.JSON(http.StatusBadRequest, responses.DuplicateAccountCodeError)
		case errors.Is(err, service.ErrInvalidAccountType):
			return c.JSON(http.StatusBadRequest, responses.InvalidAccountTypeError)
		}
		c.Logger().Errorf("Failed to create account: %v", err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusCreated, account)
}

// UpdateAccount godoc
// @Summary      Update an account
// @Description  Updates name and/or description. Code and type are immutable.
// @Accept       json
// @Produce      json
// @Tags         Account
// @Param        id       path      int                       true  "Account ID"
// @Param        account  body      UpdateAccountRequestBody  true  "Update Account"
// @Success      200      {object}  models.Account
// @Failure      404      {object}  responses.ErrorResponse
// @Failure      500      {object}  responses.ErrorResponse
// @Router       /accounts/{id} [put]
func (controller *AccountController) UpdateAccount(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	var body UpdateAccountRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load update account request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	account, err := controller.svc.UpdateAccount(c.Request().Context(), id, body.Name, body.Description)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			return c.JSON(http.StatusNotFound, responses.AccountNotFoundError)
		}
		c.Logger().Errorf("Failed to update account account_id:%v error: %v", id, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, account)
}

// DeleteAccount godoc
// @Summary      Delete an account
// @Description  Deletes an account that has no entries posted against it
// @Accept       json
// @Produce      json
// @Tags         Account
// @Param        id   path      int  true  "Account ID"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /accounts/{id} [delete]
func (controller *AccountController) DeleteAccount(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	if err := controller.svc.DeleteAccount(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrAccountNotFound):
			return c.JSON(http.StatusNotFound, responses.AccountNotFoundError)
		case errors.Is(err, service.ErrAccountHasEntries):
			return c.JSON(http.StatusBadRequest, responses.AccountHasEntriesError)
		}
		c.Logger().Errorf("Failed to delete account account_id:%v error: %v", id, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, &MessageResponse{Message: "Account deleted successfully"})
}
