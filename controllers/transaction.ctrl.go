package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/getabacus/abacus.go/db/models"
	"github.com/getabacus/abacus.go/lib/bookkeeping"
	"github.com/getabacus/abacus.go/lib/responses"
	"github.com/getabacus/abacus.go/lib/service"
	"github.com/labstack/echo/v4"
)

// TransactionController : Transaction controller struct
type TransactionController struct {
	svc *service.LedgerService
}

func NewTransactionController(svc *service.LedgerService) *TransactionController {
	return &TransactionController{svc: svc}
}

type CreateTransactionRequestBody struct {
	Date        *time.Time               `json:"date"`
	Description string                   `json:"description" validate:"required"`
	Reference   string                   `json:"reference"`
	Entries     []bookkeeping.EntryInput `json:"entries" validate:"required,min=1,dive"`
}

type UpdateTransactionRequestBody struct {
	Date        *time.Time               `json:"date"`
	Description *string                  `json:"description"`
	Reference   *string                  `json:"reference"`
	Entries     []bookkeeping.EntryInput `json:"entries"`
}

type ListTransactionsResponseBody struct {
	Transactions []models.Transaction `json:"transactions"`
	Pagination   Pagination           `json:"pagination"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ListTransactions godoc
// @Summary      List transactions
// @Description  Returns transactions newest first, with entries and accounts, optionally filtered by date range
// @Accept       json
// @Produce      json
// @Tags         Transaction
// @Param        startDate  query     string  false  "Start of date range"
// @Param        endDate    query     string  false  "End of date range"
// @Param        page       query     int     false  "Page number"
// @Param        limit      query     int     false  "Page size"
// @Success      200        {object}  ListTransactionsResponseBody
// @Failure      500        {object}  responses.ErrorResponse
// @Router       /transactions [get]
func (controller *TransactionController) ListTransactions(c echo.Context) error {
	startDate, err := dateQueryParam(c, "startDate")
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	endDate, err := dateQueryParam(c, "endDate")
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	page := intQueryParam(c, "page", 1)
	limit := intQueryParam(c, "limit", 20)

	transactions, total, err := controller.svc.Transactions(c.Request().Context(), startDate, endDate, page, limit)
	if err != nil {
		c.Logger().Errorf("Failed to fetch transactions: %v", err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, &ListTransactionsResponseBody{
		Transactions: transactions,
		Pagination:   makePagination(total, page, limit),
	})
}

// GetTransaction godoc
// @Summary      Retrieve a transaction
// @Description  Returns a transaction with its entries, each carrying its account
// @Accept       json
// @Produce      json
// @Tags         Transaction
// @Param        id   path      int  true  "Transaction ID"
// @Success      200  {object}  models.Transaction
// @Failure      404  {object}  responses.ErrorResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /transactions/{id} [get]
func (controller *TransactionController) GetTransaction(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	transaction, err := controller.svc.FindTransaction(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTransactionNotFound) {
			return c.JSON(http.StatusNotFound, responses.TransactionNotFoundError)
		}
		c.Logger().Errorf("Failed to fetch transaction transaction_id:%v error: %v", id, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, transaction)
}

// CreateTransaction godoc
// @Summary      Create a transaction
// @Description  Creates a balanced double-entry transaction and updates the affected account balances atomically
// @Accept       json
// @Produce      json
// @Tags         Transaction
// @Param        transaction  body      CreateTransactionRequestBody  true  "Create Transaction"
// @Success      201          {object}  models.Transaction
// @Failure      400          {object}  responses.ErrorResponse
// @Failure      404          {object}  responses.ErrorResponse
// @Router       /transactions [post]
func (controller *TransactionController) CreateTransaction(c echo.Context) error {
	var body CreateTransactionRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load create transaction request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid create transaction request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	args := service.CreateTransactionArgs{
		Description: body.Description,
		Reference:   body.Reference,
		Entries:     body.Entries,
	}
	if body.Date != nil {
		args.Date = *body.Date
	}

	transaction, err := controller.svc.CreateTransaction(c.Request().Context(), args)
	if err != nil {
		return controller.transactionErrorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, transaction)
}

// UpdateTransaction godoc
// @Summary      Update a transaction
// @Description  Replaces the entry set (reversing old balance contributions and applying new ones) and/or updates scalar fields
// @Accept       json
// @Produce      json
// @Tags         Transaction
// @Param        id           path      int                           true  "Transaction ID"
// @Param        transaction  body      UpdateTransactionRequestBody  true  "Update Transaction"
// @Success      200          {object}  models.Transaction
// @Failure      400          {object}  responses.ErrorResponse
// @Failure      404          {object}  responses.ErrorResponse
// @Router       /transactions/{id} [put]
func (controller *TransactionController) UpdateTransaction(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	var body UpdateTransactionRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load update transaction request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	transaction, err := controller.svc.UpdateTransaction(c.Request().Context(), id, service.UpdateTransactionArgs{
		Date:        body.Date,
		Description: body.Description,
		Reference:   body.Reference,
		Entries:     body.Entries,
	})
	if err != nil {
		return controller.transactionErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, transaction)
}

// DeleteTransaction godoc
// @Summary      Delete a transaction
// @Description  Reverses every entry's balance contribution and removes the transaction with its entries
// @Accept       json
// @Produce      json
// @Tags         Transaction
// @Param        id   path      int  true  "Transaction ID"
// @Success      200  {object}  MessageResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /transactions/{id} [delete]
func (controller *TransactionController) DeleteTransaction(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	if err := controller.svc.DeleteTransaction(c.Request().Context(), id); err != nil {
		if errors.Is(err, service.ErrTransactionNotFound) {
			return c.JSON(http.StatusNotFound, responses.TransactionNotFoundError)
		}
		c.Logger().Errorf("Failed to delete transaction transaction_id:%v error: %v", id, err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, &MessageResponse{Message: "Transaction deleted successfully"})
}

func (controller *TransactionController) transactionErrorResponse(c echo.Context, err error) error {
	var validationErr *bookkeeping.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return c.JSON(http.StatusBadRequest, responses.ValidationErrorResponse(validationErr.Message))
	case errors.Is(err, service.ErrTransactionNotFound):
		return c.JSON(http.StatusNotFound, responses.TransactionNotFoundError)
	case errors.Is(err, service.ErrAccountsNotFound):
		return c.JSON(http.StatusNotFound, responses.AccountsNotFoundError)
	}
	c.Logger().Errorf("Transaction operation failed: %v", err)
	return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
}
