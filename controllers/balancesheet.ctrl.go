package controllers

import (
	"net/http"
	"time"

	"github.com/getabacus/abacus.go/lib/responses"
	"github.com/getabacus/abacus.go/lib/service"
	"github.com/labstack/echo/v4"
)

// BalanceSheetController : Balance sheet report controller struct
type BalanceSheetController struct {
	svc *service.LedgerService
}

func NewBalanceSheetController(svc *service.LedgerService) *BalanceSheetController {
	return &BalanceSheetController{svc: svc}
}

// BalanceSheet godoc
// @Summary      Balance sheet report
// @Description  Account balances derived from entries up to a date, grouped by type, with the accounting equation check
// @Accept       json
// @Produce      json
// @Tags         Report
// @Param        asOfDate  query     string  false  "Report date, defaults to now"
// @Success      200       {object}  service.BalanceSheet
// @Failure      400       {object}  responses.ErrorResponse
// @Failure      500       {object}  responses.ErrorResponse
// @Router       /reports/balance-sheet [get]
func (controller *BalanceSheetController) BalanceSheet(c echo.Context) error {
	asOf, err := dateQueryParam(c, "asOfDate")
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	var asOfDate time.Time
	if asOf != nil {
		asOfDate = *asOf
	}

	report, err := controller.svc.BalanceSheet(c.Request().Context(), asOfDate)
	if err != nil {
		c.Logger().Errorf("Failed to generate balance sheet: %v", err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, report)
}
