package controllers

import (
	"net/http"
	"time"

	"github.com/getabacus/abacus.go/lib/responses"
	"github.com/getabacus/abacus.go/lib/service"
	"github.com/labstack/echo/v4"
)

// IncomeStatementController : Income statement report controller struct
type IncomeStatementController struct {
	svc *service.LedgerService
}

func NewIncomeStatementController(svc *service.LedgerService) *IncomeStatementController {
	return &IncomeStatementController{svc: svc}
}

// IncomeStatement godoc
// @Summary      Income statement report
// @Description  Revenue and expense period balances with net income and profit margin
// @Accept       json
// @Produce      json
// @Tags         Report
// @Param        startDate  query     string  false  "Period start, defaults to first day of the current month"
// @Param        endDate    query     string  false  "Period end, defaults to now"
// @Success      200        {object}  service.IncomeStatement
// @Failure      400        {object}  responses.ErrorResponse
// @Failure      500        {object}  responses.ErrorResponse
// @Router       /reports/income-statement [get]
func (controller *IncomeStatementController) IncomeStatement(c echo.Context) error {
	start, err := dateQueryParam(c, "startDate")
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	end, err := dateQueryParam(c, "endDate")
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	var startDate, endDate time.Time
	if start != nil {
		startDate = *start
	}
	if end != nil {
		endDate = *end
	}

	report, err := controller.svc.IncomeStatement(c.Request().Context(), startDate, endDate)
	if err != nil {
		c.Logger().Errorf("Failed to generate income statement: %v", err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, report)
}
