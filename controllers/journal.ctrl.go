package controllers

import (
	"net/http"

	"github.com/getabacus/abacus.go/lib/responses"
	"github.com/getabacus/abacus.go/lib/service"
	"github.com/labstack/echo/v4"
)

// JournalController : Journal report controller struct
type JournalController struct {
	svc *service.LedgerService
}

func NewJournalController(svc *service.LedgerService) *JournalController {
	return &JournalController{svc: svc}
}

type JournalResponseBody struct {
	JournalEntries []service.JournalEntry `json:"journalEntries"`
	Pagination     Pagination             `json:"pagination"`
}

// Journal godoc
// @Summary      Journal report
// @Description  One row per entry, oldest transaction first, debits before credits within a transaction
// @Accept       json
// @Produce      json
// @Tags         Report
// @Param        startDate  query     string  false  "Start of date range"
// @Param        endDate    query     string  false  "End of date range"
// @Param        page       query     int     false  "Page number"
// @Param        limit      query     int     false  "Page size"
// @Success      200        {object}  JournalResponseBody
// @Failure      400        {object}  responses.ErrorResponse
// @Failure      500        {object}  responses.ErrorResponse
// @Router       /reports/journal [get]
func (controller *JournalController) Journal(c echo.Context) error {
	startDate, err := dateQueryParam(c, "startDate")
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	endDate, err := dateQueryParam(c, "endDate")
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	page := intQueryParam(c, "page", 1)
	limit := intQueryParam(c, "limit", 50)

	journalEntries, total, err := controller.svc.Journal(c.Request().Context(), startDate, endDate, page, limit)
	if err != nil {
		c.Logger().Errorf("Failed to generate journal report: %v", err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
	return c.JSON(http.StatusOK, &JournalResponseBody{
		JournalEntries: journalEntries,
		Pagination:     makePagination(total, page, limit),
	})
}
