package controllers

import (
	"net/http"
	"time"

	"github.com/getabacus/abacus.go/lib/service"
	"github.com/labstack/echo/v4"
)

// HealthController : Health check controller struct
type HealthController struct {
	svc *service.LedgerService
}

func NewHealthController(svc *service.LedgerService) *HealthController {
	return &HealthController{svc: svc}
}

type HealthResponse struct {
	Status    string               `json:"status"`
	Timestamp time.Time            `json:"timestamp"`
	Database  string               `json:"database"`
	Stats     *service.LedgerStats `json:"stats,omitempty"`
}

// Check godoc
// @Summary      Check system health
// @Description  Pings the database and returns ledger row counts
// @Accept       json
// @Produce      json
// @Tags         Health
// @Success      200  {object}  HealthResponse
// @Failure      500  {object}  HealthResponse
// @Router       /health [get]
func (controller *HealthController) Check(c echo.Context) error {
	stats, err := controller.svc.Stats(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("Health check failed: %v", err)
		return c.JSON(http.StatusInternalServerError, &HealthResponse{
			Status:    "unhealthy",
			Timestamp: time.Now(),
			Database:  "disconnected",
		})
	}
	return c.JSON(http.StatusOK, &HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Database:  "connected",
		Stats:     stats,
	})
}
