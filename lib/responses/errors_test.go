package responses

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestClientErrorsNotAllowedForSentry(t *testing.T) {
	badRequest := echo.NewHTTPError(http.StatusBadRequest, echo.Map{
		"error":   true,
		"code":    2,
		"message": "total debits (100.00) do not equal total credits (50.00)",
	})

	isAllowed := isErrAllowedForSentry(badRequest)
	assert.False(t, isAllowed)
}

func TestServerErrorsAllowedForSentry(t *testing.T) {
	serverErr := echo.NewHTTPError(http.StatusInternalServerError, echo.Map{
		"error":   true,
		"code":    6,
		"message": "Something went wrong. Please try again later",
	})

	isAllowed := isErrAllowedForSentry(serverErr)
	assert.True(t, isAllowed)
}

func TestNonHTTPErrorsAllowedForSentry(t *testing.T) {
	err := errors.New("random error")

	isAllowed := isErrAllowedForSentry(err)
	assert.True(t, isAllowed)
}
