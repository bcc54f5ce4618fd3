package responses

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error          bool   `json:"error"`
	Code           int    `json:"code"`
	Message        string `json:"message"`
	HttpStatusCode int    `json:"-"`
}

var GeneralServerError = ErrorResponse{
	Error:          true,
	Code:           6,
	Message:        "Something went wrong. Please try again later",
	HttpStatusCode: 500,
}

var BadArgumentsError = ErrorResponse{
	Error:          true,
	Code:           8,
	Message:        "Bad arguments",
	HttpStatusCode: 400,
}

var AccountNotFoundError = ErrorResponse{
	Error:          true,
	Code:           3,
	Message:        "account not found",
	HttpStatusCode: 404,
}

var TransactionNotFoundError = ErrorResponse{
	Error:          true,
	Code:           3,
	Message:        "transaction not found",
	HttpStatusCode: 404,
}

var DuplicateAccountCodeError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "account code already exists",
	HttpStatusCode: 400,
}

var InvalidAccountTypeError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "invalid account type",
	HttpStatusCode: 400,
}

var AccountHasEntriesError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "cannot delete account with existing transactions",
	HttpStatusCode: 400,
}

var AccountsNotFoundError = ErrorResponse{
	Error:          true,
	Code:           3,
	Message:        "one or more accounts not found",
	HttpStatusCode: 404,
}

// ValidationErrorResponse wraps a double-entry rule violation so the client
// sees the exact rule message.
func ValidationErrorResponse(message string) ErrorResponse {
	return ErrorResponse{
		Error:          true,
		Code:           2,
		Message:        message,
		HttpStatusCode: 400,
	}
}

func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	c.Logger().Error(err)
	if hub := sentryecho.GetHubFromContext(c); hub != nil && isErrAllowedForSentry(err) {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetExtra("RequestID", c.Response().Header().Get(echo.HeaderXRequestID))
			hub.CaptureException(err)
		})
	}
	if he, ok := err.(*echo.HTTPError); ok {
		c.JSON(he.Code, he.Message)
	} else {
		c.JSON(http.StatusInternalServerError, GeneralServerError)
	}
}

// client-caused 4xx responses are not Sentry material
func isErrAllowedForSentry(err error) bool {
	he, ok := err.(*echo.HTTPError)
	if !ok {
		return true
	}
	return he.Code >= http.StatusInternalServerError
}
