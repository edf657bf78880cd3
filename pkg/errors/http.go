package errors

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

var codeToStatus = map[string]int{
	ErrInternal:        http.StatusInternalServerError,
	ErrNotFound:        http.StatusNotFound,
	ErrInvalidArgument: http.StatusBadRequest,
	ErrUnauthenticated: http.StatusUnauthorized,
	ErrUnauthorized:    http.StatusForbidden,
	ErrConflict:        http.StatusConflict,
	ErrUnprocessable:   http.StatusUnprocessableEntity,
	ErrTimeout:         http.StatusGatewayTimeout,
	ErrNotImplemented:  http.StatusNotImplemented,
}

// ToHTTPStatus converts an error code to an HTTP status code.
func ToHTTPStatus(code string) int {
	if status, ok := codeToStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ToHTTPError converts an error into an Echo HTTP error. AppErrors map
// through the code table; plain errors become 500s.
func ToHTTPError(err error) *echo.HTTPError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if As(err, &appErr) {
		return echo.NewHTTPError(ToHTTPStatus(appErr.Code()), echo.Map{
			"error": appErr.Error(),
			"code":  appErr.Code(),
		})
	}

	if echoErr, ok := err.(*echo.HTTPError); ok {
		return echoErr
	}

	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
