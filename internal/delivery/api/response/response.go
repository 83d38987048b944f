// Package response renders the JSON bodies returned by the API.
package response

import (
	"net/http"

	domainerrors "stampcard/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Success writes `{"success": true, ...fields}`.
func Success(c echo.Context, statusCode int, fields echo.Map) error {
	body := make(echo.Map, len(fields)+1)
	for key, value := range fields {
		body[key] = value
	}
	body["success"] = true

	return c.JSON(statusCode, body)
}

// Error writes `{"error": message, "code": errorCode, ...context}`.
// Context fields are dropped for 5xx responses so internal state never leaks.
func Error(c echo.Context, statusCode int, errorCode string, message string, context map[string]any) error {
	body := echo.Map{}
	if statusCode < http.StatusInternalServerError {
		for key, value := range context {
			body[key] = value
		}
	}
	body["error"] = message
	body["code"] = errorCode

	return c.JSON(statusCode, body)
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, nil)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError renders application errors and passes anything else on to the error middleware.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Context())
	}

	return errors.WithStack(err)
}
