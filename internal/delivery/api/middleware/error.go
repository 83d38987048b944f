package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"stampcard/internal/delivery/api/response"
	deliverycontext "stampcard/internal/delivery/context"
	domainerrors "stampcard/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// httpErrorCodes names the router and middleware failures echo raises.
//
//nolint:gochecknoglobals
var httpErrorCodes = map[int]string{
	http.StatusNotFound:              "NOT_FOUND",
	http.StatusMethodNotAllowed:      "METHOD_NOT_ALLOWED",
	http.StatusRequestEntityTooLarge: "PAYLOAD_TOO_LARGE",
	http.StatusUnsupportedMediaType:  "UNSUPPORTED_MEDIA_TYPE",
	http.StatusServiceUnavailable:    "REQUEST_TIMEOUT",
}

// ErrorMiddleware is the echo HTTPErrorHandler. Every failure leaves as
// {"error", "code"} plus the error's context fields on 4xx responses.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

type rendered struct {
	status  int
	code    string
	message string
	fields  map[string]any
}

func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	out := classify(err)
	if out.status >= http.StatusInternalServerError {
		req := c.Request()
		deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).Error("Request failed",
			slog.Any("error", err),
			slog.String("code", out.code),
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
		)
	}

	_ = response.Error(c, out.status, out.code, out.message, out.fields)
}

func classify(err error) rendered {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return rendered{
			status:  appErr.HTTPCode(),
			code:    appErr.ErrorCode(),
			message: appErr.Message(),
			fields:  appErr.Context(),
		}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		out := rendered{
			status:  httpErr.Code,
			code:    "HTTP_ERROR",
			message: http.StatusText(httpErr.Code),
		}
		if code, ok := httpErrorCodes[httpErr.Code]; ok {
			out.code = code
		}
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			out.message = msg
		}

		return out
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return rendered{
			status:  http.StatusServiceUnavailable,
			code:    "REQUEST_TIMEOUT",
			message: "Request timed out, please retry",
		}
	}

	return rendered{
		status:  http.StatusInternalServerError,
		code:    "INTERNAL_ERROR",
		message: "Internal server error, please try again later",
	}
}
