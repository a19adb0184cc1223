// Package middleware contains the echo middleware of the API server.
package middleware

import (
	"log/slog"
	"net/http"

	"clubefast/internal/delivery/api/response"
	"clubefast/internal/delivery/api/validator"
	deliverycontext "clubefast/internal/delivery/context"
	domainerrors "clubefast/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// httpErrorMessages replaces echo's English messages for statuses clients commonly see.
var httpErrorMessages = map[int]string{
	http.StatusNotFound:              "Recurso não encontrado",
	http.StatusMethodNotAllowed:      "Método não permitido",
	http.StatusRequestEntityTooLarge: "Arquivo muito grande",
	http.StatusUnsupportedMediaType:  "Tipo de conteúdo não suportado",
	http.StatusTooManyRequests:       "Muitas requisições, tente novamente em instantes",
}

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.Any("error", err), slog.String("code", appErr.ErrorCode()))
		}
		_ = response.HandleAppError(c, appErr)

		return
	}

	if details := validator.Details(err); details != nil {
		_ = response.ValidationError(c, details)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErrorMessages[httpErr.Code]
		if !ok {
			message = http.StatusText(httpErr.Code)
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), "Erro interno, tente novamente mais tarde")
}
