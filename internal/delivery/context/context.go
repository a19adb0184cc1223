// Package context carries request-scoped values (request ID, acting customer, logger)
// between the echo layer and the usecases.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is echoed back on every response.
const HeaderXRequestID = "X-Request-Id"

type ctxKey int

const (
	requestIDKey ctxKey = iota
	actorIDKey
	loggerKey
)

const echoRequestIDKey = "request_id"

// SetRequestID stores the request ID on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestID returns the ID assigned by the request ID middleware, or "" outside a request.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(echoRequestIDKey).(string)

	return id
}

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestIDFromContext returns the request ID stored in ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithActor records the authenticated customer (or admin) performing the request.
func WithActor(ctx context.Context, actorID uuid.UUID) context.Context {
	return context.WithValue(ctx, actorIDKey, actorID)
}

// ActorFromContext returns the authenticated caller, if any.
func ActorFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(actorIDKey).(uuid.UUID)

	return id, ok && id != uuid.Nil
}

// WithLogger returns a copy of ctx carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when ctx has none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
