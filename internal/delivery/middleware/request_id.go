package middleware

import (
	"log/slog"
	"regexp"

	deliverycontext "clubefast/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// headerCorrelationID is set by the load balancer in front of the API.
const headerCorrelationID = "X-Correlation-Id"

var validRequestID = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// RequestIDMiddleware tags every request with an ID and a logger carrying it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger}
}

// Process stores the ID in the echo context, the request context and the response header.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		requestID := pickRequestID(req.Header.Get(deliverycontext.HeaderXRequestID), req.Header.Get(headerCorrelationID))

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx := deliverycontext.WithRequestID(req.Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, m.logger.With(slog.String("request_id", requestID)))
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}

// pickRequestID returns the first well-formed candidate, or a fresh UUID.
func pickRequestID(candidates ...string) string {
	for _, candidate := range candidates {
		if validRequestID.MatchString(candidate) {
			return candidate
		}
	}

	return uuid.New().String()
}
