package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"clubefast/internal/delivery/api/response"
	deliverycontext "clubefast/internal/delivery/context"
	"clubefast/internal/domain/entity"
	"clubefast/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "userID"
	contextKeyRoles  = "roles"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the customer ID and roles on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Faça login para continuar")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Formato de token inválido")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || claims.Type != service.TokenTypeAccess {
			return response.Unauthorized(c, "INVALID_TOKEN", "Sessão inválida ou expirada")
		}

		userID := claims.UserID
		if userID == uuid.Nil {
			parsed, err := uuid.Parse(claims.Subject)
			if err != nil {
				return response.Unauthorized(c, "INVALID_TOKEN", "Sessão inválida ou expirada")
			}
			userID = parsed
		}

		c.Set(contextKeyUserID, userID)
		c.Set(contextKeyRoles, claims.Roles)

		ctx := c.Request().Context()
		logger := deliverycontext.GetLoggerOrDefault(ctx, slog.Default()).With(slog.String("actor_id", userID.String()))
		ctx = deliverycontext.WithActor(ctx, userID)
		ctx = deliverycontext.WithLogger(ctx, logger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !slices.Contains(GetRoles(c), requiredRole.String()) {
				return response.Forbidden(c, "FORBIDDEN", "Acesso negado")
			}

			return next(c)
		}
	}
}

// GetUserID returns the authenticated customer ID.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// GetRoles returns the roles of the authenticated customer.
func GetRoles(c echo.Context) []string {
	roles, _ := c.Get(contextKeyRoles).([]string)

	return roles
}
