package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "clubefast/internal/delivery/context"
	"clubefast/internal/domain/entity"
	"clubefast/internal/domain/service"
	mockSvc "clubefast/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setupMock  func(m *mockSvc.MockTokenService)
		wantStatus int
		wantUserID uuid.UUID
	}{
		{
			name:   "valid access token",
			header: "Bearer good",
			setupMock: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("good").Return(&service.Claims{
					UserID: userID,
					Roles:  []string{"customer"},
					Type:   service.TokenTypeAccess,
				}, nil).Once()
			},
			wantStatus: http.StatusNoContent,
			wantUserID: userID,
		},
		{
			name:   "subject fallback",
			header: "Bearer subject",
			setupMock: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("subject").Return(&service.Claims{
					Type:             service.TokenTypeAccess,
					RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()},
				}, nil).Once()
			},
			wantStatus: http.StatusNoContent,
			wantUserID: userID,
		},
		{
			name:       "missing header",
			setupMock:  func(m *mockSvc.MockTokenService) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			header:     "Basic abc",
			setupMock:  func(m *mockSvc.MockTokenService) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "refresh token presented as access",
			header: "Bearer refresh",
			setupMock: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("refresh").Return(&service.Claims{
					UserID: userID,
					Type:   service.TokenTypeRefresh,
				}, nil).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "expired",
			header: "Bearer expired",
			setupMock: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired")).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			tt.setupMock(tokenSvc)
			authMiddleware := NewAuthMiddleware(tokenSvc)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, authMiddleware.Authenticate(okHandler)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			gotID, ok := GetUserID(c)
			assert.Equal(t, tt.wantUserID != uuid.Nil, ok)
			assert.Equal(t, tt.wantUserID, gotID)

			actorID, ok := deliverycontext.ActorFromContext(c.Request().Context())
			assert.Equal(t, tt.wantUserID != uuid.Nil, ok)
			if ok {
				assert.Equal(t, tt.wantUserID, actorID)
			}
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name       string
		roles      []string
		wantStatus int
	}{
		{name: "admin", roles: []string{"customer", "admin"}, wantStatus: http.StatusNoContent},
		{name: "customer only", roles: []string{"customer"}, wantStatus: http.StatusForbidden},
		{name: "no roles", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMiddleware := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard", nil), rec)
			if tt.roles != nil {
				c.Set(contextKeyRoles, tt.roles)
			}

			require.NoError(t, authMiddleware.RequireRole(entity.RoleAdmin)(okHandler)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
