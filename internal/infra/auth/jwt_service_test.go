package auth

import (
	"testing"
	"time"

	"clubefast/config"
	"clubefast/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{
			Access:  "test_access_secret_key_very_long_for_testing",
			Refresh: "test_refresh_secret_key_very_long_for_testing",
		},
		Auth: &config.AuthConfig{AccessTTL: 10 * time.Minute, RefreshTTL: time.Hour},
	}

	srv, err := NewJWTService(cfg)
	require.NoError(t, err)

	return srv.(*jwtService)
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	srv := newTestJWTService(t)
	userID := uuid.New()
	roles := []string{"customer", "admin"}

	accessToken, refreshToken, err := srv.GenerateTokens(userID, roles)
	require.NoError(t, err)
	assert.NotEqual(t, accessToken, refreshToken)

	accessClaims, err := srv.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, roles, accessClaims.Roles)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)
	assert.Equal(t, userID.String(), accessClaims.Subject)

	refreshClaims, err := srv.ValidateToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Nil(t, refreshClaims.Roles)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)

	assert.Equal(t, 10*time.Minute, srv.GetAccessTokenDuration())
}

func TestJWTService_MissingSecrets(t *testing.T) {
	srv, err := NewJWTService(&config.Config{SecretKey: config.SecretKeyConfig{Access: "only-access"}})
	assert.ErrorIs(t, err, ErrMissingSecrets)
	assert.Nil(t, srv)
}

func TestJWTService_DefaultTTLs(t *testing.T) {
	srv, err := NewJWTService(&config.Config{SecretKey: config.SecretKeyConfig{Access: "a", Refresh: "r"}})
	require.NoError(t, err)

	assert.Equal(t, defaultAccessTTL, srv.GetAccessTokenDuration())
	assert.Equal(t, defaultRefreshTTL, srv.(*jwtService).refreshTTL)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	srv := newTestJWTService(t)
	issued := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	srv.now = func() time.Time { return issued }

	accessToken, _, err := srv.GenerateTokens(uuid.New(), []string{"customer"})
	require.NoError(t, err)

	srv.now = func() time.Time { return issued.Add(11 * time.Minute) }

	claims, err := srv.ValidateToken(accessToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsTamperedTokens(t *testing.T) {
	srv := newTestJWTService(t)
	userID := uuid.New()

	forge := func(tokenType string, secret []byte, method jwt.SigningMethod) string {
		claims := service.Claims{
			UserID: userID,
			Type:   tokenType,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    tokenIssuer,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token := jwt.NewWithClaims(method, claims)
		if method == jwt.SigningMethodNone {
			signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
			require.NoError(t, err)

			return signed
		}
		signed, err := token.SignedString(secret)
		require.NoError(t, err)

		return signed
	}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "clearly-not-a-jwt-token-format"},
		{"access type signed with refresh secret", forge(service.TokenTypeAccess, srv.refreshSecret, jwt.SigningMethodHS256)},
		{"wrong secret", forge(service.TokenTypeRefresh, []byte("attacker"), jwt.SigningMethodHS256)},
		{"unknown type", forge("session", srv.accessSecret, jwt.SigningMethodHS256)},
		{"alg none", forge(service.TokenTypeAccess, nil, jwt.SigningMethodNone)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := srv.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
