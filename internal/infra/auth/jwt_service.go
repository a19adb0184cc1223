package auth

import (
	"time"

	"clubefast/config"
	"clubefast/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
	tokenIssuer       = "clubefast"
)

var (
	ErrMissingSecrets   = errors.New("jwt secrets must be provided")
	ErrUnknownTokenType = errors.New("unknown token type")
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, ErrMissingSecrets
	}

	srv := &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     defaultAccessTTL,
		refreshTTL:    defaultRefreshTTL,
		now:           time.Now,
	}
	if cfg.Auth != nil {
		if cfg.Auth.AccessTTL > 0 {
			srv.accessTTL = cfg.Auth.AccessTTL
		}
		if cfg.Auth.RefreshTTL > 0 {
			srv.refreshTTL = cfg.Auth.RefreshTTL
		}
	}

	return srv, nil
}

// GenerateTokens creates a new access token and refresh token for a given customer and roles.
func (s *jwtService) GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.sign(userID, roles, service.TokenTypeAccess, s.accessTTL, s.accessSecret)
	if err != nil {
		return "", "", err
	}

	// Refresh tokens carry no roles; they are reloaded from the database on refresh.
	refreshToken, err = s.sign(userID, nil, service.TokenTypeRefresh, s.refreshTTL, s.refreshSecret)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ValidateToken verifies the signature with the secret matching the token's type claim.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Wrapf(jwt.ErrSignatureInvalid, "unexpected signing method %v", token.Header["alg"])
		}

		parsed, ok := token.Claims.(*service.Claims)
		if !ok {
			return nil, jwt.ErrTokenInvalidClaims
		}

		switch parsed.Type {
		case service.TokenTypeAccess:
			return s.accessSecret, nil
		case service.TokenTypeRefresh:
			return s.refreshSecret, nil
		default:
			return nil, ErrUnknownTokenType
		}
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}

// GetAccessTokenDuration returns the configured duration for access tokens.
func (s *jwtService) GetAccessTokenDuration() time.Duration {
	return s.accessTTL
}

func (s *jwtService) sign(userID uuid.UUID, roles []string, tokenType string, ttl time.Duration, secret []byte) (string, error) {
	now := s.now()
	claims := service.Claims{
		UserID: userID,
		Roles:  roles,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", errors.Wrapf(err, "failed to sign %s token", tokenType)
	}

	return signed, nil
}
