package auth

import (
	"strings"
	"testing"

	"clubefast/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() *bcryptHasher {
	return NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("segredo123")
	require.NoError(t, err)
	assert.NotEqual(t, "segredo123", hash)

	assert.True(t, hasher.Check("segredo123", hash))
	assert.False(t, hasher.Check("segredo124", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("segredo123", "not-a-hash"))
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("segredo123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestNewBcryptHasher_Defaults(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *config.Config
		wantCost  int
		wantMinLn int
	}{
		{"no auth section", &config.Config{}, bcrypt.DefaultCost, defaultMinPasswordLength},
		{"cost out of range", &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}, bcrypt.DefaultCost, defaultMinPasswordLength},
		{"explicit values", &config.Config{Auth: &config.AuthConfig{BcryptCost: 12, MinPasswordLength: 10}}, 12, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := NewBcryptHasher(tt.cfg).(*bcryptHasher)
			assert.Equal(t, tt.wantCost, hasher.cost)
			assert.Equal(t, tt.wantMinLn, hasher.minLength)
		})
	}
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := newTestHasher()

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"valid", "segredo123", nil},
		{"valid with accents", "pão2024queijo", nil},
		{"too short", "abc12", ErrPasswordTooShort},
		{"too long", strings.Repeat("a1", 40), ErrPasswordTooLong},
		{"digits only", "12345678", ErrPasswordNoLetter},
		{"letters only", "abcdefgh", ErrPasswordNoDigit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
