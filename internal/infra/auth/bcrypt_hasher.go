// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"unicode"
	"unicode/utf8"

	"clubefast/config"
	"clubefast/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const defaultMinPasswordLength = 8

var (
	ErrPasswordTooShort = errors.New("password is too short")
	ErrPasswordTooLong  = errors.New("password exceeds 72 bytes")
	ErrPasswordNoLetter = errors.New("password must contain a letter")
	ErrPasswordNoDigit  = errors.New("password must contain a digit")
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost      int
	minLength int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// Out-of-range costs fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	hasher := &bcryptHasher{cost: bcrypt.DefaultCost, minLength: defaultMinPasswordLength}
	if cfg.Auth == nil {
		return hasher
	}

	if cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		hasher.cost = cfg.Auth.BcryptCost
	}
	if cfg.Auth.MinPasswordLength > 0 {
		hasher.minLength = cfg.Auth.MinPasswordLength
	}

	return hasher
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt.GenerateFromPassword")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength requires a minimum length plus at least one letter and one digit.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if utf8.RuneCountInString(password) < h.minLength {
		return errors.Wrapf(ErrPasswordTooShort, "minimum is %d characters", h.minLength)
	}
	// bcrypt silently truncates past 72 bytes.
	if len(password) > 72 {
		return ErrPasswordTooLong
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasLetter {
		return ErrPasswordNoLetter
	}
	if !hasDigit {
		return ErrPasswordNoDigit
	}

	return nil
}
