// Package auth issues and verifies access tokens, extracts bearer
// credentials from requests and hashes passwords.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/newsroom/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenValidity is the lifetime of an access token.
const DefaultTokenValidity = 7 * 24 * time.Hour

// Claims is the token payload: the standard registered claims plus the
// numeric user id.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

// TokenService signs and verifies HS256 tokens with one process-wide secret.
// It keeps no per-token state and is safe for concurrent use.
type TokenService struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

type TokenOption func(*TokenService)

// WithClock replaces time.Now for both issuing and verifying.
func WithClock(now func() time.Time) TokenOption {
	return func(s *TokenService) { s.now = now }
}

func NewTokenService(secret []byte, validity time.Duration, opts ...TokenOption) *TokenService {
	if validity <= 0 {
		validity = DefaultTokenValidity
	}
	s := &TokenService{secret: secret, validity: validity, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue returns a signed token for userID expiring after the configured
// validity. User ids start at 1, so non-positive ids are rejected.
func (s *TokenService) Issue(userID int64) (string, error) {
	if userID <= 0 {
		return "", fmt.Errorf("%w: user id must be positive, got %d", common.ErrInvalidToken, userID)
	}
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify checks the signature and expiry of tokenString and returns the
// user id it carries. Every failure wraps common.ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (int64, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, fmt.Errorf("%w: expired", common.ErrInvalidToken)
		}
		return 0, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.UserID == 0 {
		return 0, common.ErrInvalidToken
	}

	return claims.UserID, nil
}
