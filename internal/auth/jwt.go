package auth

import (
	"errors"
	"time"

	"internhub_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the uniform result for every token failure: bad
// signature, expired, malformed. Callers never learn which.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the identity claims carried by every access token.
type Claims struct {
	UserID string          `json:"user_id"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

var (
	signingSecret []byte
	tokenTTL      time.Duration
)

// Init installs the server-held signing secret and token lifetime. It must be
// called once at startup before any token is issued or validated.
func Init(secret string, ttl time.Duration) {
	signingSecret = []byte(secret)
	tokenTTL = ttl
}

// GenerateToken issues a signed token for the given identity.
func GenerateToken(userID, email string, role models.UserRole) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingSecret)
}

// ParseToken validates signature and expiry and returns the claims, or
// ErrInvalidToken on any failure.
func ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return signingSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
