// Package jwt implements the credential token issuer and verifier using
// HMAC-signed JWTs. Verification is stateless: there is no server-side
// session store and expiry is the only invalidation.
package jwt

import (
	"context"
	"fmt"
	"time"

	"github.com/bissquit/store-rating/internal/domain"
	"github.com/bissquit/store-rating/internal/identity"
	"github.com/golang-jwt/jwt/v5"
)

// Config contains token signing configuration.
type Config struct {
	SecretKey     string
	TokenDuration time.Duration
}

// Claims is the credential token payload.
type Claims struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// Authenticator issues and verifies credential tokens.
type Authenticator struct {
	secretKey     []byte
	tokenDuration time.Duration
}

// NewAuthenticator creates a new JWT authenticator.
func NewAuthenticator(cfg Config) *Authenticator {
	return &Authenticator{
		secretKey:     []byte(cfg.SecretKey),
		tokenDuration: cfg.TokenDuration,
	}
}

// Issue signs a token carrying the user's identity, valid for the configured
// duration (3 hours by default).
func (a *Authenticator) Issue(_ context.Context, user *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Role:   string(user.Role),
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secretKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string and returns the Identity it
// encodes. Any parse, signature, expiry, or claim failure yields
// identity.ErrInvalidToken; callers match it with errors.Is.
func (a *Authenticator) Verify(_ context.Context, tokenString string) (domain.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secretKey, nil
	})
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", identity.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return domain.Identity{}, identity.ErrInvalidToken
	}

	role := domain.Role(claims.Role)
	if !role.IsValid() {
		return domain.Identity{}, fmt.Errorf("%w: unknown role %q", identity.ErrInvalidToken, claims.Role)
	}

	return domain.Identity{
		UserID: claims.UserID,
		Role:   role,
		Name:   claims.Name,
	}, nil
}
