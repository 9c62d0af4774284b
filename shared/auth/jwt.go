// Package auth implements issuance and verification of the signed session
// tokens carried in the Authorization header.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is the single failure value returned by token verification.
// Expired, malformed and badly signed tokens all collapse to it so that the
// boundary cannot leak which check failed.
var ErrInvalidToken = errors.New("invalid session token")

// SessionClaims are the claims carried by a session token. The subject is the
// user id the token was issued for.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// JWTAuthenticator signs and verifies session tokens using HMAC-SHA256.
type JWTAuthenticator struct {
	audience string
	issuer   string
}

// NewJWTAuthenticator creates a new JWTAuthenticator instance.
func NewJWTAuthenticator(audience, issuer string) JWTAuthenticator {
	return JWTAuthenticator{
		audience: audience,
		issuer:   issuer,
	}
}

// GenerateSessionToken issues a signed token for the given user id, expiring
// after ttl. Each token carries a unique jti.
func (a *JWTAuthenticator) GenerateSessionToken(userID, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    a.issuer,
			Audience:  jwt.ClaimStrings{a.audience},
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenStr, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenStr, nil
}

// ValidateSessionToken verifies the signature, structure and expiry of a
// session token and returns its claims. Any failure yields ErrInvalidToken
// wrapping the underlying cause; callers may log the cause but must not
// surface it.
func (a *JWTAuthenticator) ValidateSessionToken(tokenString, secret string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return []byte(secret), nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithAudience(a.audience),
		jwt.WithIssuer(a.issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
