package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature,
// malformed token, wrong algorithm, or an expired age window. Callers get
// one error so the response leaks nothing about which check failed.
var ErrInvalidToken = errors.New("invalid or expired token")

// Manager issues and verifies short-lived signed tokens used in email
// confirmation and password reset links.
type Manager struct {
	secret []byte
}

func NewManager(secret string) Manager {
	return Manager{secret: []byte(secret)}
}

// Generate signs the identity into an HS256 token stamped with the issue time.
func (m Manager) Generate(identity string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:  identity,
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify parses the token and returns the identity it was issued for,
// rejecting tokens issued longer than maxAge ago.
func (m Manager) Verify(tokenString string, maxAge time.Duration) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	if claims.IssuedAt == nil || time.Since(claims.IssuedAt.Time) > maxAge {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
