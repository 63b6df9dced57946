// Package session issues and validates the signed login tokens and tracks
// failed login attempts per client IP. Attempt state sits behind a small
// store interface so the default in-memory map can be swapped for redis
// without touching call sites.
package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the session cookie the frontend carries after login.
const CookieName = "bom_session"

// statusAuthenticated is the status flag embedded in every issued token.
const statusAuthenticated = "authenticated"

var errInvalidToken = errors.New("session: invalid token")

// Manager signs and verifies session tokens. A token is a tamper-evident
// expiring string: status flag + expiry under an HMAC signature.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured session lifetime (used for cookie max-age).
func (m *Manager) TTL() time.Duration { return m.ttl }

// Issue creates a signed session token valid for the configured TTL.
func (m *Manager) Issue() (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"status": statusAuthenticated,
		"jti":    uuid.NewString(),
		"iat":    now.Unix(),
		"exp":    now.Add(m.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Validate recomputes the signature and checks expiry and the status flag.
func (m *Manager) Validate(tokenStr string) bool {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	status, _ := claims["status"].(string)
	return status == statusAuthenticated
}
