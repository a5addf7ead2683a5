// Package auth issues and validates the signed session tokens that carry a
// submitter's identity. There is no password login; sessions are anonymous
// and exist only so submissions can carry a stable creator id.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid session token")

// Session is a validated token. UserID is the token's subject claim.
type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
}

// NewSession signs an HS256 token for the given subject.
func NewSession(secret, subject string, ttl time.Duration) (Session, error) {
	now := time.Now().UTC()
	exp := now.Add(ttl)
	claims := jwt.MapClaims{
		"sub": subject,
		"exp": exp.Unix(),
		"iat": now.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return Session{}, err
	}
	return Session{Token: signed, UserID: subject, ExpiresAt: exp}, nil
}

// ParseSession validates a raw token and copies its subject onto the session.
func ParseSession(secret, raw string) (Session, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return Session{}, ErrInvalidToken
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, ErrInvalidToken
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return Session{}, ErrInvalidToken
	}

	session := Session{Token: raw, UserID: sub}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		session.ExpiresAt = exp.Time
	}
	return session, nil
}
