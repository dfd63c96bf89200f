package auth

import (
	"errors"
	"time"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is what a verified admin token asserts.
type Claims struct {
	AdminID   int64
	CSRF      string
	ExpiresAt time.Time
}

type Authenticator interface {
	// GenerateToken signs a token for adminID valid for ttl and returns it
	// together with the CSRF nonce bound into it.
	GenerateToken(adminID int64, ttl time.Duration) (token string, csrf string, err error)
	ValidateToken(token string) (*Claims, error)
}
