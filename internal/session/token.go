package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims reads the registered claims of a JWT without verifying its signature.
// The backend remains the authority; the client only uses them to skip doomed requests.
func Claims(token string) (*jwt.RegisteredClaims, error) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, err
	}

	return &claims, nil
}

// Expired reports whether token carries an exp claim in the past. Tokens that are not
// JWTs, or that carry no exp claim, are never considered expired.
func Expired(token string, now time.Time) bool {
	if token == "" {
		return false
	}

	claims, err := Claims(token)
	if err != nil || claims.ExpiresAt == nil {
		return false
	}

	return !now.Before(claims.ExpiresAt.Time)
}
