package utils

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry reads the "exp" claim of a bearer token without verifying its
// signature. The client cannot verify tokens it did not issue; the expiry is
// only used to warn before the config service rejects the request.
//
// Parameters:
//
//	token - the raw bearer token, with or without a "Bearer " prefix
//
// Returns:
//
//	time.Time - the expiration time
//	bool      - false if token is not a JWT or carries no exp claim
//
// Example usage:
//
//	if exp, ok := utils.TokenExpiry(token); ok && exp.Before(time.Now()) {
//	    log.Warn().Msg("token expired")
//	}
func TokenExpiry(token string) (time.Time, bool) {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
	if token == "" {
		return time.Time{}, false
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}
