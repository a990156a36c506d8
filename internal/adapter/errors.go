package adapter

import "errors"

var (
	// ErrInvalidResponse wraps every non-2xx response of the config service.
	ErrInvalidResponse = errors.New("invalid response")
	// ErrUnauthorized is additionally wrapped for 401 and 403 responses.
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrNotFound is additionally wrapped for 404 responses.
	ErrNotFound = errors.New("not found")
	// ErrInvalidEndpoint is returned when the endpoint URL cannot be used.
	ErrInvalidEndpoint = errors.New("invalid endpoint")
	// ErrMissingName is returned when the request names no application.
	ErrMissingName = errors.New("application name is required")
	// ErrTokenExchange is returned when the OAuth2 client-credentials
	// exchange fails.
	ErrTokenExchange = errors.New("oauth2 token exchange failed")
)
