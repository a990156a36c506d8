package config

import "errors"

// Validation errors returned when the merged settings are unusable.
var (
	// ErrMissingName indicates that no application name was configured.
	ErrMissingName = errors.New("application name is required")
	// ErrInvalidEndpoint indicates an endpoint that is not a URL with a host.
	ErrInvalidEndpoint = errors.New("invalid endpoint")
	// ErrConflictingAuth indicates that both a static token and OAuth2 client
	// credentials were configured.
	ErrConflictingAuth = errors.New("token and client credentials are mutually exclusive")
	// ErrInvalidClientCredentials indicates an incomplete OAuth2
	// client-credentials group.
	ErrInvalidClientCredentials = errors.New("client credentials need token url, client id and client secret")
	// ErrInvalidTimeout indicates a negative request timeout.
	ErrInvalidTimeout = errors.New("invalid request timeout")
	// ErrInvalidLogLevel indicates an unknown log level name.
	ErrInvalidLogLevel = errors.New("invalid log level")
)
