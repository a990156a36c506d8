package models

import "time"

// DefaultEndpoint is the config service address used when a [LoadRequest]
// leaves Endpoint empty.
const DefaultEndpoint = "http://localhost:8888"

// DefaultProfile is requested when no profile is given.
const DefaultProfile = "default"

// BasicAuth carries HTTP basic credentials for the config service.
type BasicAuth struct {
	User     string
	Password string
}

// ClientCredentials configures an OAuth2 client-credentials token exchange.
// The obtained access token is sent as a bearer token.
type ClientCredentials struct {
	// TokenURL is the OAuth2 token endpoint.
	TokenURL string

	// ClientID and ClientSecret identify the client at the token endpoint.
	ClientID     string
	ClientSecret string

	// Scopes are requested scopes, may be empty.
	Scopes []string
}

// LoadRequest describes one configuration fetch.
type LoadRequest struct {
	// Endpoint is the base URL of the config service, including an optional
	// context path (e.g. "http://host:8888/config"). User info embedded in the
	// URL is used as basic auth when Auth is nil.
	Endpoint string

	// Name is the application name.
	Name string

	// Profiles are the active profiles. Empty means [DefaultProfile].
	Profiles []string

	// Label is the optional environment label.
	Label string

	// Auth sets explicit basic credentials. Takes priority over credentials
	// embedded in Endpoint.
	Auth *BasicAuth

	// Token is sent as "Authorization: Bearer <Token>".
	Token string

	// ClientCredentials enables the OAuth2 client-credentials flow. Mutually
	// exclusive with Token.
	ClientCredentials *ClientCredentials

	// Headers are added verbatim to the request.
	Headers map[string]string

	// InsecureSkipVerify accepts self-signed certificates.
	InsecureSkipVerify bool

	// Timeout bounds the whole request. Zero means no explicit timeout.
	Timeout time.Duration

	// Context is the substitution context applied to string property values.
	// Nil disables substitution.
	Context map[string]string
}
