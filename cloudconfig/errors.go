package cloudconfig

import (
	"github.com/MKhiriev/go-cloud-config/internal/adapter"
	"github.com/MKhiriev/go-cloud-config/models"
)

// Errors returned by [Load], for use with errors.Is.
var (
	// ErrInvalidResponse wraps every non-2xx response of the config service.
	ErrInvalidResponse = adapter.ErrInvalidResponse
	// ErrUnauthorized is additionally wrapped for 401 and 403 responses.
	ErrUnauthorized = adapter.ErrUnauthorized
	// ErrNotFound is additionally wrapped for 404 responses.
	ErrNotFound = adapter.ErrNotFound
	// ErrInvalidEndpoint reports an endpoint URL that cannot be used.
	ErrInvalidEndpoint = adapter.ErrInvalidEndpoint
	// ErrTokenExchange reports a failed OAuth2 client-credentials exchange.
	ErrTokenExchange = adapter.ErrTokenExchange
	// ErrMalformedResponse reports a response body that is not valid config
	// data.
	ErrMalformedResponse = models.ErrMalformedResponse
)
