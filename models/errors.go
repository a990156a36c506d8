package models

import "errors"

var (
	// ErrMalformedResponse is returned when a config service response body
	// cannot be decoded into [ConfigData], or when propertySources is missing
	// or is not an array.
	ErrMalformedResponse = errors.New("malformed config response")
	// ErrUnsupportedValue is returned when a property value is a JSON object
	// or array. Property sources are flat; nesting lives in the keys.
	ErrUnsupportedValue = errors.New("unsupported property value")
)
