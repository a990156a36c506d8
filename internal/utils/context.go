// Package utils provides general-purpose helper utilities
// used across different parts of the client.
// Includes tools for request identifiers carried through context.Context
// and bearer token inspection.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// RequestIDCtxKey is the key used to store a caller-chosen request ID in the
// context. When present, it is sent as X-Request-Id instead of a generated one.
//
// Example of writing a value to the context:
//
//	ctx := utils.WithRequestID(ctx, "deploy-42")
var RequestIDCtxKey = contextKey("requestID")

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, id)
}

// GetRequestIDFromContext retrieves the request identifier from the context.
//
// Returns the request ID and an ok flag:
//   - ok == true : value is found, is a string and is not empty
//   - ok == false: value is missing or has an unexpected type
//
// Example usage:
//
//	id, ok := utils.GetRequestIDFromContext(ctx)
//	if !ok {
//	    id = utils.NewRequestID()
//	}
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDCtxKey).(string)
	return id, ok && id != ""
}
