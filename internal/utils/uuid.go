package utils

import "github.com/google/uuid"

// NewRequestID returns a fresh identifier for an outbound request.
//
// UUIDv7 is preferred because it sorts by creation time, which keeps request
// IDs in log order; a random UUIDv4 is used if v7 generation fails.
//
// Example usage:
//
//	req.SetHeader("X-Request-Id", utils.NewRequestID())
func NewRequestID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
