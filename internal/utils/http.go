package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data and writes it with the given status and a JSON
// content type. If marshaling fails nothing but a 500 is written and the
// error is returned.
//
//	WriteJSON(w, configData, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return w.Write(body)
}

// OAuthError is the error body of an OAuth2 token endpoint (RFC 6749 5.2).
type OAuthError struct {
	Code        string `json:"error"`
	Description string `json:"error_description,omitempty"`
}

// WriteOAuthError writes an [OAuthError] with the given status. Token
// endpoint responses must not be cached.
func WriteOAuthError(w http.ResponseWriter, statusCode int, code, description string) error {
	w.Header().Set("Cache-Control", "no-store")
	_, err := WriteJSON(w, OAuthError{Code: code, Description: description}, statusCode)
	return err
}
