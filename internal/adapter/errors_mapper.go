package adapter

import (
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody bounds how much of a failed response body ends up in the error.
const maxErrorBody = 256

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := truncate(strings.TrimSpace(string(resp.Body())), maxErrorBody)

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %d: %w", ErrInvalidResponse, resp.StatusCode(), ErrUnauthorized)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %d: %w", ErrInvalidResponse, resp.StatusCode(), ErrNotFound)
	default:
		if body == "" {
			return fmt.Errorf("%w: %d", ErrInvalidResponse, resp.StatusCode())
		}
		return fmt.Errorf("%w: %d: %s", ErrInvalidResponse, resp.StatusCode(), body)
	}
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
