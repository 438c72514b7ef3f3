package clova

import (
	"fmt"
	"unicode/utf8"
)

const maxErrorBodyLen = 512

// ConfigurationError reports a setting that could not be resolved.
// It is returned before any request is sent.
type ConfigurationError struct {
	Key string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("clova: setting %q is missing", e.Key)
}

// TransportError reports an HTTP exchange that did not complete.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("clova: do request: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError reports a completed exchange with a non-2xx status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("clova: unexpected status: %d: %s", e.StatusCode, truncate(e.Body))
}

// DecodingError reports a response body that is not JSON or has no summary.
type DecodingError struct {
	Err  error
	Body string
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("clova: decode response: %v", e.Err)
}

func (e *DecodingError) Unwrap() error { return e.Err }

func truncate(s string) string {
	if len(s) <= maxErrorBodyLen {
		return s
	}

	cut := maxErrorBodyLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	return s[:cut] + "..."
}
