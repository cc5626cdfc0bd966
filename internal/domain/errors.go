package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ConfigError reports missing or invalid local configuration. It is always
// raised before any network I/O happens.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string { return e.Message }

// UpstreamError carries a non-2xx vendor response together with its body so
// the classifier can surface the vendor's own diagnostics.
type UpstreamError struct {
	Status int
	Body   []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Body)
}

// ErrTimeout marks a vendor call that exceeded its deadline. The request may
// still complete on the vendor side; there are no retries.
var ErrTimeout = errors.New("request deadline exceeded")

var statusMessages = map[int]string{
	400: "Bad request. Check your parameters.",
	401: "Authentication failed. Check your API token.",
	403: "Access denied. Check permissions for this operation.",
	404: "Resource not found. Check the ID.",
	429: "Rate limit exceeded. Wait before making more requests.",
	500: "Server error. Try again later.",
	503: "Service unavailable. Try again later.",
}

// vendorErrorBody is the error envelope both Direct and Metrika return.
type vendorErrorBody struct {
	Error struct {
		ErrorString string `json:"error_string"`
		ErrorDetail string `json:"error_detail"`
	} `json:"error"`
}

// Classify renders any operation failure as a single human-readable
// diagnostic line. It is a total function: no I/O, never fails.
func Classify(err error) string {
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		var body vendorErrorBody
		if jsonErr := json.Unmarshal(upstream.Body, &body); jsonErr == nil && body.Error.ErrorString != "" {
			return strings.TrimSpace(fmt.Sprintf("API Error (%d): %s. %s",
				upstream.Status, body.Error.ErrorString, body.Error.ErrorDetail))
		}
		msg, ok := statusMessages[upstream.Status]
		if !ok {
			msg = fmt.Sprintf("Request failed with status %d", upstream.Status)
		}
		return "API Error: " + msg
	}

	if errors.Is(err, ErrTimeout) {
		return "Request timed out. The operation may still complete on the server."
	}

	var cfg *ConfigError
	if errors.As(err, &cfg) {
		return "Configuration Error: " + cfg.Message
	}

	return fmt.Sprintf("Unexpected error: %T: %v", err, err)
}
