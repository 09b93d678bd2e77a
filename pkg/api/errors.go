package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

var (
	// ErrUnavailable wraps transport-level failures (DNS, refused
	// connections, timeouts). Nothing reached the backend.
	ErrUnavailable = errors.New("salon api: backend unavailable")

	// ErrNotFound is returned for 404 responses.
	ErrNotFound = errors.New("salon api: not found")

	// ErrValidation is returned for 400 responses carrying field errors.
	ErrValidation = errors.New("salon api: validation failed")
)

// genericMessage is the fallback when an error body has no usable shape.
const genericMessage = "Something went wrong. Please try again."

// Error is a backend error reduced to a single human-readable message.
// The message is safe to surface directly in the UI.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("salon api: %s (status %d)", e.Message, e.StatusCode)
}

// Unwrap maps well-known status codes onto sentinel categories so callers
// can branch with errors.Is.
func (e *Error) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest:
		return ErrValidation
	}
	return nil
}

// Message extracts a single display string from any error produced by this
// package. Unknown errors degrade to the generic fallback.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if errors.Is(err, ErrUnavailable) {
		return "Cannot reach the salon backend."
	}
	return genericMessage
}

// extractMessage reduces a raw error body to one line of text. The backend
// conventionally answers {"detail": "..."} or {"field": ["msg", ...]}, but
// plain strings, arrays, and non-JSON bodies all show up in practice and
// must degrade gracefully instead of panicking.
func extractMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return genericMessage
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err == nil {
		if raw, ok := obj["detail"]; ok {
			var detail string
			if err := json.Unmarshal(raw, &detail); err == nil && detail != "" {
				return detail
			}
		}
		if msg := flattenFieldErrors(obj); msg != "" {
			return msg
		}
		return genericMessage
	}

	var str string
	if err := json.Unmarshal(body, &str); err == nil && strings.TrimSpace(str) != "" {
		return str
	}

	var list []string
	if err := json.Unmarshal(body, &list); err == nil {
		if msg := strings.TrimSpace(strings.Join(list, " ")); msg != "" {
			return msg
		}
	}

	return genericMessage
}

// flattenFieldErrors renders {"field": ["msg", ...]} bodies as
// "field: msg" lines joined with semicolons, keys sorted for stable output.
func flattenFieldErrors(obj map[string]json.RawMessage) string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		var msgs []string
		if err := json.Unmarshal(obj[k], &msgs); err == nil {
			for _, m := range msgs {
				if m = strings.TrimSpace(m); m != "" {
					parts = append(parts, fmt.Sprintf("%s: %s", k, m))
				}
			}
			continue
		}
		var single string
		if err := json.Unmarshal(obj[k], &single); err == nil {
			if single = strings.TrimSpace(single); single != "" {
				parts = append(parts, fmt.Sprintf("%s: %s", k, single))
			}
		}
	}
	return strings.Join(parts, "; ")
}
