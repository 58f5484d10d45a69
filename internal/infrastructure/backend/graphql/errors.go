package graphql

import (
	"errors"
	"fmt"
)

// ErrorEntry is one structured error returned by the backend. Path elements
// can be field names or list indices, so they decode as interface values.
type ErrorEntry struct {
	Message    string `json:"message"`
	Path       []any  `json:"path"`
	Extensions struct {
		Status int `json:"status"`
	} `json:"extensions"`
}

// APIError carries the backend's error list verbatim. Handlers classify it
// with the helpers below instead of inspecting transport internals.
type APIError struct {
	Entries []ErrorEntry
}

func (e *APIError) Error() string {
	if len(e.Entries) == 0 {
		return "backend error"
	}
	return fmt.Sprintf("backend error: %s", e.Entries[0].Message)
}

// AsAPIError unwraps err into an *APIError when the backend produced
// structured entries.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// HasStatus reports whether any entry carries the given status code.
func HasStatus(err *APIError, code int) bool {
	return HasAnyStatus(err, code)
}

// HasAnyStatus reports whether any entry's status is in codes. An error with
// zero entries matches nothing.
func HasAnyStatus(err *APIError, codes ...int) bool {
	if err == nil {
		return false
	}
	for _, e := range err.Entries {
		for _, code := range codes {
			if e.Extensions.Status == code {
				return true
			}
		}
	}
	return false
}

// MessageForStatus returns the first entry's message matching code, or "".
func MessageForStatus(err *APIError, code int) string {
	return MessageForAnyStatus(err, code)
}

// MessageForAnyStatus returns the message of the first entry, in entry order,
// whose status is in codes. Empty string when nothing matches.
func MessageForAnyStatus(err *APIError, codes ...int) string {
	if err == nil {
		return ""
	}
	for _, e := range err.Entries {
		for _, code := range codes {
			if e.Extensions.Status == code {
				return e.Message
			}
		}
	}
	return ""
}

// HasPathError reports whether any entry's path contains one of the given
// fragments. Used to tell "the heist itself was not found" apart from other
// failures on the same endpoint.
func HasPathError(err *APIError, fragments ...string) bool {
	if err == nil {
		return false
	}
	for _, e := range err.Entries {
		for _, el := range e.Path {
			s, ok := el.(string)
			if !ok {
				continue
			}
			for _, frag := range fragments {
				if s == frag {
					return true
				}
			}
		}
	}
	return false
}
