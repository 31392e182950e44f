package appwrite

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// Error is the error body returned by the platform for non-2xx responses.
type Error struct {
	Code    int    `json:"code"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Version string `json:"version,omitempty"`
}

func (e *Error) Error() string {
	if e.Type != "" {
		return "appwrite: " + e.Message + " (" + e.Type + ")"
	}
	return "appwrite: " + e.Message
}

func decodeError(status int, body []byte) error {
	apiErr := &Error{}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(body))
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(status)
		}
	}
	if apiErr.Code == 0 {
		apiErr.Code = status
	}
	return apiErr
}

func hasCode(err error, code int) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == code
	}
	return false
}

func IsNotFound(err error) bool {
	return hasCode(err, http.StatusNotFound)
}

func IsUnauthorized(err error) bool {
	return hasCode(err, http.StatusUnauthorized)
}

func IsConflict(err error) bool {
	return hasCode(err, http.StatusConflict)
}

func IsBadRequest(err error) bool {
	return hasCode(err, http.StatusBadRequest)
}
