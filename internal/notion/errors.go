package notion

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is the error object Notion returns for non-2xx responses.
type APIError struct {
	Status    int    `json:"status"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("notion api: status %d", e.Status)
	}
	return fmt.Sprintf("notion api: %s (status %d): %s", e.Code, e.Status, e.Message)
}

func decodeAPIError(status int, body []byte) error {
	apiErr := &APIError{}
	err := json.Unmarshal(body, apiErr)
	if err != nil || apiErr.Code == "" {
		return &APIError{Status: status, Message: http.StatusText(status)}
	}
	if apiErr.Status == 0 {
		apiErr.Status = status
	}
	return apiErr
}

// IsNotFound reports whether err is an object_not_found response.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Status == http.StatusNotFound || apiErr.Code == "object_not_found"
}

// IsValidation reports whether Notion rejected the request itself, e.g. a
// malformed id.
func IsValidation(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Code == "validation_error"
}
