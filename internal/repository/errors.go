package repository

import (
	"errors"
	"strings"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrInvalidShape = errors.New("invalid page shape")
)

// ConfigurationError is returned before any network call when required
// Notion settings are missing.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return "missing required configuration: " + strings.Join(e.Missing, ", ")
}

// ProviderError wraps a transport or API failure of the content provider.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
