package core

import (
	"fmt"
)

// ConfigError represents a configuration-related error with actionable
// instructions.
type ConfigError struct {
	Code    string // Error code for programmatic handling
	Message string // Human-readable error message
	Action  string // Actionable instruction for resolution
}

func (e *ConfigError) Error() string {
	if e.Action != "" {
		return fmt.Sprintf("%s. %s", e.Message, e.Action)
	}
	return e.Message
}

// Error codes for configuration errors
const (
	ErrCodeInvalidEndpoint  = "INVALID_ENDPOINT_URL"
	ErrCodeInvalidParameter = "INVALID_PARAMETER"
	ErrCodeMissingAuth      = "MISSING_AUTH"
)

// ErrInvalidEndpointURL returns an error for a malformed API endpoint URL.
func ErrInvalidEndpointURL(url string, reason string) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeInvalidEndpoint,
		Message: fmt.Sprintf("Invalid BASE_LLM_URL '%s': %s", url, reason),
		Action:  "Set BASE_LLM_URL to a valid URL (e.g., https://api.openai.com/v1) or leave it unset",
	}
}

// ErrInvalidParameter returns an error for an out-of-range configuration
// parameter.
func ErrInvalidParameter(name string, reason string) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeInvalidParameter,
		Message: fmt.Sprintf("Invalid value for %s: %s", name, reason),
		Action:  fmt.Sprintf("Fix %s in your environment or .env file", name),
	}
}

// ErrMissingAuth returns an error for missing API credentials.
func ErrMissingAuth(feature string) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeMissingAuth,
		Message: fmt.Sprintf("Missing OpenAI credentials required for %s", feature),
		Action:  "Set OPENAI_API_KEY in your .env file, or use a local input image instead",
	}
}

// IsConfigError checks if an error is a ConfigError and returns it if so.
func IsConfigError(err error) (*ConfigError, bool) {
	if configErr, ok := err.(*ConfigError); ok {
		return configErr, true
	}
	return nil, false
}

// GetErrorCode extracts the error code from an error if it's a ConfigError.
func GetErrorCode(err error) string {
	if configErr, ok := IsConfigError(err); ok {
		return configErr.Code
	}
	return ""
}
