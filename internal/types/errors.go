package types

import (
	"fmt"
	"strings"
)

// ErrorCode is a typed string for categorizing application errors.
type ErrorCode string

// Complete error code constants.
// All packages MUST use these constants instead of hardcoded strings.
const (
	// Invalid measurement (input outside physical range). The affected
	// metrics are reported as unavailable, never substituted.
	ErrCodeInvalidTemperature ErrorCode = "invalid_measurement_temperature"
	ErrCodeInvalidHumidity    ErrorCode = "invalid_measurement_humidity"
	ErrCodeInvalidPollen      ErrorCode = "invalid_measurement_pollen"

	// Missing input (a required sensor reading not yet available).
	// Distinct from a computed false recommendation.
	ErrCodeMissingIndoorTemperature  ErrorCode = "missing_input_indoor_temperature"
	ErrCodeMissingIndoorHumidity     ErrorCode = "missing_input_indoor_humidity"
	ErrCodeMissingOutdoorTemperature ErrorCode = "missing_input_outdoor_temperature"
	ErrCodeMissingOutdoorHumidity    ErrorCode = "missing_input_outdoor_humidity"

	// Configuration (rejected at load time, before any evaluation).
	ErrCodeConfigThresholdOrder  ErrorCode = "config_threshold_order_invalid"
	ErrCodeConfigInvalidValue    ErrorCode = "config_invalid_value"
	ErrCodeConfigUnknownProvider ErrorCode = "config_unknown_provider"
	ErrCodeConfigUnknownSensor   ErrorCode = "config_unknown_sensor"

	// Provider (forecast/realtime sample sources).
	ErrCodeProviderUnavailable ErrorCode = "provider_unavailable"
	ErrCodeProviderBadSample   ErrorCode = "provider_bad_sample"

	// Internal
	ErrCodeInternalUnexpected ErrorCode = "internal_unexpected_error"
)

// Unavailable reports whether an error code should surface to the host as
// "state unavailable" rather than as a hard failure. Invalid measurements and
// missing inputs mark the affected entities unavailable; everything else is a
// fault the host should log and abort on.
func (c ErrorCode) Unavailable() bool {
	s := string(c)
	return strings.HasPrefix(s, "invalid_measurement_") || strings.HasPrefix(s, "missing_input_")
}

// AppError is the standard application error type used throughout the advisor.
// All domain errors should be expressed as AppError to enable consistent
// error formatting, availability classification, and error chain support.
type AppError struct {
	Code    ErrorCode      `json:"code"`
	Message string         `json:"message"`
	Err     error          `json:"-"`
	Details map[string]any `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/errors.As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Unavailable reports whether this error should surface as unavailable state.
func (e *AppError) Unavailable() bool {
	return e.Code.Unavailable()
}

// WithDetails returns a copy of the error with the provided details merged in.
// This is useful for adding context without mutating the original error.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	merged := make(map[string]any, len(e.Details)+len(details))
	for k, v := range e.Details {
		merged[k] = v
	}
	for k, v := range details {
		merged[k] = v
	}
	return &AppError{
		Code:    e.Code,
		Message: e.Message,
		Err:     e.Err,
		Details: merged,
	}
}

// NewAppError creates a new AppError with the given code, message, and
// optional underlying error. This is the standard constructor for domain errors.
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
