// loader.go implements the configuration loading lifecycle.
//
// The loading sequence is:
//  1. Enforce UTC timezone to prevent drift bugs.
//  2. Load a .env file via godotenv (non-fatal if absent).
//  3. Use envconfig to process struct tags and populate the Config struct.
//  4. Validate the struct using go-playground/validator.
//  5. Validate the comfort threshold invariants, so the engine never
//     receives an invalid threshold set.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"comfortadvisor/internal/types"
)

// ConfigError is a diagnostic error type returned by Load to aid debugging.
// It wraps a loading stage name and an underlying error.
type ConfigError struct {
	Stage   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Stage, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Stage, e.Message)
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Load loads and validates the comfort advisor configuration from the
// environment. It fails fast: any violated invariant is rejected here,
// before any evaluation occurs.
func Load() (*Config, error) {
	// Enforce UTC to keep forecast timestamps and poll scheduling stable.
	time.Local = time.UTC

	// godotenv silently succeeds when no .env file exists and never
	// overrides variables already present in the environment.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, &ConfigError{
			Stage:   "envconfig",
			Message: "failed to process environment variables",
			Err:     err,
		}
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate applies struct tag validation and the domain invariants that
// tags cannot express.
func validate(cfg *Config) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(cfg); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return &ConfigError{Stage: "validate", Message: "invalid configuration struct", Err: err}
		}
		return &ConfigError{
			Stage:   "validate",
			Message: "configuration failed validation",
			Err:     err,
		}
	}

	// Threshold invariants (min < max and friends) are rejected at
	// configuration time, not evaluation time.
	if err := cfg.Thresholds().Validate(); err != nil {
		return &ConfigError{Stage: "thresholds", Message: "invalid comfort thresholds", Err: err}
	}

	if cfg.Device.Poll && cfg.Device.PollInterval < time.Second {
		return &ConfigError{
			Stage:   "device",
			Message: "poll interval must be at least one second",
			Err:     types.NewAppError(types.ErrCodeConfigInvalidValue, "poll interval too small", nil),
		}
	}
	return nil
}
