package siteconfig

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration matches every *ConfigurationError via errors.Is.
	ErrInvalidConfiguration = errors.New("invalid site configuration")

	// ErrConfigNotFound indicates the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)

// ConfigurationError names the first field that failed validation.
type ConfigurationError struct {
	Field  string // dotted path, e.g. "headerLinks[0].doc"
	Value  string // offending value, empty when the field is missing
	Reason string // the expected constraint
}

func (e *ConfigurationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

func fieldError(field, value, reason string, args ...any) *ConfigurationError {
	if len(args) > 0 {
		reason = fmt.Sprintf(reason, args...)
	}
	return &ConfigurationError{Field: field, Value: value, Reason: reason}
}

// AsConfigurationError extracts the ConfigurationError from err's chain.
func AsConfigurationError(err error) (*ConfigurationError, bool) {
	var ce *ConfigurationError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
