// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// ValidationMode selects how strictly input PDFs are checked when opened.
type ValidationMode string

const (
	// ValidationRelaxed accepts the common spec violations found in real
	// files, such as those produced by EPUB converters.
	ValidationRelaxed ValidationMode = "relaxed"
	ValidationStrict  ValidationMode = "strict"
)

// ParseValidationMode converts a configuration value to a ValidationMode.
// The empty string yields ValidationRelaxed.
func ParseValidationMode(s string) (ValidationMode, error) {
	switch ValidationMode(s) {
	case "", ValidationRelaxed:
		return ValidationRelaxed, nil
	case ValidationStrict:
		return ValidationStrict, nil
	default:
		return "", fmt.Errorf("unsupported validation mode %q: use relaxed or strict", s)
	}
}

// StampConfig holds the settings for one stamping run. Values come from
// the config file or environment and are overridden by positional arguments.
type StampConfig struct {
	// Offset is added to the 1-based target page number (default 0).
	Offset int `json:"offset" yaml:"offset" mapstructure:"offset"`

	// Validation selects relaxed or strict PDF validation (default relaxed).
	Validation ValidationMode `json:"validation" yaml:"validation" mapstructure:"validation"`
}

// DefaultStampConfig returns the configuration used when no config file or
// environment variable is present.
func DefaultStampConfig() StampConfig {
	return StampConfig{
		Offset:     0,
		Validation: ValidationRelaxed,
	}
}
