// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"gyprgen/internal/emit"
	"gyprgen/pkg/modsel"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidConfigError collects field-level validation errors for a Config.
	// It wraps ErrInvalidConfig for errors.Is() compatibility.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config is the resolved gyprgen configuration. Values come from the
	// config.cue file merged over defaults; command-line flags override
	// them per invocation.
	Config struct {
		// Modules is the default optional-module selection for 'gen'.
		Modules string `json:"modules" mapstructure:"modules"`
		// Format is the default output format for 'gen'.
		Format string `json:"format" mapstructure:"format"`
		// OutputDir is prepended to relative --output paths when set.
		OutputDir string `json:"output_dir" mapstructure:"output_dir"`
		// UI configures the user interface.
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// UIConfig configures terminal output behavior.
	UIConfig struct {
		// ColorScheme selects the lipgloss color scheme.
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables debug logging by default.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}
)

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("%v: %q (valid: %q, %q, %q)",
		ErrInvalidColorScheme, e.Value, ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight)
}

// Unwrap returns the sentinel error for errors.Is() checks.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}

// IsValid reports whether the color scheme is a known value, returning any
// validation errors.
func (s ColorScheme) IsValid() (bool, []error) {
	switch s {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: s}}
	}
}

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	if len(e.FieldErrors) == 1 {
		return fmt.Sprintf("%v: %v", ErrInvalidConfig, e.FieldErrors[0])
	}
	return fmt.Sprintf("%v: %d field errors (first: %v)",
		ErrInvalidConfig, len(e.FieldErrors), e.FieldErrors[0])
}

// Unwrap returns the sentinel error for errors.Is() checks.
func (e *InvalidConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// Validate checks constraints the CUE schema also enforces, for configs
// constructed or mutated programmatically.
func (c *Config) Validate() error {
	var fieldErrs []error
	if _, err := modsel.Parse(c.Modules); err != nil {
		fieldErrs = append(fieldErrs, err)
	}
	if _, err := emit.ParseFormat(c.Format); err != nil {
		fieldErrs = append(fieldErrs, err)
	}
	if ok, errs := c.UI.ColorScheme.IsValid(); !ok {
		fieldErrs = append(fieldErrs, errs...)
	}
	if len(fieldErrs) > 0 {
		return &InvalidConfigError{FieldErrors: fieldErrs}
	}
	return nil
}

// DefaultConfig returns the baseline configuration used when no config file
// is present.
func DefaultConfig() *Config {
	return &Config{
		Modules:   string(modsel.All),
		Format:    string(emit.FormatGYP),
		OutputDir: "",
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}
