// SPDX-License-Identifier: MPL-2.0

// Package emit serializes finished build-target descriptors into downstream
// build-system formats. Emitters only read the descriptor; augmentation is
// finished before anything here runs.
package emit

import (
	"errors"
	"fmt"
	"io"

	"gyprgen/pkg/descriptor"
)

// Format selects the output serialization.
type Format string

const (
	// FormatGYP writes a gyp target-dict fragment, the format the original
	// GPR build consumed.
	FormatGYP Format = "gyp"
	// FormatJSON writes an indented JSON document.
	FormatJSON Format = "json"
	// FormatTOML writes a TOML document.
	FormatTOML Format = "toml"
)

// ErrInvalidFormat is the sentinel error wrapped by InvalidFormatError.
var ErrInvalidFormat = errors.New("invalid output format")

// InvalidFormatError is returned when a Format value is not recognized.
// It wraps ErrInvalidFormat for errors.Is() compatibility.
type InvalidFormatError struct {
	Value Format
}

// Error implements the error interface.
func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("%v: %q (valid: %q, %q, %q)",
		ErrInvalidFormat, e.Value, FormatGYP, FormatJSON, FormatTOML)
}

// Unwrap returns the sentinel error for errors.Is() checks.
func (e *InvalidFormatError) Unwrap() error {
	return ErrInvalidFormat
}

// emitters dispatches each format to its writer.
var emitters = map[Format]func(io.Writer, *descriptor.Target) error{
	FormatGYP:  writeGYP,
	FormatJSON: writeJSON,
	FormatTOML: writeTOML,
}

// IsValid reports whether the format is a known value, returning any
// validation errors.
func (f Format) IsValid() (bool, []error) {
	if _, ok := emitters[f]; !ok {
		return false, []error{&InvalidFormatError{Value: f}}
	}
	return true, nil
}

// String implements fmt.Stringer.
func (f Format) String() string {
	return string(f)
}

// ParseFormat validates a raw format value from the input boundary.
// The empty string parses to the default, FormatGYP.
func ParseFormat(raw string) (Format, error) {
	if raw == "" {
		return FormatGYP, nil
	}
	f := Format(raw)
	if ok, errs := f.IsValid(); !ok {
		return "", errs[0]
	}
	return f, nil
}

// Formats returns all known formats in declaration order.
func Formats() []Format {
	return []Format{FormatGYP, FormatJSON, FormatTOML}
}

// Emit writes the descriptor to w in the given format.
func Emit(w io.Writer, t *descriptor.Target, f Format) error {
	write, ok := emitters[f]
	if !ok {
		return &InvalidFormatError{Value: f}
	}
	return write(w, t)
}
