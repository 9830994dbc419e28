// SPDX-License-Identifier: MPL-2.0

// Package modsel models the optional-module selection and resolves it into
// the feature defines appended to a build-target descriptor.
//
// The selection domain is closed: gpr_encoding, gpr_decoding, or all. A
// value outside the domain is a contract violation and is rejected, never
// silently treated as "everything disabled" — a typo'd selection must not
// produce a descriptor with an unintended feature configuration.
package modsel

import (
	"errors"
	"fmt"

	"gyprgen/pkg/descriptor"
)

// Selection is the user's choice of optional modules to enable.
type Selection string

const (
	// GPREncoding enables only the GPR encoding module.
	GPREncoding Selection = "gpr_encoding"
	// GPRDecoding enables only the GPR decoding module.
	GPRDecoding Selection = "gpr_decoding"
	// All enables both modules. This is the default selection.
	All Selection = "all"
)

const (
	// DefineEncoding is the preprocessor key gating the encoding module.
	DefineEncoding = "ENABLE_GPR_ENCODING"
	// DefineDecoding is the preprocessor key gating the decoding module.
	DefineDecoding = "ENABLE_GPR_DECODING"
)

// ErrInvalidSelection is the sentinel error wrapped by InvalidSelectionError.
var ErrInvalidSelection = errors.New("invalid module selection")

// InvalidSelectionError is returned when a Selection value is not recognized.
// It wraps ErrInvalidSelection for errors.Is() compatibility.
type InvalidSelectionError struct {
	Value Selection
}

// Error implements the error interface.
func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("%v: %q (valid: %q, %q, %q)",
		ErrInvalidSelection, e.Value, GPREncoding, GPRDecoding, All)
}

// Unwrap returns the sentinel error for errors.Is() checks.
func (e *InvalidSelectionError) Unwrap() error {
	return ErrInvalidSelection
}

// featurePair is the (encoding, decoding) switch state for one selection.
type featurePair struct {
	encoding bool
	decoding bool
}

// features is the single lookup table from selection to feature switches.
// Membership in this map defines the valid selection domain; an absent key
// is the one rejection path for unknown values.
var features = map[Selection]featurePair{
	GPREncoding: {encoding: true},
	GPRDecoding: {decoding: true},
	All:         {encoding: true, decoding: true},
}

// IsValid reports whether the selection is a known value, returning any
// validation errors.
func (s Selection) IsValid() (bool, []error) {
	if _, ok := features[s]; !ok {
		return false, []error{&InvalidSelectionError{Value: s}}
	}
	return true, nil
}

// String implements fmt.Stringer.
func (s Selection) String() string {
	return string(s)
}

// Parse validates a raw selection value from the input boundary (flag or
// config file). The empty string parses to the default, All.
func Parse(raw string) (Selection, error) {
	if raw == "" {
		return All, nil
	}
	s := Selection(raw)
	if ok, errs := s.IsValid(); !ok {
		return "", errs[0]
	}
	return s, nil
}

// FeatureDefines maps a selection to its feature define pair, always in
// fixed order: encoding first, decoding second. Each define carries value
// "1" when the module is enabled and "0" when it is not.
func FeatureDefines(s Selection) ([]descriptor.Define, error) {
	pair, ok := features[s]
	if !ok {
		return nil, &InvalidSelectionError{Value: s}
	}
	return []descriptor.Define{
		descriptor.D(DefineEncoding, flag(pair.encoding)),
		descriptor.D(DefineDecoding, flag(pair.decoding)),
	}, nil
}

// Resolve appends the selection's feature defines to the target. It is the
// only mutation this package performs: Sources, IncludeDirs, and Includes
// are never touched, and on an invalid selection the target is left
// unmodified (no partial define list).
func Resolve(t *descriptor.Target, s Selection) error {
	defs, err := FeatureDefines(s)
	if err != nil {
		return err
	}
	t.Defines = append(t.Defines, defs...)
	return nil
}

func flag(enabled bool) string {
	if enabled {
		return "1"
	}
	return "0"
}
