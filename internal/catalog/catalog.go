// SPDX-License-Identifier: MPL-2.0

// Package catalog holds the fixed, versioned build-target tables for the GPR
// SDK source tree. Each table is authored by hand — never discovered from
// the filesystem — so descriptor output stays reproducible regardless of
// scan order or transient files. Changing a library's file set means editing
// its table here.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"gyprgen/pkg/descriptor"
)

// DefaultTarget is the target generated when none is named on the command line.
const DefaultTarget = "dng_sdk"

// ErrTargetNotFound is the sentinel error wrapped by TargetNotFoundError.
var ErrTargetNotFound = errors.New("target not found in catalog")

// TargetNotFoundError is returned when a requested target has no catalog table.
// It wraps ErrTargetNotFound for errors.Is() compatibility.
type TargetNotFoundError struct {
	Name string
}

// Error implements the error interface.
func (e *TargetNotFoundError) Error() string {
	return fmt.Sprintf("%v: %q", ErrTargetNotFound, e.Name)
}

// Unwrap returns the sentinel error for errors.Is() checks.
func (e *TargetNotFoundError) Unwrap() error {
	return ErrTargetNotFound
}

// tables maps each target name to its descriptor builder. Builders return a
// fresh instance per call; the caller owns it exclusively from construction
// through emission.
var tables = map[string]func() *descriptor.Target{
	"dng_sdk":     DNGSDK,
	"vc5_common":  VC5Common,
	"vc5_decoder": VC5Decoder,
	"vc5_encoder": VC5Encoder,
	"gpr_sdk":     GPRSDK,
	"common":      Common,
	"tiny_jpeg":   TinyJPEG,
}

// Lookup builds and validates the descriptor for the named target. An
// unknown name yields TargetNotFoundError; a table failing validation is a
// static authoring defect and yields IncompleteTargetError before anything
// is emitted.
func Lookup(name string) (*descriptor.Target, error) {
	build, ok := tables[name]
	if !ok {
		return nil, &TargetNotFoundError{Name: name}
	}
	t := build()
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Names returns all catalog target names in sorted order.
func Names() []string {
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
