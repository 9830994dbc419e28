// SPDX-License-Identifier: MPL-2.0

// Package descriptor defines the build-target descriptor handed to
// downstream build-file generators. A Target is assembled once per
// invocation from a catalog table, augmented with feature defines, and then
// serialized; nothing in this package touches the filesystem.
package descriptor

import (
	"errors"
	"fmt"
	"strings"
)

// TargetType classifies how a target is linked by the downstream build system.
type TargetType string

const (
	// StaticLibrary is a target built as a static library archive.
	StaticLibrary TargetType = "static_library"
	// Executable is a target linked into a standalone binary.
	Executable TargetType = "executable"
)

var (
	// ErrInvalidTargetType is the sentinel error wrapped by InvalidTargetTypeError.
	ErrInvalidTargetType = errors.New("invalid target type")
	// ErrIncompleteTarget is the sentinel error wrapped by IncompleteTargetError.
	ErrIncompleteTarget = errors.New("incomplete target descriptor")
)

// InvalidTargetTypeError is returned when a TargetType value is not recognized.
// It wraps ErrInvalidTargetType for errors.Is() compatibility.
type InvalidTargetTypeError struct {
	Value TargetType
}

// Error implements the error interface.
func (e *InvalidTargetTypeError) Error() string {
	return fmt.Sprintf("%v: %q (valid: %q, %q)",
		ErrInvalidTargetType, e.Value, StaticLibrary, Executable)
}

// Unwrap returns the sentinel error for errors.Is() checks.
func (e *InvalidTargetTypeError) Unwrap() error {
	return ErrInvalidTargetType
}

// IsValid reports whether the target type is a known value, returning any
// validation errors.
func (t TargetType) IsValid() (bool, []error) {
	switch t {
	case StaticLibrary, Executable:
		return true, nil
	default:
		return false, []error{&InvalidTargetTypeError{Value: t}}
	}
}

// Target describes one build target: identity, baseline build metadata, and
// the ordered source file list. Field order, tags, and entry order mirror
// the gyp target dict the downstream generator consumes.
//
// All slice fields preserve authoring order. Order in Defines is significant
// because later entries may shadow earlier ones downstream; order in Sources
// is significant for compilation grouping. Nothing here reorders or
// deduplicates either.
type Target struct {
	// Name is the target identifier (e.g. "dng_sdk").
	Name string `json:"target_name" toml:"target_name"`
	// Type is the link classification of the target.
	Type TargetType `json:"type" toml:"type"`
	// IncludeDirs lists extra header search paths; may be empty.
	IncludeDirs []string `json:"include_dirs" toml:"include_dirs"`
	// Defines lists preprocessor defines, baseline first. Feature defines
	// are appended last by the resolver.
	Defines []Define `json:"defines" toml:"defines"`
	// Includes lists sub-configuration fragments merged in by the downstream
	// generator. Entries are opaque references, never interpreted here.
	Includes []string `json:"includes,omitempty" toml:"includes,omitempty"`
	// Sources is the exhaustive, ordered source file list for the target.
	Sources []string `json:"sources" toml:"sources"`
}

// IncompleteTargetError reports catalog tables missing required fields.
// It wraps ErrIncompleteTarget for errors.Is() compatibility.
type IncompleteTargetError struct {
	Name    string
	Missing []string
}

// Error implements the error interface.
func (e *IncompleteTargetError) Error() string {
	name := e.Name
	if name == "" {
		name = "<unnamed>"
	}
	return fmt.Sprintf("%v: target %s is missing %s",
		ErrIncompleteTarget, name, strings.Join(e.Missing, ", "))
}

// Unwrap returns the sentinel error for errors.Is() checks.
func (e *IncompleteTargetError) Unwrap() error {
	return ErrIncompleteTarget
}

// Validate checks the catalog-authoring invariants: name, a valid type, and
// a non-empty source list. A failure is a static authoring defect and must
// halt the invocation before any descriptor is emitted.
func (t *Target) Validate() error {
	var missing []string
	if strings.TrimSpace(t.Name) == "" {
		missing = append(missing, "target_name")
	}
	if ok, _ := t.Type.IsValid(); !ok {
		missing = append(missing, "type")
	}
	if len(t.Sources) == 0 {
		missing = append(missing, "sources")
	}
	if len(missing) > 0 {
		return &IncompleteTargetError{Name: t.Name, Missing: missing}
	}
	return nil
}

// HasDefine reports whether a define with the given key is present.
func (t *Target) HasDefine(key string) bool {
	for _, d := range t.Defines {
		if d.Key() == key {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can augment a descriptor without
// aliasing the catalog table's slices.
func (t *Target) Clone() *Target {
	dup := *t
	dup.IncludeDirs = append([]string(nil), t.IncludeDirs...)
	dup.Defines = append([]Define(nil), t.Defines...)
	dup.Includes = append([]string(nil), t.Includes...)
	dup.Sources = append([]string(nil), t.Sources...)
	return &dup
}
