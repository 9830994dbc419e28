// SPDX-License-Identifier: MPL-2.0

package descriptor

import "strings"

// Define is one preprocessor define entry in KEY=VALUE form. Entries that
// carry no value (e.g. gyp expansions like "<@(default_defines)") are kept
// verbatim; Key() returns the whole entry for those.
type Define string

// D builds a Define from a key and value.
func D(key, value string) Define {
	return Define(key + "=" + value)
}

// Key returns the portion before the first '=', or the whole entry when no
// '=' is present.
func (d Define) Key() string {
	key, _, _ := strings.Cut(string(d), "=")
	return key
}

// Value returns the portion after the first '=', or "" when no '=' is present.
func (d Define) Value() string {
	_, value, _ := strings.Cut(string(d), "=")
	return value
}

// String implements fmt.Stringer.
func (d Define) String() string {
	return string(d)
}
