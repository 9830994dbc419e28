// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	cause := errors.New("target not found in catalog")
	err := NewErrorContext().
		WithOperation("look up target").
		WithResource("xmp_sdk").
		Wrap(cause).
		Build()

	want := "failed to look up target: xmp_sdk: target not found in catalog"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	err := NewErrorContext().
		WithOperation("load configuration").
		WithResource("./config.cue").
		WithSuggestion("Check CUE syntax").
		WithSuggestion("Run 'gyprgen config show'").
		Wrap(errors.New("syntax error")).
		Build()

	out := err.Format(false)
	if !strings.Contains(out, "• Check CUE syntax") {
		t.Errorf("Format(false) missing suggestion:\n%s", out)
	}
	if strings.Contains(out, "Error chain:") {
		t.Errorf("Format(false) should not include the error chain:\n%s", out)
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "Error chain:") {
		t.Errorf("Format(true) missing error chain:\n%s", verbose)
	}
}

func TestErrorContext_BuildRequiresOperation(t *testing.T) {
	t.Parallel()

	if err := NewErrorContext().WithResource("x").Build(); err != nil {
		t.Errorf("Build() without operation = %v, want nil", err)
	}
	if err := NewErrorContext().WithResource("x").BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want nil", err)
	}
}

func TestWrapWithOperation(t *testing.T) {
	t.Parallel()

	if got := WrapWithOperation(nil, "emit descriptor"); got != nil {
		t.Errorf("WrapWithOperation(nil) = %v, want nil", got)
	}

	cause := errors.New("disk full")
	err := WrapWithOperation(cause, "emit descriptor")
	if err == nil || !errors.Is(err, cause) {
		t.Errorf("WrapWithOperation should wrap the cause, got: %v", err)
	}
}
