// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"testing"
)

func TestExitError(t *testing.T) {
	t.Parallel()

	plain := &ExitError{Code: 2}
	if got, want := plain.Error(), "exit status 2"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	cause := errors.New("bad selection")
	wrapped := &ExitError{Code: 2, Err: cause}
	if got := wrapped.Error(); got != "bad selection" {
		t.Errorf("Error() = %q, want wrapped message", got)
	}
	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}
}
