// SPDX-License-Identifier: MPL-2.0

package cueutil_test

import (
	"errors"
	"strings"
	"testing"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"gyprgen/pkg/cueutil"
)

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	data := []byte("modules: \"all\"\n")
	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, "config.cue"); err != nil {
		t.Errorf("CheckFileSize under limit = %v, want nil", err)
	}

	err := cueutil.CheckFileSize(data, 4, "config.cue")
	if err == nil {
		t.Fatal("CheckFileSize over limit = nil, want error")
	}
	if !strings.Contains(err.Error(), "config.cue") {
		t.Errorf("size error should name the file: %v", err)
	}
}

func TestFormatError_NilPassthrough(t *testing.T) {
	t.Parallel()

	if err := cueutil.FormatError(nil, "config.cue"); err != nil {
		t.Errorf("FormatError(nil) = %v, want nil", err)
	}
}

func TestFormatError_NonCUEError(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := cueutil.FormatError(cause, "config.cue")
	if err == nil {
		t.Fatal("FormatError = nil, want error")
	}
	if !strings.HasPrefix(err.Error(), "config.cue: ") {
		t.Errorf("formatted error should carry the file prefix: %v", err)
	}
	if !errors.Is(err, cause) {
		t.Error("non-CUE errors should remain unwrappable")
	}
}

func TestFormatError_CUEValidation(t *testing.T) {
	t.Parallel()

	ctx := cuecontext.New()
	schema := ctx.CompileString(`#Config: { modules?: "all" | "gpr_encoding" | "gpr_decoding" }`)
	user := ctx.CompileString(`modules: "everything"`)

	unified := schema.LookupPath(cue.ParsePath("#Config")).Unify(user)
	verr := unified.Validate()
	if verr == nil {
		t.Fatal("expected CUE validation failure for value outside the enum")
	}

	err := cueutil.FormatError(verr, "config.cue")
	if !strings.Contains(err.Error(), "config.cue") {
		t.Errorf("formatted error should name the file: %v", err)
	}
	if !strings.Contains(err.Error(), "modules") {
		t.Errorf("formatted error should name the failing field: %v", err)
	}
}
