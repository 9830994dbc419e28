// SPDX-License-Identifier: MPL-2.0

package descriptor

import (
	"errors"
	"strings"
	"testing"
)

func TestDefine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		define    Define
		wantKey   string
		wantValue string
	}{
		{name: "key=value", define: D("ENABLE_GPR_ENCODING", "1"), wantKey: "ENABLE_GPR_ENCODING", wantValue: "1"},
		{name: "zero value", define: D("ENABLE_GPR_DECODING", "0"), wantKey: "ENABLE_GPR_DECODING", wantValue: "0"},
		{name: "bare expansion", define: "<@(default_defines)", wantKey: "<@(default_defines)", wantValue: ""},
		{name: "value with equals", define: "FOO=a=b", wantKey: "FOO", wantValue: "a=b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.define.Key(); got != tt.wantKey {
				t.Errorf("Define(%q).Key() = %q, want %q", tt.define, got, tt.wantKey)
			}
			if got := tt.define.Value(); got != tt.wantValue {
				t.Errorf("Define(%q).Value() = %q, want %q", tt.define, got, tt.wantValue)
			}
		})
	}
}

func TestTargetType_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ     TargetType
		want    bool
		wantErr bool
	}{
		{StaticLibrary, true, false},
		{Executable, true, false},
		{"", false, true},
		{"shared_library", false, true},
		{"STATIC_LIBRARY", false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			t.Parallel()
			isValid, errs := tt.typ.IsValid()
			if isValid != tt.want {
				t.Errorf("TargetType(%q).IsValid() = %v, want %v", tt.typ, isValid, tt.want)
			}
			if tt.wantErr {
				if len(errs) == 0 {
					t.Fatalf("TargetType(%q).IsValid() returned no errors, want error", tt.typ)
				}
				if !errors.Is(errs[0], ErrInvalidTargetType) {
					t.Errorf("error should wrap ErrInvalidTargetType, got: %v", errs[0])
				}
			} else if len(errs) > 0 {
				t.Errorf("TargetType(%q).IsValid() returned unexpected errors: %v", tt.typ, errs)
			}
		})
	}
}

func validTarget() *Target {
	return &Target{
		Name:    "gpr_sdk",
		Type:    StaticLibrary,
		Defines: []Define{"<@(default_defines)"},
		Sources: []string{"./private/gpr.cpp", "./public/gpr.h"},
	}
}

func TestTarget_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		mutate      func(*Target)
		wantMissing []string
	}{
		{name: "complete", mutate: func(*Target) {}},
		{
			name:        "missing name",
			mutate:      func(tg *Target) { tg.Name = "  " },
			wantMissing: []string{"target_name"},
		},
		{
			name:        "missing type",
			mutate:      func(tg *Target) { tg.Type = "" },
			wantMissing: []string{"type"},
		},
		{
			name:        "empty sources",
			mutate:      func(tg *Target) { tg.Sources = nil },
			wantMissing: []string{"sources"},
		},
		{
			name: "everything missing",
			mutate: func(tg *Target) {
				tg.Name = ""
				tg.Type = "bogus"
				tg.Sources = []string{}
			},
			wantMissing: []string{"target_name", "type", "sources"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			target := validTarget()
			tt.mutate(target)

			err := target.Validate()
			if len(tt.wantMissing) == 0 {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errors.Is(err, ErrIncompleteTarget) {
				t.Errorf("error should wrap ErrIncompleteTarget, got: %v", err)
			}
			var incomplete *IncompleteTargetError
			if !errors.As(err, &incomplete) {
				t.Fatalf("error should be *IncompleteTargetError, got: %T", err)
			}
			for _, field := range tt.wantMissing {
				if !strings.Contains(err.Error(), field) {
					t.Errorf("error %q should name missing field %q", err, field)
				}
			}
		})
	}
}

func TestTarget_HasDefine(t *testing.T) {
	t.Parallel()

	target := validTarget()
	target.Defines = append(target.Defines, D("ENABLE_GPR_ENCODING", "1"))

	if !target.HasDefine("ENABLE_GPR_ENCODING") {
		t.Error("HasDefine(ENABLE_GPR_ENCODING) = false, want true")
	}
	if target.HasDefine("ENABLE_GPR_DECODING") {
		t.Error("HasDefine(ENABLE_GPR_DECODING) = true, want false")
	}
}

func TestTarget_Clone(t *testing.T) {
	t.Parallel()

	orig := validTarget()
	dup := orig.Clone()

	dup.Defines = append(dup.Defines, D("ENABLE_GPR_ENCODING", "1"))
	dup.Sources[0] = "./mutated.cpp"

	if len(orig.Defines) != 1 {
		t.Errorf("clone mutation leaked into original defines: %v", orig.Defines)
	}
	if orig.Sources[0] != "./private/gpr.cpp" {
		t.Errorf("clone mutation leaked into original sources: %v", orig.Sources)
	}
}
