// SPDX-License-Identifier: MPL-2.0

package catalog

import (
	"errors"
	"sort"
	"testing"

	"gyprgen/pkg/descriptor"
	"gyprgen/pkg/modsel"
)

func TestLookup_UnknownTarget(t *testing.T) {
	t.Parallel()

	target, err := Lookup("xmp_sdk")
	if err == nil {
		t.Fatalf("Lookup(xmp_sdk) = %v, want error", target)
	}
	if !errors.Is(err, ErrTargetNotFound) {
		t.Errorf("error should wrap ErrTargetNotFound, got: %v", err)
	}
}

func TestLookup_AllTablesValidate(t *testing.T) {
	t.Parallel()

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			target, err := Lookup(name)
			if err != nil {
				t.Fatalf("Lookup(%q) unexpected error: %v", name, err)
			}
			if target.Name != name {
				t.Errorf("Lookup(%q).Name = %q, want %q", name, target.Name, name)
			}
			if len(target.Sources) == 0 {
				t.Errorf("Lookup(%q) has empty source list", name)
			}
		})
	}
}

func TestLookup_FreshInstancePerCall(t *testing.T) {
	t.Parallel()

	first, err := Lookup(DefaultTarget)
	if err != nil {
		t.Fatalf("Lookup(%q) unexpected error: %v", DefaultTarget, err)
	}
	if err := modsel.Resolve(first, modsel.All); err != nil {
		t.Fatalf("Resolve unexpected error: %v", err)
	}

	second, err := Lookup(DefaultTarget)
	if err != nil {
		t.Fatalf("second Lookup(%q) unexpected error: %v", DefaultTarget, err)
	}
	if second.HasDefine(modsel.DefineEncoding) {
		t.Error("feature defines from a prior invocation leaked into a fresh lookup")
	}
}

func TestNames_SortedAndComplete(t *testing.T) {
	t.Parallel()

	names := Names()
	if !sort.StringsAreSorted(names) {
		t.Errorf("Names() not sorted: %v", names)
	}
	if len(names) != len(tables) {
		t.Errorf("Names() length = %d, want %d", len(names), len(tables))
	}
	found := false
	for _, name := range names {
		if name == DefaultTarget {
			found = true
		}
	}
	if !found {
		t.Errorf("Names() missing default target %q: %v", DefaultTarget, names)
	}
}

func TestDNGSDK_Table(t *testing.T) {
	t.Parallel()

	target := DNGSDK()

	if target.Type != descriptor.StaticLibrary {
		t.Errorf("dng_sdk type = %q, want %q", target.Type, descriptor.StaticLibrary)
	}

	wantDefines := []descriptor.Define{
		"<@(default_defines)",
		"qDNGXMPFiles=0",
		"qDNGXMPDocOps=0",
	}
	if len(target.Defines) != len(wantDefines) {
		t.Fatalf("dng_sdk baseline defines = %v, want %v", target.Defines, wantDefines)
	}
	for i, want := range wantDefines {
		if target.Defines[i] != want {
			t.Errorf("dng_sdk define[%d] = %q, want %q", i, target.Defines[i], want)
		}
	}

	if len(target.Includes) != 1 || target.Includes[0] != "../xmp_sdk/xmp_sdk.gypi" {
		t.Errorf("dng_sdk includes = %v, want the xmp_sdk sub-configuration", target.Includes)
	}

	if len(target.Sources) != 140 {
		t.Errorf("dng_sdk source count = %d, want 140", len(target.Sources))
	}
	if target.Sources[0] != "./dng_validate.cpp" {
		t.Errorf("dng_sdk first source = %q, want ./dng_validate.cpp", target.Sources[0])
	}
	if last := target.Sources[len(target.Sources)-1]; last != "./dng_xy_coord.h" {
		t.Errorf("dng_sdk last source = %q, want ./dng_xy_coord.h", last)
	}
}
