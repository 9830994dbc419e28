// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"gyprgen/internal/config"
	"gyprgen/pkg/descriptor"
	"gyprgen/pkg/modsel"
)

// resetGen pins the config lookup to an empty directory and restores the gen
// command's flag state so sequential executions of rootCmd do not leak
// arguments into each other.
func resetGen(t *testing.T) {
	t.Helper()
	config.SetConfigDirOverride(t.TempDir())
	genCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	t.Cleanup(config.Reset)
}

func TestGen_WritesJSONDescriptor(t *testing.T) {
	resetGen(t)

	outPath := filepath.Join(t.TempDir(), "vc5_encoder.json")
	rootCmd.SetArgs([]string{"gen", "vc5_encoder", "-m", "gpr_encoding", "-f", "json", "-o", outPath})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("gen unexpected error: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read descriptor output: %v", err)
	}

	var doc struct {
		Targets []*descriptor.Target `json:"targets"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("descriptor output is not valid JSON: %v", err)
	}
	if len(doc.Targets) != 1 {
		t.Fatalf("decoded %d targets, want 1", len(doc.Targets))
	}

	target := doc.Targets[0]
	if target.Name != "vc5_encoder" {
		t.Errorf("target_name = %q, want vc5_encoder", target.Name)
	}
	last := target.Defines[len(target.Defines)-1]
	secondLast := target.Defines[len(target.Defines)-2]
	if secondLast != "ENABLE_GPR_ENCODING=1" || last != "ENABLE_GPR_DECODING=0" {
		t.Errorf("feature defines = %q, %q; want encoding=1 then decoding=0", secondLast, last)
	}
}

func TestGen_RejectsUnknownSelection(t *testing.T) {
	resetGen(t)

	outPath := filepath.Join(t.TempDir(), "never.gyp")
	rootCmd.SetArgs([]string{"gen", "-m", "gpr_everything", "-o", outPath})
	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("gen with unknown selection = nil error, want rejection")
	}
	if !errors.Is(err, modsel.ErrInvalidSelection) {
		t.Errorf("error should wrap ErrInvalidSelection, got: %v", err)
	}
	if _, statErr := os.Stat(outPath); !os.IsNotExist(statErr) {
		t.Error("a descriptor was emitted despite the invalid selection")
	}
}

func TestGen_RejectsUnknownTarget(t *testing.T) {
	resetGen(t)

	rootCmd.SetArgs([]string{"gen", "xmp_sdk"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("gen with unknown target = nil error, want rejection")
	}
}
