// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gyprgen/internal/catalog"
	"gyprgen/internal/config"
	"gyprgen/internal/emit"
	"gyprgen/internal/issue"
	"gyprgen/pkg/descriptor"
	"gyprgen/pkg/modsel"

	"github.com/spf13/cobra"
)

var (
	genModules string
	genFormat  string
	genOutput  string

	genCmd = &cobra.Command{
		Use:   "gen [target]",
		Short: "Generate a build-target descriptor",
		Long: `Generate the build descriptor for one catalog target and emit it in a
downstream build-system format.

The optional-module selection gates the GPR encoding and decoding feature
defines. Exactly one of the recognized selections is applied per invocation;
unknown values are rejected before any descriptor is produced.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runGen,
	}
)

func init() {
	genCmd.Flags().StringVarP(&genModules, "modules", "m", "",
		"modules to include in build step (gpr_encoding, gpr_decoding, all)")
	genCmd.Flags().StringVarP(&genFormat, "format", "f", "",
		fmt.Sprintf("output format (%s)", formatList()))
	genCmd.Flags().StringVarP(&genOutput, "output", "o", "",
		"write the descriptor to a file instead of stdout")
}

func runGen(cmd *cobra.Command, args []string) error {
	name := catalog.DefaultTarget
	if len(args) == 1 {
		name = args[0]
	}

	// Input boundary: flag values fall back to config, and both are
	// validated here, before the resolver ever sees them.
	sel, err := parseSelection(cmd, genModules)
	if err != nil {
		renderIssue(issue.InvalidModuleSelectionId)
		return err
	}
	format, err := parseFormat(cmd, genFormat)
	if err != nil {
		renderIssue(issue.InvalidEmitFormatId)
		return err
	}

	target, err := catalog.Lookup(name)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrTargetNotFound):
			renderIssue(issue.TargetNotFoundId)
		case errors.Is(err, descriptor.ErrIncompleteTarget):
			renderIssue(issue.IncompleteCatalogId)
		}
		return err
	}
	logger.Debug("catalog target resolved",
		"target", name, "sources", len(target.Sources), "defines", len(target.Defines))

	if err := modsel.Resolve(target, sel); err != nil {
		// Unreachable after boundary validation; fail fast rather than
		// emit a descriptor with an unintended feature configuration.
		return err
	}
	logger.Debug("feature defines appended", "selection", sel,
		"encoding", target.HasDefine(modsel.DefineEncoding),
		"decoding", target.HasDefine(modsel.DefineDecoding))

	out, closeOut, err := openOutput(genOutput)
	if err != nil {
		renderIssue(issue.OutputWriteFailedId)
		return err
	}
	defer closeOut()

	if err := emit.Emit(out, target, format); err != nil {
		return issue.NewErrorContext().
			WithOperation("emit descriptor").
			WithResource(genOutput).
			Wrap(err).
			BuildError()
	}
	logger.Debug("descriptor emitted", "target", name, "format", format)
	return nil
}

// parseSelection resolves the module selection from the flag, falling back
// to the configured default.
func parseSelection(cmd *cobra.Command, raw string) (modsel.Selection, error) {
	if !cmd.Flags().Changed("modules") {
		raw = cfg.Modules
	}
	return modsel.Parse(raw)
}

// parseFormat resolves the output format from the flag, falling back to the
// configured default.
func parseFormat(cmd *cobra.Command, raw string) (emit.Format, error) {
	if !cmd.Flags().Changed("format") {
		raw = cfg.Format
	}
	return emit.ParseFormat(raw)
}

// openOutput returns the descriptor writer: stdout when path is empty,
// otherwise the file at path (joined onto the configured output_dir when
// relative).
func openOutput(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	if cfg.OutputDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(cfg.OutputDir, path)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// formatList renders the emitter formats for flag help, in the emit
// package's declaration order.
func formatList() string {
	names := make([]string, 0, len(emit.Formats()))
	for _, f := range emit.Formats() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}

// renderIssue writes the remediation text for a known failure to stderr.
func renderIssue(id issue.Id) {
	rendered, err := issue.Get(id).Render(issueStyle())
	if err != nil {
		return
	}
	fmt.Fprint(os.Stderr, rendered)
}

// issueStyle maps the configured color scheme onto a glamour style name.
func issueStyle() string {
	switch cfg.UI.ColorScheme {
	case config.ColorSchemeLight:
		return "light"
	case config.ColorSchemeDark:
		return "dark"
	default:
		return "auto"
	}
}
