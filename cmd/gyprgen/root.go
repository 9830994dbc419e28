// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for gyprgen.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gyprgen/internal/config"
	"gyprgen/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug logging
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// cfg is the configuration loaded by initRootConfig; never nil after
	// cobra.OnInitialize runs (falls back to defaults on load failure).
	cfg = config.DefaultConfig()

	// logger writes structured diagnostics to stderr, below the descriptor
	// output on stdout.
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "gyprgen",
		Short: "Build-target descriptor generator for the GPR SDK",
		Long: TitleStyle.Render("gyprgen") + SubtitleStyle.Render(" - build-target descriptor generator for the GPR SDK") + `

gyprgen turns the fixed catalog of GPR SDK library targets into build
descriptors (target name, type, include dirs, defines, sources) for a
downstream build-file generator, gating the optional GPR encoding and
decoding modules on the selection you pass.

` + SubtitleStyle.Render("Examples:") + `
  gyprgen targets                          List catalog targets
  gyprgen gen                              Generate dng_sdk with all modules
  gyprgen gen dng_sdk -m gpr_decoding      Decode-only feature set
  gyprgen gen vc5_encoder -f json -o out/  JSON descriptor into out/`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/gyprgen/config.cue)")

	// Add subcommands
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(targetsCmd)
	rootCmd.AddCommand(newConfigCommand())
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// fang overrides rootCmd.Version, so the version goes through its option
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads in the config file if present and applies UI settings.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	loaded, err := config.Load()
	if err != nil {
		// Surface config loading errors but keep running on defaults
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}
	if loaded != nil {
		cfg = loaded
	}

	if !verbose && cfg.UI.Verbose {
		verbose = true
	}
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
}

// formatErrorForDisplay renders an error for the terminal, expanding
// actionable context (suggestions, chain) when available.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
