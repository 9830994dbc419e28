// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"gyprgen/internal/config"
	"gyprgen/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `gyprgen config` command tree.
func newConfigCommand() *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage gyprgen configuration",
		Long: `Manage gyprgen configuration.

Configuration is stored in:
  - Linux: ~/.config/gyprgen/config.cue
  - macOS: ~/Library/Application Support/gyprgen/config.cue
  - Windows: %APPDATA%\gyprgen\config.cue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig()
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.CreateDefaultConfig(); err != nil {
				return err
			}
			cfgDir, err := config.ConfigDir()
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n", SuccessStyle.Render("Created"),
				filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgDir, err := config.ConfigDir()
			if err != nil {
				return err
			}
			fmt.Println(filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output raw configuration as CUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			fmt.Print(config.GenerateCUE(loaded))
			return nil
		},
	})

	return cfgCmd
}

func showConfig() error {
	loaded, source, err := config.LoadWithSource()
	if err != nil {
		rendered, _ := issue.Get(issue.ConfigLoadFailedId).Render(issueStyle())
		fmt.Fprint(os.Stderr, rendered)
		return err
	}

	fmt.Println(TitleStyle.Render("Current Configuration"))
	fmt.Println()

	if source != "" {
		fmt.Printf("%s: %s\n", TargetStyle.Render("Config file"), source)
	} else {
		fmt.Printf("%s: %s\n", TargetStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Println()

	fmt.Printf("%s: %s\n", TargetStyle.Render("modules"), SuccessStyle.Render(loaded.Modules))
	fmt.Printf("%s: %s\n", TargetStyle.Render("format"), SuccessStyle.Render(loaded.Format))
	fmt.Printf("%s: %s\n", TargetStyle.Render("output_dir"), SuccessStyle.Render(loaded.OutputDir))
	fmt.Printf("%s: %s\n", TargetStyle.Render("ui.color_scheme"), SuccessStyle.Render(string(loaded.UI.ColorScheme)))
	fmt.Printf("%s: %s\n", TargetStyle.Render("ui.verbose"), SuccessStyle.Render(fmt.Sprintf("%v", loaded.UI.Verbose)))

	return nil
}
