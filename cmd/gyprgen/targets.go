// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"gyprgen/internal/catalog"

	"github.com/spf13/cobra"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List catalog targets",
	Long:  `List every build target in the descriptor catalog with its type and source count.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(TitleStyle.Render("Catalog targets"))
		fmt.Println()
		for _, name := range catalog.Names() {
			t, err := catalog.Lookup(name)
			if err != nil {
				return err
			}
			marker := ""
			if name == catalog.DefaultTarget {
				marker = SubtitleStyle.Render(" (default)")
			}
			fmt.Printf("  %s%s\n", TargetStyle.Render(name), marker)
			fmt.Printf("    %s\n", SubtitleStyle.Render(
				fmt.Sprintf("%s, %d sources", t.Type, len(t.Sources))))
		}
		return nil
	},
}
