package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/metravel/bookgen/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the available book themes",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range theme.Names() {
			th := theme.Get(name)
			marker := " "
			if name == theme.DefaultName {
				marker = "*"
			}
			fmt.Printf("%s %-12s %-20s %s\n", marker, th.Name, th.DisplayName, th.Description)
		}
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
}
