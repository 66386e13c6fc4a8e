package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bookgen",
	Short: "Generate printable travel books from metravel data",
	Long: `Bookgen turns a traveler's trips into a printable book: cover,
table of contents, photo galleries, maps and text pages, styled by a
selectable theme and assembled into a single HTML document.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}
