package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/metravel/bookgen/internal/layout"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List or export the built-in layout presets",
	Long: `List the built-in layout presets. With --write-dir, write each
preset to a YAML file that can be edited and fed back to
"bookgen export --layout-file".`,
	RunE: runLayouts,
}

func init() {
	rootCmd.AddCommand(layoutsCmd)

	layoutsCmd.Flags().String("write-dir", "", "Write each preset as a YAML file into this directory")
}

func runLayouts(cmd *cobra.Command, args []string) error {
	writeDir, _ := cmd.Flags().GetString("write-dir")

	presets := layout.DefaultLayouts()

	if writeDir == "" {
		for _, l := range presets {
			fmt.Printf("%-12s %-16s %s, %d blocks\n", l.ID, l.Name, l.Mode, len(l.Blocks))
			for _, b := range l.EnabledBlocks() {
				fmt.Printf("             %2d. %s\n", b.Order, b.Type)
			}
		}
		return nil
	}

	if err := os.MkdirAll(writeDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", writeDir, err)
	}
	for _, l := range presets {
		data, err := yaml.Marshal(l)
		if err != nil {
			return fmt.Errorf("marshaling layout %s: %w", l.ID, err)
		}
		path := filepath.Join(writeDir, l.ID+".yaml")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Printf("Wrote %s\n", path)
	}
	return nil
}
