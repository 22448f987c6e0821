// Package main provides the list command for browsing available add-ons.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/devlyn/cli/assets"
	"github.com/devlyn/cli/internal/addon"
	"github.com/devlyn/cli/internal/config"
	"github.com/devlyn/cli/internal/ui"
)

var listTarget string

// listCmd prints the add-on catalog.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available add-ons",
	Long: `List the optional add-ons devlyn can install, and whether each one is
already installed in the target directory.

EXAMPLES:
  devlyn list                      # Check ./.claude
  devlyn list --target ~/.claude   # Check the user directory`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(os.Stdout, listTarget)
	},
}

func init() {
	listCmd.Flags().StringVar(&listTarget, "target", defaultTarget, "Directory to check for installed add-ons")
}

// runList writes the catalog table to w.
//
// Parameters:
//   - w: Destination for the table
//   - target: Install directory whose manifest marks installed add-ons
//
// Returns:
//   - error: If the catalog or manifest cannot be loaded
func runList(w io.Writer, target string) error {
	catalog, err := addon.Load(assets.FS())
	if err != nil {
		return fmt.Errorf("failed to load add-on catalog: %w", err)
	}

	dir, err := resolveTarget(target)
	if err != nil {
		return err
	}
	manifest, err := config.LoadManifest(config.ManifestPath(dir))
	if err != nil {
		return err
	}

	table := ui.NewTable("NAME", "SOURCE", "INSTALLED", "DESCRIPTION")
	table.SetMaxWidth(3, 60)
	for _, a := range catalog.All() {
		installed := ""
		if manifest.HasAddon(a.Name) {
			installed = "yes"
		}
		table.AddRow(a.Name, string(a.Source), installed, a.Description)
	}
	table.Fprint(w)
	return nil
}
