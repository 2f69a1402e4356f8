package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zxtools/hobeta/pkg/catalog"
)

var scanCatalogDir string

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <dir>",
	Short: "Scan a directory tree and catalog every Hobeta container found",
	Long: `Walk a directory tree, decode the header of every file large enough
to be a Hobeta container, and record the results in the local catalog.
Containers with wrong checksums are cataloged too, with both checksum
values kept.

Example:
  hobeta scan ./disks --catalog ./catalog`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := catalog.NewScanner(nil).Scan(args[0])
		if err != nil {
			return err
		}

		dir := scanCatalogDir
		if dir == "" {
			dir = cfg.CatalogDir
		}

		cat, err := catalog.Open(dir)
		if err != nil {
			return err
		}
		defer cat.Close()

		for _, entry := range entries {
			if _, err := cat.Put(entry); err != nil {
				return err
			}
		}

		cmd.Printf("Cataloged %d files.\n", len(entries))
		return nil
	},
}

func init() {
	scanCmd.Flags().StringVar(&scanCatalogDir, "catalog", "", "Catalog directory (defaults to the configured one)")
	rootCmd.AddCommand(scanCmd)
}
