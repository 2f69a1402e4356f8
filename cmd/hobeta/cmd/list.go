package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zxtools/hobeta/pkg/catalog"
)

var listCatalogDir string

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List cataloged Hobeta containers",
	Long: `Print every entry in the local catalog.

Example:
  hobeta list --catalog ./catalog`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := listCatalogDir
		if dir == "" {
			dir = cfg.CatalogDir
		}

		cat, err := catalog.Open(dir)
		if err != nil {
			return err
		}
		defer cat.Close()

		entries, err := cat.List()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tTYPE\tSIZE\tSECTORS\tCHECKSUM\tPATH")
		for _, entry := range entries {
			status := "ok"
			if !entry.ChecksumOK() {
				status = "wrong"
			}
			fmt.Fprintf(w, "%s\t%c\t%d\t%d\t%s\t%s\n",
				entry.Name, entry.Filetype, entry.Length, entry.OccupiedSectors, status, entry.Path)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		cmd.Printf("%d entries.\n", len(entries))
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listCatalogDir, "catalog", "", "Catalog directory (defaults to the configured one)")
	rootCmd.AddCommand(listCmd)
}
