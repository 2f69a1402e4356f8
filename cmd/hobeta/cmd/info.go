package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/zxtools/hobeta/pkg/hobeta"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <hobeta-file>",
	Short: "Show information about the specified Hobeta file",
	Long: `Show the TR-DOS directory fields stored in a Hobeta header and
whether its checksum matches.

Example:
  hobeta info GAME.$C`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()

		header, computed, err := hobeta.NewHeaderCodec().ReadHeader(file)
		if err != nil {
			return err
		}
		log.Debug().Str("file", args[0]).Uint16("computed", computed).Msg("header decoded")

		status := "(OK)"
		if !header.Verify(computed) {
			status = fmt.Sprintf("(WRONG! Should be %d)", computed)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 20, 0, 1, ' ', 0)
		fmt.Fprintf(w, "File name:\t%s\n", header.Name())
		fmt.Fprintf(w, "Extension:\t%s\n", header.Type())
		fmt.Fprintf(w, "%s:\t%d\n", header.StartLabel(), header.Start)
		fmt.Fprintf(w, "File size:\t%d\n", header.Length)
		fmt.Fprintf(w, "First sector:\t%d\n", header.FirstSector)
		fmt.Fprintf(w, "Occupied sectors:\t%d\n", header.OccupiedSectors)
		fmt.Fprintf(w, "Check sum:\t%d %s\n", header.CheckSum, status)
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
