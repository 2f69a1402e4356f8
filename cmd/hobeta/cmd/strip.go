package cmd

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/zxtools/hobeta/pkg/hobeta"
)

var ignoreHeader bool

// stripCmd represents the strip command
var stripCmd = &cobra.Command{
	Use:   "strip <hobeta-file> <output-file>",
	Short: "Strip Hobeta header",
	Long: `Copy the payload of a Hobeta container to the output file, dropping
the 17-byte header. By default only the header's declared length is
copied; --ignore-header copies everything that follows the header.

Example:
  hobeta strip GAME.$C game.bin`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer src.Close()

		header, computed, err := hobeta.NewHeaderCodec().ReadHeader(src)
		if err != nil {
			return err
		}
		if !header.Verify(computed) {
			cmd.Println("WARNING: wrong checksum in the header.")
		}

		dst, err := os.Create(args[1])
		if err != nil {
			return err
		}

		extractor := hobeta.NewExtractor(hobeta.ExtractorConfig{
			ChunkSize:            cfg.BufferSize,
			IgnoreDeclaredLength: ignoreHeader,
		})

		copied, err := extractor.Extract(header, src, dst)
		if err != nil {
			dst.Close()
			return err
		}
		if err := dst.Close(); err != nil {
			return err
		}

		log.Debug().Int64("copied", copied).Uint16("declared", header.Length).
			Bool("ignore_header", ignoreHeader).Msg("payload extracted")
		cmd.Printf("Created file %s, %d bytes copied.\n", args[1], copied)
		return nil
	},
}

func init() {
	stripCmd.Flags().BoolVar(&ignoreHeader, "ignore-header", false, "Ignore the file size from Hobeta header")
	rootCmd.AddCommand(stripCmd)
}
