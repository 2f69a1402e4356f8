package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zxtools/hobeta/pkg/config"
	"github.com/zxtools/hobeta/pkg/logging"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hobeta",
	Short: "Hobeta files converter",
	Long: `hobeta inspects and converts Hobeta containers, the 17-byte-header
format used to carry single files in and out of TR-DOS floppy disk images.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = config.GetDefaultConfigPath()
		}

		if config.ConfigExists(path) {
			loaded, err := config.LoadConfig(path)
			if err != nil {
				return err
			}
			cfg = loaded
		} else {
			cfg = config.DefaultConfig()
		}

		level := cfg.Logging.Level
		if verbose {
			level = "debug"
		}
		logging.Init("hobeta", level)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to the configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Increase output verbosity")
}
