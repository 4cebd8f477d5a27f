package cmd

import (
	"github.com/spf13/cobra"

	"github.com/uchiverify/site/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "uchiverify",
	Short: "Landing page and documentation site for the UChiVerify Discord bot",
	Long: `UChiVerify serves the bot's landing page: an animated walkthrough of the
verification flow, a showcase of bot commands and a searchable FAQ and
command reference. The page can be served live or built as static files,
and the FAQ and commands are available to AI agents over MCP.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
