package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	mcpserver "github.com/uchiverify/site/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing FAQ and command lookup tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer log.Sync()

		store, err := loadContent(cfg)
		if err != nil {
			return err
		}

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		log.Info("MCP server started on stdio",
			zap.Int("faq", store.FAQ.Len()),
			zap.Int("commands", store.Commands.Len()))

		srv := mcpserver.NewServer(store)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
