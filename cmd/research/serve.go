package main

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var stdio bool
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the stock_research tool over MCP",
		Long:  `Starts an MCP server exposing the stock_research tool, over stdio or Streamable HTTP.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, svc, err := setup()
			if err != nil {
				return err
			}

			mcpServer := server.NewMCPServer(
				"StockResearch",
				version,
				server.WithToolCapabilities(true),
			)
			registerTools(mcpServer, svc, logger)

			if stdio {
				// Stdio transport reads stdin and writes stdout; logs go to stderr.
				logger.Info().Msg("Starting MCP stdio server")
				return server.ServeStdio(mcpServer)
			}

			if port == 0 {
				port = cfg.MCP.Port
			}
			httpServer := server.NewStreamableHTTPServer(mcpServer,
				server.WithStateLess(true),
			)
			addr := fmt.Sprintf(":%d", port)
			logger.Info().Str("address", addr).Msg("Starting MCP Streamable HTTP server")
			return httpServer.Start(addr)
		},
	}
	cmd.Flags().BoolVar(&stdio, "stdio", false, "Use stdio transport")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "HTTP port (overrides config)")
	return cmd
}
