// research builds stock research reports from a market data feed and serves
// them on the command line, over MCP and through a Telegram bot.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version    = "0.1.0"
	configPath string
	logLevel   string
	useMock    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "research",
		Short: "Stock research report generator",
		Long: `research loads two years of daily history and fiscal filings for an
instrument and renders a Markdown report with trading statistics,
technical indicators and fundamentals.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (defaults to CONFIG_PATH or configs/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&useMock, "mock", false, "Use synthetic data instead of the configured data feed")

	rootCmd.AddCommand(versionCmd())
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(botCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("research version %s\n", version)
		},
	}
}
