package main

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"
)

// registerTools registers all MCP tools on the server.
func registerTools(s *server.MCPServer, r researcher, logger arbor.ILogger) {
	s.AddTool(createStockResearchTool(), handleStockResearch(r, logger))
}

func createStockResearchTool() mcp.Tool {
	return mcp.NewTool("stock_research",
		mcp.WithDescription("Build a research report for a stock: basic facts and valuation, trading statistics over 5/20/60/120/240-day windows, the last 30 days of KDJ, MACD, RSI and Bollinger bands, and up to five fiscal years of fundamentals. Returns Markdown."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Instrument code with exchange prefix, e.g. SH600000 or SZ000001"),
		),
		mcp.WithString("end_date",
			mcp.Description("Last date of history to include, YYYY-MM-DD. Defaults to the latest available data."),
		),
	)
}
