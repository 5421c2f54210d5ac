package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"
)

type researcher interface {
	Research(ctx context.Context, symbol string, end time.Time) (string, error)
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

func handleStockResearch(r researcher, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := logger.WithCorrelationId(uuid.New().String())

		symbol, err := request.RequireString("symbol")
		symbol = strings.ToUpper(strings.TrimSpace(symbol))
		if err != nil || symbol == "" {
			return errorResult("Error: symbol parameter is required"), nil
		}
		end, err := parseEndDate(strings.TrimSpace(request.GetString("end_date", "")))
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		log.Info().Str("symbol", symbol).Str("end_date", request.GetString("end_date", "")).Msg("stock_research called")
		started := time.Now()

		doc, err := r.Research(ctx, symbol, end)
		if err != nil {
			log.Error().Err(err).Str("symbol", symbol).Msg("stock_research failed")
			return errorResult(fmt.Sprintf("Research error: %v", err)), nil
		}

		log.Info().Str("symbol", symbol).Dur("elapsed", time.Since(started)).Msg("stock_research completed")
		return textResult(doc), nil
	}
}
