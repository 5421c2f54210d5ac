package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockResearch/internal/collector"
	"StockResearch/internal/common"
	"StockResearch/internal/research"
)

type stubResearcher struct {
	symbol string
	end    time.Time
	err    error
}

func (s *stubResearcher) Research(_ context.Context, symbol string, end time.Time) (string, error) {
	s.symbol, s.end = symbol, end
	if s.err != nil {
		return "", s.err
	}
	return "# 基本数据\n", nil
}

func callTool(t *testing.T, r researcher, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	request := mcp.CallToolRequest{}
	request.Params.Arguments = args

	result, err := handleStockResearch(r, common.NewSilentLogger())(context.Background(), request)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	return result
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestHandleStockResearch_Success(t *testing.T) {
	r := &stubResearcher{}
	result := callTool(t, r, map[string]interface{}{
		"symbol":   "sh600000",
		"end_date": "2024-12-31",
	})

	assert.False(t, result.IsError)
	assert.Equal(t, "# 基本数据\n", resultText(t, result))
	assert.Equal(t, "SH600000", r.symbol)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), r.end)
}

func TestHandleStockResearch_DefaultEnd(t *testing.T) {
	r := &stubResearcher{}
	result := callTool(t, r, map[string]interface{}{"symbol": "SZ000001"})
	assert.False(t, result.IsError)
	assert.True(t, r.end.IsZero())
}

func TestHandleStockResearch_Errors(t *testing.T) {
	tests := []struct {
		name string
		args map[string]interface{}
		err  error
		want string
	}{
		{"missing symbol", map[string]interface{}{}, nil, "symbol parameter is required"},
		{"blank symbol", map[string]interface{}{"symbol": "  "}, nil, "symbol parameter is required"},
		{"bad date", map[string]interface{}{"symbol": "SH600000", "end_date": "31/12/2024"}, nil, "invalid end date"},
		{"research failure", map[string]interface{}{"symbol": "SH600000"}, errors.New("feed down"), "Research error: feed down"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := callTool(t, &stubResearcher{err: tt.err}, tt.args)
			assert.True(t, result.IsError)
			assert.Contains(t, resultText(t, result), tt.want)
		})
	}
}

func TestHandleStockResearch_EndToEnd(t *testing.T) {
	mock := &collector.MockLoader{Days: 260}
	svc := research.NewService(mock, mock, nil)

	result := callTool(t, svc, map[string]interface{}{"symbol": "SH600000"})
	require.False(t, result.IsError, resultText(t, result))

	text := resultText(t, result)
	assert.Contains(t, text, "- 股票代码: SH600000")
	assert.Contains(t, text, "- 240日均价")
	assert.Contains(t, text, "# 技术指标(最近30日)")
	assert.Contains(t, text, "# 财务数据")
}

func TestParseEndDate(t *testing.T) {
	end, err := parseEndDate("")
	require.NoError(t, err)
	assert.True(t, end.IsZero())

	end, err = parseEndDate("2025-01-03")
	require.NoError(t, err)
	assert.Equal(t, 3, end.Day())

	_, err = parseEndDate("2025-13-40")
	assert.Error(t, err)
}
