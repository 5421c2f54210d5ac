package report

import (
	"fmt"
	"strings"

	"StockResearch/internal/calculator"
	"StockResearch/internal/model"
)

// wanPerYi converts revenue and profit reported in 万元 to 亿元.
const wanPerYi = 10000

type fundamentalsField struct {
	label string
	value func(calculator.FiscalYearRow) float64
}

var fundamentalsFields = []fundamentalsField{
	{"主营收入(亿元)", func(r calculator.FiscalYearRow) float64 { return r.MainRevenue / wanPerYi }},
	{"净利润(亿元)", func(r calculator.FiscalYearRow) float64 { return r.NetProfit / wanPerYi }},
	{"每股收益", func(r calculator.FiscalYearRow) float64 { return r.EPS }},
	{"每股净资产", func(r calculator.FiscalYearRow) float64 { return r.NAVPS }},
	{"净资产收益率", func(r calculator.FiscalYearRow) float64 { return r.ROE }},
}

// FundamentalsSection renders the fiscal-year table: one row per metric, one
// column per fiscal year, newest first.
func FundamentalsSection(f model.Financials) (string, error) {
	years := calculator.FiscalYearRows(f, calculator.MaxFiscalYears)
	if len(years) == 0 {
		return "", &model.InsufficientHistoryError{Section: "fundamentals", Have: 0, Need: 1}
	}

	header := make([]string, 0, len(years)+1)
	header = append(header, "指标")
	for _, y := range years {
		header = append(header, fmt.Sprintf("%d年度", y.Date.Year()))
	}

	rows := make([][]string, 0, len(fundamentalsFields))
	for _, field := range fundamentalsFields {
		row := make([]string, 0, len(years)+1)
		row = append(row, field.label)
		for _, y := range years {
			row = append(row, fixed2(field.value(y)))
		}
		rows = append(rows, row)
	}

	var sb strings.Builder
	sb.WriteString("# 财务数据\n\n")
	writeTable(&sb, header, rows)
	sb.WriteString("\n")
	return sb.String(), nil
}
