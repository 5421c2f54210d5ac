package report

import (
	"fmt"
	"math"
	"strings"

	"StockResearch/internal/calculator"
	"StockResearch/internal/model"
)

// BasicSection renders the instrument facts: code, name, data date, sectors and
// the trailing valuation multiples.
func BasicSection(b *model.TimeSeriesBundle, sym model.SymbolName) (string, error) {
	n := b.Len()
	if n == 0 {
		return "", &model.DataError{Field: "date", Reason: "empty"}
	}

	// No filings leaves the multiples undefined.
	ratio, ok := calculator.LatestAnnualizationRatio(b.Financials)
	if !ok {
		ratio = math.NaN()
	}
	price := b.Close[n-1]

	var sb strings.Builder
	sb.WriteString("# 基本数据\n\n")
	sb.WriteString(fmt.Sprintf("- 股票代码: %s\n", sym.Symbol))
	sb.WriteString(fmt.Sprintf("- 股票名称: %s\n", sym.Name))
	sb.WriteString(fmt.Sprintf("- 数据日期: %s\n", b.LatestDate().Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("- 行业概念: %s\n", strings.Join(FilterSector(b.Sector), " ")))
	sb.WriteString(fmt.Sprintf("- 市盈率: %s\n", fixed2(price*ratio/b.EPS[n-1])))
	sb.WriteString(fmt.Sprintf("- 市净率: %s\n", fixed2(price*ratio/b.EPSDiluted[n-1])))
	sb.WriteString(fmt.Sprintf("- 净资产收益率: %s\n", fixed2(b.ROE[n-1])))
	sb.WriteString("\n")
	return sb.String(), nil
}
