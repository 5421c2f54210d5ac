package report

import (
	"strings"

	"StockResearch/internal/calculator"
	"StockResearch/internal/model"
)

// TechnicalRows is the number of most recent observations shown in the indicator table.
const TechnicalRows = 30

var technicalHeader = []string{
	"日期", "KDJ.K", "KDJ.D", "KDJ.J", "MACD DIF", "MACD DEA",
	"RSI(6)", "RSI(12)", "RSI(24)", "BBands Upper", "BBands Middle", "BBands Lower",
}

// TechnicalSection renders the indicator table, newest first. Indicators are
// computed over the full history; only the display is truncated.
func TechnicalSection(b *model.TimeSeriesBundle) (string, error) {
	set, err := calculator.ComputeIndicators(b)
	if err != nil {
		return "", err
	}

	columns := [][]float64{
		set.K, set.D, set.J,
		set.DIF, set.DEA,
		set.RSI6, set.RSI12, set.RSI24,
		set.BollUpper, set.BollMiddle, set.BollLower,
	}

	n := b.Len()
	rows := make([][]string, 0, TechnicalRows)
	for i := n - 1; i >= 0 && len(rows) < TechnicalRows; i-- {
		row := make([]string, 0, len(technicalHeader))
		row = append(row, b.Date[i].Format("2006-01-02"))
		for _, col := range columns {
			row = append(row, fixed2(col[i]))
		}
		rows = append(rows, row)
	}

	var sb strings.Builder
	sb.WriteString("# 技术指标(最近30日)\n\n")
	writeTable(&sb, technicalHeader, rows)
	sb.WriteString("\n")
	return sb.String(), nil
}
