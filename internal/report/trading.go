package report

import (
	"fmt"
	"strings"

	"StockResearch/internal/calculator"
	"StockResearch/internal/model"
)

// volumeUnit converts shares to the 万手 (10,000 lots of 100 shares) display unit.
const volumeUnit = 1e6

// TradingSection renders current prices and the trailing-window statistics for
// price, amplitude, change, volume and turnover.
func TradingSection(b *model.TimeSeriesBundle) (string, error) {
	n := b.Len()
	if n < 2 {
		return "", &model.DataError{
			Field:  "close",
			Reason: "needs at least 2 observations",
			Err:    &model.InsufficientHistoryError{Section: "trading", Have: n, Need: 2},
		}
	}

	dayChange, err := calculator.PreviousChange(b.Close)
	if err != nil {
		return "", err
	}
	dayAmplitude, err := calculator.DayAmplitude(b.High, b.Low)
	if err != nil {
		return "", err
	}

	windows := calculator.SupportedWindows(n, calculator.CanonicalWindows)
	closeStats := calculator.ComputeWindows(b.Close, windows)
	highStats := calculator.ComputeWindows(b.High, windows)
	lowStats := calculator.ComputeWindows(b.Low, windows)
	volumeStats := calculator.ComputeWindows(b.Volume, windows)

	last := n - 1
	tcap := b.TotalCap[last]

	var sb strings.Builder
	sb.WriteString("# 交易数据\n\n")

	sb.WriteString("## 价格\n")
	sb.WriteString(fmt.Sprintf("- 当日: %s 最高: %s 最低: %s\n", fixed2(b.Close[last]), fixed2(b.High[last]), fixed2(b.Low[last])))
	for i, w := range windows {
		sb.WriteString(fmt.Sprintf("- %d日均价: %s 最高: %s 最低: %s\n",
			w, fixed2(closeStats[i].Mean), fixed2(highStats[i].Max), fixed2(lowStats[i].Min)))
	}
	sb.WriteString("\n")

	sb.WriteString("## 振幅\n")
	sb.WriteString(fmt.Sprintf("- 当日: %s\n", pct2(dayAmplitude)))
	for _, w := range windows {
		amp, err := calculator.WindowAmplitude(b.High, b.Low, w)
		if err != nil {
			return "", err
		}
		sb.WriteString(fmt.Sprintf("- %d日振幅: %s\n", w, pct2(amp)))
	}
	sb.WriteString("\n")

	sb.WriteString("## 涨跌幅\n")
	sb.WriteString(fmt.Sprintf("- 当日: %s\n", pct2(dayChange)))
	for _, w := range windows {
		ret, err := calculator.CumulativeReturn(b.Close, w)
		if err != nil {
			return "", err
		}
		sb.WriteString(fmt.Sprintf("- %d日累计: %s\n", w, pct2(ret)))
	}
	sb.WriteString("\n")

	sb.WriteString("## 成交量(万手)\n")
	sb.WriteString(fmt.Sprintf("- 当日: %s\n", fixed2(b.Volume[last]/volumeUnit)))
	for i, w := range windows {
		sb.WriteString(fmt.Sprintf("- %d日均量: %s 总量: %s\n",
			w, fixed2(volumeStats[i].Mean/volumeUnit), fixed2(volumeStats[i].Sum/volumeUnit)))
	}
	sb.WriteString("\n")

	sb.WriteString("## 换手率\n")
	sb.WriteString(fmt.Sprintf("- 当日: %s\n", pct2(b.Volume[last]/tcap)))
	for i, w := range windows {
		sb.WriteString(fmt.Sprintf("- %d日均换手: %s\n", w, pct2(volumeStats[i].Mean/tcap)))
		sb.WriteString(fmt.Sprintf("- %d日总换手: %s\n", w, pct2(volumeStats[i].Sum/tcap)))
	}
	sb.WriteString("\n")

	return sb.String(), nil
}
