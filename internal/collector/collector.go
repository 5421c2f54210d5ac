package collector

import (
	"context"
	"time"

	"StockResearch/internal/model"
)

// HistoryYears is the look-back requested for a report.
const HistoryYears = 2

// DateRange returns the load window for a report ending at end. A zero end
// means "through today", expressed as tomorrow so the latest session is included.
func DateRange(end, now time.Time) (time.Time, time.Time) {
	if end.IsZero() {
		end = now.AddDate(0, 0, 1)
	}
	return end.AddDate(-HistoryYears, 0, 0), end
}

// MockLoader returns controllable fixed data for development and testing.
type MockLoader struct {
	Price  float64
	Days   int
	Bundle *model.TimeSeriesBundle
	Err    error
}

func (m *MockLoader) Name() string { return "mock" }

func (m *MockLoader) LoadBundle(_ context.Context, symbol string, _, end time.Time) (*model.TimeSeriesBundle, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Bundle != nil {
		return m.Bundle, nil
	}
	days := m.Days
	if days == 0 {
		days = 300
	}
	price := m.Price
	if price == 0 {
		price = 10
	}
	return generateMockBundle(symbol, price, days, end), nil
}

func generateMockBundle(symbol string, basePrice float64, count int, end time.Time) *model.TimeSeriesBundle {
	if end.IsZero() {
		end = time.Now()
	}
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	b := &model.TimeSeriesBundle{
		Symbol: symbol,
		Sector: []string{"银行", "融资融券"},
	}
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		b.Date = append(b.Date, end.AddDate(0, 0, -(count-i)))
		b.Close = append(b.Close, p)
		b.High = append(b.High, p*1.005)
		b.Low = append(b.Low, p*0.995)
		b.Volume = append(b.Volume, 1000000)
		b.TotalCap = append(b.TotalCap, 1e8)
		b.EPS = append(b.EPS, basePrice/10)
		b.EPSDiluted = append(b.EPSDiluted, basePrice/2)
		b.ROE = append(b.ROE, 10)
	}

	f := &b.Financials
	for year := end.Year() - 3; year < end.Year(); year++ {
		for _, m := range []time.Month{time.March, time.June, time.September, time.December} {
			f.Date = append(f.Date, time.Date(year, m, 28, 0, 0, 0, 0, time.UTC))
			f.MainRevenue = append(f.MainRevenue, 1e6)
			f.NetProfit = append(f.NetProfit, 2e5)
			f.EPS = append(f.EPS, basePrice/10)
			f.NAVPS = append(f.NAVPS, basePrice/2)
			f.ROE = append(f.ROE, 10)
		}
	}
	return b
}

// Resolve names every symbol after itself.
func (m *MockLoader) Resolve(_ context.Context, symbols []string) ([]model.SymbolName, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]model.SymbolName, len(symbols))
	for i, s := range symbols {
		out[i] = model.SymbolName{Symbol: s, Name: s}
	}
	return out, nil
}

// StaticResolver resolves names from a fixed table.
type StaticResolver map[string]string

func (r StaticResolver) Resolve(_ context.Context, symbols []string) ([]model.SymbolName, error) {
	out := make([]model.SymbolName, 0, len(symbols))
	for _, s := range symbols {
		if name, ok := r[s]; ok {
			out = append(out, model.SymbolName{Symbol: s, Name: name})
		}
	}
	return out, nil
}
