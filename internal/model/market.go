package model

import (
	"fmt"
	"time"
)

// TimeSeriesBundle holds one instrument's daily history, index-aligned to Date.
// The pipeline treats it as read-only.
type TimeSeriesBundle struct {
	Symbol     string
	Date       []time.Time
	Close      []float64
	High       []float64
	Low        []float64
	Volume     []float64
	TotalCap   []float64 // total share capital, used for turnover
	EPS        []float64
	EPSDiluted []float64
	ROE        []float64
	Sector     []string
	Financials Financials
}

// Financials holds periodic (quarterly) fundamentals reports.
type Financials struct {
	Date        []time.Time
	MainRevenue []float64
	NetProfit   []float64
	EPS         []float64
	NAVPS       []float64
	ROE         []float64
}

// Len returns the number of daily observations.
func (b *TimeSeriesBundle) Len() int { return len(b.Date) }

// LatestDate returns the most recent observation date.
func (b *TimeSeriesBundle) LatestDate() time.Time {
	if len(b.Date) == 0 {
		return time.Time{}
	}
	return b.Date[len(b.Date)-1]
}

// Len returns the number of fundamentals rows.
func (f Financials) Len() int { return len(f.Date) }

// Validate checks the structural invariants of the bundle: every daily series
// present and aligned to Date, dates non-decreasing, and fundamentals series
// aligned to their own dates.
func (b *TimeSeriesBundle) Validate() error {
	n := len(b.Date)
	if n == 0 {
		return &DataError{Field: "date", Reason: "empty"}
	}
	daily := []struct {
		name   string
		values []float64
	}{
		{"close", b.Close},
		{"high", b.High},
		{"low", b.Low},
		{"volume", b.Volume},
		{"tcap", b.TotalCap},
		{"eps", b.EPS},
		{"epsu", b.EPSDiluted},
		{"roe", b.ROE},
	}
	for _, s := range daily {
		if len(s.values) == 0 {
			return &DataError{Field: s.name, Reason: "empty"}
		}
		if len(s.values) != n {
			return &DataError{Field: s.name, Reason: fmt.Sprintf("length %d, want %d", len(s.values), n)}
		}
	}
	if err := checkAscending("date", b.Date); err != nil {
		return err
	}

	f := b.Financials
	m := len(f.Date)
	fin := []struct {
		name   string
		values []float64
	}{
		{"financials.mr", f.MainRevenue},
		{"financials.np", f.NetProfit},
		{"financials.eps", f.EPS},
		{"financials.navps", f.NAVPS},
		{"financials.roe", f.ROE},
	}
	for _, s := range fin {
		if len(s.values) != m {
			return &DataError{Field: s.name, Reason: fmt.Sprintf("length %d, want %d", len(s.values), m)}
		}
	}
	return checkAscending("financials.date", f.Date)
}

func checkAscending(field string, dates []time.Time) error {
	for i := 1; i < len(dates); i++ {
		if dates[i].Before(dates[i-1]) {
			return &DataError{
				Field:  field,
				Reason: fmt.Sprintf("not ascending at index %d (%s before %s)", i, dates[i].Format("2006-01-02"), dates[i-1].Format("2006-01-02")),
			}
		}
	}
	return nil
}

// SymbolName pairs an instrument code with its display name.
type SymbolName struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}
