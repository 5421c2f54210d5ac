package calculator

import (
	"time"

	"StockResearch/internal/model"
)

// MaxFiscalYears caps the number of fiscal-year columns in the fundamentals table.
const MaxFiscalYears = 5

// FiscalYearRow is one December (fiscal-year-end) fundamentals report.
type FiscalYearRow struct {
	Date        time.Time
	MainRevenue float64
	NetProfit   float64
	EPS         float64
	NAVPS       float64
	ROE         float64
}

var annualizationRatios = map[time.Month]float64{
	time.December:  1.0,
	time.September: 0.75,
	time.June:      0.5,
	time.March:     0.25,
}

// AnnualizationRatio maps the period end of a filing to the fraction of the
// fiscal year it covers. Months that are not quarter ends map to 0.
func AnnualizationRatio(periodEnd time.Time) float64 {
	return annualizationRatios[periodEnd.Month()]
}

// LatestAnnualizationRatio returns the ratio for the most recent filing,
// whatever its month. ok is false when there are no filings.
func LatestAnnualizationRatio(f model.Financials) (ratio float64, ok bool) {
	if len(f.Date) == 0 {
		return 0, false
	}
	return AnnualizationRatio(f.Date[len(f.Date)-1]), true
}

// FiscalYearRows walks filings from newest to oldest and keeps the December
// ones, stopping after limit rows.
func FiscalYearRows(f model.Financials, limit int) []FiscalYearRow {
	var rows []FiscalYearRow
	for i := len(f.Date) - 1; i >= 0 && len(rows) < limit; i-- {
		if f.Date[i].Month() != time.December {
			continue
		}
		rows = append(rows, FiscalYearRow{
			Date:        f.Date[i],
			MainRevenue: f.MainRevenue[i],
			NetProfit:   f.NetProfit[i],
			EPS:         f.EPS[i],
			NAVPS:       f.NAVPS[i],
			ROE:         f.ROE[i],
		})
	}
	return rows
}
