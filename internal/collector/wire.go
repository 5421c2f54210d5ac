package collector

import (
	"fmt"
	"time"

	"StockResearch/internal/model"
)

const wireDateLayout = "2006-01-02"

// wireBundle is the JSON shape served by the data feed and stored on disk.
type wireBundle struct {
	Symbol     string         `json:"symbol"`
	Date       []string       `json:"date"`
	Close      []float64      `json:"close"`
	High       []float64      `json:"high"`
	Low        []float64      `json:"low"`
	Volume     []float64      `json:"volume"`
	TotalCap   []float64      `json:"tcap"`
	EPS        []float64      `json:"eps"`
	EPSDiluted []float64      `json:"epsu"`
	ROE        []float64      `json:"roe"`
	Sector     []string       `json:"sector"`
	Financials wireFinancials `json:"financials"`
}

type wireFinancials struct {
	Date        []string  `json:"date"`
	MainRevenue []float64 `json:"mr"`
	NetProfit   []float64 `json:"np"`
	EPS         []float64 `json:"eps"`
	NAVPS       []float64 `json:"navps"`
	ROE         []float64 `json:"roe"`
}

func parseDates(field string, raw []string) ([]time.Time, error) {
	out := make([]time.Time, len(raw))
	for i, s := range raw {
		t, err := time.Parse(wireDateLayout, s)
		if err != nil {
			return nil, &model.DataError{Field: field, Reason: fmt.Sprintf("bad date at index %d", i), Err: err}
		}
		out[i] = t
	}
	return out, nil
}

// toModel converts the wire shape and validates the result.
func (w *wireBundle) toModel() (*model.TimeSeriesBundle, error) {
	dates, err := parseDates("date", w.Date)
	if err != nil {
		return nil, err
	}
	finDates, err := parseDates("financials.date", w.Financials.Date)
	if err != nil {
		return nil, err
	}
	b := &model.TimeSeriesBundle{
		Symbol:     w.Symbol,
		Date:       dates,
		Close:      w.Close,
		High:       w.High,
		Low:        w.Low,
		Volume:     w.Volume,
		TotalCap:   w.TotalCap,
		EPS:        w.EPS,
		EPSDiluted: w.EPSDiluted,
		ROE:        w.ROE,
		Sector:     w.Sector,
		Financials: model.Financials{
			Date:        finDates,
			MainRevenue: w.Financials.MainRevenue,
			NetProfit:   w.Financials.NetProfit,
			EPS:         w.Financials.EPS,
			NAVPS:       w.Financials.NAVPS,
			ROE:         w.Financials.ROE,
		},
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// clip keeps daily rows inside [start, end] and filings dated on or before end.
// The bundle must already be valid.
func clip(b *model.TimeSeriesBundle, start, end time.Time) *model.TimeSeriesBundle {
	lo, hi := 0, len(b.Date)
	for lo < hi && b.Date[lo].Before(start) {
		lo++
	}
	for hi > lo && b.Date[hi-1].After(end) {
		hi--
	}
	out := *b
	out.Date = b.Date[lo:hi]
	out.Close = b.Close[lo:hi]
	out.High = b.High[lo:hi]
	out.Low = b.Low[lo:hi]
	out.Volume = b.Volume[lo:hi]
	out.TotalCap = b.TotalCap[lo:hi]
	out.EPS = b.EPS[lo:hi]
	out.EPSDiluted = b.EPSDiluted[lo:hi]
	out.ROE = b.ROE[lo:hi]

	f := b.Financials
	m := len(f.Date)
	for m > 0 && f.Date[m-1].After(end) {
		m--
	}
	out.Financials = model.Financials{
		Date:        f.Date[:m],
		MainRevenue: f.MainRevenue[:m],
		NetProfit:   f.NetProfit[:m],
		EPS:         f.EPS[:m],
		NAVPS:       f.NAVPS[:m],
		ROE:         f.ROE[:m],
	}
	return &out
}
