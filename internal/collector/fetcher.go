package collector

import (
	"context"
	"time"

	"StockResearch/internal/model"
)

// Loader loads an instrument's daily history and filings for a date range.
type Loader interface {
	LoadBundle(ctx context.Context, symbol string, start, end time.Time) (*model.TimeSeriesBundle, error)
	Name() string
}

// SymbolResolver maps symbol codes to display names. Unknown codes are left
// out of the result.
type SymbolResolver interface {
	Resolve(ctx context.Context, symbols []string) ([]model.SymbolName, error)
}
