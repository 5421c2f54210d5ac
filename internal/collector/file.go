package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"StockResearch/internal/model"
)

// FileLoader reads bundles from {Dir}/{symbol}.json in the data feed's wire format.
type FileLoader struct {
	Dir string
}

func (f *FileLoader) Name() string { return "file" }

func (f *FileLoader) LoadBundle(ctx context.Context, symbol string, start, end time.Time) (*model.TimeSeriesBundle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if symbol == "" || strings.ContainsAny(symbol, `/\`) || strings.Contains(symbol, "..") {
		return nil, fmt.Errorf("invalid symbol %q", symbol)
	}
	path := filepath.Join(f.Dir, symbol+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bundle: %w", err)
	}
	var w wireBundle
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decode bundle %s: %w", path, err)
	}
	if w.Symbol == "" {
		w.Symbol = symbol
	}
	b, err := w.toModel()
	if err != nil {
		return nil, err
	}
	return clip(b, start, end), nil
}
