// Package research loads an instrument's history and turns it into a report.
package research

import (
	"context"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"

	"StockResearch/internal/collector"
	"StockResearch/internal/common"
	"StockResearch/internal/report"
)

// Service ties a data loader to the report assembler.
type Service struct {
	Loader    collector.Loader
	Assembler *report.Assembler
	Logger    arbor.ILogger
	Now       func() time.Time
}

// NewService creates a Service that resolves names with resolver.
func NewService(loader collector.Loader, resolver collector.SymbolResolver, logger arbor.ILogger) *Service {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{
		Loader:    loader,
		Assembler: report.NewAssembler(resolver, logger),
		Logger:    logger,
		Now:       time.Now,
	}
}

// Research builds the report for symbol with history through end. A zero end
// means the latest available data.
func (s *Service) Research(ctx context.Context, symbol string, end time.Time) (string, error) {
	if symbol == "" {
		return "", fmt.Errorf("symbol is required")
	}
	started := s.Now()
	start, end := collector.DateRange(end, started)

	s.Logger.Info().
		Str("symbol", symbol).
		Str("loader", s.Loader.Name()).
		Str("start", start.Format("2006-01-02")).
		Str("end", end.Format("2006-01-02")).
		Msg("Research started")

	bundle, err := s.Loader.LoadBundle(ctx, symbol, start, end)
	if err != nil {
		s.Logger.Error().Err(err).Str("symbol", symbol).Msg("Load failed")
		return "", fmt.Errorf("load %s: %w", symbol, err)
	}

	doc, err := s.Assembler.Build(ctx, symbol, bundle)
	if err != nil {
		s.Logger.Error().Err(err).Str("symbol", symbol).Msg("Report failed")
		return "", fmt.Errorf("report %s: %w", symbol, err)
	}

	s.Logger.Info().
		Str("symbol", symbol).
		Int("rows", bundle.Len()).
		Int("chars", len(doc)).
		Dur("elapsed", time.Since(started)).
		Msg("Research finished")
	return doc, nil
}
