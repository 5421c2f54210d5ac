// Package report composes the research document for one instrument from its
// validated time series bundle.
package report

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ternarybob/arbor"

	"StockResearch/internal/common"
	"StockResearch/internal/model"
)

// NameResolver maps symbol codes to display names.
type NameResolver interface {
	Resolve(ctx context.Context, symbols []string) ([]model.SymbolName, error)
}

// Assembler builds the four-section report.
type Assembler struct {
	resolver NameResolver
	logger   arbor.ILogger
}

// NewAssembler creates an Assembler.
func NewAssembler(resolver NameResolver, logger arbor.ILogger) *Assembler {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Assembler{resolver: resolver, logger: logger}
}

type section struct {
	name string
	// optional sections are dropped when history is too short
	optional bool
	build    func() (string, error)
}

// Build renders the report. Structural problems in the bundle and failed
// symbol lookups abort; sections lacking history are left out.
func (a *Assembler) Build(ctx context.Context, symbol string, b *model.TimeSeriesBundle) (string, error) {
	if err := b.Validate(); err != nil {
		return "", err
	}
	if symbol == "" {
		symbol = b.Symbol
	}
	sym, err := a.resolveName(ctx, symbol)
	if err != nil {
		return "", err
	}

	sections := []section{
		{name: "basic", build: func() (string, error) { return BasicSection(b, sym) }},
		{name: "trading", build: func() (string, error) { return TradingSection(b) }},
		{name: "technical", optional: true, build: func() (string, error) { return TechnicalSection(b) }},
		{name: "fundamentals", optional: true, build: func() (string, error) { return FundamentalsSection(b.Financials) }},
	}

	var sb strings.Builder
	for _, s := range sections {
		text, err := s.build()
		if err != nil {
			var dataErr *model.DataError
			var histErr *model.InsufficientHistoryError
			if s.optional && !errors.As(err, &dataErr) && errors.As(err, &histErr) {
				a.logger.Debug().
					Str("symbol", symbol).
					Str("section", s.name).
					Int("have", histErr.Have).
					Int("need", histErr.Need).
					Msg("Section omitted")
				continue
			}
			return "", fmt.Errorf("%s section: %w", s.name, err)
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

func (a *Assembler) resolveName(ctx context.Context, symbol string) (model.SymbolName, error) {
	pairs, err := a.resolver.Resolve(ctx, []string{symbol})
	if err != nil {
		var lookupErr *model.LookupError
		if errors.As(err, &lookupErr) {
			return model.SymbolName{}, err
		}
		return model.SymbolName{}, &model.LookupError{Symbol: symbol, Reason: err.Error()}
	}
	if len(pairs) != 1 {
		return model.SymbolName{}, &model.LookupError{Symbol: symbol, Reason: fmt.Sprintf("expected 1 match, got %d", len(pairs))}
	}
	return pairs[0], nil
}
