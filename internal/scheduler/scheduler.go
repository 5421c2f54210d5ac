package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"

	"StockResearch/internal/common"
	"StockResearch/internal/notifier"
)

// sendRetries is how many times a failed Telegram message is retried.
const sendRetries = 3

// Researcher builds a report for one symbol.
type Researcher interface {
	Research(ctx context.Context, symbol string, end time.Time) (string, error)
}

// Messenger delivers possibly long messages.
type Messenger interface {
	SendLong(ctx context.Context, text string, maxRetries int) error
}

// Scheduler manages the report push and the bot commands.
type Scheduler struct {
	Cron     *cron.Cron
	Research Researcher
	Notifier Messenger
	Watch    []string
	Logger   arbor.ILogger
	Ctx      context.Context
	Now      func() time.Time
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, r Researcher, m Messenger, watch []string, logger arbor.ILogger) *Scheduler {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Research: r,
		Notifier: m,
		Watch:    watch,
		Logger:   logger,
		Ctx:      ctx,
		Now:      time.Now,
	}
}

// RegisterAll registers the report push.
func (s *Scheduler) RegisterAll(reportCron string) error {
	if _, err := s.Cron.AddFunc(reportCron, s.reportTask); err != nil {
		return fmt.Errorf("register report task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Logger.Info().Int("watch", len(s.Watch)).Msg("Scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.Logger.Info().Msg("Scheduler stopped")
}

// RunReportsNow executes the report push immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunReportsNow() {
	s.reportTask()
}

// reportTask pushes one report per watched symbol. A failing symbol does
// not stop the others.
func (s *Scheduler) reportTask() {
	s.Logger.Info().Strs("symbols", s.Watch).Msg("Running report task")
	for _, symbol := range s.Watch {
		if s.Ctx.Err() != nil {
			return
		}
		s.trySend(s.reportMessage(symbol))
	}
}

func (s *Scheduler) reportMessage(symbol string) string {
	doc, err := s.Research.Research(s.Ctx, symbol, time.Time{})
	if err != nil {
		s.Logger.Error().Err(err).Str("symbol", symbol).Msg("Report failed")
		return notifier.FormatFailure(symbol, err)
	}
	return notifier.FormatReport(symbol, doc, s.Now())
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(ctx context.Context, command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return notifier.FormatHelp()
	}
	switch fields[0] {
	case "/report", "研报":
		if len(fields) != 2 {
			return notifier.FormatHelp()
		}
		symbol := strings.ToUpper(fields[1])
		doc, err := s.Research.Research(ctx, symbol, time.Time{})
		if err != nil {
			s.Logger.Error().Err(err).Str("symbol", symbol).Msg("Command report failed")
			return notifier.FormatFailure(symbol, err)
		}
		return notifier.FormatReport(symbol, doc, s.Now())
	case "/watch", "关注列表":
		return notifier.FormatWatchList(s.Watch)
	default:
		return notifier.FormatHelp()
	}
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendLong(s.Ctx, text, sendRetries); err != nil {
		s.Logger.Error().Err(err).Msg("Send notification failed")
	}
}
