package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"StockResearch/internal/notifier"
	"StockResearch/internal/scheduler"
)

func botCmd() *cobra.Command {
	var runNow bool
	cmd := &cobra.Command{
		Use:   "bot",
		Short: "Push scheduled reports to Telegram and answer /report commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, svc, err := setup()
			if err != nil {
				return err
			}
			if err := cfg.ValidateBot(); err != nil {
				return fmt.Errorf("config validation: %w", err)
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, logger)

			sched := scheduler.NewScheduler(ctx, svc, tn, cfg.Watch, logger)
			if err := sched.RegisterAll(cfg.Schedule.ReportCron); err != nil {
				return err
			}
			sched.Start()
			defer sched.Stop()

			go tn.StartPolling(ctx, sched.HandleCommand)
			logger.Info().Msg("Telegram polling started")

			if runNow || os.Getenv("RUN_ON_START") == "true" {
				logger.Info().Msg("Running report task now")
				go sched.RunReportsNow()
			}

			logger.Info().Str("cron", cfg.Schedule.ReportCron).Msg("Bot is running. Press Ctrl+C to stop.")

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			<-sigCh

			logger.Info().Msg("Shutdown signal received, stopping")
			cancel()
			return nil
		},
	}
	cmd.Flags().BoolVar(&runNow, "run-now", false, "Push reports once at startup")
	return cmd
}
