package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

func reportCmd() *cobra.Command {
	var endDate string
	cmd := &cobra.Command{
		Use:   "report SYMBOL",
		Short: "Print the research report for a symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			end, err := parseEndDate(endDate)
			if err != nil {
				return err
			}
			_, _, svc, err := setup()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			doc, err := svc.Research(ctx, args[0], end)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), doc)
			return nil
		},
	}
	cmd.Flags().StringVarP(&endDate, "end", "e", "", "Last date of history, YYYY-MM-DD (defaults to today)")
	return cmd
}

// parseEndDate accepts an empty string as "latest".
func parseEndDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid end date %q, want YYYY-MM-DD", s)
	}
	return t, nil
}
