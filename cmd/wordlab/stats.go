package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xdrxdrxd/wordlab/internal/cli"
	"github.com/xdrxdrxd/wordlab/internal/review"
	"github.com/xdrxdrxd/wordlab/internal/word"
)

func newStatsCommand() *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show database counts and per-month review statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if month != 0 && year == 0 {
				return fmt.Errorf("--month requires --year to be specified")
			}
			if month < 0 || month > 12 {
				return fmt.Errorf("--month must be between 1 and 12")
			}

			ctx := cmd.Context()

			_, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			return cli.RunStatsReport(
				ctx,
				word.NewDBRepository(db),
				review.NewDBStore(db),
				os.Stdout,
				year, month,
			)
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Filter by year (e.g., 2026)")
	cmd.Flags().IntVar(&month, "month", 0, "Filter by month (1-12), requires --year")

	return cmd
}
