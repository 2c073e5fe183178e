package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/xdrxdrxd/wordlab/internal/review"
	"github.com/xdrxdrxd/wordlab/internal/scheduler"
	"github.com/xdrxdrxd/wordlab/internal/statistics"
	"github.com/xdrxdrxd/wordlab/internal/word"
)

// dueScanLimit bounds the due query for the "Due now" count. A single
// user's vocabulary stays far below this.
const dueScanLimit = 100000

// RunStatsReport displays the database counts and the per-period review
// statistics computed from the audit trail.
func RunStatsReport(
	ctx context.Context,
	wordRepo word.Repository,
	store review.Store,
	w io.Writer,
	year, month int,
) error {
	totalWords, err := wordRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("wordRepo.Count() > %w", err)
	}
	byState, err := store.CountByState(ctx)
	if err != nil {
		return fmt.Errorf("store.CountByState() > %w", err)
	}
	mastered, err := store.CountMastered(ctx)
	if err != nil {
		return fmt.Errorf("store.CountMastered() > %w", err)
	}
	due, err := store.FindDue(ctx, time.Now(), dueScanLimit)
	if err != nil {
		return fmt.Errorf("store.FindDue() > %w", err)
	}

	tracked := 0
	for _, count := range byState {
		tracked += count
	}

	fmt.Fprintln(w, "Database")
	fmt.Fprintln(w, "========")
	fmt.Fprintf(w, "%-12s %d\n", "Words:", totalWords)
	fmt.Fprintf(w, "%-12s %d\n", "New:", totalWords-tracked-mastered+byState[scheduler.StateNew])
	fmt.Fprintf(w, "%-12s %d\n", "Learning:", byState[scheduler.StateLearning])
	fmt.Fprintf(w, "%-12s %d\n", "Review:", byState[scheduler.StateReview])
	fmt.Fprintf(w, "%-12s %d\n", "Relearning:", byState[scheduler.StateRelearning])
	fmt.Fprintf(w, "%-12s %d\n", "Mastered:", mastered)
	fmt.Fprintf(w, "%-12s %d\n", "Due now:", len(due))

	events, err := store.FindEvents(ctx)
	if err != nil {
		return fmt.Errorf("store.FindEvents() > %w", err)
	}
	result := statistics.CalculateStatistics(events, year, month)

	fmt.Fprintln(w)
	if len(result.Periods) == 0 {
		fmt.Fprintln(w, "No review records found for the specified period.")
		return nil
	}

	fmt.Fprintln(w, "Review Statistics Report")
	fmt.Fprintln(w, "========================")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-10s  %-11s  %-24s  %-8s\n", "Period", "New Words", "Reviews (Total/Unique)", "Lapses")
	fmt.Fprintf(w, "%-10s  %-11s  %-24s  %-8s\n", "------", "---------", "----------------------", "------")

	for _, s := range result.Periods {
		fmt.Fprintf(w, "%-10s  %-11d  %-24s  %-8d\n",
			s.Period,
			s.NewWordsCount,
			fmt.Sprintf("%d / %d", s.ReviewsCount, s.ReviewsUnique),
			s.LapsesCount,
		)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-10s  %-11d  %-24s  %-8d\n",
		"Totals:",
		result.Aggregate.NewWordsCount,
		fmt.Sprintf("%d / %d", result.Aggregate.ReviewsCount, result.Aggregate.ReviewsUnique),
		result.Aggregate.LapsesCount,
	)

	return nil
}
