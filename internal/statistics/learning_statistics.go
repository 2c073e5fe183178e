// Package statistics computes learning statistics from the review event
// history.
package statistics

import (
	"fmt"
	"sort"

	"github.com/xdrxdrxd/wordlab/internal/scheduler"
)

// LearningStatistics holds statistics for a time period
type LearningStatistics struct {
	Period        string // "2026-08" for monthly
	NewWordsCount int    // First reviews of words never seen before
	ReviewsCount  int    // Total reviews in the period
	ReviewsUnique int    // Unique words reviewed in the period
	LapsesCount   int    // Reviews answered as unfamiliar
}

// AggregateStatistics holds totals across all periods with global unique counts
type AggregateStatistics struct {
	NewWordsCount int // Total first reviews across all periods
	ReviewsCount  int // Total reviews across all periods
	ReviewsUnique int // Unique words reviewed (deduplicated across periods)
	LapsesCount   int // Total unfamiliar reviews across all periods
}

// StatisticsResult holds both per-period and aggregate statistics
type StatisticsResult struct {
	Periods   []LearningStatistics
	Aggregate AggregateStatistics
}

// periodData tracks counts per period
type periodData struct {
	newWordsTotal int
	reviewsTotal  int
	reviewsUnique map[string]struct{}
	lapsesTotal   int
}

// CalculateStatistics calculates learning statistics from review events.
// It accepts optional year and month filters (0 means no filter).
// A "new word" is counted when a word is reviewed out of the New state;
// a "lapse" is counted for every unfamiliar response.
func CalculateStatistics(events []scheduler.ReviewEvent, year, month int) StatisticsResult {
	stats := make(map[string]*periodData)
	globalReviewsUnique := make(map[string]struct{})

	for _, event := range events {
		if event.ReviewedAt.IsZero() {
			continue
		}

		eventYear := event.ReviewedAt.Year()
		eventMonth := int(event.ReviewedAt.Month())
		if !matchesFilter(eventYear, eventMonth, year, month) {
			continue
		}

		period := fmt.Sprintf("%d-%02d", eventYear, eventMonth)
		ensurePeriodExists(stats, period)

		stats[period].reviewsTotal++
		stats[period].reviewsUnique[event.Word] = struct{}{}
		globalReviewsUnique[event.Word] = struct{}{}

		if event.FromState == scheduler.StateNew {
			stats[period].newWordsTotal++
		}
		if event.Response == scheduler.ResponseUnfamiliar {
			stats[period].lapsesTotal++
		}
	}

	return buildResult(stats, globalReviewsUnique)
}

func ensurePeriodExists(stats map[string]*periodData, period string) {
	if stats[period] == nil {
		stats[period] = &periodData{
			reviewsUnique: make(map[string]struct{}),
		}
	}
}

func matchesFilter(eventYear, eventMonth, filterYear, filterMonth int) bool {
	if filterYear == 0 {
		return true
	}
	if eventYear != filterYear {
		return false
	}
	if filterMonth == 0 {
		return true
	}
	return eventMonth == filterMonth
}

func buildResult(stats map[string]*periodData, globalReviewsUnique map[string]struct{}) StatisticsResult {
	periods := make([]LearningStatistics, 0, len(stats))

	var totalNewWords, totalReviews, totalLapses int
	for period, data := range stats {
		periods = append(periods, LearningStatistics{
			Period:        period,
			NewWordsCount: data.newWordsTotal,
			ReviewsCount:  data.reviewsTotal,
			ReviewsUnique: len(data.reviewsUnique),
			LapsesCount:   data.lapsesTotal,
		})
		totalNewWords += data.newWordsTotal
		totalReviews += data.reviewsTotal
		totalLapses += data.lapsesTotal
	}

	// Sort by period descending (newest first)
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Period > periods[j].Period
	})

	return StatisticsResult{
		Periods: periods,
		Aggregate: AggregateStatistics{
			NewWordsCount: totalNewWords,
			ReviewsCount:  totalReviews,
			ReviewsUnique: len(globalReviewsUnique),
			LapsesCount:   totalLapses,
		},
	}
}
