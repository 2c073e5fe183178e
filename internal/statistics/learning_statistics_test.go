package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/xdrxdrxd/wordlab/internal/scheduler"
)

func TestCalculateStatistics(t *testing.T) {
	july := time.Date(2026, 7, 15, 10, 0, 0, 0, time.UTC)
	august := time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC)

	events := []scheduler.ReviewEvent{
		{Word: "harvest", Response: scheduler.ResponseFamiliar, ReviewedAt: july, FromState: scheduler.StateNew, ToState: scheduler.StateLearning},
		{Word: "luggage", Response: scheduler.ResponseUnfamiliar, ReviewedAt: july, FromState: scheduler.StateNew, ToState: scheduler.StateLearning},
		{Word: "harvest", Response: scheduler.ResponseFamiliar, ReviewedAt: july.Add(24 * time.Hour), FromState: scheduler.StateLearning, ToState: scheduler.StateLearning},
		{Word: "harvest", Response: scheduler.ResponseFamiliar, ReviewedAt: august, FromState: scheduler.StateLearning, ToState: scheduler.StateReview},
		{Word: "luggage", Response: scheduler.ResponseUnfamiliar, ReviewedAt: august, FromState: scheduler.StateReview, ToState: scheduler.StateRelearning},
		// Zero timestamps are ignored
		{Word: "bogus", Response: scheduler.ResponseFamiliar, FromState: scheduler.StateNew},
	}

	tests := []struct {
		name  string
		year  int
		month int
		want  StatisticsResult
	}{
		{
			name: "no filter, newest period first",
			want: StatisticsResult{
				Periods: []LearningStatistics{
					{Period: "2026-08", NewWordsCount: 0, ReviewsCount: 2, ReviewsUnique: 2, LapsesCount: 1},
					{Period: "2026-07", NewWordsCount: 2, ReviewsCount: 3, ReviewsUnique: 2, LapsesCount: 1},
				},
				Aggregate: AggregateStatistics{NewWordsCount: 2, ReviewsCount: 5, ReviewsUnique: 2, LapsesCount: 2},
			},
		},
		{
			name:  "filter to one month",
			year:  2026,
			month: 8,
			want: StatisticsResult{
				Periods: []LearningStatistics{
					{Period: "2026-08", NewWordsCount: 0, ReviewsCount: 2, ReviewsUnique: 2, LapsesCount: 1},
				},
				Aggregate: AggregateStatistics{NewWordsCount: 0, ReviewsCount: 2, ReviewsUnique: 2, LapsesCount: 1},
			},
		},
		{
			name: "filter to a year",
			year: 2026,
			want: StatisticsResult{
				Periods: []LearningStatistics{
					{Period: "2026-08", NewWordsCount: 0, ReviewsCount: 2, ReviewsUnique: 2, LapsesCount: 1},
					{Period: "2026-07", NewWordsCount: 2, ReviewsCount: 3, ReviewsUnique: 2, LapsesCount: 1},
				},
				Aggregate: AggregateStatistics{NewWordsCount: 2, ReviewsCount: 5, ReviewsUnique: 2, LapsesCount: 2},
			},
		},
		{
			name: "filter with no matching events",
			year: 2020,
			want: StatisticsResult{
				Periods:   []LearningStatistics{},
				Aggregate: AggregateStatistics{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateStatistics(events, tt.year, tt.month)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateStatistics_Empty(t *testing.T) {
	got := CalculateStatistics(nil, 0, 0)
	assert.Empty(t, got.Periods)
	assert.Equal(t, AggregateStatistics{}, got.Aggregate)
}
