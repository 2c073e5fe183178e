package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext_InvalidResponse(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	record := NewRecord("ubiquitous", DefaultParams())

	_, _, err := Next(record, Response("kinda"), now, DefaultParams())
	assert.ErrorIs(t, err, ErrInvalidResponse)

	_, _, err = Next(record, Response(""), now, DefaultParams())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestNext_NewWord(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	params := DefaultParams()

	tests := []struct {
		name           string
		response       Response
		wantInterval   int
		wantLapseCount int
		wantStreak     int
	}{
		{
			name:         "familiar enters learning with the initial interval",
			response:     ResponseFamiliar,
			wantInterval: 1,
			wantStreak:   1,
		},
		{
			name:         "vague enters learning with the initial interval",
			response:     ResponseVague,
			wantInterval: 1,
		},
		{
			name:           "unfamiliar enters learning and counts a lapse",
			response:       ResponseUnfamiliar,
			wantInterval:   1,
			wantLapseCount: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := NewRecord("ubiquitous", params)
			next, event, err := Next(record, tt.response, now, params)
			require.NoError(t, err)

			assert.Equal(t, StateLearning, next.State)
			assert.Equal(t, tt.wantInterval, next.IntervalDays)
			assert.Equal(t, tt.wantLapseCount, next.LapseCount)
			assert.Equal(t, tt.wantStreak, next.LearningStreak)
			assert.Equal(t, now.AddDate(0, 0, tt.wantInterval), next.DueAt)
			require.NotNil(t, next.LastReviewedAt)
			assert.Equal(t, now, *next.LastReviewedAt)
			assert.Equal(t, 1, next.ReviewCount)

			assert.Equal(t, StateNew, event.FromState)
			assert.Equal(t, StateLearning, event.ToState)
			assert.Equal(t, tt.response, event.Response)
		})
	}
}

func TestNext_Learning(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	params := DefaultParams()
	yesterday := now.AddDate(0, 0, -1)

	learning := MemoryRecord{
		Word:           "ubiquitous",
		State:          StateLearning,
		IntervalDays:   1,
		Ease:           params.DefaultEase,
		DueAt:          now,
		LearningStreak: 1,
		ReviewCount:    1,
		LastReviewedAt: &yesterday,
	}

	t.Run("second familiar graduates to review", func(t *testing.T) {
		next, event, err := Next(learning, ResponseFamiliar, now, params)
		require.NoError(t, err)
		assert.Equal(t, StateReview, next.State)
		assert.Equal(t, 1, next.IntervalDays)
		assert.Equal(t, 2, next.LearningStreak)
		assert.Equal(t, StateReview, event.ToState)
	})

	t.Run("familiar before graduation doubles the interval", func(t *testing.T) {
		record := learning
		record.LearningStreak = 0
		next, _, err := Next(record, ResponseFamiliar, now, params)
		require.NoError(t, err)
		assert.Equal(t, StateLearning, next.State)
		assert.Equal(t, 2, next.IntervalDays)
	})

	t.Run("vague repeats the step unchanged", func(t *testing.T) {
		next, _, err := Next(learning, ResponseVague, now, params)
		require.NoError(t, err)
		assert.Equal(t, StateLearning, next.State)
		assert.Equal(t, 1, next.IntervalDays)
		assert.Equal(t, 1, next.LearningStreak)
		assert.Equal(t, 0, next.LapseCount)
	})

	t.Run("unfamiliar resets the step and counts a lapse", func(t *testing.T) {
		next, _, err := Next(learning, ResponseUnfamiliar, now, params)
		require.NoError(t, err)
		assert.Equal(t, StateLearning, next.State)
		assert.Equal(t, params.MinIntervalDays, next.IntervalDays)
		assert.Equal(t, 0, next.LearningStreak)
		assert.Equal(t, 1, next.LapseCount)
	})
}

func TestNext_Review(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	params := DefaultParams()
	lastWeek := now.AddDate(0, 0, -10)

	review := MemoryRecord{
		Word:           "ubiquitous",
		State:          StateReview,
		IntervalDays:   10,
		Ease:           2.2,
		DueAt:          now,
		ReviewCount:    5,
		LastReviewedAt: &lastWeek,
	}

	t.Run("familiar multiplies the interval by the ease", func(t *testing.T) {
		next, _, err := Next(review, ResponseFamiliar, now, params)
		require.NoError(t, err)
		assert.Equal(t, StateReview, next.State)
		assert.Equal(t, 22, next.IntervalDays)
		assert.Equal(t, now.AddDate(0, 0, 22), next.DueAt)
	})

	t.Run("familiar clamps to the maximum interval", func(t *testing.T) {
		record := review
		record.IntervalDays = 300
		next, _, err := Next(record, ResponseFamiliar, now, params)
		require.NoError(t, err)
		assert.Equal(t, params.MaxIntervalDays, next.IntervalDays)
	})

	t.Run("familiar strictly increases the interval below the cap", func(t *testing.T) {
		record := review
		for _, days := range []int{1, 2, 7, 30, 100} {
			record.IntervalDays = days
			next, _, err := Next(record, ResponseFamiliar, now, params)
			require.NoError(t, err)
			assert.Greater(t, next.IntervalDays, days)
		}
	})

	t.Run("vague grows slowly and dents the ease", func(t *testing.T) {
		next, _, err := Next(review, ResponseVague, now, params)
		require.NoError(t, err)
		assert.Equal(t, StateReview, next.State)
		assert.Equal(t, 12, next.IntervalDays)
		assert.InDelta(t, 2.15, next.Ease, 1e-9)
	})

	t.Run("unfamiliar moves to relearning and resets the interval", func(t *testing.T) {
		next, _, err := Next(review, ResponseUnfamiliar, now, params)
		require.NoError(t, err)
		assert.Equal(t, StateRelearning, next.State)
		assert.Equal(t, params.MinIntervalDays, next.IntervalDays)
		assert.Equal(t, 1, next.LapseCount)
		assert.Equal(t, 10, next.PrelapseIntervalDays)
		assert.InDelta(t, 2.0, next.Ease, 1e-9)
	})
}

func TestNext_RelearningGraduation(t *testing.T) {
	now := time.Date(2025, 6, 20, 9, 0, 0, 0, time.UTC)
	params := DefaultParams()
	yesterday := now.AddDate(0, 0, -1)

	relearning := MemoryRecord{
		Word:                 "ubiquitous",
		State:                StateRelearning,
		IntervalDays:         1,
		Ease:                 2.0,
		DueAt:                now,
		LapseCount:           1,
		LearningStreak:       1,
		PrelapseIntervalDays: 20,
		ReviewCount:          8,
		LastReviewedAt:       &yesterday,
	}

	next, _, err := Next(relearning, ResponseFamiliar, now, params)
	require.NoError(t, err)

	assert.Equal(t, StateReview, next.State)
	// Re-entry at half the pre-lapse interval, never the pre-lapse value.
	assert.Equal(t, 10, next.IntervalDays)
	assert.Less(t, next.IntervalDays, 20)
	assert.Equal(t, 0, next.PrelapseIntervalDays)
	assert.Equal(t, 1, next.LapseCount)
}

func TestNext_DueAtMonotonicUnderClockSkew(t *testing.T) {
	params := DefaultParams()
	reviewedAt := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	skewedNow := reviewedAt.Add(-48 * time.Hour)

	record := MemoryRecord{
		Word:           "ubiquitous",
		State:          StateReview,
		IntervalDays:   3,
		Ease:           2.2,
		DueAt:          reviewedAt.AddDate(0, 0, 3),
		ReviewCount:    2,
		LastReviewedAt: &reviewedAt,
	}

	for _, response := range []Response{ResponseUnfamiliar, ResponseVague, ResponseFamiliar} {
		next, _, err := Next(record, response, skewedNow, params)
		require.NoError(t, err)
		assert.False(t, next.DueAt.Before(reviewedAt),
			"dueAt %s must not precede the record's last review %s", next.DueAt, reviewedAt)
		require.NotNil(t, next.LastReviewedAt)
		assert.False(t, next.DueAt.Before(*next.LastReviewedAt))
	}
}

func TestNext_Deterministic(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	params := DefaultParams()
	earlier := now.AddDate(0, 0, -4)
	record := MemoryRecord{
		Word:           "ubiquitous",
		State:          StateReview,
		IntervalDays:   4,
		Ease:           2.2,
		DueAt:          now,
		ReviewCount:    3,
		LastReviewedAt: &earlier,
	}

	first, firstEvent, err := Next(record, ResponseFamiliar, now, params)
	require.NoError(t, err)
	second, secondEvent, err := Next(record, ResponseFamiliar, now, params)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstEvent, secondEvent)
	// The input record is untouched.
	assert.Equal(t, 4, record.IntervalDays)
	assert.Equal(t, StateReview, record.State)
}

func TestNext_UnfamiliarAlwaysCountsOneLapse(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	params := DefaultParams()
	earlier := now.AddDate(0, 0, -2)

	records := []MemoryRecord{
		NewRecord("ubiquitous", params),
		{Word: "a", State: StateLearning, IntervalDays: 2, Ease: 2.2, LastReviewedAt: &earlier},
		{Word: "b", State: StateReview, IntervalDays: 14, Ease: 2.2, LapseCount: 2, LastReviewedAt: &earlier},
		{Word: "c", State: StateRelearning, IntervalDays: 1, Ease: 1.8, LapseCount: 1, LastReviewedAt: &earlier},
	}
	for _, record := range records {
		next, _, err := Next(record, ResponseUnfamiliar, now, params)
		require.NoError(t, err)
		assert.Equal(t, record.LapseCount+1, next.LapseCount, "word %s", record.Word)
		assert.Equal(t, params.MinIntervalDays, next.IntervalDays, "word %s", record.Word)
	}
}
