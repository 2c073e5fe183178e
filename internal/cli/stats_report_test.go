package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_review "github.com/xdrxdrxd/wordlab/internal/mocks/review"
	mock_word "github.com/xdrxdrxd/wordlab/internal/mocks/word"
	"github.com/xdrxdrxd/wordlab/internal/review"
	"github.com/xdrxdrxd/wordlab/internal/scheduler"
)

func TestRunStatsReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reviewedAt := time.Date(2026, 8, 12, 10, 0, 0, 0, time.UTC)

	wordRepo := mock_word.NewMockRepository(ctrl)
	wordRepo.EXPECT().Count(gomock.Any()).Return(120, nil)

	store := mock_review.NewMockStore(ctrl)
	store.EXPECT().CountByState(gomock.Any()).Return(map[scheduler.State]int{
		scheduler.StateNew:      2,
		scheduler.StateLearning: 5,
		scheduler.StateReview:   30,
	}, nil)
	store.EXPECT().CountMastered(gomock.Any()).Return(3, nil)
	store.EXPECT().FindDue(gomock.Any(), gomock.Any(), gomock.Any()).Return([]review.DueWord{
		{Word: "harvest"}, {Word: "luggage"},
	}, nil)
	store.EXPECT().FindEvents(gomock.Any()).Return([]scheduler.ReviewEvent{
		{
			Word:       "harvest",
			Response:   scheduler.ResponseFamiliar,
			ReviewedAt: reviewedAt,
			FromState:  scheduler.StateNew,
			ToState:    scheduler.StateLearning,
		},
		{
			Word:       "luggage",
			Response:   scheduler.ResponseUnfamiliar,
			ReviewedAt: reviewedAt.Add(time.Minute),
			FromState:  scheduler.StateReview,
			ToState:    scheduler.StateRelearning,
		},
	}, nil)

	var out bytes.Buffer
	err := RunStatsReport(context.Background(), wordRepo, store, &out, 0, 0)
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "Words:       120")
	// 120 words minus 37 tracked minus 3 mastered, plus 2 records still new.
	assert.Contains(t, got, "New:         82")
	assert.Contains(t, got, "Learning:    5")
	assert.Contains(t, got, "Review:      30")
	assert.Contains(t, got, "Mastered:    3")
	assert.Contains(t, got, "Due now:     2")
	assert.Contains(t, got, "2026-08")
	assert.Contains(t, got, "2 / 2")
	assert.Contains(t, got, "Totals:")
}
