package review_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_review "github.com/xdrxdrxd/wordlab/internal/mocks/review"
	"github.com/xdrxdrxd/wordlab/internal/review"
	"github.com/xdrxdrxd/wordlab/internal/scheduler"
)

func dueAt(t time.Time) *time.Time {
	return &t
}

func TestOrderQueue(t *testing.T) {
	now := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		due       []review.DueWord
		newBudget int
		maxRank   int
		queueSize int
		wantWords []string
	}{
		{
			name: "most overdue first, then rank, then word",
			due: []review.DueWord{
				{Word: "luggage", FrequencyRank: 3000, State: scheduler.StateReview, DueAt: dueAt(now.AddDate(0, 0, -1))},
				{Word: "harvest", FrequencyRank: 1200, State: scheduler.StateReview, DueAt: dueAt(now.AddDate(0, 0, -1))},
				{Word: "whisper", FrequencyRank: 5000, State: scheduler.StateLearning, DueAt: dueAt(now.AddDate(0, 0, -4))},
			},
			newBudget: 10,
			queueSize: 20,
			wantWords: []string{"whisper", "harvest", "luggage"},
		},
		{
			name: "same overdue-ness and rank breaks ties by word",
			due: []review.DueWord{
				{Word: "borrow", FrequencyRank: 900, State: scheduler.StateReview, DueAt: dueAt(now)},
				{Word: "absorb", FrequencyRank: 900, State: scheduler.StateReview, DueAt: dueAt(now)},
			},
			newBudget: 10,
			queueSize: 20,
			wantWords: []string{"absorb", "borrow"},
		},
		{
			name: "new words follow scheduled ones ordered by rank",
			due: []review.DueWord{
				{Word: "seldom", FrequencyRank: 4000, State: scheduler.StateNew},
				{Word: "harvest", FrequencyRank: 1200, State: scheduler.StateReview, DueAt: dueAt(now.AddDate(0, 0, -2))},
				{Word: "onion", FrequencyRank: 2500, State: scheduler.StateNew},
			},
			newBudget: 10,
			queueSize: 20,
			wantWords: []string{"harvest", "onion", "seldom"},
		},
		{
			name: "new budget bounds injection",
			due: []review.DueWord{
				{Word: "seldom", FrequencyRank: 4000, State: scheduler.StateNew},
				{Word: "onion", FrequencyRank: 2500, State: scheduler.StateNew},
				{Word: "tandem", FrequencyRank: 8000, State: scheduler.StateNew},
			},
			newBudget: 2,
			queueSize: 20,
			wantWords: []string{"onion", "seldom"},
		},
		{
			name: "max rank filters rare new words but not scheduled ones",
			due: []review.DueWord{
				{Word: "sesquipedalian", FrequencyRank: 90000, State: scheduler.StateNew},
				{Word: "onion", FrequencyRank: 2500, State: scheduler.StateNew},
				{Word: "rarely", FrequencyRank: 60000, State: scheduler.StateReview, DueAt: dueAt(now.AddDate(0, 0, -1))},
			},
			newBudget: 10,
			maxRank:   10000,
			queueSize: 20,
			wantWords: []string{"rarely", "onion"},
		},
		{
			name: "queue size truncates after ordering",
			due: []review.DueWord{
				{Word: "harvest", FrequencyRank: 1200, State: scheduler.StateReview, DueAt: dueAt(now.AddDate(0, 0, -3))},
				{Word: "luggage", FrequencyRank: 3000, State: scheduler.StateReview, DueAt: dueAt(now.AddDate(0, 0, -1))},
				{Word: "onion", FrequencyRank: 2500, State: scheduler.StateNew},
			},
			newBudget: 10,
			queueSize: 2,
			wantWords: []string{"harvest", "luggage"},
		},
		{
			name:      "empty due set",
			due:       nil,
			newBudget: 10,
			queueSize: 20,
			wantWords: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := review.OrderQueue(tt.due, now, tt.newBudget, tt.maxRank, tt.queueSize)
			words := make([]string, 0, len(got))
			for _, d := range got {
				words = append(words, d.Word)
			}
			assert.Equal(t, tt.wantWords, words)
		})
	}
}

func TestSelector_BuildQueue(t *testing.T) {
	now := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
	midnight := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	t.Run("consumes the daily new budget from the audit history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mock_review.NewMockStore(ctrl)
		store.EXPECT().CountNewSince(gomock.Any(), midnight).Return(9, nil)
		store.EXPECT().FindDue(gomock.Any(), now, 1000).Return([]review.DueWord{
			{Word: "onion", FrequencyRank: 2500, State: scheduler.StateNew},
			{Word: "seldom", FrequencyRank: 4000, State: scheduler.StateNew},
			{Word: "harvest", FrequencyRank: 1200, State: scheduler.StateReview, DueAt: dueAt(now.AddDate(0, 0, -1))},
		}, nil)

		selector := review.NewSelector(store, review.SelectorParams{DailyNewLimit: 10})
		queue, err := selector.BuildQueue(context.Background(), now)
		require.NoError(t, err)

		// 10 - 9 already reviewed today leaves room for one new word.
		require.Len(t, queue, 2)
		assert.Equal(t, "harvest", queue[0].Word)
		assert.Equal(t, "onion", queue[1].Word)
	})

	t.Run("exhausted budget injects nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mock_review.NewMockStore(ctrl)
		store.EXPECT().CountNewSince(gomock.Any(), midnight).Return(25, nil)
		store.EXPECT().FindDue(gomock.Any(), now, 1000).Return([]review.DueWord{
			{Word: "onion", FrequencyRank: 2500, State: scheduler.StateNew},
		}, nil)

		selector := review.NewSelector(store, review.SelectorParams{DailyNewLimit: 10})
		queue, err := selector.BuildQueue(context.Background(), now)
		require.NoError(t, err)
		assert.Empty(t, queue)
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mock_review.NewMockStore(ctrl)
		store.EXPECT().CountNewSince(gomock.Any(), midnight).
			Return(0, fmt.Errorf("db.GetContext(count new reviews) > %w",
				errors.Join(errors.New("database is locked"), review.ErrStorage)))

		selector := review.NewSelector(store, review.SelectorParams{})
		_, err := selector.BuildQueue(context.Background(), now)
		require.Error(t, err)
		assert.ErrorIs(t, err, review.ErrStorage)
	})
}
