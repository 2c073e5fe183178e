package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsWithDefaults(t *testing.T) {
	t.Run("zero params become the reference policy", func(t *testing.T) {
		assert.Equal(t, DefaultParams(), Params{}.withDefaults())
	})

	t.Run("configured fields survive", func(t *testing.T) {
		p := Params{MaxIntervalDays: 30, GraduationStreak: 3}.withDefaults()
		assert.Equal(t, 30, p.MaxIntervalDays)
		assert.Equal(t, 3, p.GraduationStreak)
		assert.Equal(t, DefaultEase, p.DefaultEase)
	})

	t.Run("out of range reentry factor falls back", func(t *testing.T) {
		p := Params{LapseReentryFactor: 1.5}.withDefaults()
		assert.Equal(t, DefaultLapseReentryFactor, p.LapseReentryFactor)
	})
}

func TestNext_ZeroParamsUsable(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	next, _, err := Next(NewRecord("ubiquitous", Params{}), ResponseFamiliar, now, Params{})
	require.NoError(t, err)
	assert.Equal(t, StateLearning, next.State)
	assert.Equal(t, DefaultInitialIntervalDays, next.IntervalDays)
}
