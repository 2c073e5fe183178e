// Package scheduler implements the spaced repetition scheduling core.
// Next is a pure function: given a memory record, a familiarity response
// and the current time, it returns the next record and the audit event
// without touching any storage.
package scheduler

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// State represents where a word sits in the learning lifecycle.
type State string

const (
	StateNew        State = "new"
	StateLearning   State = "learning"
	StateReview     State = "review"
	StateRelearning State = "relearning"
)

// Response is the learner's familiarity judgment for one card.
type Response string

const (
	ResponseUnfamiliar Response = "unfamiliar"
	ResponseVague      Response = "vague"
	ResponseFamiliar   Response = "familiar"
)

// ErrInvalidResponse is returned when a response outside the three
// familiarity judgments is passed to Next. The caller must not persist
// anything in that case.
var ErrInvalidResponse = errors.New("scheduler: invalid response")

// MemoryRecord is the scheduling state for a single word.
// A record in StateNew has a zero DueAt and a nil LastReviewedAt;
// every other state has a due date.
type MemoryRecord struct {
	Word                 string     `db:"word"`
	State                State      `db:"state"`
	IntervalDays         int        `db:"interval_days"`
	Ease                 float64    `db:"ease"`
	DueAt                time.Time  `db:"due_at"`
	LapseCount           int        `db:"lapse_count"`
	ReviewCount          int        `db:"review_count"`
	LearningStreak       int        `db:"learning_streak"`
	PrelapseIntervalDays int        `db:"prelapse_interval_days"`
	LastReviewedAt       *time.Time `db:"last_reviewed_at"`
}

// ReviewEvent is the append-only audit record for one review.
type ReviewEvent struct {
	Word         string    `db:"word"`
	Response     Response  `db:"response"`
	ReviewedAt   time.Time `db:"reviewed_at"`
	FromState    State     `db:"from_state"`
	ToState      State     `db:"to_state"`
	IntervalDays int       `db:"interval_days"`
}

// NewRecord returns the default record for a word that has never been
// reviewed. It is eligible for review immediately.
func NewRecord(word string, params Params) MemoryRecord {
	return MemoryRecord{
		Word:  word,
		State: StateNew,
		Ease:  params.DefaultEase,
	}
}

func validResponse(response Response) bool {
	switch response {
	case ResponseUnfamiliar, ResponseVague, ResponseFamiliar:
		return true
	}
	return false
}

// Next computes the record resulting from one review. It never mutates
// the input record and is deterministic for identical inputs.
func Next(record MemoryRecord, response Response, now time.Time, params Params) (MemoryRecord, ReviewEvent, error) {
	if !validResponse(response) {
		return MemoryRecord{}, ReviewEvent{}, fmt.Errorf("response %q > %w", response, ErrInvalidResponse)
	}
	params = params.withDefaults()

	next := record
	if next.Ease == 0 {
		next.Ease = params.DefaultEase
	}

	switch record.State {
	case StateNew:
		// The first review always enters Learning with the initial
		// interval, whatever the response was.
		next.State = StateLearning
		next.IntervalDays = params.InitialIntervalDays
		if response == ResponseFamiliar {
			next.LearningStreak = 1
		} else {
			next.LearningStreak = 0
		}
		if response == ResponseUnfamiliar {
			next.LapseCount++
		}

	case StateLearning, StateRelearning:
		switch response {
		case ResponseFamiliar:
			next.LearningStreak++
			if next.LearningStreak >= params.GraduationStreak {
				next = graduate(next, record.State, params)
			} else {
				next.IntervalDays = clampInterval(record.IntervalDays*2, params)
			}
		case ResponseVague:
			// Repeat the step; no progress toward graduation.
			next.IntervalDays = clampInterval(record.IntervalDays, params)
		case ResponseUnfamiliar:
			next.LearningStreak = 0
			next.IntervalDays = params.InitialIntervalDays
			next.LapseCount++
			next.Ease = clampEase(next.Ease-params.UnfamiliarEasePenalty, params)
		}

	case StateReview:
		switch response {
		case ResponseFamiliar:
			grown := int(math.Ceil(float64(record.IntervalDays) * next.Ease))
			if grown <= record.IntervalDays {
				grown = record.IntervalDays + 1
			}
			next.IntervalDays = clampInterval(grown, params)
		case ResponseVague:
			next.IntervalDays = clampInterval(int(math.Ceil(float64(record.IntervalDays)*params.VagueGrowth)), params)
			next.Ease = clampEase(next.Ease-params.VagueEasePenalty, params)
		case ResponseUnfamiliar:
			next.State = StateRelearning
			next.PrelapseIntervalDays = record.IntervalDays
			next.IntervalDays = params.InitialIntervalDays
			next.LapseCount++
			next.LearningStreak = 0
			next.Ease = clampEase(next.Ease-params.UnfamiliarEasePenalty, params)
		}

	default:
		return MemoryRecord{}, ReviewEvent{}, fmt.Errorf("state %q > %w", record.State, ErrInvalidResponse)
	}

	next.ReviewCount++
	reviewedAt := now
	next.LastReviewedAt = &reviewedAt
	next.DueAt = nextDueAt(record, next.IntervalDays, now)

	event := ReviewEvent{
		Word:         record.Word,
		Response:     response,
		ReviewedAt:   now,
		FromState:    record.State,
		ToState:      next.State,
		IntervalDays: next.IntervalDays,
	}
	return next, event, nil
}

// graduate moves a Learning or Relearning record into Review.
// After a lapse the word re-enters Review at a fraction of the interval
// it held before forgetting, never at the pre-lapse interval itself.
func graduate(next MemoryRecord, from State, params Params) MemoryRecord {
	next.State = StateReview
	if from == StateRelearning && next.PrelapseIntervalDays > 0 {
		reentry := int(math.Ceil(float64(next.PrelapseIntervalDays) * params.LapseReentryFactor))
		if reentry >= next.PrelapseIntervalDays {
			reentry = next.PrelapseIntervalDays - 1
		}
		next.IntervalDays = clampInterval(reentry, params)
		next.PrelapseIntervalDays = 0
	} else {
		next.IntervalDays = clampInterval(next.IntervalDays, params)
	}
	return next
}

// nextDueAt keeps DueAt monotonically non-decreasing relative to the
// record's own history even when the wall clock went backwards.
func nextDueAt(record MemoryRecord, intervalDays int, now time.Time) time.Time {
	base := now
	if record.LastReviewedAt != nil && now.Before(*record.LastReviewedAt) {
		base = *record.LastReviewedAt
	}
	return base.AddDate(0, 0, intervalDays)
}

func clampInterval(days int, params Params) int {
	if days < params.MinIntervalDays {
		return params.MinIntervalDays
	}
	if days > params.MaxIntervalDays {
		return params.MaxIntervalDays
	}
	return days
}

func clampEase(ease float64, params Params) float64 {
	return math.Min(math.Max(ease, params.MinEase), params.MaxEase)
}
