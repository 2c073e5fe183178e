package review

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/xdrxdrxd/wordlab/internal/scheduler"
)

const (
	DefaultQueueSize     = 20
	DefaultDailyNewLimit = 10

	// dueCandidateLimit bounds how many due rows are pulled from the
	// store before ordering; far more than one sitting ever shows.
	dueCandidateLimit = 1000
)

// SelectorParams controls how a session queue is built.
type SelectorParams struct {
	// QueueSize is the maximum number of cards in one sitting.
	QueueSize int `mapstructure:"queue_size"`

	// DailyNewLimit caps how many never-reviewed words are injected per
	// calendar day, counted across sessions.
	DailyNewLimit int `mapstructure:"daily_new_limit"`

	// NewWordMaxRank, when positive, restricts injection to words within
	// the top N of the frequency dataset.
	NewWordMaxRank int `mapstructure:"new_word_max_rank"`
}

func (p SelectorParams) withDefaults() SelectorParams {
	if p.QueueSize <= 0 {
		p.QueueSize = DefaultQueueSize
	}
	if p.DailyNewLimit < 0 {
		p.DailyNewLimit = DefaultDailyNewLimit
	}
	return p
}

// Selector builds the ordered review queue for one sitting.
type Selector struct {
	store  Store
	params SelectorParams
}

// NewSelector creates a new Selector.
func NewSelector(store Store, params SelectorParams) *Selector {
	return &Selector{store: store, params: params.withDefaults()}
}

// BuildQueue queries the due set and orders it for presentation. The
// remaining new-word budget for the day is consumed from the store's
// audit history, so restarting a session cannot bypass the daily cap.
func (s *Selector) BuildQueue(ctx context.Context, now time.Time) ([]DueWord, error) {
	usedToday, err := s.store.CountNewSince(ctx, startOfDay(now))
	if err != nil {
		return nil, fmt.Errorf("store.CountNewSince() > %w", err)
	}
	newBudget := s.params.DailyNewLimit - usedToday
	if newBudget < 0 {
		newBudget = 0
	}

	due, err := s.store.FindDue(ctx, now, dueCandidateLimit)
	if err != nil {
		return nil, fmt.Errorf("store.FindDue() > %w", err)
	}

	return OrderQueue(due, now, newBudget, s.params.NewWordMaxRank, s.params.QueueSize), nil
}

// OrderQueue applies the session ordering policy:
// scheduled words first, most overdue first, then by frequency rank
// ascending (common words carry more practical value per review), then
// by word ascending for a deterministic order. New words follow, by
// rank then word, bounded by newBudget and optionally by maxRank.
func OrderQueue(due []DueWord, now time.Time, newBudget, maxRank, queueSize int) []DueWord {
	var scheduled, fresh []DueWord
	for _, d := range due {
		if d.State == scheduler.StateNew {
			if maxRank > 0 && d.FrequencyRank > maxRank {
				continue
			}
			fresh = append(fresh, d)
			continue
		}
		scheduled = append(scheduled, d)
	}

	sort.SliceStable(scheduled, func(i, j int) bool {
		oi, oj := overdueDays(scheduled[i], now), overdueDays(scheduled[j], now)
		if oi != oj {
			return oi > oj
		}
		if scheduled[i].FrequencyRank != scheduled[j].FrequencyRank {
			return scheduled[i].FrequencyRank < scheduled[j].FrequencyRank
		}
		return scheduled[i].Word < scheduled[j].Word
	})

	sort.SliceStable(fresh, func(i, j int) bool {
		if fresh[i].FrequencyRank != fresh[j].FrequencyRank {
			return fresh[i].FrequencyRank < fresh[j].FrequencyRank
		}
		return fresh[i].Word < fresh[j].Word
	})
	if len(fresh) > newBudget {
		fresh = fresh[:newBudget]
	}

	queue := append(scheduled, fresh...)
	if queueSize > 0 && len(queue) > queueSize {
		queue = queue[:queueSize]
	}
	return queue
}

func overdueDays(d DueWord, now time.Time) int {
	if d.DueAt == nil {
		return 0
	}
	days := int(now.Sub(*d.DueAt).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func startOfDay(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
