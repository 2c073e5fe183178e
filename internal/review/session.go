package review

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xdrxdrxd/wordlab/internal/enrichment"
	"github.com/xdrxdrxd/wordlab/internal/scheduler"
)

const defaultPrefetchAhead = 3

// Card is what the presentation layer shows for one review: the word
// plus whatever enrichment is cached right now. Enrichment may be empty;
// scheduling never depends on it.
type Card struct {
	Word          string
	FrequencyRank int
	State         scheduler.State
	Enrichment    []enrichment.Enrichment
	Position      int
	Total         int
}

//go:generate mockgen -source=session.go -destination=../mocks/review/mock_session_deps.go -package=mock_review

// EnrichmentSource is the read side of the enrichment cache.
type EnrichmentSource interface {
	Find(ctx context.Context, word string) ([]enrichment.Enrichment, error)
}

// PrefetchScheduler schedules background enrichment fetches.
type PrefetchScheduler interface {
	Prefetch(ctx context.Context, words []string)
}

// Session drives one sitting over a precomputed queue. Every answered
// card is persisted before the next one is shown, so an interruption
// loses at most the in-flight unanswered card.
type Session struct {
	store         Store
	enrichments   EnrichmentSource
	prefetcher    PrefetchScheduler
	params        scheduler.Params
	prefetchAhead int
	now           func() time.Time

	queue    []DueWord
	position int
}

// NewSession creates a session over an already ordered queue.
// prefetcher may be nil when enrichment is disabled.
func NewSession(
	store Store,
	enrichments EnrichmentSource,
	prefetcher PrefetchScheduler,
	params scheduler.Params,
	queue []DueWord,
) *Session {
	return &Session{
		store:         store,
		enrichments:   enrichments,
		prefetcher:    prefetcher,
		params:        params,
		prefetchAhead: defaultPrefetchAhead,
		now:           time.Now,
		queue:         queue,
	}
}

// Total returns the number of cards in the sitting.
func (s *Session) Total() int {
	return len(s.queue)
}

// Remaining returns the number of unanswered cards.
func (s *Session) Remaining() int {
	return len(s.queue) - s.position
}

// NextCard returns the current card, or nil when the queue is exhausted.
// A missing or failing enrichment lookup degrades to a bare card; it
// never blocks or fails the review.
func (s *Session) NextCard(ctx context.Context) (*Card, error) {
	if s.position >= len(s.queue) {
		return nil, nil
	}
	current := s.queue[s.position]

	if s.prefetcher != nil {
		s.prefetcher.Prefetch(ctx, s.upcomingWords())
	}

	card := &Card{
		Word:          current.Word,
		FrequencyRank: current.FrequencyRank,
		State:         current.State,
		Position:      s.position + 1,
		Total:         len(s.queue),
	}
	if s.enrichments != nil {
		rows, err := s.enrichments.Find(ctx, current.Word)
		if err != nil {
			slog.Warn("enrichment lookup failed, showing bare card", "word", current.Word, "error", err)
		} else {
			for _, row := range rows {
				if row.HasContent() {
					card.Enrichment = append(card.Enrichment, row)
				}
			}
		}
	}
	return card, nil
}

// Submit records exactly one response for the current card, persists
// the new record together with its audit event, and advances. A storage
// failure is returned as-is and the session must not continue past it.
func (s *Session) Submit(ctx context.Context, response scheduler.Response) error {
	if s.position >= len(s.queue) {
		return fmt.Errorf("review: no card to answer")
	}
	current := s.queue[s.position]

	record, err := s.store.Get(ctx, current.Word)
	if err != nil {
		return fmt.Errorf("store.Get(%s) > %w", current.Word, err)
	}

	next, event, err := scheduler.Next(record, response, s.now(), s.params)
	if err != nil {
		// Invalid response: reject without touching state.
		return fmt.Errorf("scheduler.Next(%s) > %w", current.Word, err)
	}

	if err := s.store.Record(ctx, next, event); err != nil {
		return fmt.Errorf("store.Record(%s) > %w", current.Word, err)
	}
	s.position++
	return nil
}

// Mastered retires the current card's word from scheduling and advances.
func (s *Session) Mastered(ctx context.Context) error {
	if s.position >= len(s.queue) {
		return fmt.Errorf("review: no card to answer")
	}
	current := s.queue[s.position]
	if err := s.store.SetMastered(ctx, current.Word); err != nil {
		return fmt.Errorf("store.SetMastered(%s) > %w", current.Word, err)
	}
	s.position++
	return nil
}

// Skip advances past the current card without recording a response.
func (s *Session) Skip() {
	if s.position < len(s.queue) {
		s.position++
	}
}

func (s *Session) upcomingWords() []string {
	end := s.position + 1 + s.prefetchAhead
	if end > len(s.queue) {
		end = len(s.queue)
	}
	words := make([]string, 0, end-s.position)
	for _, d := range s.queue[s.position:end] {
		words = append(words, d.Word)
	}
	return words
}
