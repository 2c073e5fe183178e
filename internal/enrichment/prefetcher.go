package enrichment

import (
	"context"
	"log/slog"
	"sync"

	"github.com/xdrxdrxd/wordlab/internal/inference"
)

const (
	DefaultMaxFetchAttempts = 3
	defaultConcurrency      = 2
)

// Prefetcher fetches enrichment for upcoming cards in the background.
// The review loop never waits on it: a slow or failed generation call
// only means the card is shown bare, and the fetch is retried lazily on
// a later display until the attempt cap is reached.
type Prefetcher struct {
	repo        Repository
	client      inference.Client
	languages   []string
	maxAttempts int

	sem chan struct{}
	wg  sync.WaitGroup

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewPrefetcher creates a Prefetcher with bounded concurrency.
func NewPrefetcher(repo Repository, client inference.Client, languages []string, maxAttempts int) *Prefetcher {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxFetchAttempts
	}
	return &Prefetcher{
		repo:        repo,
		client:      client,
		languages:   languages,
		maxAttempts: maxAttempts,
		sem:         make(chan struct{}, defaultConcurrency),
		inFlight:    make(map[string]struct{}),
	}
}

// Prefetch schedules background fetches for the given words. Words with
// cached content or an exhausted attempt cap are skipped; a word already
// being fetched is not fetched twice.
func (p *Prefetcher) Prefetch(ctx context.Context, words []string) {
	for _, w := range words {
		if !p.markInFlight(w) {
			continue
		}
		p.wg.Add(1)
		go func(word string) {
			defer p.wg.Done()
			defer p.clearInFlight(word)

			select {
			case p.sem <- struct{}{}:
				defer func() { <-p.sem }()
			case <-ctx.Done():
				return
			}
			p.fetch(ctx, word)
		}(w)
	}
}

// Wait blocks until all scheduled fetches have finished.
func (p *Prefetcher) Wait() {
	p.wg.Wait()
}

func (p *Prefetcher) markInFlight(word string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.inFlight[word]; ok {
		return false
	}
	p.inFlight[word] = struct{}{}
	return true
}

func (p *Prefetcher) clearInFlight(word string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.inFlight, word)
}

func (p *Prefetcher) fetch(ctx context.Context, word string) {
	rows, err := p.repo.Find(ctx, word)
	if err != nil {
		slog.Warn("enrichment cache lookup failed", "word", word, "error", err)
		return
	}
	missing := p.missingLanguages(rows)
	if len(missing) == 0 {
		return
	}

	content, err := p.client.GenerateCard(ctx, inference.GenerateCardRequest{
		Word:      word,
		Languages: missing,
	})
	if err != nil {
		slog.Warn("enrichment generation failed", "word", word, "error", err)
		if failErr := p.repo.RecordFailure(ctx, word, missing); failErr != nil {
			slog.Warn("recording enrichment failure failed", "word", word, "error", failErr)
		}
		return
	}
	content.Word = word
	if err := p.repo.Save(ctx, content); err != nil {
		slog.Warn("saving enrichment failed", "word", word, "error", err)
	}
}

// missingLanguages returns the configured languages that still need a
// fetch: no cached content and attempts below the cap.
func (p *Prefetcher) missingLanguages(rows []Enrichment) []string {
	byLanguage := make(map[string]Enrichment, len(rows))
	for _, row := range rows {
		byLanguage[row.Language] = row
	}

	var missing []string
	for _, language := range p.languages {
		row, ok := byLanguage[language]
		if ok && (row.HasContent() || row.FetchAttempts >= p.maxAttempts) {
			continue
		}
		missing = append(missing, language)
	}
	return missing
}
