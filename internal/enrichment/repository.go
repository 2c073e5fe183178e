// Package enrichment caches machine-generated translations and example
// sentences per (word, language) and refreshes them in the background.
package enrichment

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/xdrxdrxd/wordlab/internal/inference"
)

// Enrichment is one cached generation result for a (word, language)
// pair. A row with an empty Translation records failed fetch attempts.
type Enrichment struct {
	Word               string    `db:"word"`
	Language           string    `db:"language"`
	Translation        string    `db:"translation"`
	ExampleSentence    string    `db:"example_sentence"`
	ExampleTranslation string    `db:"example_translation"`
	PartOfSpeech       string    `db:"part_of_speech"`
	FetchAttempts      int       `db:"fetch_attempts"`
	UpdatedAt          time.Time `db:"updated_at"`
}

// HasContent reports whether the row carries usable enrichment rather
// than only a failure tally.
func (e Enrichment) HasContent() bool {
	return e.Translation != ""
}

//go:generate mockgen -source=repository.go -destination=../mocks/enrichment/mock_repository.go -package=mock_enrichment

// Repository defines the enrichment cache operations.
type Repository interface {
	Find(ctx context.Context, word string) ([]Enrichment, error)
	FindAll(ctx context.Context) ([]Enrichment, error)
	Save(ctx context.Context, content inference.CardContent) error
	RecordFailure(ctx context.Context, word string, languages []string) error
}

// DBRepository implements Repository using sqlx. Writes are
// last-writer-wins; refreshed generation output overwrites older rows.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// Find returns all cached rows for a word, including failure tallies.
func (r *DBRepository) Find(ctx context.Context, word string) ([]Enrichment, error) {
	var rows []Enrichment
	if err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM enrichments WHERE word = ? ORDER BY language", word,
	); err != nil {
		return nil, fmt.Errorf("db.SelectContext(enrichments) > %w", err)
	}
	return rows, nil
}

// FindAll returns every cached row, for export.
func (r *DBRepository) FindAll(ctx context.Context) ([]Enrichment, error) {
	var rows []Enrichment
	if err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM enrichments ORDER BY word, language",
	); err != nil {
		return nil, fmt.Errorf("db.SelectContext(all enrichments) > %w", err)
	}
	return rows, nil
}

// Save stores generated content for every language in it, overwriting
// existing rows and resetting their failure tallies.
func (r *DBRepository) Save(ctx context.Context, content inference.CardContent) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	now := time.Now()
	for _, translation := range content.Translations {
		if err := upsertEnrichment(ctx, tx, Enrichment{
			Word:               content.Word,
			Language:           translation.Language,
			Translation:        translation.Word,
			ExampleSentence:    content.Example,
			ExampleTranslation: translation.ExampleTranslation,
			PartOfSpeech:       content.PartOfSpeech,
			UpdatedAt:          now,
		}); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}

func upsertEnrichment(ctx context.Context, tx *sqlx.Tx, row Enrichment) error {
	result, err := tx.ExecContext(ctx,
		`UPDATE enrichments
		 SET translation = ?, example_sentence = ?, example_translation = ?,
		     part_of_speech = ?, fetch_attempts = 0, updated_at = ?
		 WHERE word = ? AND language = ?`,
		row.Translation, row.ExampleSentence, row.ExampleTranslation,
		row.PartOfSpeech, row.UpdatedAt, row.Word, row.Language,
	)
	if err != nil {
		return fmt.Errorf("tx.ExecContext(update enrichment) > %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("result.RowsAffected() > %w", err)
	}
	if affected > 0 {
		return nil
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO enrichments
		 (word, language, translation, example_sentence, example_translation,
		  part_of_speech, fetch_attempts, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, 0, ?)`,
		row.Word, row.Language, row.Translation, row.ExampleSentence,
		row.ExampleTranslation, row.PartOfSpeech, row.UpdatedAt,
	); err != nil {
		return fmt.Errorf("tx.ExecContext(insert enrichment) > %w", err)
	}
	return nil
}

// RecordFailure bumps the failure tally for each (word, language) pair
// so retries stay capped across sessions.
func (r *DBRepository) RecordFailure(ctx context.Context, word string, languages []string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	now := time.Now()
	for _, language := range languages {
		result, err := tx.ExecContext(ctx,
			"UPDATE enrichments SET fetch_attempts = fetch_attempts + 1, updated_at = ? WHERE word = ? AND language = ?",
			now, word, language,
		)
		if err != nil {
			return fmt.Errorf("tx.ExecContext(bump fetch_attempts) > %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("result.RowsAffected() > %w", err)
		}
		if affected == 0 {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO enrichments
				 (word, language, translation, example_sentence, example_translation,
				  part_of_speech, fetch_attempts, updated_at)
				 VALUES (?, ?, '', '', '', '', 1, ?)`,
				word, language, now,
			); err != nil {
				return fmt.Errorf("tx.ExecContext(insert failure row) > %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}
