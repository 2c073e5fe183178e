// Package word provides the vocabulary word domain model and repository.
package word

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/jmoiron/sqlx"
)

// Word represents a vocabulary entry imported from a frequency dataset
// or added by hand. Everything except enrichment is immutable after import.
type Word struct {
	Word          string    `db:"word" yaml:"word"`
	FrequencyRank int       `db:"frequency_rank" yaml:"frequency_rank,omitempty"`
	CreatedAt     time.Time `db:"created_at" yaml:"created_at,omitempty"`
	UpdatedAt     time.Time `db:"updated_at" yaml:"updated_at,omitempty"`
}

var validWord = regexp.MustCompile(`^[a-zA-Z]+$`)

// IsValid reports whether the lexical form is a plain alphabetic word.
func IsValid(w string) bool {
	return validWord.MatchString(w)
}

//go:generate mockgen -source=repository.go -destination=../mocks/word/mock_repository.go -package=mock_word

// Repository defines operations for managing words.
type Repository interface {
	Find(ctx context.Context, w string) (*Word, error)
	FindAll(ctx context.Context) ([]Word, error)
	Exists(ctx context.Context, w string) (bool, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, word *Word) error
}

// DBRepository implements Repository using sqlx.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// Find returns the word, or nil if it is not registered.
func (r *DBRepository) Find(ctx context.Context, w string) (*Word, error) {
	var result Word
	err := r.db.GetContext(ctx, &result, "SELECT * FROM words WHERE word = ?", w)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(word) > %w", err)
	}
	return &result, nil
}

// FindAll returns all words ordered by frequency rank.
func (r *DBRepository) FindAll(ctx context.Context) ([]Word, error) {
	var words []Word
	if err := r.db.SelectContext(ctx, &words, "SELECT * FROM words ORDER BY frequency_rank, word"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(words) > %w", err)
	}
	return words, nil
}

// Exists reports whether the word is already registered.
func (r *DBRepository) Exists(ctx context.Context, w string) (bool, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM words WHERE word = ?", w); err != nil {
		return false, fmt.Errorf("db.GetContext(word count) > %w", err)
	}
	return count > 0, nil
}

// Count returns the number of registered words.
func (r *DBRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM words"); err != nil {
		return 0, fmt.Errorf("db.GetContext(words count) > %w", err)
	}
	return count, nil
}

// Create registers a new word.
func (r *DBRepository) Create(ctx context.Context, word *Word) error {
	if !IsValid(word.Word) {
		return fmt.Errorf("word %q must contain only letters", word.Word)
	}
	now := time.Now()
	word.CreatedAt = now
	word.UpdatedAt = now
	if _, err := r.db.ExecContext(ctx,
		"INSERT INTO words (word, frequency_rank, created_at, updated_at) VALUES (?, ?, ?, ?)",
		word.Word, word.FrequencyRank, word.CreatedAt, word.UpdatedAt,
	); err != nil {
		return fmt.Errorf("db.ExecContext(insert word) > %w", err)
	}
	return nil
}
