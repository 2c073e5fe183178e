// Package review provides the review-side persistence, the session queue
// selection policy and the review session controller.
package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/xdrxdrxd/wordlab/internal/scheduler"
)

// ErrStorage marks persistence failures. A session must not continue
// after one; check with errors.Is.
var ErrStorage = errors.New("review: storage failure")

func wrapStorage(op string, err error) error {
	return fmt.Errorf("%s > %w", op, errors.Join(err, ErrStorage))
}

// StoredRecord is a MemoryRecord as persisted, with the mastered flag
// that retires a word from scheduling.
type StoredRecord struct {
	scheduler.MemoryRecord
	Mastered  bool      `db:"mastered"`
	UpdatedAt time.Time `db:"updated_at"`
}

// DueWord is one entry of the due set: a word joined with the scheduling
// columns the selector orders by. DueAt is nil for New words.
type DueWord struct {
	Word          string          `db:"word"`
	FrequencyRank int             `db:"frequency_rank"`
	State         scheduler.State `db:"state"`
	DueAt         *time.Time      `db:"due_at"`
}

//go:generate mockgen -source=store.go -destination=../mocks/review/mock_store.go -package=mock_review Store

// Store defines the review-side persistence operations.
type Store interface {
	Get(ctx context.Context, word string) (scheduler.MemoryRecord, error)
	Record(ctx context.Context, record scheduler.MemoryRecord, event scheduler.ReviewEvent) error
	SetMastered(ctx context.Context, word string) error
	FindDue(ctx context.Context, asOf time.Time, limit int) ([]DueWord, error)
	FindAllRecords(ctx context.Context) ([]StoredRecord, error)
	RestoreRecord(ctx context.Context, record StoredRecord) error
	CountByState(ctx context.Context) (map[scheduler.State]int, error)
	CountMastered(ctx context.Context) (int, error)
	CountNewSince(ctx context.Context, since time.Time) (int, error)
	FindEvents(ctx context.Context) ([]scheduler.ReviewEvent, error)
}

// DBStore implements Store using sqlx.
//
// Record serializes all review mutations behind a single mutex so a
// concurrent get+put pair for the same word can never interleave with
// another writer. A single-user tool never holds enough contention for
// per-word locking to matter.
type DBStore struct {
	db *sqlx.DB
	mu sync.Mutex
}

// NewDBStore creates a new DBStore.
func NewDBStore(db *sqlx.DB) *DBStore {
	return &DBStore{db: db}
}

// Get returns the scheduling state for a word. An unseen word yields a
// default New record; Get never fails for a word without history.
func (s *DBStore) Get(ctx context.Context, word string) (scheduler.MemoryRecord, error) {
	var row StoredRecord
	err := s.db.GetContext(ctx, &row, "SELECT * FROM memory_records WHERE word = ?", word)
	if errors.Is(err, sql.ErrNoRows) {
		return scheduler.MemoryRecord{Word: word, State: scheduler.StateNew}, nil
	}
	if err != nil {
		return scheduler.MemoryRecord{}, wrapStorage("db.GetContext(memory_record)", err)
	}
	return row.MemoryRecord, nil
}

// Record persists the outcome of one review: the new record and its
// audit event are written in one transaction, or not at all.
func (s *DBStore) Record(ctx context.Context, record scheduler.MemoryRecord, event scheduler.ReviewEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return wrapStorage("db.BeginTxx()", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := upsertRecord(ctx, tx, record); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO review_events (word, response, reviewed_at, from_state, to_state, interval_days)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		event.Word, event.Response, event.ReviewedAt, event.FromState, event.ToState, event.IntervalDays,
	); err != nil {
		return wrapStorage("tx.ExecContext(insert review_event)", err)
	}

	if err := tx.Commit(); err != nil {
		return wrapStorage("tx.Commit()", err)
	}
	return nil
}

func upsertRecord(ctx context.Context, tx *sqlx.Tx, record scheduler.MemoryRecord) error {
	now := time.Now()
	result, err := tx.ExecContext(ctx,
		`UPDATE memory_records
		 SET state = ?, interval_days = ?, ease = ?, due_at = ?, lapse_count = ?,
		     review_count = ?, learning_streak = ?, prelapse_interval_days = ?,
		     last_reviewed_at = ?, updated_at = ?
		 WHERE word = ?`,
		record.State, record.IntervalDays, record.Ease, record.DueAt, record.LapseCount,
		record.ReviewCount, record.LearningStreak, record.PrelapseIntervalDays,
		record.LastReviewedAt, now, record.Word,
	)
	if err != nil {
		return wrapStorage("tx.ExecContext(update memory_record)", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return wrapStorage("result.RowsAffected()", err)
	}
	if affected > 0 {
		return nil
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO memory_records
		 (word, state, interval_days, ease, due_at, lapse_count, review_count,
		  learning_streak, prelapse_interval_days, last_reviewed_at, mastered, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?)`,
		record.Word, record.State, record.IntervalDays, record.Ease, record.DueAt,
		record.LapseCount, record.ReviewCount, record.LearningStreak,
		record.PrelapseIntervalDays, record.LastReviewedAt, now,
	); err != nil {
		return wrapStorage("tx.ExecContext(insert memory_record)", err)
	}
	return nil
}

// FindAllRecords returns every stored record, mastered ones included,
// for export.
func (s *DBStore) FindAllRecords(ctx context.Context) ([]StoredRecord, error) {
	var records []StoredRecord
	if err := s.db.SelectContext(ctx, &records,
		"SELECT * FROM memory_records ORDER BY word",
	); err != nil {
		return nil, wrapStorage("db.SelectContext(memory_records)", err)
	}
	return records, nil
}

// RestoreRecord writes an imported record as-is, without an audit event.
// An existing record for the word is overwritten.
func (s *DBStore) RestoreRecord(ctx context.Context, record StoredRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	mastered := 0
	if record.Mastered {
		mastered = 1
	}
	now := time.Now()
	result, err := s.db.ExecContext(ctx,
		`UPDATE memory_records
		 SET state = ?, interval_days = ?, ease = ?, due_at = ?, lapse_count = ?,
		     review_count = ?, learning_streak = ?, prelapse_interval_days = ?,
		     last_reviewed_at = ?, mastered = ?, updated_at = ?
		 WHERE word = ?`,
		record.State, record.IntervalDays, record.Ease, record.DueAt, record.LapseCount,
		record.ReviewCount, record.LearningStreak, record.PrelapseIntervalDays,
		record.LastReviewedAt, mastered, now, record.Word,
	)
	if err != nil {
		return wrapStorage("db.ExecContext(update restored record)", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return wrapStorage("result.RowsAffected()", err)
	}
	if affected > 0 {
		return nil
	}

	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO memory_records
		 (word, state, interval_days, ease, due_at, lapse_count, review_count,
		  learning_streak, prelapse_interval_days, last_reviewed_at, mastered, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.Word, record.State, record.IntervalDays, record.Ease, record.DueAt,
		record.LapseCount, record.ReviewCount, record.LearningStreak,
		record.PrelapseIntervalDays, record.LastReviewedAt, mastered, now,
	); err != nil {
		return wrapStorage("db.ExecContext(insert restored record)", err)
	}
	return nil
}

// SetMastered retires a word from scheduling. The record keeps its
// history for statistics but is excluded from the due set.
func (s *DBStore) SetMastered(ctx context.Context, word string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx,
		"UPDATE memory_records SET mastered = 1, updated_at = ? WHERE word = ?", time.Now(), word)
	if err != nil {
		return wrapStorage("db.ExecContext(set mastered)", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return wrapStorage("result.RowsAffected()", err)
	}
	if affected == 0 {
		// Mastering a word that was never reviewed still retires it.
		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO memory_records
			 (word, state, interval_days, ease, due_at, lapse_count, review_count,
			  learning_streak, prelapse_interval_days, last_reviewed_at, mastered, updated_at)
			 VALUES (?, ?, 0, 0, ?, 0, 0, 0, 0, NULL, 1, ?)`,
			word, scheduler.StateNew, time.Now(), time.Now(),
		); err != nil {
			return wrapStorage("db.ExecContext(insert mastered record)", err)
		}
	}
	return nil
}

// FindDue returns the words whose review time has arrived as of asOf,
// plus never-reviewed words, excluding mastered ones. The final session
// ordering is the selector's job; this only bounds the candidate set.
func (s *DBStore) FindDue(ctx context.Context, asOf time.Time, limit int) ([]DueWord, error) {
	var due []DueWord
	if err := s.db.SelectContext(ctx, &due,
		`SELECT w.word, w.frequency_rank, COALESCE(r.state, 'new') AS state, r.due_at
		 FROM words w
		 LEFT JOIN memory_records r ON w.word = r.word
		 WHERE COALESCE(r.mastered, 0) = 0
		   AND (r.word IS NULL OR r.state = 'new' OR r.due_at <= ?)
		 ORDER BY r.due_at, w.frequency_rank, w.word
		 LIMIT ?`,
		asOf, limit,
	); err != nil {
		return nil, wrapStorage("db.SelectContext(due words)", err)
	}
	return due, nil
}

// CountByState returns how many non-mastered records sit in each state.
func (s *DBStore) CountByState(ctx context.Context) (map[scheduler.State]int, error) {
	var rows []struct {
		State scheduler.State `db:"state"`
		Count int             `db:"count"`
	}
	if err := s.db.SelectContext(ctx, &rows,
		"SELECT state, COUNT(*) AS count FROM memory_records WHERE mastered = 0 GROUP BY state",
	); err != nil {
		return nil, wrapStorage("db.SelectContext(count by state)", err)
	}
	counts := make(map[scheduler.State]int, len(rows))
	for _, row := range rows {
		counts[row.State] = row.Count
	}
	return counts, nil
}

// CountMastered returns the number of retired words.
func (s *DBStore) CountMastered(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM memory_records WHERE mastered = 1",
	); err != nil {
		return 0, wrapStorage("db.GetContext(count mastered)", err)
	}
	return count, nil
}

// CountNewSince counts reviews of New words since the given time. The
// selector uses it to enforce the daily new-word cap across sessions.
func (s *DBStore) CountNewSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM review_events WHERE from_state = ? AND reviewed_at >= ?",
		scheduler.StateNew, since,
	); err != nil {
		return 0, wrapStorage("db.GetContext(count new reviews)", err)
	}
	return count, nil
}

// FindEvents returns the full review history, oldest first.
func (s *DBStore) FindEvents(ctx context.Context) ([]scheduler.ReviewEvent, error) {
	var events []scheduler.ReviewEvent
	if err := s.db.SelectContext(ctx, &events,
		"SELECT word, response, reviewed_at, from_state, to_state, interval_days FROM review_events ORDER BY reviewed_at, id",
	); err != nil {
		return nil, wrapStorage("db.SelectContext(review_events)", err)
	}
	return events, nil
}
