// Package datasync provides export/import of the full study state as a
// single CSV file.
package datasync

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xdrxdrxd/wordlab/internal/enrichment"
	"github.com/xdrxdrxd/wordlab/internal/inference"
	"github.com/xdrxdrxd/wordlab/internal/review"
	"github.com/xdrxdrxd/wordlab/internal/scheduler"
	"github.com/xdrxdrxd/wordlab/internal/word"
)

// csvHeader defines the export columns. translations holds a JSON array
// so any set of target languages round-trips through one file.
var csvHeader = []string{
	"word", "frequency_rank", "state", "interval_days", "ease", "due_at",
	"lapse_count", "review_count", "learning_streak", "prelapse_interval_days",
	"last_reviewed_at", "mastered", "part_of_speech", "example", "translations",
}

type csvTranslation struct {
	Language           string `json:"language"`
	Word               string `json:"word"`
	ExampleTranslation string `json:"example_translation"`
}

// ImportResult tracks counts for each import operation.
type ImportResult struct {
	WordsNew        int
	WordsSkipped    int
	WordsInvalid    int
	RecordsRestored int
	EnrichmentsNew  int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun bool
}

// Exporter reads the database and writes the CSV dump.
type Exporter struct {
	wordRepo       word.Repository
	store          review.Store
	enrichmentRepo enrichment.Repository
}

// NewExporter creates a new Exporter.
func NewExporter(wordRepo word.Repository, store review.Store, enrichmentRepo enrichment.Repository) *Exporter {
	return &Exporter{
		wordRepo:       wordRepo,
		store:          store,
		enrichmentRepo: enrichmentRepo,
	}
}

// Export writes every word with its scheduling state and cached
// enrichment as one CSV row.
func (e *Exporter) Export(ctx context.Context, w io.Writer) (int, error) {
	words, err := e.wordRepo.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("wordRepo.FindAll() > %w", err)
	}

	records, err := e.store.FindAllRecords(ctx)
	if err != nil {
		return 0, fmt.Errorf("store.FindAllRecords() > %w", err)
	}
	recordsByWord := make(map[string]review.StoredRecord, len(records))
	for _, record := range records {
		recordsByWord[record.Word] = record
	}

	enrichments, err := e.enrichmentRepo.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("enrichmentRepo.FindAll() > %w", err)
	}
	enrichmentsByWord := make(map[string][]enrichment.Enrichment)
	for _, row := range enrichments {
		enrichmentsByWord[row.Word] = append(enrichmentsByWord[row.Word], row)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return 0, fmt.Errorf("writer.Write(header) > %w", err)
	}

	for _, entry := range words {
		row, err := exportRow(entry, recordsByWord[entry.Word], enrichmentsByWord[entry.Word])
		if err != nil {
			return 0, fmt.Errorf("exportRow(%s) > %w", entry.Word, err)
		}
		if err := writer.Write(row); err != nil {
			return 0, fmt.Errorf("writer.Write(%s) > %w", entry.Word, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return 0, fmt.Errorf("writer.Flush() > %w", err)
	}
	return len(words), nil
}

func exportRow(entry word.Word, record review.StoredRecord, enrichments []enrichment.Enrichment) ([]string, error) {
	state := record.State
	if state == "" {
		state = scheduler.StateNew
	}

	dueAt := ""
	if !record.DueAt.IsZero() {
		dueAt = record.DueAt.Format(time.RFC3339)
	}
	lastReviewedAt := ""
	if record.LastReviewedAt != nil {
		lastReviewedAt = record.LastReviewedAt.Format(time.RFC3339)
	}
	mastered := "0"
	if record.Mastered {
		mastered = "1"
	}

	partOfSpeech := ""
	example := ""
	var translations []csvTranslation
	for _, row := range enrichments {
		if !row.HasContent() {
			continue
		}
		partOfSpeech = row.PartOfSpeech
		example = row.ExampleSentence
		translations = append(translations, csvTranslation{
			Language:           row.Language,
			Word:               row.Translation,
			ExampleTranslation: row.ExampleTranslation,
		})
	}
	translationsJSON := ""
	if len(translations) > 0 {
		data, err := json.Marshal(translations)
		if err != nil {
			return nil, fmt.Errorf("json.Marshal(translations) > %w", err)
		}
		translationsJSON = string(data)
	}

	return []string{
		entry.Word,
		strconv.Itoa(entry.FrequencyRank),
		string(state),
		strconv.Itoa(record.IntervalDays),
		strconv.FormatFloat(record.Ease, 'f', -1, 64),
		dueAt,
		strconv.Itoa(record.LapseCount),
		strconv.Itoa(record.ReviewCount),
		strconv.Itoa(record.LearningStreak),
		strconv.Itoa(record.PrelapseIntervalDays),
		lastReviewedAt,
		mastered,
		partOfSpeech,
		example,
		translationsJSON,
	}, nil
}

// Importer reads a CSV dump and writes to DB.
type Importer struct {
	wordRepo       word.Repository
	store          review.Store
	enrichmentRepo enrichment.Repository
	writer         io.Writer
}

// NewImporter creates a new Importer.
func NewImporter(wordRepo word.Repository, store review.Store, enrichmentRepo enrichment.Repository, writer io.Writer) *Importer {
	return &Importer{
		wordRepo:       wordRepo,
		store:          store,
		enrichmentRepo: enrichmentRepo,
		writer:         writer,
	}
}

// Import restores words, scheduling records and enrichment from a CSV
// dump. Words already in the database are skipped entirely so an import
// never clobbers newer local study state.
func (imp *Importer) Import(ctx context.Context, r io.Reader, opts ImportOptions) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("reader.Read(header) > %w", err)
	}

	var result ImportResult
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reader.Read() > %w", err)
		}
		if err := imp.importRow(ctx, row, opts, &result); err != nil {
			return nil, fmt.Errorf("importRow() > %w", err)
		}
	}

	fmt.Fprintf(imp.writer, "Imported %d words (%d skipped, %d invalid), %d records, %d enrichments\n",
		result.WordsNew, result.WordsSkipped, result.WordsInvalid,
		result.RecordsRestored, result.EnrichmentsNew)
	return &result, nil
}

func (imp *Importer) importRow(ctx context.Context, row []string, opts ImportOptions, result *ImportResult) error {
	if len(row) < len(csvHeader) {
		result.WordsInvalid++
		return nil
	}
	w := strings.ToLower(strings.TrimSpace(row[0]))
	if !word.IsValid(w) {
		result.WordsInvalid++
		return nil
	}

	exists, err := imp.wordRepo.Exists(ctx, w)
	if err != nil {
		return fmt.Errorf("wordRepo.Exists(%s) > %w", w, err)
	}
	if exists {
		result.WordsSkipped++
		return nil
	}

	record, content, rank, err := parseRow(w, row)
	if err != nil {
		result.WordsInvalid++
		return nil
	}

	if opts.DryRun {
		fmt.Fprintf(imp.writer, "would import: %s (state %s)\n", w, record.State)
		result.WordsNew++
		return nil
	}

	if err := imp.wordRepo.Create(ctx, &word.Word{Word: w, FrequencyRank: rank}); err != nil {
		return fmt.Errorf("wordRepo.Create(%s) > %w", w, err)
	}
	result.WordsNew++

	if record.State != scheduler.StateNew || record.Mastered {
		if err := imp.store.RestoreRecord(ctx, record); err != nil {
			return fmt.Errorf("store.RestoreRecord(%s) > %w", w, err)
		}
		result.RecordsRestored++
	}

	if len(content.Translations) > 0 {
		if err := imp.enrichmentRepo.Save(ctx, content); err != nil {
			return fmt.Errorf("enrichmentRepo.Save(%s) > %w", w, err)
		}
		result.EnrichmentsNew++
	}
	return nil
}

func parseRow(w string, row []string) (review.StoredRecord, inference.CardContent, int, error) {
	var record review.StoredRecord
	var content inference.CardContent

	rank, err := strconv.Atoi(row[1])
	if err != nil {
		return record, content, 0, fmt.Errorf("strconv.Atoi(frequency_rank) > %w", err)
	}

	record.Word = w
	record.State = scheduler.State(row[2])
	switch record.State {
	case scheduler.StateNew, scheduler.StateLearning, scheduler.StateReview, scheduler.StateRelearning:
	default:
		return record, content, 0, fmt.Errorf("unknown state %q", row[2])
	}
	if record.IntervalDays, err = strconv.Atoi(row[3]); err != nil {
		return record, content, 0, fmt.Errorf("strconv.Atoi(interval_days) > %w", err)
	}
	if record.Ease, err = strconv.ParseFloat(row[4], 64); err != nil {
		return record, content, 0, fmt.Errorf("strconv.ParseFloat(ease) > %w", err)
	}
	if row[5] != "" {
		if record.DueAt, err = time.Parse(time.RFC3339, row[5]); err != nil {
			return record, content, 0, fmt.Errorf("time.Parse(due_at) > %w", err)
		}
	}
	if record.LapseCount, err = strconv.Atoi(row[6]); err != nil {
		return record, content, 0, fmt.Errorf("strconv.Atoi(lapse_count) > %w", err)
	}
	if record.ReviewCount, err = strconv.Atoi(row[7]); err != nil {
		return record, content, 0, fmt.Errorf("strconv.Atoi(review_count) > %w", err)
	}
	if record.LearningStreak, err = strconv.Atoi(row[8]); err != nil {
		return record, content, 0, fmt.Errorf("strconv.Atoi(learning_streak) > %w", err)
	}
	if record.PrelapseIntervalDays, err = strconv.Atoi(row[9]); err != nil {
		return record, content, 0, fmt.Errorf("strconv.Atoi(prelapse_interval_days) > %w", err)
	}
	if row[10] != "" {
		lastReviewedAt, err := time.Parse(time.RFC3339, row[10])
		if err != nil {
			return record, content, 0, fmt.Errorf("time.Parse(last_reviewed_at) > %w", err)
		}
		record.LastReviewedAt = &lastReviewedAt
	}
	record.Mastered = row[11] == "1"

	if row[14] != "" {
		var translations []csvTranslation
		if err := json.Unmarshal([]byte(row[14]), &translations); err != nil {
			return record, content, 0, fmt.Errorf("json.Unmarshal(translations) > %w", err)
		}
		content.Word = w
		content.PartOfSpeech = row[12]
		content.Example = row[13]
		for _, t := range translations {
			content.Translations = append(content.Translations, inference.Translation{
				Language:           t.Language,
				Word:               t.Word,
				ExampleTranslation: t.ExampleTranslation,
			})
		}
	}
	return record, content, rank, nil
}
