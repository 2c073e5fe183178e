// Package dataset imports vocabulary words from frequency datasets and
// YAML word lists.
package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/xdrxdrxd/wordlab/internal/word"
)

const (
	// DefaultTopWords caps how many dataset words get imported, highest
	// frequency first.
	DefaultTopWords = 10000
)

// ImportResult tracks counts for each import operation.
type ImportResult struct {
	New     int
	Skipped int
	Invalid int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun bool
	// Limit caps dataset imports to the N most frequent words.
	// Zero means DefaultTopWords.
	Limit int
}

// Importer reads word datasets and writes to DB.
type Importer struct {
	wordRepo word.Repository
	writer   io.Writer
}

// NewImporter creates a new Importer.
func NewImporter(wordRepo word.Repository, writer io.Writer) *Importer {
	return &Importer{
		wordRepo: wordRepo,
		writer:   writer,
	}
}

type datasetEntry struct {
	word  string
	count int64
}

// ImportFrequencyCSV imports the most frequent words from a
// unigram_freq.csv style dataset (header row, then word,count rows).
// Frequency ranks are assigned from the count ordering, 1 being the
// most frequent.
func (imp *Importer) ImportFrequencyCSV(ctx context.Context, path string, opts ImportOptions) (*ImportResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	entries, invalid, err := readFrequencyCSV(file)
	if err != nil {
		return nil, fmt.Errorf("readFrequencyCSV > %w", err)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultTopWords
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}

	result := ImportResult{Invalid: invalid}
	for rank, entry := range entries {
		if err := imp.importWord(ctx, entry.word, rank+1, opts, &result); err != nil {
			return nil, fmt.Errorf("importWord(%s) > %w", entry.word, err)
		}
	}

	fmt.Fprintf(imp.writer, "Imported %d words, skipped %d existing, %d invalid rows\n",
		result.New, result.Skipped, result.Invalid)
	return &result, nil
}

func readFrequencyCSV(r io.Reader) ([]datasetEntry, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	// Header row
	if _, err := reader.Read(); err != nil {
		return nil, 0, fmt.Errorf("reader.Read(header) > %w", err)
	}

	var entries []datasetEntry
	invalid := 0
	seen := map[string]struct{}{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("reader.Read > %w", err)
		}
		if len(row) < 2 {
			invalid++
			continue
		}
		w := strings.ToLower(strings.TrimSpace(row[0]))
		count, countErr := strconv.ParseInt(strings.TrimSpace(row[1]), 10, 64)
		if countErr != nil || !word.IsValid(w) {
			invalid++
			continue
		}
		if _, ok := seen[w]; ok {
			invalid++
			continue
		}
		seen[w] = struct{}{}
		entries = append(entries, datasetEntry{word: w, count: count})
	}
	return entries, invalid, nil
}

// wordListFile is the YAML shape of a hand-maintained word list.
type wordListFile struct {
	Name  string          `yaml:"name,omitempty"`
	Words []wordListEntry `yaml:"words"`
}

type wordListEntry struct {
	Word string `yaml:"word"`
	Rank int    `yaml:"rank,omitempty"`
}

// ImportWordList imports words from a YAML word-list file. Words
// without a rank get rank 0, which the session treats as unranked.
func (imp *Importer) ImportWordList(ctx context.Context, path string, opts ImportOptions) (*ImportResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile > %w", err)
	}

	var list wordListFile
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal > %w", err)
	}

	var result ImportResult
	for _, entry := range list.Words {
		w := strings.ToLower(strings.TrimSpace(entry.Word))
		if !word.IsValid(w) {
			result.Invalid++
			continue
		}
		if err := imp.importWord(ctx, w, entry.Rank, opts, &result); err != nil {
			return nil, fmt.Errorf("importWord(%s) > %w", w, err)
		}
	}

	fmt.Fprintf(imp.writer, "Imported %d words, skipped %d existing, %d invalid entries\n",
		result.New, result.Skipped, result.Invalid)
	return &result, nil
}

func (imp *Importer) importWord(ctx context.Context, w string, rank int, opts ImportOptions, result *ImportResult) error {
	exists, err := imp.wordRepo.Exists(ctx, w)
	if err != nil {
		return fmt.Errorf("wordRepo.Exists > %w", err)
	}
	if exists {
		result.Skipped++
		return nil
	}
	if opts.DryRun {
		fmt.Fprintf(imp.writer, "would import: %s (rank %d)\n", w, rank)
		result.New++
		return nil
	}
	if err := imp.wordRepo.Create(ctx, &word.Word{
		Word:          w,
		FrequencyRank: rank,
	}); err != nil {
		return fmt.Errorf("wordRepo.Create > %w", err)
	}
	result.New++
	return nil
}
