package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/xdrxdrxd/wordlab/internal/word"
)

type SortFlag string

const (
	SortByRank SortFlag = "rank"
	SortByWord SortFlag = "word"
)

// Set implements pflag.Value.
func (s *SortFlag) Set(v string) error {
	switch v {
	case string(SortByRank):
		*s = SortByRank
	case string(SortByWord):
		*s = SortByWord
	default:
		return fmt.Errorf("invalid value %q, valid values are %q or %q", v, SortByRank, SortByWord)
	}
	return nil
}

// String implements pflag.Value.
func (s *SortFlag) String() string {
	if s == nil {
		return ""
	}
	return string(*s)
}

// Type implements pflag.Value.
func (s *SortFlag) Type() string {
	return "string"
}

var _ pflag.Value = (*SortFlag)(nil)

func newWordsCommand() *cobra.Command {
	wordsCommand := &cobra.Command{
		Use:   "words",
		Short: "Manage the tracked vocabulary",
	}

	wordsCommand.AddCommand(newWordsAddCommand())
	wordsCommand.AddCommand(newWordsListCommand())

	return wordsCommand
}

func newWordsAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <word>...",
		Short: "Add words to track without a frequency rank",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			_, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			repo := word.NewDBRepository(db)
			added := 0
			for _, arg := range args {
				w := strings.ToLower(strings.TrimSpace(arg))
				if !word.IsValid(w) {
					fmt.Printf("Skipping %q: not a valid word\n", arg)
					continue
				}
				exists, err := repo.Exists(ctx, w)
				if err != nil {
					return fmt.Errorf("repo.Exists(%s) > %w", w, err)
				}
				if exists {
					fmt.Printf("Skipping %q: already tracked\n", w)
					continue
				}
				if err := repo.Create(ctx, &word.Word{Word: w}); err != nil {
					return fmt.Errorf("repo.Create(%s) > %w", w, err)
				}
				added++
			}
			fmt.Printf("Added %d words\n", added)
			return nil
		},
	}
}

func newWordsListCommand() *cobra.Command {
	sortBy := SortByRank

	command := &cobra.Command{
		Use:   "list",
		Short: "List all tracked words with their frequency ranks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			_, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			words, err := word.NewDBRepository(db).FindAll(ctx)
			if err != nil {
				return fmt.Errorf("repo.FindAll() > %w", err)
			}
			if sortBy == SortByWord {
				sort.SliceStable(words, func(i, j int) bool {
					return words[i].Word < words[j].Word
				})
			}
			for _, w := range words {
				if w.FrequencyRank > 0 {
					fmt.Printf("%s\t%d\n", w.Word, w.FrequencyRank)
					continue
				}
				fmt.Println(w.Word)
			}
			fmt.Printf("\n%d words\n", len(words))
			return nil
		},
	}

	command.Flags().Var(&sortBy, "sort", fmt.Sprintf("Sort order: %q or %q", SortByRank, SortByWord))
	return command
}
