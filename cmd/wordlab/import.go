package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xdrxdrxd/wordlab/internal/dataset"
	"github.com/xdrxdrxd/wordlab/internal/datasync"
	"github.com/xdrxdrxd/wordlab/internal/enrichment"
	"github.com/xdrxdrxd/wordlab/internal/review"
	"github.com/xdrxdrxd/wordlab/internal/word"
)

func newImportCommand() *cobra.Command {
	importCommand := &cobra.Command{
		Use:   "import",
		Short: "Import words and study state",
	}

	importCommand.AddCommand(newImportDatasetCommand())
	importCommand.AddCommand(newImportWordlistCommand())
	importCommand.AddCommand(newImportBackupCommand())

	return importCommand
}

func newImportDatasetCommand() *cobra.Command {
	var dryRun bool
	var topWords int

	cmd := &cobra.Command{
		Use:   "dataset [path]",
		Short: "Import the most frequent words from a word,count CSV dataset",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			path := cfg.Dataset.Path
			if len(args) > 0 {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("no dataset path given and dataset.path is not configured")
			}

			importer := dataset.NewImporter(word.NewDBRepository(db), os.Stdout)
			result, err := importer.ImportFrequencyCSV(ctx, path, dataset.ImportOptions{
				DryRun: dryRun,
				Limit:  topWords,
			})
			if err != nil {
				return fmt.Errorf("importer.ImportFrequencyCSV() > %w", err)
			}

			printImportSummary(result, dryRun)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without modifying the database")
	cmd.Flags().IntVar(&topWords, "top", 0, fmt.Sprintf("Import only the N most frequent words (default %d)", dataset.DefaultTopWords))
	return cmd
}

func newImportWordlistCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "wordlist <path>",
		Short: "Import words from a YAML word list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			_, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			importer := dataset.NewImporter(word.NewDBRepository(db), os.Stdout)
			result, err := importer.ImportWordList(ctx, args[0], dataset.ImportOptions{DryRun: dryRun})
			if err != nil {
				return fmt.Errorf("importer.ImportWordList() > %w", err)
			}

			printImportSummary(result, dryRun)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without modifying the database")
	return cmd
}

func newImportBackupCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "backup <path>",
		Short: "Restore words, memory records and translations from an exported CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			_, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("os.Open(%s) > %w", args[0], err)
			}
			defer func() {
				_ = file.Close()
			}()

			importer := datasync.NewImporter(
				word.NewDBRepository(db),
				review.NewDBStore(db),
				enrichment.NewDBRepository(db),
				os.Stdout,
			)
			result, err := importer.Import(ctx, file, datasync.ImportOptions{DryRun: dryRun})
			if err != nil {
				return fmt.Errorf("importer.Import() > %w", err)
			}

			fmt.Println("\nImport Summary:")
			if dryRun {
				fmt.Println("  (dry-run mode - no changes made)")
			}
			fmt.Printf("  Words:   %d new, %d skipped, %d invalid\n", result.WordsNew, result.WordsSkipped, result.WordsInvalid)
			fmt.Printf("  Records: %d restored\n", result.RecordsRestored)
			fmt.Printf("  Translations: %d restored\n", result.EnrichmentsNew)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without modifying the database")
	return cmd
}

func printImportSummary(result *dataset.ImportResult, dryRun bool) {
	fmt.Println("\nImport Summary:")
	if dryRun {
		fmt.Println("  (dry-run mode - no changes made)")
	}
	fmt.Printf("  Words: %d new, %d skipped, %d invalid\n", result.New, result.Skipped, result.Invalid)
}
