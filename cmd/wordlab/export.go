package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xdrxdrxd/wordlab/internal/datasync"
	"github.com/xdrxdrxd/wordlab/internal/enrichment"
	"github.com/xdrxdrxd/wordlab/internal/review"
	"github.com/xdrxdrxd/wordlab/internal/word"
)

func newExportCommand() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export words, memory records and translations as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			_, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			writer := os.Stdout
			if outputPath != "" {
				file, err := os.Create(outputPath)
				if err != nil {
					return fmt.Errorf("os.Create(%s) > %w", outputPath, err)
				}
				defer func() {
					_ = file.Close()
				}()
				writer = file
			}

			exporter := datasync.NewExporter(
				word.NewDBRepository(db),
				review.NewDBStore(db),
				enrichment.NewDBRepository(db),
			)
			count, err := exporter.Export(ctx, writer)
			if err != nil {
				return fmt.Errorf("exporter.Export() > %w", err)
			}

			if outputPath != "" {
				fmt.Printf("Exported %d words to %s\n", count, outputPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the CSV to a file instead of stdout")
	return cmd
}
