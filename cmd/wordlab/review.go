package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/xdrxdrxd/wordlab/internal/audio"
	"github.com/xdrxdrxd/wordlab/internal/cli"
	"github.com/xdrxdrxd/wordlab/internal/enrichment"
	"github.com/xdrxdrxd/wordlab/internal/inference/openai"
	"github.com/xdrxdrxd/wordlab/internal/review"
)

func newReviewCommand() *cobra.Command {
	var queueSize int

	command := &cobra.Command{
		Use:   "review",
		Short: "Run an interactive review session over the due words",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			sessionParams := cfg.Session
			if queueSize > 0 {
				sessionParams.QueueSize = queueSize
			}

			store := review.NewDBStore(db)
			enrichmentRepo := enrichment.NewDBRepository(db)

			queue, err := review.NewSelector(store, sessionParams).BuildQueue(ctx, time.Now())
			if err != nil {
				return fmt.Errorf("selector.BuildQueue() > %w", err)
			}
			if len(queue) == 0 {
				fmt.Println("Nothing is due. Come back later or import more words.")
				return nil
			}

			var prefetcher review.PrefetchScheduler
			if cfg.OpenAI.APIKey != "" {
				openaiClient := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.RetryAttempts)
				defer func() {
					_ = openaiClient.Close()
				}()
				fmt.Printf("Using OpenAI provider (model: %s)\n", cfg.OpenAI.Model)

				worker := enrichment.NewPrefetcher(enrichmentRepo, openaiClient, cfg.Languages, 0)
				defer worker.Wait()
				prefetcher = worker
			} else {
				fmt.Println("OPENAI_API_KEY is not set; cards show cached translations only.")
			}

			session := review.NewSession(store, enrichmentRepo, prefetcher, cfg.Scheduler, queue)
			audioCache := audio.NewCache(cfg.Audio.CacheDirectory, cfg.Audio.MaxCacheSizeMB)

			fmt.Printf("Starting review session with %d cards\n", session.Total())
			reviewCLI := cli.NewReviewCLI(session, audioCache)
			return reviewCLI.Run(ctx, reviewCLI)
		},
	}

	command.Flags().IntVar(&queueSize, "queue-size", 0, "Override the configured session queue size")
	return command
}
