package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/xdrxdrxd/wordlab/internal/audio"
	"github.com/xdrxdrxd/wordlab/internal/review"
	"github.com/xdrxdrxd/wordlab/internal/scheduler"
)

// pronunciationLanguage is the language of the words being studied, not
// of the translations shown on a card.
const pronunciationLanguage = "en"

//go:generate mockgen -source=review_cli.go -destination=../mocks/cli/mock_review_session.go -package=mock_cli

// ReviewSession is the part of a review sitting the CLI drives.
type ReviewSession interface {
	NextCard(ctx context.Context) (*review.Card, error)
	Submit(ctx context.Context, response scheduler.Response) error
	Mastered(ctx context.Context) error
	Skip()
	Total() int
	Remaining() int
}

// AudioFetcher downloads pronunciation audio and returns a local file path.
type AudioFetcher interface {
	Fetch(ctx context.Context, text, language string) (string, error)
}

// ReviewCLI manages the interactive CLI session for reviewing due words
type ReviewCLI struct {
	*InteractiveCLI
	session ReviewSession
	audio   AudioFetcher
}

// NewReviewCLI creates a new review interactive CLI. audioFetcher may be
// nil when audio is disabled.
func NewReviewCLI(session ReviewSession, audioFetcher AudioFetcher) *ReviewCLI {
	return &ReviewCLI{
		InteractiveCLI: newInteractiveCLI(),
		session:        session,
		audio:          audioFetcher,
	}
}

func (r *ReviewCLI) Session(ctx context.Context) error {
	card, err := r.session.NextCard(ctx)
	if err != nil {
		return fmt.Errorf("session.NextCard() > %w", err)
	}
	if card == nil {
		fmt.Fprintln(r.stdoutWriter, "No more cards to review!")
		return errEnd
	}

	fmt.Fprintf(r.stdoutWriter, "\n[%d/%d] ", card.Position, card.Total)
	_, _ = r.bold.Fprintf(r.stdoutWriter, "%s", card.Word)
	fmt.Fprintf(r.stdoutWriter, " (%s", card.State)
	if card.FrequencyRank > 0 {
		fmt.Fprintf(r.stdoutWriter, ", rank %d", card.FrequencyRank)
	}
	fmt.Fprintln(r.stdoutWriter, ")")

	revealed := false
	for {
		_, _ = r.bold.Fprint(r.stdoutWriter, "[f]amiliar [v]ague [u]nfamiliar [m]astered [s]kip [p]lay [q]uit, enter to reveal: ")
		input, err := r.stdinReader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("error reading input: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(input)) {
		case "":
			if !revealed {
				r.printEnrichment(card)
				revealed = true
			}
		case "f":
			return r.submit(ctx, card, scheduler.ResponseFamiliar, revealed)
		case "v":
			return r.submit(ctx, card, scheduler.ResponseVague, revealed)
		case "u":
			return r.submit(ctx, card, scheduler.ResponseUnfamiliar, revealed)
		case "m":
			if err := r.session.Mastered(ctx); err != nil {
				return fmt.Errorf("session.Mastered() > %w", err)
			}
			color.Green("Retired %s from reviews", card.Word)
			return nil
		case "s":
			r.session.Skip()
			fmt.Fprintf(r.stdoutWriter, "Skipped %s\n", card.Word)
			return nil
		case "p":
			r.playAudio(ctx, card)
		case "q":
			fmt.Fprintf(r.stdoutWriter, "Quitting with %d cards left.\n", r.session.Remaining())
			return errEnd
		default:
			fmt.Fprintf(r.stdoutWriter, "Unknown command %q\n", strings.TrimSpace(input))
		}
	}
}

func (r *ReviewCLI) submit(ctx context.Context, card *review.Card, response scheduler.Response, revealed bool) error {
	if err := r.session.Submit(ctx, response); err != nil {
		return fmt.Errorf("session.Submit() > %w", err)
	}
	if !revealed {
		r.printEnrichment(card)
	}

	switch response {
	case scheduler.ResponseFamiliar:
		fmt.Fprint(r.stdoutWriter, "✅ ")
		color.Green("Marked %s as familiar", card.Word)
	case scheduler.ResponseVague:
		color.Yellow("Marked %s as vague", card.Word)
	default:
		fmt.Fprint(r.stdoutWriter, "❌ ")
		color.Red("Marked %s as unfamiliar", card.Word)
	}
	return nil
}

func (r *ReviewCLI) printEnrichment(card *review.Card) {
	if len(card.Enrichment) == 0 {
		fmt.Fprintln(r.stdoutWriter, "No translations available yet.")
		return
	}

	first := card.Enrichment[0]
	if first.PartOfSpeech != "" {
		_, _ = r.italic.Fprintf(r.stdoutWriter, "%s\n", first.PartOfSpeech)
	}
	if first.ExampleSentence != "" {
		fmt.Fprintf(r.stdoutWriter, "Example: %s\n", first.ExampleSentence)
	}
	for _, row := range card.Enrichment {
		fmt.Fprintf(r.stdoutWriter, "%s: %s", row.Language, row.Translation)
		if row.ExampleTranslation != "" {
			fmt.Fprintf(r.stdoutWriter, " / %s", row.ExampleTranslation)
		}
		fmt.Fprintln(r.stdoutWriter)
	}
}

// playAudio downloads pronunciation audio for the current card. A failed
// download is reported without ending the session.
func (r *ReviewCLI) playAudio(ctx context.Context, card *review.Card) {
	if r.audio == nil {
		fmt.Fprintln(r.stdoutWriter, "Audio is disabled.")
		return
	}

	example := ""
	if len(card.Enrichment) > 0 {
		example = card.Enrichment[0].ExampleSentence
	}
	text := audio.TextForPlayback(card.Word, example)
	path, err := r.audio.Fetch(ctx, text, pronunciationLanguage)
	if err != nil {
		color.Red("Failed to fetch audio for %s: %v", card.Word, err)
		return
	}
	fmt.Fprintf(r.stdoutWriter, "Audio saved to %s\n", path)
}
