// Package inference defines the boundary to the external language-model
// service that generates card enrichment. Enrichment is best-effort:
// scheduling never depends on it.
package inference

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client defines the generation operations backed by a language model.
type Client interface {
	GenerateCard(ctx context.Context, params GenerateCardRequest) (CardContent, error)
}

// GenerateCardRequest asks for enrichment of one word in one or more
// target languages.
type GenerateCardRequest struct {
	Word      string   `json:"word"`
	Languages []string `json:"languages"`
}

// Translation is the generated content for one target language.
type Translation struct {
	Language           string `json:"language"`
	Word               string `json:"word"`
	ExampleTranslation string `json:"example_translation"`
}

// CardContent is the generated enrichment for a word: an English example
// sentence, the part of speech, and per-language translations of both
// the word and the example.
type CardContent struct {
	Word         string        `json:"word"`
	PartOfSpeech string        `json:"part_of_speech"`
	Example      string        `json:"example"`
	Translations []Translation `json:"translations"`
}

const (
	DefaultMaxRetryAttempts = 3
)
