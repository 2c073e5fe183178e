package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/xdrxdrxd/wordlab/internal/inference"
)

type Client struct {
	httpClient       *resty.Client
	model            string
	maxRetryAttempts uint
}

func NewClient(apiKey, model string, retryAttempts uint) *Client {
	client := resty.New()
	client.SetBaseURL("https://api.openai.com/v1")
	client.SetHeader("Authorization", "Bearer "+apiKey)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient:       client,
		model:            model,
		maxRetryAttempts: retryAttempts,
	}
}

func (client Client) Close() error {
	return client.httpClient.Close()
}

// GetModel returns the model name configured for this client
func (client Client) GetModel() string {
	return client.model
}

// SetBaseURL overrides the API endpoint, for OpenAI-compatible servers
func (client *Client) SetBaseURL(baseURL string) {
	client.httpClient.SetBaseURL(baseURL)
}

type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float32   `json:"temperature,omitempty"`
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Index        int           `json:"index"`
	Message      ChoiceMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type ChoiceMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Retry on JSON parsing errors as they might be due to incomplete responses
	errStr := err.Error()
	if strings.Contains(errStr, "json.Unmarshal") || strings.Contains(errStr, "unexpected end of JSON input") {
		return true
	}

	// Retry on network-related errors
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}

	// Retry on 5xx errors (server errors)
	if strings.Contains(errStr, "response error 5") {
		return true
	}

	// Retry on rate limiting (429)
	if strings.Contains(errStr, "response error 429") {
		return true
	}

	return false
}

// GenerateCard implements the inference.Client interface
func (client *Client) GenerateCard(
	ctx context.Context,
	params inference.GenerateCardRequest,
) (inference.CardContent, error) {
	var result inference.CardContent
	if err := retry.Do(
		func() error {
			response, err := client.generateCard(ctx, params)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = response
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return inference.CardContent{}, err
	}
	return result, nil
}

func (client *Client) getRequestBody(args inference.GenerateCardRequest) ChatCompletionRequest {
	systemPrompt := `You are a vocabulary card writer for an English learner.

Given one English word and a list of target languages, produce:
1. The part of speech of the word in its most common sense (noun, verb, adjective, adverb, etc.).
2. One short, natural example sentence in English using the word in that sense. Everyday register, at most 15 words.
3. For each target language: a translation of the word in the same sense, and a translation of the example sentence.

RULES:
- Use the word's most common everyday sense, not a rare or technical one.
- The example must contain the word exactly once, inflected naturally if needed.
- Translations must match the sense used in the example, not other senses of the word.
- For Japanese, write translations in normal mixed script, no romaji.
- For Chinese, use simplified characters.

OUTPUT FORMAT (JSON only, no markdown fences, no commentary):
{
  "word": "<the word>",
  "part_of_speech": "<part of speech>",
  "example": "<English example sentence>",
  "translations": [
    {
      "language": "<language as given in the request>",
      "word": "<translation of the word>",
      "example_translation": "<translation of the example sentence>"
    }
  ]
}

Include one translations entry per requested language, in the order requested.`

	userMessage := fmt.Sprintf("Word: %s\nTarget languages: %s",
		args.Word, strings.Join(args.Languages, ", "))

	return ChatCompletionRequest{
		Model:       client.model,
		Temperature: 0.2,
		Messages: []Message{
			{Role: RoleSystem, Content: systemPrompt},
			{Role: RoleUser, Content: userMessage},
		},
	}
}

func (client *Client) generateCard(
	ctx context.Context,
	args inference.GenerateCardRequest,
) (inference.CardContent, error) {
	if args.Word == "" {
		return inference.CardContent{}, fmt.Errorf("empty word in request")
	}
	if len(args.Languages) == 0 {
		return inference.CardContent{}, fmt.Errorf("no target languages in request")
	}

	requestBody := client.getRequestBody(args)
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&ChatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return inference.CardContent{}, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return inference.CardContent{}, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*ChatCompletionResponse)
	if responseBody == nil || len(responseBody.Choices) == 0 {
		return inference.CardContent{}, fmt.Errorf("empty response body or choices: %s", response.String())
	}

	content := responseBody.Choices[0].Message.Content
	if content == "" {
		return inference.CardContent{}, fmt.Errorf("empty response content: %s", response.String())
	}
	slog.Default().Debug("openai response content",
		"request", requestBody,
		"response", responseBody,
	)

	// Some models wrap the JSON in a markdown code fence despite the prompt.
	content = stripCodeFence(content)

	var decoded inference.CardContent
	if err := json.NewDecoder(strings.NewReader(content)).Decode(&decoded); err != nil {
		slog.Default().Error("Failed to parse OpenAI response as JSON",
			"request", requestBody,
			"word", args.Word,
			"error", err)
		return inference.CardContent{}, fmt.Errorf("json.Unmarshal(%s) > %w", content, err)
	}
	if decoded.Word == "" {
		decoded.Word = args.Word
	}
	if len(decoded.Translations) == 0 {
		return inference.CardContent{}, fmt.Errorf("response has no translations: %s", content)
	}
	return decoded, nil
}

func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}
