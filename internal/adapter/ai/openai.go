package ai

import (
	"context"
	"fmt"

	"github.com/cenkalti/backoff/v4"
	openai "github.com/sashabaranov/go-openai"
)

// Config holds the OpenAI connection settings.
type Config struct {
	APIKey     string
	EmbedModel string // e.g. text-embedding-3-small
	ChatModel  string // e.g. gpt-4
	MaxRetries uint64 // retries per upstream call, on top of the first attempt
}

// OpenAIProvider implements port.AIProvider against the OpenAI API, with
// bounded exponential retry around each call.
type OpenAIProvider struct {
	client     *openai.Client
	embedModel string
	chatModel  string
	maxRetries uint64
}

// NewOpenAIProvider creates an OpenAI-backed AI provider.
func NewOpenAIProvider(cfg Config) *OpenAIProvider {
	return &OpenAIProvider{
		client:     openai.NewClient(cfg.APIKey),
		embedModel: cfg.EmbedModel,
		chatModel:  cfg.ChatModel,
		maxRetries: cfg.MaxRetries,
	}
}

// ModelName returns the chat model identifier.
func (o *OpenAIProvider) ModelName() string {
	return o.chatModel
}

// Embed generates a vector embedding for the given text.
func (o *OpenAIProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := o.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedBatch generates embeddings for multiple texts in one call.
func (o *OpenAIProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	var resp openai.EmbeddingResponse
	err := o.retry(ctx, func() error {
		var err error
		resp, err = o.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
			Model: openai.EmbeddingModel(o.embedModel),
			Input: texts,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("openai embed: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("openai embed: got %d embeddings for %d inputs", len(resp.Data), len(texts))
	}

	vectors := make([][]float32, len(resp.Data))
	for i, d := range resp.Data {
		vectors[i] = d.Embedding
	}
	return vectors, nil
}

// Complete sends a system instruction and user content to the chat model.
func (o *OpenAIProvider) Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float32) (string, error) {
	var resp openai.ChatCompletionResponse
	err := o.retry(ctx, func() error {
		var err error
		resp, err = o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:       o.chatModel,
			Temperature: temperature,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userPrompt},
			},
		})
		return err
	})
	if err != nil {
		return "", fmt.Errorf("openai chat: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai chat: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}

func (o *OpenAIProvider) retry(ctx context.Context, op func() error) error {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), o.maxRetries), ctx)
	return backoff.Retry(op, policy)
}
