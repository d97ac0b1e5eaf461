package port

import "context"

// AIProvider abstracts the model backend for embeddings and chat completions.
// Implementations can target OpenAI or any compatible API.
type AIProvider interface {
	// ModelName returns the identifier of the chat model being used.
	ModelName() string

	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts in one call.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Complete sends a system instruction and user content to the chat model
	// and returns the response text.
	Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float32) (string, error)
}
