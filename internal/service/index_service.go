package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/michaelwilliams-dev/aivs-shopify-widget/internal/adapter/store"
	"github.com/michaelwilliams-dev/aivs-shopify-widget/internal/domain"
	"github.com/michaelwilliams-dev/aivs-shopify-widget/internal/port"
)

// IndexService builds the vector store from corpus texts and persists the
// snapshot the server restores at startup.
type IndexService struct {
	ai          port.AIProvider
	vectorStore *store.VectorStore
	batchSize   int
}

// NewIndexService creates the corpus indexing service.
func NewIndexService(ai port.AIProvider, vectorStore *store.VectorStore) *IndexService {
	return &IndexService{ai: ai, vectorStore: vectorStore, batchSize: 64}
}

// Index embeds the given texts in batches and replaces the store's record set.
func (s *IndexService) Index(ctx context.Context, texts []string) error {
	slog.Info("indexing corpus", "chunks", len(texts))

	chunks := make([]domain.IndexedChunk, 0, len(texts))
	for start := 0; start < len(texts); start += s.batchSize {
		end := start + s.batchSize
		if end > len(texts) {
			end = len(texts)
		}

		vectors, err := s.ai.EmbedBatch(ctx, texts[start:end])
		if err != nil {
			return fmt.Errorf("%w: embed batch at %d: %v", port.ErrUpstream, start, err)
		}
		for i, vec := range vectors {
			chunks = append(chunks, domain.IndexedChunk{Text: texts[start+i], Embedding: vec})
		}
	}

	return s.vectorStore.Load(chunks)
}

// IndexToSnapshot indexes the texts and persists the result to path.
func (s *IndexService) IndexToSnapshot(ctx context.Context, texts []string, path string) error {
	if err := s.Index(ctx, texts); err != nil {
		return err
	}
	return s.vectorStore.Persist(path)
}
