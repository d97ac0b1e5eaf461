// Command indexer embeds the corpus under DOCS_PATH and writes the snapshot
// the server restores at startup.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/michaelwilliams-dev/aivs-shopify-widget/internal/adapter/ai"
	"github.com/michaelwilliams-dev/aivs-shopify-widget/internal/adapter/store"
	"github.com/michaelwilliams-dev/aivs-shopify-widget/internal/loader"
	"github.com/michaelwilliams-dev/aivs-shopify-widget/internal/service"
	"github.com/michaelwilliams-dev/aivs-shopify-widget/pkg/config"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if cfg.OpenAIAPIKey == "" {
		slog.Error("OPENAI_API_KEY is required")
		os.Exit(1)
	}

	slog.Info("📚 Indexing corpus", "docs", cfg.DocsPath, "snapshot", cfg.SnapshotPath)

	chunks, err := loader.LoadDir(cfg.DocsPath)
	if err != nil {
		slog.Error("failed to load docs", "error", err)
		os.Exit(1)
	}
	if len(chunks) == 0 {
		slog.Error("no documents found", "docs", cfg.DocsPath)
		os.Exit(1)
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Content
	}

	openaiAI := ai.NewOpenAIProvider(ai.Config{
		APIKey:     cfg.OpenAIAPIKey,
		EmbedModel: cfg.OpenAIEmbedModel,
		ChatModel:  cfg.OpenAIChatModel,
		MaxRetries: uint64(cfg.UpstreamRetries),
	})

	indexService := service.NewIndexService(openaiAI, store.NewVectorStore())
	if err := indexService.IndexToSnapshot(context.Background(), texts, cfg.SnapshotPath); err != nil {
		slog.Error("indexing failed", "error", err)
		os.Exit(1)
	}

	slog.Info("✅ Snapshot written", "chunks", len(texts), "path", cfg.SnapshotPath)
}
