package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Server
	Port    string
	AppName string

	// OpenAI
	OpenAIAPIKey       string
	OpenAIEmbedModel   string
	OpenAIChatModel    string
	EmbeddingDimension int
	UpstreamRetries    int

	// Retrieval
	SnapshotPath    string
	TopK            int
	MinContextChars int

	// Generation
	GroundedTemperature float64
	FallbackTemperature float64
	ReviewMaxChars      int // drafts shorter than this get a review pass; 0 disables

	// Timeouts (seconds)
	UpstreamTimeout int
	DeliveryTimeout int

	// Mailjet
	MailjetAPIKeyPublic  string
	MailjetAPIKeyPrivate string
	MailFromAddress      string
	MailFromName         string

	// Google Custom Search (news lookup)
	GoogleAPIKey string
	GoogleCSEID  string

	// Indexer
	DocsPath string

	// Frontend
	FrontendURL string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Port:    envOrDefault("PORT", "3001"),
		AppName: envOrDefault("APP_NAME", "AIVS Coffee Desk"),

		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		OpenAIEmbedModel:   envOrDefault("OPENAI_EMBED_MODEL", "text-embedding-3-small"),
		OpenAIChatModel:    envOrDefault("OPENAI_CHAT_MODEL", "gpt-4"),
		EmbeddingDimension: envOrDefaultInt("EMBEDDING_DIMENSION", 1536),
		UpstreamRetries:    envOrDefaultInt("UPSTREAM_RETRIES", 2),

		SnapshotPath:    envOrDefault("SNAPSHOT_PATH", "data/coffee/index.json"),
		TopK:            envOrDefaultInt("RAG_TOP_K", 3),
		MinContextChars: envOrDefaultInt("RAG_MIN_CONTEXT_CHARS", 50),

		GroundedTemperature: envOrDefaultFloat("GROUNDED_TEMPERATURE", 0.3),
		FallbackTemperature: envOrDefaultFloat("FALLBACK_TEMPERATURE", 0.2),
		ReviewMaxChars:      envOrDefaultInt("REVIEW_MAX_CHARS", 1500),

		UpstreamTimeout: envOrDefaultInt("UPSTREAM_TIMEOUT_SECONDS", 30),
		DeliveryTimeout: envOrDefaultInt("DELIVERY_TIMEOUT_SECONDS", 60),

		MailjetAPIKeyPublic:  os.Getenv("MJ_APIKEY_PUBLIC"),
		MailjetAPIKeyPrivate: os.Getenv("MJ_APIKEY_PRIVATE"),
		MailFromAddress:      envOrDefault("MAIL_FROM_ADDRESS", "noreply@securemaildrop.uk"),
		MailFromName:         envOrDefault("MAIL_FROM_NAME", "Secure Maildrop"),

		GoogleAPIKey: os.Getenv("GOOGLE_API_KEY"),
		GoogleCSEID:  os.Getenv("GOOGLE_CSE_ID"),

		DocsPath: envOrDefault("DOCS_PATH", "docs"),

		FrontendURL: envOrDefault("FRONTEND_URL", "http://localhost:3000"),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrDefaultInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return fallback
}

func envOrDefaultFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}
