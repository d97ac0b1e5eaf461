package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/michaelwilliams-dev/aivs-shopify-widget/internal/adapter/ai"
	"github.com/michaelwilliams-dev/aivs-shopify-widget/internal/adapter/docgen"
	"github.com/michaelwilliams-dev/aivs-shopify-widget/internal/adapter/mail"
	"github.com/michaelwilliams-dev/aivs-shopify-widget/internal/adapter/store"
	"github.com/michaelwilliams-dev/aivs-shopify-widget/internal/adapter/websearch"
	"github.com/michaelwilliams-dev/aivs-shopify-widget/internal/handler"
	"github.com/michaelwilliams-dev/aivs-shopify-widget/internal/service"
	"github.com/michaelwilliams-dev/aivs-shopify-widget/pkg/config"
)

func main() {
	// ── Load .env file ───────────────────────────────────────────────────
	_ = godotenv.Load() // silently ignore if .env doesn't exist

	// ── Configuration ────────────────────────────────────────────────────
	cfg := config.Load()

	slog.Info("🚀 Starting coffee desk",
		"port", cfg.Port,
		"chat_model", cfg.OpenAIChatModel,
		"embed_model", cfg.OpenAIEmbedModel,
		"snapshot", cfg.SnapshotPath,
	)

	// ── Vector store ─────────────────────────────────────────────────────
	vectorStore := store.NewVectorStore()
	if err := vectorStore.Restore(cfg.SnapshotPath); err != nil {
		slog.Error("failed to restore snapshot", "path", cfg.SnapshotPath, "error", err)
		os.Exit(1)
	}
	if vectorStore.Len() == 0 {
		slog.Warn("⚠️ no snapshot found, answering without indexed context", "path", cfg.SnapshotPath)
	} else {
		slog.Info("✅ snapshot restored", "chunks", vectorStore.Len())
	}

	// ── Adapters ─────────────────────────────────────────────────────────
	openaiAI := ai.NewOpenAIProvider(ai.Config{
		APIKey:     cfg.OpenAIAPIKey,
		EmbedModel: cfg.OpenAIEmbedModel,
		ChatModel:  cfg.OpenAIChatModel,
		MaxRetries: uint64(cfg.UpstreamRetries),
	})
	renderer := docgen.NewRenderer(cfg.AppName + " response")
	mailer := mail.NewMailjetSender(cfg.MailjetAPIKeyPublic, cfg.MailjetAPIKeyPrivate,
		cfg.MailFromAddress, cfg.MailFromName)
	news := websearch.NewGoogleProvider(cfg.GoogleAPIKey, cfg.GoogleCSEID)

	// ── Services ─────────────────────────────────────────────────────────
	deliveryService := service.NewDeliveryService(renderer, mailer, cfg.AppName)
	answerService := service.NewAnswerService(openaiAI, vectorStore, deliveryService, service.AnswerOptions{
		TopK:                cfg.TopK,
		MinContextChars:     cfg.MinContextChars,
		GroundedTemperature: float32(cfg.GroundedTemperature),
		FallbackTemperature: float32(cfg.FallbackTemperature),
		ReviewMaxChars:      cfg.ReviewMaxChars,
		UpstreamTimeout:     time.Duration(cfg.UpstreamTimeout) * time.Second,
		DeliveryTimeout:     time.Duration(cfg.DeliveryTimeout) * time.Second,
	})

	// ── Fiber App ────────────────────────────────────────────────────────
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.FrontendURL},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	// Health check
	app.Get("/api/v1/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"app":     cfg.AppName,
			"chunks":  vectorStore.Len(),
			"version": "1.0.0",
		})
	})
	app.Post("/ping", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})

	// ── Routes ───────────────────────────────────────────────────────────
	api := app.Group("/api/v1")

	answerHandler := handler.NewAnswerHandler(answerService)
	answerHandler.Register(api)

	newsHandler := handler.NewNewsHandler(news)
	newsHandler.Register(api)

	// ── Start ────────────────────────────────────────────────────────────
	slog.Info("🌐 Fiber listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
