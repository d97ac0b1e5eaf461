package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/michaelwilliams-dev/aivs-shopify-widget/internal/adapter/websearch"
)

const newsResultLimit = 3

// NewsHandler exposes the coffee-trade news lookup.
type NewsHandler struct {
	news *websearch.GoogleProvider
}

// NewNewsHandler creates a new news handler.
func NewNewsHandler(news *websearch.GoogleProvider) *NewsHandler {
	return &NewsHandler{news: news}
}

// Register sets up news routes.
func (h *NewsHandler) Register(router fiber.Router) {
	router.Get("/news", h.Search)
}

// Search fetches recent results for the q parameter.
func (h *NewsHandler) Search(c fiber.Ctx) error {
	if !h.news.Configured() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "news lookup not configured"})
	}

	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "q parameter is required"})
	}

	items, err := h.news.Search(c.Context(), query, newsResultLimit)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}

	results := make([]string, len(items))
	for i, it := range items {
		results[i] = fmt.Sprintf("• %s\n  %s\n  %s", it.Title, it.Snippet, it.Link)
	}
	if len(results) == 0 {
		results = []string{"No search results found."}
	}

	return c.JSON(fiber.Map{"results": results})
}
