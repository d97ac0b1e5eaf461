package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/michaelwilliams-dev/aivs-shopify-widget/internal/port"
	"github.com/michaelwilliams-dev/aivs-shopify-widget/internal/service"
)

// AnswerHandler exposes the question answering endpoint.
type AnswerHandler struct {
	answerService *service.AnswerService
}

// NewAnswerHandler creates a new answer handler.
func NewAnswerHandler(answerService *service.AnswerService) *AnswerHandler {
	return &AnswerHandler{answerService: answerService}
}

// Register sets up answer routes.
func (h *AnswerHandler) Register(router fiber.Router) {
	router.Post("/answers", h.Answer)
}

// Answer runs the pipeline for one question, optionally delivering the result
// by email.
func (h *AnswerHandler) Answer(c fiber.Ctx) error {
	var body struct {
		Question string `json:"question"`
		Email    string `json:"email"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	result, err := h.answerService.Answer(c.Context(), body.Question, body.Email)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"answer":     result.Combined,
		"from_index": result.FromIndex,
		"sources":    result.Sources,
	})
}

// statusFor maps pipeline errors onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, port.ErrInvalidRequest):
		return fiber.StatusBadRequest
	case errors.Is(err, port.ErrUpstream):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
