package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/michaelwilliams-dev/aivs-shopify-widget/internal/adapter/store"
	"github.com/michaelwilliams-dev/aivs-shopify-widget/internal/domain"
	"github.com/michaelwilliams-dev/aivs-shopify-widget/internal/port"
)

// NoIndexedResponse is the placeholder shown when the grounded branch produced
// no answer.
const NoIndexedResponse = "No indexed response available."

const groundedSystemPrompt = `You are a coffee business advisor. Answer the question using ONLY the supplied context.
If the context does not cover the question, say so briefly. Use British English spelling and tone.`

const fallbackSystemPrompt = `You are a knowledgeable advisor for a speciality coffee business, covering sourcing,
roasting, brewing, equipment, retail and cafe operations. Use British English spelling and tone.`

const refusalSentence = "I'm sorry, I can only help with questions about the coffee business."

const reviewSystemPrompt = `You are acting as a senior UK coffee-trade consultant.
Review and formally rewrite the following draft. Maintain a strict professional tone,
British English spelling, and correct trade terminology. Keep the factual content unchanged.`

// signOffPattern strips trailing polite sign-offs from model drafts before review.
var signOffPattern = regexp.MustCompile(`(?is)(Best regards,|Yours sincerely,|Kind regards,)[\s\S]*$`)

// Deliverer sends a composed answer to an email address as document attachments.
type Deliverer interface {
	Deliver(ctx context.Context, question, answer, toAddress string) error
}

// AnswerOptions tunes the pipeline. Zero values fall back to the observed
// defaults via NewAnswerService.
type AnswerOptions struct {
	TopK                int
	MinContextChars     int
	GroundedTemperature float32
	FallbackTemperature float32
	ReviewMaxChars      int // drafts shorter than this get a review pass; 0 disables
	UpstreamTimeout     time.Duration
	DeliveryTimeout     time.Duration
}

// AnswerService runs the retrieval-augmented answer pipeline: embed the
// question, retrieve context, ask a grounded and a fallback completion, compose
// the two sections, and hand the result to best-effort delivery.
type AnswerService struct {
	ai          port.AIProvider
	vectorStore *store.VectorStore
	delivery    Deliverer
	opts        AnswerOptions

	// afterDelivery is invoked when the detached delivery attempt finishes,
	// with its outcome. Tests use it to observe the fire-and-forget path.
	afterDelivery func(err error)
}

// NewAnswerService creates the pipeline service.
func NewAnswerService(ai port.AIProvider, vectorStore *store.VectorStore, delivery Deliverer, opts AnswerOptions) *AnswerService {
	if opts.TopK <= 0 {
		opts.TopK = 3
	}
	if opts.MinContextChars <= 0 {
		opts.MinContextChars = 50
	}
	if opts.GroundedTemperature == 0 {
		opts.GroundedTemperature = 0.3
	}
	if opts.FallbackTemperature == 0 {
		opts.FallbackTemperature = 0.2
	}
	if opts.UpstreamTimeout <= 0 {
		opts.UpstreamTimeout = 30 * time.Second
	}
	if opts.DeliveryTimeout <= 0 {
		opts.DeliveryTimeout = 60 * time.Second
	}
	return &AnswerService{ai: ai, vectorStore: vectorStore, delivery: delivery, opts: opts}
}

// Answer runs the pipeline for one question. A non-empty email triggers a
// detached best-effort delivery whose outcome never affects the returned
// result.
func (s *AnswerService) Answer(ctx context.Context, question, email string) (*domain.Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: question is required", port.ErrInvalidRequest)
	}

	slog.Info("answering question", "question", question, "deliver", email != "")

	// 1. Embed the question. Failure here is fatal.
	embedCtx, cancel := context.WithTimeout(ctx, s.opts.UpstreamTimeout)
	queryVector, err := s.ai.Embed(embedCtx, question)
	cancel()
	if err != nil {
		slog.Error("embed failed", "question", question, "error", err)
		return nil, fmt.Errorf("%w: embed question: %v", port.ErrUpstream, err)
	}

	// 2. Retrieve context and keep only substantive chunks.
	sources := s.vectorStore.Search(queryVector, s.opts.TopK)
	contextText := s.buildContext(sources)

	// 3. Grounded branch, only when the context has substance. Runs
	// concurrently with the fallback; its failure degrades to an empty
	// indexed answer.
	groundedCh := make(chan string, 1)
	if len(contextText) > s.opts.MinContextChars {
		go func() {
			groundedCh <- s.groundedAnswer(ctx, question, contextText)
		}()
	} else {
		groundedCh <- ""
	}

	// 4. Fallback branch, always. Failure here is fatal: it is the only
	// guaranteed content source.
	fallbackAnswer, err := s.fallbackAnswer(ctx, question)
	if err != nil {
		slog.Error("fallback completion failed", "question", question, "error", err)
		return nil, fmt.Errorf("%w: fallback completion: %v", port.ErrUpstream, err)
	}

	indexedAnswer := <-groundedCh

	// 5. Compose the two labelled sections.
	combined := composeAnswer(indexedAnswer, fallbackAnswer)

	// 6. Detached best-effort delivery.
	if s.delivery != nil && strings.Contains(email, "@") {
		go s.deliver(question, combined, email)
	}

	return &domain.Answer{
		Combined:  combined,
		FromIndex: indexedAnswer != "",
		Sources:   sources,
	}, nil
}

// buildContext joins retrieved texts that pass the substance filter.
func (s *AnswerService) buildContext(sources []domain.ScoredChunk) string {
	var parts []string
	for _, src := range sources {
		if len(strings.TrimSpace(src.Text)) > s.opts.MinContextChars {
			parts = append(parts, src.Text)
		}
	}
	return strings.Join(parts, "\n\n")
}

func (s *AnswerService) groundedAnswer(ctx context.Context, question, contextText string) string {
	callCtx, cancel := context.WithTimeout(ctx, s.opts.UpstreamTimeout)
	defer cancel()

	system := groundedSystemPrompt + "\n\nContext:\n" + contextText
	answer, err := s.ai.Complete(callCtx, system, question, s.opts.GroundedTemperature)
	if err != nil {
		slog.Error("grounded completion failed", "question", question, "error", err)
		return ""
	}
	return strings.TrimSpace(answer)
}

func (s *AnswerService) fallbackAnswer(ctx context.Context, question string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.opts.UpstreamTimeout)
	defer cancel()

	user := fmt.Sprintf(`Question: %q

If the question is not about the coffee business, reply exactly: %q`, question, refusalSentence)

	answer, err := s.ai.Complete(callCtx, fallbackSystemPrompt, user, s.opts.FallbackTemperature)
	if err != nil {
		return "", err
	}
	return s.review(ctx, strings.TrimSpace(answer)), nil
}

// review runs short drafts through a second completion that rewrites them in a
// formal trade register. Long drafts are used as-is, and a failed review falls
// back to the unreviewed draft.
func (s *AnswerService) review(ctx context.Context, draft string) string {
	if s.opts.ReviewMaxChars <= 0 || len(draft) >= s.opts.ReviewMaxChars {
		return draft
	}

	stripped := strings.TrimSpace(signOffPattern.ReplaceAllString(draft, ""))
	if stripped == "" {
		return draft
	}

	callCtx, cancel := context.WithTimeout(ctx, s.opts.UpstreamTimeout)
	defer cancel()

	reviewed, err := s.ai.Complete(callCtx, reviewSystemPrompt,
		"--- START RESPONSE ---\n"+stripped+"\n--- END RESPONSE ---", 0)
	if err != nil {
		slog.Error("review completion failed", "error", err)
		return draft
	}
	if reviewed = strings.TrimSpace(reviewed); reviewed != "" {
		return reviewed
	}
	return draft
}

// composeAnswer builds the combined answer with its two labelled sections.
func composeAnswer(indexedAnswer, fallbackAnswer string) string {
	if indexedAnswer == "" {
		indexedAnswer = NoIndexedResponse
	}
	return fmt.Sprintf(`=== COFFEE DESK RESPONSE ===

FROM INDEXED DOCUMENTS:
%s

GENERAL GUIDANCE:
%s`, indexedAnswer, fallbackAnswer)
}

// deliver runs the document/email side channel detached from the request.
// Errors are logged and swallowed; the caller's response never waits on it.
func (s *AnswerService) deliver(question, answer, email string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.opts.DeliveryTimeout)
	defer cancel()

	err := s.delivery.Deliver(ctx, question, answer, email)
	if err != nil {
		slog.Error("answer delivery failed", "email", email, "error", err)
	}
	if s.afterDelivery != nil {
		s.afterDelivery(err)
	}
}
