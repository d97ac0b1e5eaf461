package port

import (
	"context"

	"github.com/michaelwilliams-dev/aivs-shopify-widget/internal/domain"
)

// Attachment is one file carried by an outbound email.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// OutboundMail is a single message ready for the email transport.
type OutboundMail struct {
	ToAddress   string
	ToName      string
	Subject     string
	TextBody    string
	HTMLBody    string
	Attachments []Attachment
}

// DocumentRenderer turns a composed answer into attachment byte buffers.
type DocumentRenderer interface {
	// RenderPDF renders the answer as a PDF document.
	RenderPDF(question, answer string) ([]byte, error)

	// RenderDOCX renders the answer as a Word document.
	RenderDOCX(question, answer string) ([]byte, error)
}

// Mailer submits outbound messages through a transactional email service.
type Mailer interface {
	Send(ctx context.Context, mail OutboundMail) error
}

// NewsProvider fetches recent coffee-trade news for a query.
type NewsProvider interface {
	Search(ctx context.Context, query string, limit int) ([]domain.NewsItem, error)
}
