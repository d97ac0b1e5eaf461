package mail

import (
	"context"
	"encoding/base64"
	"fmt"

	mailjet "github.com/mailjet/mailjet-apiv3-go/v4"

	"github.com/michaelwilliams-dev/aivs-shopify-widget/internal/port"
)

// MailjetSender implements port.Mailer using the Mailjet v3.1 send API.
type MailjetSender struct {
	client   *mailjet.Client
	fromAddr string
	fromName string
}

// NewMailjetSender creates a Mailjet-backed mailer.
func NewMailjetSender(apiKeyPublic, apiKeyPrivate, fromAddr, fromName string) *MailjetSender {
	return &MailjetSender{
		client:   mailjet.NewMailjetClient(apiKeyPublic, apiKeyPrivate),
		fromAddr: fromAddr,
		fromName: fromName,
	}
}

// Send submits a single message with its attachments.
func (m *MailjetSender) Send(ctx context.Context, out port.OutboundMail) error {
	attachments := make(mailjet.AttachmentsV31, len(out.Attachments))
	for i, a := range out.Attachments {
		attachments[i] = mailjet.AttachmentV31{
			ContentType:   a.ContentType,
			Filename:      a.Filename,
			Base64Content: base64.StdEncoding.EncodeToString(a.Data),
		}
	}

	messages := mailjet.MessagesV31{
		Info: []mailjet.InfoMessagesV31{{
			From: &mailjet.RecipientV31{
				Email: m.fromAddr,
				Name:  m.fromName,
			},
			To: &mailjet.RecipientsV31{{
				Email: out.ToAddress,
				Name:  out.ToName,
			}},
			Subject:     out.Subject,
			TextPart:    out.TextBody,
			HTMLPart:    out.HTMLBody,
			Attachments: &attachments,
		}},
	}

	if _, err := m.client.SendMailV31(&messages, mailjet.WithContext(ctx)); err != nil {
		return fmt.Errorf("mailjet send: %w", err)
	}
	return nil
}
