package service

import (
	"context"
	"fmt"
	"time"

	"github.com/michaelwilliams-dev/aivs-shopify-widget/internal/port"
)

// DeliveryService renders a composed answer as PDF and DOCX and sends both as
// attachments through the email transport. Any failure aborts the delivery;
// the pipeline treats the whole step as best-effort.
type DeliveryService struct {
	renderer port.DocumentRenderer
	mailer   port.Mailer
	appName  string
}

// NewDeliveryService creates the document/email delivery service.
func NewDeliveryService(renderer port.DocumentRenderer, mailer port.Mailer, appName string) *DeliveryService {
	return &DeliveryService{renderer: renderer, mailer: mailer, appName: appName}
}

// Deliver generates both documents and submits one message with both attached.
func (d *DeliveryService) Deliver(ctx context.Context, question, answer, toAddress string) error {
	pdfData, err := d.renderer.RenderPDF(question, answer)
	if err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	docxData, err := d.renderer.RenderDOCX(question, answer)
	if err != nil {
		return fmt.Errorf("render docx: %w", err)
	}

	timestamp := time.Now().UTC().Format("2006-01-02 15:04:05")
	textBody := fmt.Sprintf(`Please find attached the AI-generated analysis based on your query submitted on %s.

%s`, timestamp, answer)

	mail := port.OutboundMail{
		ToAddress: toAddress,
		Subject:   fmt.Sprintf("%s: AI analysis %s", d.appName, timestamp),
		TextBody:  textBody,
		HTMLBody:  "<pre>" + textBody + "</pre>",
		Attachments: []port.Attachment{
			{
				Filename:    "response.pdf",
				ContentType: "application/pdf",
				Data:        pdfData,
			},
			{
				Filename:    "response.docx",
				ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
				Data:        docxData,
			},
		},
	}

	if err := d.mailer.Send(ctx, mail); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
