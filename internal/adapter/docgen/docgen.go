// Package docgen renders composed answers into PDF and DOCX attachments.
package docgen

import (
	"time"
)

const (
	divider    = "────────────────────────────────────────────"
	noteLine   = "Note: This report was prepared using AI analysis based on the submitted query."
	disclaimer = "This document was generated by AIVS Software Limited using AI assistance (OpenAI). " +
		"Please review for accuracy and relevance before taking any formal action."
	copyrightLine = "© AIVS Software Limited. All rights reserved."
)

// Renderer produces branded answer documents. The zero value is usable; Title
// defaults to a generic heading.
type Renderer struct {
	Title string
}

// NewRenderer creates a renderer with the given document title.
func NewRenderer(title string) *Renderer {
	if title == "" {
		title = "AI RESPONSE REPORT"
	}
	return &Renderer{Title: title}
}

// generatedAt reports the document timestamp in UK local time, falling back
// to UTC if the zone database is unavailable.
func generatedAt() string {
	now := time.Now()
	if loc, err := time.LoadLocation("Europe/London"); err == nil {
		now = now.In(loc)
	}
	return now.Format("02 January 2006 at 15:04:05 (MST)")
}
