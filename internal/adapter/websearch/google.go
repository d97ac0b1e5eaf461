// Package websearch fetches coffee-trade news via Google Custom Search.
package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/michaelwilliams-dev/aivs-shopify-widget/internal/domain"
	"github.com/michaelwilliams-dev/aivs-shopify-widget/internal/port"
)

const searchEndpoint = "https://www.googleapis.com/customsearch/v1"

// GoogleProvider implements port.NewsProvider against the Custom Search API.
type GoogleProvider struct {
	apiKey     string
	cseID      string
	httpClient *http.Client
}

// NewGoogleProvider creates a Custom Search news provider.
func NewGoogleProvider(apiKey, cseID string) *GoogleProvider {
	return &GoogleProvider{
		apiKey:     apiKey,
		cseID:      cseID,
		httpClient: &http.Client{},
	}
}

// Configured reports whether API credentials are present.
func (g *GoogleProvider) Configured() bool {
	return g.apiKey != "" && g.cseID != ""
}

// Search returns up to limit results for the query.
func (g *GoogleProvider) Search(ctx context.Context, query string, limit int) ([]domain.NewsItem, error) {
	params := url.Values{
		"key": {g.apiKey},
		"cx":  {g.cseID},
		"q":   {query},
		"num": {strconv.Itoa(limit)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchEndpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("google search: create request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: google search: %v", port.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: google search API error (%d): %s", port.ErrUpstream, resp.StatusCode, string(body))
	}

	var payload struct {
		Items []struct {
			Title   string `json:"title"`
			Snippet string `json:"snippet"`
			Link    string `json:"link"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: google search decode: %v", port.ErrUpstream, err)
	}

	items := make([]domain.NewsItem, len(payload.Items))
	for i, it := range payload.Items {
		items[i] = domain.NewsItem{Title: it.Title, Snippet: it.Snippet, Link: it.Link}
	}
	return items, nil
}
