package domain

// Answer is the composed result of one question, combining the indexed-context
// section with the always-present fallback section.
type Answer struct {
	Combined  string        `json:"answer"`
	FromIndex bool          `json:"from_index"`
	Sources   []ScoredChunk `json:"sources"`
}

// NewsItem is one result from the news lookup, pre-formatted for display.
type NewsItem struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}
