package domain

// IndexedChunk is a passage from the coffee-business corpus together with its
// embedding vector. All chunks held by a store share one embedding dimension.
type IndexedChunk struct {
	Text      string    `json:"text"`
	Embedding []float32 `json:"embedding"`
}

// ScoredChunk is returned by semantic search, including the cosine similarity
// against the query.
type ScoredChunk struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}
