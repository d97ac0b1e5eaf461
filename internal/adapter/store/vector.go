package store

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/michaelwilliams-dev/aivs-shopify-widget/internal/domain"
	"github.com/michaelwilliams-dev/aivs-shopify-widget/internal/port"
)

// VectorStore holds the indexed corpus in memory and answers cosine-similarity
// queries over it. The record set is replaced wholesale: Load publishes a new
// set atomically, so concurrent readers see either the old or the new corpus
// in full, never a mix.
type VectorStore struct {
	mu      sync.RWMutex
	records []domain.IndexedChunk
	dim     int
}

// NewVectorStore creates an empty store.
func NewVectorStore() *VectorStore {
	return &VectorStore{}
}

// Load replaces the entire record set. All embeddings must share one
// dimension; a mismatch fails with port.ErrDataIntegrity and leaves the
// previous record set in place. The store keeps its own copy of the slice.
func (v *VectorStore) Load(chunks []domain.IndexedChunk) error {
	dim := 0
	for i, c := range chunks {
		if i == 0 {
			dim = len(c.Embedding)
			continue
		}
		if len(c.Embedding) != dim {
			return fmt.Errorf("%w: chunk %d has dimension %d, want %d",
				port.ErrDataIntegrity, i, len(c.Embedding), dim)
		}
	}

	records := make([]domain.IndexedChunk, len(chunks))
	copy(records, chunks)

	v.mu.Lock()
	v.records = records
	v.dim = dim
	v.mu.Unlock()
	return nil
}

// Len returns the number of stored records.
func (v *VectorStore) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.records)
}

// Search scores every record against the query by cosine similarity and
// returns the top k, descending by score. Equal scores keep insertion order.
// A zero-norm query or record scores 0 and stays in the result set. An empty
// store returns an empty slice.
func (v *VectorStore) Search(query []float32, k int) []domain.ScoredChunk {
	v.mu.RLock()
	records := v.records
	v.mu.RUnlock()

	results := make([]domain.ScoredChunk, len(records))
	for i, rec := range records {
		results[i] = domain.ScoredChunk{
			Text:  rec.Text,
			Score: cosineSimilarity(query, rec.Embedding),
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if k >= 0 && k < len(results) {
		results = results[:k]
	}
	return results
}

// cosineSimilarity computes dot(a,b) / (|a|·|b|) in float64. Mismatched
// lengths or a zero-norm operand yield 0.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	den := math.Sqrt(na) * math.Sqrt(nb)
	if den == 0 {
		return 0
	}
	return dot / den
}
