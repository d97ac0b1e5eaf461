package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelwilliams-dev/aivs-shopify-widget/internal/domain"
	"github.com/michaelwilliams-dev/aivs-shopify-widget/internal/port"
)

func TestSearchSimilarityValues(t *testing.T) {
	v := NewVectorStore()
	require.NoError(t, v.Load([]domain.IndexedChunk{
		{Text: "same", Embedding: []float32{1, 2, 3}},
		{Text: "orthogonal", Embedding: []float32{0, 0, 1}},
	}))

	results := v.Search([]float32{1, 2, 3}, 2)
	require.Len(t, results, 2)

	assert.Equal(t, "same", results[0].Text)
	assert.InDelta(t, 1.0, results[0].Score, 1e-9)

	orth := v.Search([]float32{1, 0, 0}, 2)
	require.Len(t, orth, 2)
	assert.Equal(t, "orthogonal", orth[1].Text)
	assert.InDelta(t, 0.0, orth[1].Score, 1e-9)
}

func TestSearchOrdering(t *testing.T) {
	v := NewVectorStore()
	// Scores against (1,0): 0.9-ish, ~0.5, ~0.1 by angle.
	require.NoError(t, v.Load([]domain.IndexedChunk{
		{Text: "low", Embedding: []float32{0.1, 0.995}},
		{Text: "high", Embedding: []float32{0.9, 0.436}},
		{Text: "mid", Embedding: []float32{0.5, 0.866}},
	}))

	results := v.Search([]float32{1, 0}, 2)
	require.Len(t, results, 2)
	assert.Equal(t, "high", results[0].Text)
	assert.Equal(t, "mid", results[1].Text)
	assert.Greater(t, results[0].Score, results[1].Score)
}

func TestSearchTieBreakKeepsInsertionOrder(t *testing.T) {
	v := NewVectorStore()
	require.NoError(t, v.Load([]domain.IndexedChunk{
		{Text: "A", Embedding: []float32{1, 1}},
		{Text: "B", Embedding: []float32{1, 1}},
	}))

	results := v.Search([]float32{1, 1}, 2)
	require.Len(t, results, 2)
	assert.Equal(t, "A", results[0].Text)
	assert.Equal(t, "B", results[1].Text)
}

func TestSearchKBound(t *testing.T) {
	v := NewVectorStore()
	require.NoError(t, v.Load([]domain.IndexedChunk{
		{Text: "a", Embedding: []float32{1, 0}},
		{Text: "b", Embedding: []float32{0, 1}},
	}))

	assert.Len(t, v.Search([]float32{1, 0}, 1), 1)
	assert.Len(t, v.Search([]float32{1, 0}, 2), 2)
	assert.Len(t, v.Search([]float32{1, 0}, 10), 2)
}

func TestSearchEmptyStore(t *testing.T) {
	v := NewVectorStore()
	assert.Empty(t, v.Search([]float32{1, 0}, 3))
	assert.Empty(t, v.Search([]float32{1, 0}, 0))
}

func TestSearchZeroNormScoresZero(t *testing.T) {
	v := NewVectorStore()
	require.NoError(t, v.Load([]domain.IndexedChunk{
		{Text: "zero", Embedding: []float32{0, 0}},
		{Text: "unit", Embedding: []float32{1, 0}},
	}))

	results := v.Search([]float32{1, 0}, 2)
	require.Len(t, results, 2)
	assert.Equal(t, "unit", results[0].Text)
	assert.Equal(t, "zero", results[1].Text)
	assert.Equal(t, 0.0, results[1].Score)

	// Zero-norm query scores everything 0 and keeps insertion order.
	all := v.Search([]float32{0, 0}, 2)
	require.Len(t, all, 2)
	assert.Equal(t, "zero", all[0].Text)
	assert.Equal(t, 0.0, all[0].Score)
	assert.Equal(t, 0.0, all[1].Score)
}

func TestLoadRejectsMixedDimensions(t *testing.T) {
	v := NewVectorStore()
	require.NoError(t, v.Load([]domain.IndexedChunk{
		{Text: "a", Embedding: []float32{1, 0}},
	}))

	err := v.Load([]domain.IndexedChunk{
		{Text: "a", Embedding: []float32{1, 0}},
		{Text: "b", Embedding: []float32{1, 0, 0}},
	})
	assert.ErrorIs(t, err, port.ErrDataIntegrity)

	// Failed load must not disturb the published record set.
	assert.Equal(t, 1, v.Len())
}

func TestConcurrentSearchDuringLoad(t *testing.T) {
	v := NewVectorStore()
	require.NoError(t, v.Load([]domain.IndexedChunk{
		{Text: "first", Embedding: []float32{1, 0}},
	}))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			_ = v.Load([]domain.IndexedChunk{
				{Text: "a", Embedding: []float32{1, 0}},
				{Text: "b", Embedding: []float32{0, 1}},
			})
		}
	}()

	// Readers must always observe a full record set: one record or two,
	// never a partially published mix.
	for i := 0; i < 100; i++ {
		n := len(v.Search([]float32{1, 0}, 10))
		assert.True(t, n == 1 || n == 2, "observed %d records", n)
	}
	<-done
}

func TestLoadReplacesWholesale(t *testing.T) {
	v := NewVectorStore()
	require.NoError(t, v.Load([]domain.IndexedChunk{
		{Text: "old", Embedding: []float32{1, 0}},
	}))
	require.NoError(t, v.Load([]domain.IndexedChunk{
		{Text: "new-1", Embedding: []float32{1, 0}},
		{Text: "new-2", Embedding: []float32{0, 1}},
	}))

	results := v.Search([]float32{1, 0}, 10)
	require.Len(t, results, 2)
	assert.Equal(t, "new-1", results[0].Text)
}
