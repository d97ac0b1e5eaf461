package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelwilliams-dev/aivs-shopify-widget/internal/domain"
	"github.com/michaelwilliams-dev/aivs-shopify-widget/internal/port"
)

func roundTrip(t *testing.T, chunks []domain.IndexedChunk) []domain.ScoredChunk {
	t.Helper()
	path := filepath.Join(t.TempDir(), "index.json")

	src := NewVectorStore()
	require.NoError(t, src.Load(chunks))
	require.NoError(t, src.Persist(path))

	dst := NewVectorStore()
	require.NoError(t, dst.Restore(path))
	require.Equal(t, len(chunks), dst.Len())

	if len(chunks) == 0 {
		return nil
	}
	return dst.Search(chunks[0].Embedding, len(chunks))
}

func TestSnapshotRoundTrip(t *testing.T) {
	roundTrip(t, nil)

	one := roundTrip(t, []domain.IndexedChunk{
		{Text: "single origin", Embedding: []float32{0.25, -1.5, 3}},
	})
	require.Len(t, one, 1)
	assert.Equal(t, "single origin", one[0].Text)
	assert.InDelta(t, 1.0, one[0].Score, 1e-9)

	many := roundTrip(t, []domain.IndexedChunk{
		{Text: "espresso", Embedding: []float32{1, 0, 0}},
		{Text: "filter", Embedding: []float32{0, 1, 0}},
		{Text: "cold brew", Embedding: []float32{0, 0, 1}},
	})
	require.Len(t, many, 3)
	assert.Equal(t, "espresso", many[0].Text)
}

func TestRestoreAbsentSnapshot(t *testing.T) {
	v := NewVectorStore()
	require.NoError(t, v.Load([]domain.IndexedChunk{
		{Text: "stale", Embedding: []float32{1}},
	}))

	err := v.Restore(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, 0, v.Len())
}

func TestRestoreCorruptSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	v := NewVectorStore()
	assert.ErrorIs(t, v.Restore(path), port.ErrSnapshot)
}

func TestPersistReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.json")

	v := NewVectorStore()
	require.NoError(t, v.Load([]domain.IndexedChunk{
		{Text: "v1", Embedding: []float32{1}},
	}))
	require.NoError(t, v.Persist(path))

	require.NoError(t, v.Load([]domain.IndexedChunk{
		{Text: "v2-a", Embedding: []float32{1}},
		{Text: "v2-b", Embedding: []float32{2}},
	}))
	require.NoError(t, v.Persist(path))

	// No temp files left behind after the rename.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "index.json", entries[0].Name())

	restored := NewVectorStore()
	require.NoError(t, restored.Restore(path))
	assert.Equal(t, 2, restored.Len())
}

func TestPersistFailureLeavesPriorSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.json")

	v := NewVectorStore()
	require.NoError(t, v.Load([]domain.IndexedChunk{
		{Text: "keep", Embedding: []float32{1}},
	}))
	require.NoError(t, v.Persist(path))

	// Renaming over a non-empty directory fails, so the write cannot land.
	blocked := filepath.Join(dir, "blocked")
	require.NoError(t, os.MkdirAll(filepath.Join(blocked, "occupied"), 0o755))
	err := v.Persist(blocked)
	assert.ErrorIs(t, err, port.ErrSnapshot)

	// The earlier snapshot is untouched and still restores.
	restored := NewVectorStore()
	require.NoError(t, restored.Restore(path))
	assert.Equal(t, 1, restored.Len())
}
