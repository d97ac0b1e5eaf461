package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkDocument(t *testing.T) {
	content := `# Sourcing
Buy from trusted importers.

## Storage
Keep beans cool and dry.

Away from light.

## Roasting
Small batches roast evenly.
`

	chunks := ChunkDocument("handbook.md", content)
	require.Len(t, chunks, 3)

	assert.Equal(t, "Sourcing", chunks[0].Heading)
	assert.Equal(t, "Storage", chunks[1].Heading)
	assert.Contains(t, chunks[1].Content, "Away from light.")
	assert.Equal(t, "Roasting", chunks[2].Heading)
	assert.Equal(t, "handbook.md", chunks[2].Path)
}

func TestChunkDocumentNoHeadings(t *testing.T) {
	chunks := ChunkDocument("note.txt", "Just plain text with no headings.")
	require.Len(t, chunks, 1)
	assert.Empty(t, chunks[0].Heading)
	assert.Equal(t, "Just plain text with no headings.", chunks[0].Content)
}

func TestChunkDocumentEmpty(t *testing.T) {
	assert.Empty(t, ChunkDocument("empty.md", "\n\n"))
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("# Beans\ncontent"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("plain"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skip.json"), []byte("{}"), 0o644))

	chunks, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, chunks, 2)
}
