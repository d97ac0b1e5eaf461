package docgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPDF(t *testing.T) {
	r := NewRenderer("COFFEE DESK RESPONSE")
	data, err := r.RenderPDF("How should I store green beans?", "Keep them cool and dry.")
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderDOCX(t *testing.T) {
	r := NewRenderer("")
	data, err := r.RenderDOCX("What grind suits a moka pot?", "A fine-medium grind.")
	require.NoError(t, err)
	require.NotEmpty(t, data)
	// DOCX is a zip archive.
	assert.Equal(t, []byte{'P', 'K'}, data[:2])
}
