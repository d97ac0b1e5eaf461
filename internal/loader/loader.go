// Package loader reads corpus documents and splits them into chunks suitable
// for embedding.
package loader

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Chunk is one passage from a corpus document.
type Chunk struct {
	Path    string // file path relative to the docs root
	Heading string // section heading if applicable
	Content string
}

// LoadDir walks root for .md and .txt files and chunks each one.
func LoadDir(root string) ([]Chunk, error) {
	var chunks []Chunk
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".md" && ext != ".txt" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		chunks = append(chunks, ChunkDocument(rel, string(data))...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load docs dir: %w", err)
	}
	return chunks, nil
}

// ChunkDocument splits a markdown document into one chunk per heading
// section. A document without headings becomes a single chunk.
func ChunkDocument(path, content string) []Chunk {
	var chunks []Chunk
	var heading string
	var body []string

	flush := func() {
		text := strings.TrimSpace(strings.Join(body, "\n"))
		if text != "" {
			chunks = append(chunks, Chunk{Path: path, Heading: heading, Content: text})
		}
		body = body[:0]
	}

	for _, line := range strings.Split(content, "\n") {
		if h, ok := headingText(line); ok {
			flush()
			heading = h
			continue
		}
		body = append(body, line)
	}
	flush()
	return chunks
}

// headingText returns the title of a markdown heading line.
func headingText(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	level := 0
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	if level == 0 || level == len(trimmed) || trimmed[level] != ' ' {
		return "", false
	}
	return strings.TrimSpace(trimmed[level:]), true
}
