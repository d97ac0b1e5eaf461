package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/michaelwilliams-dev/aivs-shopify-widget/internal/domain"
	"github.com/michaelwilliams-dev/aivs-shopify-widget/internal/port"
)

// snapshotFile is the on-disk form of the record set.
type snapshotFile struct {
	Records []domain.IndexedChunk `json:"records"`
}

// Persist serializes the current record set to path. The snapshot is written
// to a temp file in the same directory and renamed over the target, so a
// crash mid-write leaves any prior snapshot intact.
func (v *VectorStore) Persist(path string) error {
	v.mu.RLock()
	snap := snapshotFile{Records: v.records}
	data, err := json.Marshal(snap)
	v.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("%w: encode snapshot: %v", port.ErrSnapshot, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create snapshot dir: %v", port.ErrSnapshot, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp snapshot: %v", port.ErrSnapshot, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write snapshot: %v", port.ErrSnapshot, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close snapshot: %v", port.ErrSnapshot, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replace snapshot: %v", port.ErrSnapshot, err)
	}
	return nil
}

// Restore loads the snapshot at path into the store. A missing snapshot is
// not an error and leaves the store empty.
func (v *VectorStore) Restore(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return v.Load(nil)
	}
	if err != nil {
		return fmt.Errorf("%w: read snapshot: %v", port.ErrSnapshot, err)
	}

	var snap snapshotFile
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("%w: decode snapshot: %v", port.ErrSnapshot, err)
	}
	return v.Load(snap.Records)
}
