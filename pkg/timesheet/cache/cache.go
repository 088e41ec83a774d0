// Package cache persists a loaded timesheet set as a flat JSON file so a
// report can be rebuilt without rescanning spreadsheets.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ukaji3/timesheet-go/pkg/timesheet/models"
)

// Version is the current cache file format version.
const Version = 1

// ErrNotFound indicates there is no cache file at the given path.
var ErrNotFound = errors.New("cache not found")

// File is the on-disk cache document.
type File struct {
	Version   int           `json:"version"`
	Root      string        `json:"root"`
	CreatedAt time.Time     `json:"created_at"`
	Batch     *models.Batch `json:"batch"`
}

// Load reads a cached batch.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read cache: %w", err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse cache: %w", err)
	}
	if f.Version != Version {
		return nil, fmt.Errorf("unsupported cache version %d (want %d)", f.Version, Version)
	}
	if f.Batch == nil {
		f.Batch = &models.Batch{}
	}
	return &f, nil
}

// Save writes a batch to path, replacing any previous cache atomically.
func Save(path, root string, batch *models.Batch, now time.Time) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(File{
		Version:   Version,
		Root:      root,
		CreatedAt: now.UTC(),
		Batch:     batch,
	}, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write cache: %w", err)
	}
	return nil
}
