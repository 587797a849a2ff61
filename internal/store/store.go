// Package store manages the on-disk artifact directory holding generated
// images. The layout is a base directory with a single images/ subdirectory;
// files are immutable once written and are never removed by this process.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ImagesSubdir is the subdirectory of the base path that holds image files.
const ImagesSubdir = "images"

// tempPrefix marks in-progress writes. Temp files live in the images
// directory so the final rename stays on one filesystem; the dot prefix keeps
// them out of listings.
const tempPrefix = ".tmp-"

// Store owns the artifact directory layout.
type Store struct {
	base string
}

// Default opens the store under the per-user application data directory.
func Default() (*Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("could not determine application data directory: %w", err)
	}
	return Open(filepath.Join(dir, "imagen3-mcp", "artifacts"))
}

// Open creates the base and images directories if they are missing and
// returns a store rooted at base. Creation is idempotent.
func Open(base string) (*Store, error) {
	if err := os.MkdirAll(base, 0755); err != nil {
		return nil, fmt.Errorf("failed to create artifact directory: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(base, ImagesSubdir), 0755); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}
	return &Store{base: base}, nil
}

// BasePath returns the artifact base directory.
func (s *Store) BasePath() string {
	return s.base
}

// ImagesDir returns the directory that image files are written to.
func (s *Store) ImagesDir() string {
	return filepath.Join(s.base, ImagesSubdir)
}

// List returns the filenames of all regular files in the images directory,
// sorted by name. Temp files from in-progress writes are excluded.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.ImagesDir())
	if err != nil {
		return nil, fmt.Errorf("failed to read images directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// Write stores data under name in the images directory. The content is
// written to a temp file and renamed into place, so a concurrent List or
// read sees either the complete file or nothing. Uniqueness of name is the
// caller's responsibility (see NewFilename).
func (s *Store) Write(name string, data []byte) error {
	tmp, err := os.CreateTemp(s.ImagesDir(), tempPrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write image data: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write image data: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set image permissions: %w", err)
	}
	if err := os.Rename(tmpName, filepath.Join(s.ImagesDir(), name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to store image: %w", err)
	}
	return nil
}

// NewFilename composes a collision-resistant image filename of the form
// {random}_{timestamp}.png. The random token comes first; the timestamp has
// second precision, so the token alone guarantees uniqueness for writes
// within the same second.
func NewFilename() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%s_%s.png", id, time.Now().Format("20060102150405"))
}
