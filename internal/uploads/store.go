// Package uploads persists incoming multipart files to local disk and turns
// them into document descriptors for the evidence scorer.
package uploads

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"hlcompare/internal/evidence"
)

// ErrFileTooLarge is returned when an upload exceeds the configured cap.
var ErrFileTooLarge = errors.New("uploaded file exceeds size limit")

// DefaultMaxFileBytes caps one uploaded file at 25MB unless configured.
const DefaultMaxFileBytes = 25 << 20

// Saved describes one persisted upload.
type Saved struct {
	Name string // sanitized original filename
	Path string // on-disk path including the collision prefix
	Size int64
}

// Descriptor converts the saved file into the scorer's input shape.
func (s Saved) Descriptor() evidence.Descriptor {
	return evidence.Descriptor{Filename: s.Name, SizeBytes: s.Size}
}

// Store writes uploads under a single directory. Stored names carry a short
// random prefix so identical filenames from different requests never collide.
type Store struct {
	dir      string
	maxBytes int64
}

// NewStore creates an upload store rooted at dir. A non-positive maxBytes
// selects DefaultMaxFileBytes.
func NewStore(dir string, maxBytes int64) *Store {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxFileBytes
	}
	return &Store{dir: dir, maxBytes: maxBytes}
}

// Dir returns the upload directory, used by the static file route.
func (s *Store) Dir() string { return s.dir }

// Save persists one upload. The filename is reduced to its base name so path
// components smuggled in by a client cannot escape the upload directory.
func (s *Store) Save(filename string, r io.Reader) (Saved, error) {
	name := sanitize(filename)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return Saved{}, fmt.Errorf("failed to create upload dir: %w", err)
	}

	stored := uuid.New().String()[:8] + "_" + name
	path := filepath.Join(s.dir, stored)

	f, err := os.Create(path)
	if err != nil {
		return Saved{}, fmt.Errorf("failed to create upload file: %w", err)
	}

	// Copy one byte past the cap so oversize inputs are detectable without
	// buffering the whole file.
	n, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return Saved{}, fmt.Errorf("failed to write upload: %w", err)
	}
	if n > s.maxBytes {
		os.Remove(path)
		return Saved{}, fmt.Errorf("%w: %s", ErrFileTooLarge, name)
	}

	return Saved{Name: name, Path: path, Size: n}, nil
}

func sanitize(filename string) string {
	name := filepath.Base(strings.TrimSpace(filename))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "upload"
	}
	return name
}
