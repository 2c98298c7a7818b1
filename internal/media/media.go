// Package media implements the facility image pipeline: upload
// validation, normalization to JPEG, deterministic per-entity file
// naming, and best-effort cleanup.
package media

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"spacebook-backend/internal/domain"
	"spacebook-backend/internal/logger"
)

// Kind selects the per-entity subdirectory and transform policy.
type Kind string

const (
	KindBranch  Kind = "branches"
	KindLibrary Kind = "libraries"
	KindSpace   Kind = "spaces"
)

const (
	targetWidth  = 600
	targetHeight = 400
	jpegQuality  = 85
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

type policy struct {
	maxBytes int64
	// crop selects centered crop-to-fill at 600:400; libraries keep
	// their original aspect ratio.
	crop bool
}

// Store writes exactly one image per entity key under
// <root>/<kind>/<key lowercased>.jpg.
type Store struct {
	root     string
	policies map[Kind]policy
}

func NewStore(root string, branchMaxMB, libraryMaxMB, spaceMaxMB int64) (*Store, error) {
	s := &Store{
		root: root,
		policies: map[Kind]policy{
			KindBranch:  {maxBytes: branchMaxMB * 1024 * 1024, crop: true},
			KindLibrary: {maxBytes: libraryMaxMB * 1024 * 1024, crop: false},
			KindSpace:   {maxBytes: spaceMaxMB * 1024 * 1024, crop: true},
		},
	}
	for kind := range s.policies {
		if err := os.MkdirAll(filepath.Join(root, string(kind)), 0755); err != nil {
			return nil, fmt.Errorf("failed to create media directory for %s: %w", kind, err)
		}
	}
	return s, nil
}

// Ingest validates, transforms and stores an uploaded image, replacing
// any prior image for the same key. Nothing is written on validation or
// decode failure.
func (s *Store) Ingest(key, filename string, data []byte, kind Kind) (string, error) {
	pol, ok := s.policies[kind]
	if !ok {
		return "", fmt.Errorf("unknown media kind %q", kind)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("extension %q: %w", ext, domain.ErrUnsupportedFormat)
	}
	if int64(len(data)) > pol.maxBytes {
		return "", fmt.Errorf("%d bytes exceeds %d byte limit: %w", len(data), pol.maxBytes, domain.ErrImageTooLarge)
	}

	img, err := decode(ext, data)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", ext, domain.ErrUnsupportedFormat)
	}

	var out image.Image
	if pol.crop {
		out = imaging.Fill(img, targetWidth, targetHeight, imaging.Center, imaging.Lanczos)
	} else {
		out = imaging.Clone(img)
	}

	path := s.Path(key, kind)
	if err := writeAtomic(path, out); err != nil {
		return "", err
	}
	return path, nil
}

func decode(ext string, data []byte) (image.Image, error) {
	if ext == ".webp" {
		return webp.Decode(bytes.NewReader(data))
	}
	return imaging.Decode(bytes.NewReader(data))
}

// writeAtomic encodes to a temp file in the target directory and
// renames it over the destination, so readers never see a partial file.
func writeAtomic(path string, img image.Image) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".upload-*")
	if err != nil {
		return fmt.Errorf("failed to create temp image file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := imaging.Encode(tmp, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to encode image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to flush image file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move image into place: %w", err)
	}
	return nil
}

// Path returns the deterministic location for an entity's image.
func (s *Store) Path(key string, kind Kind) string {
	return filepath.Join(s.root, string(kind), strings.ToLower(key)+".jpg")
}

// Open opens a stored image for reading.
func (s *Store) Open(key string, kind Kind) (*os.File, error) {
	f, err := os.Open(s.Path(key, kind))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("image for %s %s: %w", kind, key, domain.ErrNotFound)
	}
	return f, err
}

// Remove deletes the image for a key if present. Cleanup is
// best-effort; failures are logged and not propagated.
func (s *Store) Remove(key string, kind Kind) {
	path := s.Path(key, kind)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.Warn("failed to remove media file", "path", path, "error", err)
	}
}

// Keys lists the entity keys that currently have a stored image.
func (s *Store) Keys(kind Kind) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, string(kind)))
	if err != nil {
		return nil, err
	}
	var keys []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".jpg") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, ".jpg"))
	}
	return keys, nil
}
