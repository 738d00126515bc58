package repository

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"github.com/viant/codemerge/graph"
)

const fileMode = 0o644

// Store loads and saves model documents
type Store struct {
	fs afs.Service
}

// IsDocument returns true if location has a document extension
func IsDocument(location string) bool {
	switch strings.ToLower(path.Ext(location)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Load loads file model from URL
func (s *Store) Load(ctx context.Context, URL string) (*graph.File, error) {
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download %v: %w", URL, err)
	}
	file, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("invalid document %v: %w", URL, err)
	}
	return file, nil
}

// Save saves file model to URL
func (s *Store) Save(ctx context.Context, URL string, file *graph.File) error {
	data, err := Encode(file)
	if err != nil {
		return err
	}
	if err = s.fs.Upload(ctx, URL, fileMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to upload %v: %w", URL, err)
	}
	return nil
}

// Copy copies document from source to dest URL
func (s *Store) Copy(ctx context.Context, sourceURL, destURL string) error {
	data, err := s.fs.DownloadWithURL(ctx, sourceURL)
	if err != nil {
		return fmt.Errorf("failed to download %v: %w", sourceURL, err)
	}
	if err = s.fs.Upload(ctx, destURL, fileMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to upload %v: %w", destURL, err)
	}
	return nil
}

// IsDir returns true if URL is an existing folder
func (s *Store) IsDir(ctx context.Context, URL string) (bool, error) {
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil || !exists {
		return false, err
	}
	object, err := s.fs.Object(ctx, URL)
	if err != nil {
		return false, err
	}
	return object.IsDir(), nil
}

// List returns sorted document paths relative to root URL
func (s *Store) List(ctx context.Context, rootURL string) ([]string, error) {
	var result []string
	var visitor storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if info.IsDir() {
			return true, nil
		}
		if IsDocument(info.Name()) {
			result = append(result, path.Join(parent, info.Name()))
		}
		return true, nil
	}
	if err := s.fs.Walk(ctx, rootURL, visitor); err != nil {
		return nil, fmt.Errorf("failed to list %v: %w", rootURL, err)
	}
	sort.Strings(result)
	return result, nil
}

// Join joins root URL with document relative path
func Join(rootURL, relative string) string {
	return url.Join(rootURL, relative)
}

// NewStore creates a store, afs.New() is used when fs is nil
func NewStore(fs afs.Service) *Store {
	if fs == nil {
		fs = afs.New()
	}
	return &Store{fs: fs}
}
