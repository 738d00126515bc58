// Package repository stores code models as versioned YAML documents on any afs backed storage.
package repository

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/viant/codemerge/graph"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// Version is the current document format version
const Version = "v1.0.0"

var (
	// ErrEmptyDocument is returned when a document carries no file model
	ErrEmptyDocument = errors.New("empty document")
	// ErrUnsupportedVersion is returned for a malformed or incompatible document version
	ErrUnsupportedVersion = errors.New("unsupported document version")
)

// Document represents a persisted code model
type Document struct {
	Version string      `yaml:"version"`
	File    *graph.File `yaml:"file"`
}

// Decode decodes a document and returns its file model
func Decode(data []byte) (*graph.File, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}
	doc := &Document{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	if err := checkVersion(doc.Version); err != nil {
		return nil, err
	}
	if doc.File == nil {
		return nil, ErrEmptyDocument
	}
	return doc.File, nil
}

// Encode encodes file model with the current version
func Encode(file *graph.File) ([]byte, error) {
	if file == nil {
		return nil, ErrEmptyDocument
	}
	buffer := &bytes.Buffer{}
	encoder := yaml.NewEncoder(buffer)
	encoder.SetIndent(2)
	if err := encoder.Encode(&Document{Version: Version, File: file}); err != nil {
		return nil, fmt.Errorf("failed to encode document %v: %w", file.Path, err)
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func checkVersion(version string) error {
	if version == "" {
		return nil
	}
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	if !semver.IsValid(version) {
		return fmt.Errorf("%w: %q", ErrUnsupportedVersion, version)
	}
	if semver.Major(version) != semver.Major(Version) {
		return fmt.Errorf("%w: %v, expected %v", ErrUnsupportedVersion, version, semver.Major(Version))
	}
	return nil
}
