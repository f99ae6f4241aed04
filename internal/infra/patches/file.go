// Package patches writes composer-patches configuration for a project.
package patches

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/robopackage/drupalctl/internal/domain"
)

// patchesKey is the top-level key of a composer-patches patches file.
const patchesKey = "patches"

// FileWriter merges selections into the JSON file named by extra.patches-file.
type FileWriter struct {
	path string
}

// Ensure FileWriter implements domain.PatchWriter interface.
var _ domain.PatchWriter = (*FileWriter)(nil)

// NewFileWriter creates a writer for the patches file at path.
func NewFileWriter(path string) *FileWriter {
	return &FileWriter{path: path}
}

// Path returns the patches file path.
func (w *FileWriter) Path() string {
	return w.path
}

// Write merges selection into the patches file. Entries for other packages
// and issues, and other top-level keys, are kept.
func (w *FileWriter) Write(_ context.Context, selection domain.PatchSelection) error {
	if selection.IsEmpty() {
		return nil
	}

	doc, err := w.read()
	if err != nil {
		return err
	}
	mergeSelection(doc, selection)
	return w.write(doc)
}

// mergeSelection deep-merges selection into doc["patches"].
func mergeSelection(doc map[string]any, selection domain.PatchSelection) {
	patches, ok := doc[patchesKey].(map[string]any)
	if !ok {
		patches = make(map[string]any)
		doc[patchesKey] = patches
	}
	for _, pkg := range selection.Packages() {
		entries, ok := patches[pkg].(map[string]any)
		if !ok {
			entries = make(map[string]any)
			patches[pkg] = entries
		}
		for label, url := range selection[pkg] {
			entries[label] = url
		}
	}
}

// read returns the current document; a missing or blank file is empty.
func (w *FileWriter) read() (map[string]any, error) {
	content, err := os.ReadFile(w.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]any), nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrPatchWrite, w.path, err)
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return make(map[string]any), nil
	}

	var doc map[string]any
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrDecode, w.path, err)
	}
	if doc == nil {
		doc = make(map[string]any)
	}
	return doc, nil
}

func (w *FileWriter) write(doc map[string]any) error {
	content, err := encode(doc, "    ")
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", domain.ErrPatchWrite, w.path, err)
	}

	perm := os.FileMode(0o644)
	if info, err := os.Stat(w.path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.MkdirAll(filepath.Dir(w.path), 0o750); err != nil {
		return fmt.Errorf("%w: create directory: %v", domain.ErrPatchWrite, err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := w.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, perm); err != nil {
		return fmt.Errorf("%w: write temp file: %v", domain.ErrPatchWrite, err)
	}
	if err := os.Rename(tmpPath, w.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("%w: rename temp file: %v", domain.ErrPatchWrite, err)
	}
	return nil
}

// encode marshals v without HTML escaping. An empty indent yields compact
// output without the encoder's trailing newline.
func encode(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if indent == "" {
		return bytes.TrimRight(buf.Bytes(), "\n"), nil
	}
	return buf.Bytes(), nil
}
