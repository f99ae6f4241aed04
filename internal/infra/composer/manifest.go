// Package composer reads composer.json and runs the composer CLI.
package composer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/robopackage/drupalctl/internal/domain"
)

// ManifestReader reads composer.json from the project root.
type ManifestReader struct {
	path string
}

// Ensure ManifestReader implements domain.ManifestReader interface.
var _ domain.ManifestReader = (*ManifestReader)(nil)

// NewManifestReader creates a reader for <projectRoot>/composer.json.
func NewManifestReader(projectRoot string) *ManifestReader {
	return &ManifestReader{path: filepath.Join(projectRoot, domain.ManifestFileName)}
}

// Path returns the manifest path.
func (r *ManifestReader) Path() string {
	return r.path
}

// Read parses composer.json.
func (r *ManifestReader) Read() (*domain.ComposerManifest, error) {
	content, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrManifestNotFound, r.path)
		}
		return nil, fmt.Errorf("read composer manifest: %w", err)
	}

	var m domain.ComposerManifest
	if err := json.Unmarshal(content, &m); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrDecode, r.path, err)
	}
	return &m, nil
}
