package patches

import (
	"path/filepath"

	"github.com/robopackage/drupalctl/internal/domain"
)

// Factory picks the patch writer matching a project's composer.json.
type Factory struct {
	composer    ConfigMerger
	projectRoot string
}

// Ensure Factory implements domain.PatchWriterFactory interface.
var _ domain.PatchWriterFactory = (*Factory)(nil)

// NewFactory creates a factory for the project at projectRoot.
func NewFactory(projectRoot string, composer ConfigMerger) *Factory {
	return &Factory{composer: composer, projectRoot: projectRoot}
}

// ForManifest returns a FileWriter when extra.patches-file is set, otherwise a ComposerWriter.
func (f *Factory) ForManifest(m *domain.ComposerManifest) domain.PatchWriter {
	if m != nil && m.Extra.PatchesFile != "" {
		path := m.Extra.PatchesFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(f.projectRoot, path)
		}
		return NewFileWriter(path)
	}
	return NewComposerWriter(f.composer)
}
