package patches

import (
	"context"
	"fmt"

	"github.com/robopackage/drupalctl/internal/domain"
)

// ConfigMerger merges a JSON value into a composer.json config key.
type ConfigMerger interface {
	MergeConfig(ctx context.Context, key, jsonValue string) error
}

// ComposerWriter records patches in composer.json extra.patches through the composer CLI.
type ComposerWriter struct {
	composer ConfigMerger
}

// Ensure ComposerWriter implements domain.PatchWriter interface.
var _ domain.PatchWriter = (*ComposerWriter)(nil)

// NewComposerWriter creates a writer that runs `composer config` via composer.
func NewComposerWriter(composer ConfigMerger) *ComposerWriter {
	return &ComposerWriter{composer: composer}
}

// ConfigKey returns the composer.json key holding a package's patches.
func ConfigKey(pkg string) string {
	return "extra.patches." + pkg
}

// Write merges each package's patches in sorted package order. The first
// failure stops the write; packages written before it stay applied.
func (w *ComposerWriter) Write(ctx context.Context, selection domain.PatchSelection) error {
	for _, pkg := range selection.Packages() {
		entries := selection[pkg]
		if len(entries) == 0 {
			continue
		}
		value, err := encode(entries, "")
		if err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrPatchWrite, pkg, err)
		}
		if err := w.composer.MergeConfig(ctx, ConfigKey(pkg), string(value)); err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrPatchWrite, pkg, err)
		}
	}
	return nil
}
