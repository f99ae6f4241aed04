package usecase

import (
	"context"
	"fmt"

	"github.com/robopackage/drupalctl/internal/domain"
)

// ApplyPatchesInput contains the parameters for recording a patch selection.
type ApplyPatchesInput struct {
	Manifest  *domain.ComposerManifest // Decides between the patches file and composer config
	Selection domain.PatchSelection
}

// ApplyPatchesOutput contains the result of recording a selection.
type ApplyPatchesOutput struct {
	Applied bool // False when the selection was empty
}

// ApplyPatches writes a patch selection into the project's composer-patches configuration.
type ApplyPatches struct {
	writers domain.PatchWriterFactory
	logger  domain.Logger
}

// NewApplyPatches creates a new ApplyPatches use case.
func NewApplyPatches(writers domain.PatchWriterFactory, logger domain.Logger) *ApplyPatches {
	return &ApplyPatches{writers: writers, logger: logger}
}

// Execute merges the selection. An empty selection writes nothing.
func (uc *ApplyPatches) Execute(ctx context.Context, in ApplyPatchesInput) (*ApplyPatchesOutput, error) {
	if in.Selection.IsEmpty() {
		return &ApplyPatchesOutput{}, nil
	}
	if err := uc.writers.ForManifest(in.Manifest).Write(ctx, in.Selection); err != nil {
		return nil, err
	}
	if uc.logger != nil {
		for _, pkg := range in.Selection.Packages() {
			for label, url := range in.Selection[pkg] {
				uc.logger.Info("patch", fmt.Sprintf("%s: %s => %s", pkg, label, url))
			}
		}
	}
	return &ApplyPatchesOutput{Applied: true}, nil
}
