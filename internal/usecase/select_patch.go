package usecase

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/robopackage/drupalctl/internal/domain"
)

// Prompts shown while selecting a patch.
const (
	PromptSelectPackage = "Select Drupal Package"
	PromptSelectPatch   = "Select Drupal Patch"
)

// SelectPatchInput contains the parameters for choosing a patch.
// Fields are ordered to minimize memory padding.
type SelectPatchInput struct {
	Package    string   // Preselected package; prompts when empty
	Patch      string   // Preselected patch URL or zero-based index; prompts when empty and Package is empty
	Packages   []string // Packages offered to the operator
	Definition domain.IssueDefinition
}

// SelectPatchOutput contains the chosen patch.
type SelectPatchOutput struct {
	Selection domain.PatchSelection // Empty when the issue had nothing to choose from
}

// SelectPatch asks which package receives which of the issue's patches.
type SelectPatch struct {
	prompter domain.Prompter
}

// NewSelectPatch creates a new SelectPatch use case.
func NewSelectPatch(prompter domain.Prompter) *SelectPatch {
	return &SelectPatch{prompter: prompter}
}

// Execute returns {package: {"#id: title": patch}}.
func (uc *SelectPatch) Execute(_ context.Context, in SelectPatchInput) (*SelectPatchOutput, error) {
	def := in.Definition
	if !def.Complete() {
		return &SelectPatchOutput{Selection: domain.PatchSelection{}}, nil
	}
	if len(in.Packages) == 0 {
		return nil, domain.ErrNoDrupalPackages
	}

	pkg, patch, err := uc.preselected(in)
	if err != nil {
		return nil, err
	}
	if pkg == "" {
		pkg, err = uc.prompter.Choice(PromptSelectPackage, in.Packages, -1)
		if err != nil {
			return nil, err
		}
	}
	if patch == "" {
		patch, err = uc.prompter.Choice(PromptSelectPatch, def.Patches, 0)
		if err != nil {
			return nil, err
		}
	}

	return &SelectPatchOutput{Selection: domain.NewPatchSelection(pkg, def.Label(), patch)}, nil
}

// preselected validates the package and patch given on the command line.
// A package without a patch selects the newest patch.
func (uc *SelectPatch) preselected(in SelectPatchInput) (pkg, patch string, err error) {
	if in.Package == "" {
		return "", "", nil
	}
	if !slices.Contains(in.Packages, in.Package) {
		return "", "", fmt.Errorf("%w: %s", domain.ErrUnknownPackage, in.Package)
	}

	patches := in.Definition.Patches
	switch {
	case in.Patch == "":
		return in.Package, patches[0], nil
	case slices.Contains(patches, in.Patch):
		return in.Package, in.Patch, nil
	}
	if i, convErr := strconv.Atoi(in.Patch); convErr == nil && i >= 0 && i < len(patches) {
		return in.Package, patches[i], nil
	}
	return "", "", fmt.Errorf("%w: %s", domain.ErrUnknownPatch, in.Patch)
}
