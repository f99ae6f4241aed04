package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/robopackage/drupalctl/internal/domain"
)

// Prompts shown by the patch loop.
const (
	PromptIssue        = "Input the Drupal issue URL or ID"
	PromptPatchAnother = "Patch another Drupal package?"
)

// PatchResult reports one iteration of the patch loop.
// Fields are ordered to minimize memory padding.
type PatchResult struct {
	Err        error
	Selection  domain.PatchSelection
	Definition domain.IssueDefinition
}

// PatchProjectInput contains the parameters for patching the project.
// Fields are ordered to minimize memory padding.
type PatchProjectInput struct {
	OnResult func(PatchResult) // Called after every iteration (optional)
	Package  string            // Non-interactive: target package
	Patch    string            // Non-interactive: patch URL or index
	IssueID  int               // Non-interactive when set; otherwise the operator is asked in a loop
	NoUpdate bool              // Skip `composer update --lock`
}

// PatchProjectOutput contains the result of patching the project.
type PatchProjectOutput struct {
	Applied       []domain.PatchSelection
	ManifestDirty bool // composer.json had uncommitted changes before patching
	Updated       bool // composer.lock was refreshed
}

// PatchProject runs the resolve, select, apply loop and refreshes composer.lock.
type PatchProject struct {
	manifests domain.ManifestReader
	prompter  domain.Prompter
	composer  domain.Composer
	vcs       domain.VersionControl
	logger    domain.Logger
	resolve   *ResolveIssue
	choose    *SelectPatch
	apply     *ApplyPatches
}

// NewPatchProject creates a new PatchProject use case. vcs and logger may be nil.
func NewPatchProject(
	manifests domain.ManifestReader,
	resolve *ResolveIssue,
	choose *SelectPatch,
	apply *ApplyPatches,
	composer domain.Composer,
	prompter domain.Prompter,
	vcs domain.VersionControl,
	logger domain.Logger,
) *PatchProject {
	return &PatchProject{
		manifests: manifests,
		prompter:  prompter,
		composer:  composer,
		vcs:       vcs,
		logger:    logger,
		resolve:   resolve,
		choose:    choose,
		apply:     apply,
	}
}

// Execute patches the project. In the interactive loop, resolve, select and
// write failures are reported through OnResult and the operator is asked
// whether to continue; aborting a prompt ends the loop.
func (uc *PatchProject) Execute(ctx context.Context, in PatchProjectInput) (*PatchProjectOutput, error) {
	manifest, err := uc.manifests.Read()
	if err != nil {
		return nil, err
	}
	packages := domain.DrupalPackages(manifest)
	if len(packages) == 0 {
		return nil, domain.ErrNoDrupalPackages
	}

	out := &PatchProjectOutput{}
	if uc.vcs != nil {
		dirty, err := uc.vcs.HasUncommittedChanges(domain.ManifestFileName)
		if err != nil {
			uc.warn(fmt.Sprintf("check %s status: %v", domain.ManifestFileName, err))
		}
		out.ManifestDirty = dirty
	}

	if in.IssueID > 0 {
		res := uc.iterate(ctx, manifest, packages, in.IssueID, in.Package, in.Patch)
		uc.report(in, res)
		if res.Err != nil {
			return out, res.Err
		}
		out.Applied = appendApplied(out.Applied, res.Selection)
	} else if err := uc.loop(ctx, in, manifest, packages, out); err != nil {
		return out, err
	}

	if len(out.Applied) > 0 && !in.NoUpdate {
		if err := uc.composer.UpdateLock(ctx); err != nil {
			return out, err
		}
		out.Updated = true
	}
	return out, nil
}

func (uc *PatchProject) loop(ctx context.Context, in PatchProjectInput, manifest *domain.ComposerManifest, packages []string, out *PatchProjectOutput) error {
	for {
		var id int
		_, err := uc.prompter.Ask(domain.Question{
			Prompt: PromptIssue,
			Validate: func(answer string) (string, error) {
				parsed, err := domain.ParseIssueID(answer)
				if err != nil {
					return "", err
				}
				id = parsed
				return strconv.Itoa(parsed), nil
			},
		})
		if err != nil {
			return endOfLoop(err)
		}

		res := uc.iterate(ctx, manifest, packages, id, "", "")
		uc.report(in, res)
		if errors.Is(res.Err, domain.ErrAborted) {
			return nil
		}
		out.Applied = appendApplied(out.Applied, res.Selection)

		again, err := uc.prompter.Confirm(PromptPatchAnother, false)
		if err != nil {
			return endOfLoop(err)
		}
		if !again {
			return nil
		}
	}
}

// iterate resolves, selects and applies a single issue.
func (uc *PatchProject) iterate(ctx context.Context, manifest *domain.ComposerManifest, packages []string, id int, pkg, patch string) PatchResult {
	resolved, err := uc.resolve.Execute(ctx, ResolveIssueInput{IssueID: id})
	if err != nil {
		return PatchResult{Err: err, Definition: domain.IssueDefinition{ID: id}}
	}
	res := PatchResult{Definition: resolved.Definition}

	chosen, err := uc.choose.Execute(ctx, SelectPatchInput{
		Definition: resolved.Definition,
		Packages:   packages,
		Package:    pkg,
		Patch:      patch,
	})
	if err != nil {
		res.Err = err
		return res
	}

	applied, err := uc.apply.Execute(ctx, ApplyPatchesInput{Manifest: manifest, Selection: chosen.Selection})
	if err != nil {
		res.Err = err
		return res
	}
	if applied.Applied {
		res.Selection = chosen.Selection
	}
	return res
}

func (uc *PatchProject) report(in PatchProjectInput, res PatchResult) {
	if res.Err != nil {
		uc.warn(fmt.Sprintf("issue %d: %v", res.Definition.ID, res.Err))
	}
	if in.OnResult != nil {
		in.OnResult(res)
	}
}

func (uc *PatchProject) warn(msg string) {
	if uc.logger != nil {
		uc.logger.Warn("patch", msg)
	}
}

func appendApplied(applied []domain.PatchSelection, sel domain.PatchSelection) []domain.PatchSelection {
	if sel.IsEmpty() {
		return applied
	}
	return append(applied, sel)
}

// endOfLoop treats an operator abort as a normal end of the loop.
func endOfLoop(err error) error {
	if errors.Is(err, domain.ErrAborted) {
		return nil
	}
	return err
}

