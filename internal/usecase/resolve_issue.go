// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/robopackage/drupalctl/internal/domain"
)

// ResolveIssueInput contains the parameters for resolving a Drupal.org issue.
type ResolveIssueInput struct {
	IssueID int // Drupal.org issue node ID (required)
}

// ResolveIssueOutput contains the resolved issue.
type ResolveIssueOutput struct {
	Definition domain.IssueDefinition
}

// ResolveIssue turns an issue ID into its title and candidate patch URLs.
type ResolveIssue struct {
	api    domain.IssueAPI
	logger domain.Logger
	limit  int
}

// NewResolveIssue creates a new ResolveIssue use case.
// limit bounds the attachments inspected; zero uses domain.DefaultPatchLimit.
func NewResolveIssue(api domain.IssueAPI, limit int, logger domain.Logger) *ResolveIssue {
	if limit <= 0 {
		limit = domain.DefaultPatchLimit
	}
	return &ResolveIssue{api: api, limit: limit, logger: logger}
}

// Execute resolves the issue. Merge request patches come first, last
// related merge request leading, followed by displayed .patch attachments
// newest first.
func (uc *ResolveIssue) Execute(ctx context.Context, in ResolveIssueInput) (*ResolveIssueOutput, error) {
	id := strconv.Itoa(in.IssueID)

	var nodes domain.IssueNodeList
	found, err := uc.api.FetchResource(ctx, domain.NodeResource, url.Values{
		"nid":  {id},
		"type": {domain.IssueNodeType},
	}, &nodes)
	if err != nil {
		return nil, fmt.Errorf("fetch issue %d: %w", in.IssueID, err)
	}
	if !found {
		return nil, fmt.Errorf("%w %d", domain.ErrIssueFetch, in.IssueID)
	}
	if len(nodes.List) == 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrIssueNotFound, in.IssueID)
	}

	node := nodes.List[0]
	if node.Files == nil {
		return nil, fmt.Errorf("%w: issue %d", domain.ErrNoPatches, in.IssueID)
	}

	patches, err := uc.attachmentPatches(ctx, node.Files)
	if err != nil {
		return nil, err
	}

	var mrs domain.RelatedMergeRequests
	found, err = uc.api.FetchResource(ctx, domain.NodeResource+"/"+id, url.Values{
		domain.MergeRequestFlag: {"1"},
	}, &mrs)
	if err != nil {
		return nil, fmt.Errorf("fetch merge requests for issue %d: %w", in.IssueID, err)
	}
	if !found {
		uc.debug(fmt.Sprintf("issue %d: no merge requests", in.IssueID))
	}
	for _, mr := range mrs.URLs {
		patches = append([]string{mr + domain.PatchFileExt}, patches...)
	}

	return &ResolveIssueOutput{Definition: domain.IssueDefinition{
		ID:      in.IssueID,
		Title:   node.Title,
		Patches: patches,
	}}, nil
}

// attachmentPatches returns the patch URLs of displayed attachments, newest first.
func (uc *ResolveIssue) attachmentPatches(ctx context.Context, files []domain.IssueFile) ([]string, error) {
	displayed := make([]domain.IssueFile, 0, len(files))
	for _, f := range files {
		if f.Display {
			displayed = append(displayed, f)
		}
	}

	patches := []string{}
	for i := len(displayed) - 1; i >= 0 && len(displayed)-1-i < uc.limit; i-- {
		uri := displayed[i].File.URI
		if uri == "" {
			uc.debug("skip attachment without uri")
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var res domain.FileResource
		found, err := uc.api.FetchURL(ctx, uri+domain.ResourceJSONExt, &res)
		if err != nil {
			uc.debug(fmt.Sprintf("skip %s: %v", uri, err))
			continue
		}
		if !found {
			uc.debug("skip " + uri + ": not available")
			continue
		}
		if !res.IsPatch() {
			uc.debug(fmt.Sprintf("skip %s: %q is not a patch", uri, res.Name))
			continue
		}
		patches = append(patches, res.URL)
	}
	return patches, nil
}

func (uc *ResolveIssue) debug(msg string) {
	if uc.logger != nil {
		uc.logger.Debug("resolve", msg)
	}
}
