package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// DefaultPatchLimit bounds how many issue attachments are inspected per issue.
const DefaultPatchLimit = 10

// issueURLPattern matches a Drupal.org issue URL and captures its node ID.
var issueURLPattern = regexp.MustCompile(`^https?://(?:www.)?drupal.org/project/.+/issues/(\d+)$`)

// IssueDefinition is a Drupal.org issue resolved to its candidate patch URLs.
// Patches are ordered merge requests first, then attachments newest first.
type IssueDefinition struct {
	Title   string   `json:"title" yaml:"title"`
	Patches []string `json:"patches" yaml:"patches"`
	ID      int      `json:"issue" yaml:"issue"`
}

// Complete reports whether the definition carries everything needed to select a patch.
func (d IssueDefinition) Complete() bool {
	return d.ID > 0 && d.Title != "" && len(d.Patches) > 0
}

// Label returns the composer-patches description for this issue: "#<id>: <title>".
func (d IssueDefinition) Label() string {
	return fmt.Sprintf("#%d: %s", d.ID, d.Title)
}

// NormalizeIssueInput trims the input and reduces a Drupal.org issue URL to its ID.
// Anything that is not an issue URL is returned trimmed but otherwise unchanged.
func NormalizeIssueInput(input string) string {
	value := strings.TrimSpace(input)
	if m := issueURLPattern.FindStringSubmatch(value); m != nil {
		return m[1]
	}
	return value
}

// ParseIssueID parses an issue ID or Drupal.org issue URL.
func ParseIssueID(input string) (int, error) {
	value := NormalizeIssueInput(input)
	if value == "" {
		return 0, ErrInvalidIssueID
	}
	id, err := strconv.Atoi(value)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q is not an issue number", ErrInvalidIssueID, value)
	}
	return id, nil
}

// PatchSelection maps a package name to issue labels and the chosen patch URL.
//
//	{"drupal/foo": {"#123: Title": "https://x/y.patch"}}
type PatchSelection map[string]map[string]string

// NewPatchSelection creates a selection holding a single patch.
func NewPatchSelection(pkg, label, patch string) PatchSelection {
	return PatchSelection{pkg: {label: patch}}
}

// Packages returns the selected package names in sorted order.
func (s PatchSelection) Packages() []string {
	pkgs := make([]string, 0, len(s))
	for pkg := range s {
		pkgs = append(pkgs, pkg)
	}
	sort.Strings(pkgs)
	return pkgs
}

// IsEmpty reports whether the selection holds no patches.
func (s PatchSelection) IsEmpty() bool {
	for _, patches := range s {
		if len(patches) > 0 {
			return false
		}
	}
	return true
}
