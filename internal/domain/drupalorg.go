package domain

import (
	"bytes"
	"encoding/json"
	"path"
	"strconv"
	"strings"
)

// Drupal.org REST API resources queried while resolving an issue.
const (
	NodeResource     = "node"
	IssueNodeType    = "project_issue"
	PatchFileExt     = ".patch"
	ResourceJSONExt  = ".json"
	MergeRequestFlag = "related_mrs"
)

// IssueNodeList is the response of GET node.json?nid=<id>&type=project_issue.
type IssueNodeList struct {
	List []IssueNode `json:"list"`
}

// IssueNode is a single issue node. Files is nil when field_issue_files is
// absent or null, and empty when the issue has no attachments.
type IssueNode struct {
	Title string      `json:"title"`
	Files []IssueFile `json:"field_issue_files"`
}

// IssueFile is an attachment reference on an issue node.
type IssueFile struct {
	File    IssueFileRef `json:"file"`
	Display DisplayFlag  `json:"display"`
}

// IssueFileRef points at the file resource; URI is the resource URL without ".json".
type IssueFileRef struct {
	URI string `json:"uri"`
}

// FileResource is the response of GET {file.uri}.json.
type FileResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// IsPatch reports whether the file resource names a patch and carries a download URL.
func (f FileResource) IsPatch() bool {
	return f.Name != "" && f.URL != "" && path.Ext(f.Name) == PatchFileExt
}

// RelatedMergeRequests is the response of GET node/<id>.json?related_mrs=1.
type RelatedMergeRequests struct {
	URLs []string `json:"related_mrs"`
}

// DisplayFlag is the attachment "display" field. The API sends it as a
// string ("1") or a number (1); a value whose integer part is 1 marks a
// displayed file.
type DisplayFlag bool

// UnmarshalJSON truncates numbers and numeric strings to an integer and
// compares it with 1, so "01" and 1.0 are displayed. true counts as 1;
// anything non-numeric is hidden.
func (d *DisplayFlag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	var s string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	} else {
		s = string(data)
	}
	*d = DisplayFlag(displayValue(strings.TrimSpace(s)) == 1)
	return nil
}

func displayValue(s string) int {
	if s == "true" {
		return 1
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int(v)
}
