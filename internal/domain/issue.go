// Package domain contains core business entities and interfaces.
package domain

import "strings"

// Criterion is a single checkbox item from an issue's acceptance criteria.
type Criterion struct {
	Text string `json:"text" yaml:"text"`
	Done bool   `json:"done" yaml:"done"`
}

// IssueRecord is the parsed representation of one local issue file.
// Fields are ordered to minimize memory padding.
type IssueRecord struct {
	RemoteID           *int        `json:"github_issue,omitempty" yaml:"github_issue,omitempty"`
	Title              string      `json:"title" yaml:"title"`
	Labels             string      `json:"labels" yaml:"labels"` // Raw text between [ and ]
	Body               string      `json:"-" yaml:"-"`
	File               string      `json:"file" yaml:"file"` // Base name only
	AcceptanceCriteria []Criterion `json:"acceptance_criteria,omitempty" yaml:"acceptance_criteria,omitempty"`
}

// HasRemote reports whether the record is linked to a remote issue.
func (r *IssueRecord) HasRemote() bool {
	return r.RemoteID != nil
}

// RemoteNumber returns the linked remote issue number, or 0 if unlinked.
func (r *IssueRecord) RemoteNumber() int {
	if r.RemoteID == nil {
		return 0
	}
	return *r.RemoteID
}

// LabelList splits the raw labels into trimmed, unquoted tokens.
// The raw value stays authoritative; this is for display only.
func (r *IssueRecord) LabelList() []string {
	var labels []string
	for _, part := range strings.Split(r.Labels, ",") {
		label := strings.Trim(strings.TrimSpace(part), `"'`)
		if label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}

// FindByRemote returns the first record linked to the given remote number.
func FindByRemote(records []*IssueRecord, number int) *IssueRecord {
	for _, r := range records {
		if r.RemoteID != nil && *r.RemoteID == number {
			return r
		}
	}
	return nil
}

// FindByFile returns the record parsed from the given file name.
// The ".md" suffix is optional.
func FindByFile(records []*IssueRecord, file string) *IssueRecord {
	if !strings.HasSuffix(file, ".md") {
		file += ".md"
	}
	for _, r := range records {
		if r.File == file {
			return r
		}
	}
	return nil
}

// RemoteState is the tracker-side state of an issue.
type RemoteState string

// Remote states reported by the tracker.
const (
	RemoteOpen   RemoteState = "OPEN"
	RemoteClosed RemoteState = "CLOSED"
)

// RemoteIssue is the tracker's view of an issue.
// Fields are ordered to minimize memory padding.
type RemoteIssue struct {
	Title  string      `json:"title" yaml:"title"`
	State  RemoteState `json:"state" yaml:"state"`
	Labels []string    `json:"labels,omitempty" yaml:"labels,omitempty"`
	Number int         `json:"number" yaml:"number"`
}

// RemoteIssueMap indexes remote issues by number.
type RemoteIssueMap map[int]RemoteIssue

// NewRemoteIssueMap builds a map from a slice. Later duplicates win.
func NewRemoteIssueMap(issues []RemoteIssue) RemoteIssueMap {
	m := make(RemoteIssueMap, len(issues))
	for _, issue := range issues {
		m[issue.Number] = issue
	}
	return m
}

// Lookup returns the remote issue for a number, if present.
func (m RemoteIssueMap) Lookup(number int) (RemoteIssue, bool) {
	issue, ok := m[number]
	return issue, ok
}
