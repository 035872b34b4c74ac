package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/runoshun/next-issue/internal/domain"
)

// ShowIssueInput contains the parameters for showing an issue.
type ShowIssueInput struct {
	Milestone string // Milestone identifier (required)
	Selector  string // Remote number ("12" or "#12") or file name (".md" optional)
}

// ShowIssueOutput contains the issue details.
type ShowIssueOutput struct {
	Entry IssueEntry
}

// ShowIssue is the use case for displaying a single issue file.
type ShowIssue struct {
	issues domain.IssueRepository
	remote *FetchRemoteIssues
}

// NewShowIssue creates a new ShowIssue use case.
func NewShowIssue(issues domain.IssueRepository, remote *FetchRemoteIssues) *ShowIssue {
	return &ShowIssue{
		issues: issues,
		remote: remote,
	}
}

// Execute locates the issue and classifies it.
func (uc *ShowIssue) Execute(ctx context.Context, in ShowIssueInput) (*ShowIssueOutput, error) {
	if in.Milestone == "" {
		return nil, domain.ErrEmptyMilestone
	}
	selector := strings.TrimSpace(in.Selector)
	if selector == "" {
		return nil, domain.ErrNoIssueSelector
	}

	records, err := uc.issues.List(in.Milestone)
	if err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}

	record := findIssue(records, selector)
	if record == nil {
		return nil, fmt.Errorf("%w %s", domain.ErrIssueFileNotFound, selector)
	}

	remote := uc.remote.Execute(ctx, FetchRemoteIssuesInput{Milestone: in.Milestone})
	return &ShowIssueOutput{Entry: newIssueEntry(record, remote.Issues)}, nil
}

// findIssue resolves a selector by remote number first, then by file name.
func findIssue(records []*domain.IssueRecord, selector string) *domain.IssueRecord {
	if n, err := strconv.Atoi(strings.TrimPrefix(selector, "#")); err == nil {
		if record := domain.FindByRemote(records, n); record != nil {
			return record
		}
	}
	return domain.FindByFile(records, selector)
}
