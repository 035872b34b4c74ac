package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/next-issue/internal/domain"
)

// NextIssueInput contains the parameters for resolving the next issue.
type NextIssueInput struct {
	Milestone string // Milestone identifier (required)
}

// NextIssueOutput contains the resolved issue.
// Entry.Record is nil when nothing is actionable.
type NextIssueOutput struct {
	Entry IssueEntry
}

// Found reports whether an actionable issue was resolved.
func (o *NextIssueOutput) Found() bool {
	return o.Entry.Record != nil
}

// NextIssue is the use case for picking the next issue without touching git.
type NextIssue struct {
	issues domain.IssueRepository
	remote *FetchRemoteIssues
}

// NewNextIssue creates a new NextIssue use case.
func NewNextIssue(issues domain.IssueRepository, remote *FetchRemoteIssues) *NextIssue {
	return &NextIssue{
		issues: issues,
		remote: remote,
	}
}

// Execute resolves the first actionable issue of the milestone.
func (uc *NextIssue) Execute(ctx context.Context, in NextIssueInput) (*NextIssueOutput, error) {
	if in.Milestone == "" {
		return nil, domain.ErrEmptyMilestone
	}

	records, err := uc.issues.List(in.Milestone)
	if err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}

	remote := uc.remote.Execute(ctx, FetchRemoteIssuesInput{Milestone: in.Milestone})

	record := domain.ResolveNext(records, remote.Issues)
	if record == nil {
		return &NextIssueOutput{}, nil
	}
	return &NextIssueOutput{Entry: newIssueEntry(record, remote.Issues)}, nil
}
