package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/next-issue/internal/domain"
)

// ListIssuesInput contains the parameters for listing issues.
type ListIssuesInput struct {
	Milestone string // Milestone identifier (required)
}

// IssueEntry is a local issue with its remote status.
type IssueEntry struct {
	Record *domain.IssueRecord
	Remote *domain.RemoteIssue // nil when the remote map has no entry
	Status domain.IssueStatus
}

// ListIssuesOutput contains the result of listing issues.
type ListIssuesOutput struct {
	Milestone      string
	MilestoneTitle string       // Empty when the summary file has no title
	Entries        []IssueEntry // In file name order
	RemoteQueried  bool         // Whether live remote data backs the statuses
}

// ListIssues is the use case for listing the issues of a milestone.
// It never mutates anything.
type ListIssues struct {
	issues domain.IssueRepository
	remote *FetchRemoteIssues
}

// NewListIssues creates a new ListIssues use case.
func NewListIssues(issues domain.IssueRepository, remote *FetchRemoteIssues) *ListIssues {
	return &ListIssues{
		issues: issues,
		remote: remote,
	}
}

// Execute classifies every issue of the milestone.
func (uc *ListIssues) Execute(ctx context.Context, in ListIssuesInput) (*ListIssuesOutput, error) {
	if in.Milestone == "" {
		return nil, domain.ErrEmptyMilestone
	}

	records, err := uc.issues.List(in.Milestone)
	if err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}

	remote := uc.remote.Execute(ctx, FetchRemoteIssuesInput{Milestone: in.Milestone})

	entries := make([]IssueEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, newIssueEntry(record, remote.Issues))
	}

	return &ListIssuesOutput{
		Milestone:      in.Milestone,
		MilestoneTitle: remote.MilestoneTitle,
		Entries:        entries,
		RemoteQueried:  remote.Queried,
	}, nil
}

func newIssueEntry(record *domain.IssueRecord, remote domain.RemoteIssueMap) IssueEntry {
	entry := IssueEntry{
		Record: record,
		Status: domain.Classify(record, remote),
	}
	if record.HasRemote() {
		if issue, ok := remote.Lookup(record.RemoteNumber()); ok {
			entry.Remote = &issue
		}
	}
	return entry
}
