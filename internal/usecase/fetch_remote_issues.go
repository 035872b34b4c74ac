package usecase

import (
	"context"
	"log/slog"

	"github.com/runoshun/next-issue/internal/domain"
)

// FetchRemoteIssuesInput contains the parameters for fetching remote issues.
type FetchRemoteIssuesInput struct {
	Milestone string // Milestone identifier (directory name)
}

// FetchRemoteIssuesOutput contains the remote snapshot of a milestone.
type FetchRemoteIssuesOutput struct {
	Issues         domain.RemoteIssueMap // Remote issues keyed by number, empty when unavailable
	MilestoneTitle string                // Title from the milestone summary file
	Queried        bool                  // Whether the tracker was actually queried
}

// FetchRemoteIssues loads the remote issues of a milestone.
// It is best-effort: a missing tracker, a missing milestone title or a failed
// query all yield an empty map. It never returns an error.
type FetchRemoteIssues struct {
	issues  domain.IssueRepository
	tracker domain.IssueTracker
	logger  *slog.Logger
}

// NewFetchRemoteIssues creates a new FetchRemoteIssues use case.
// A nil tracker behaves like an unavailable one.
func NewFetchRemoteIssues(issues domain.IssueRepository, tracker domain.IssueTracker, logger *slog.Logger) *FetchRemoteIssues {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &FetchRemoteIssues{
		issues:  issues,
		tracker: tracker,
		logger:  logger,
	}
}

// Execute fetches the remote snapshot for the milestone.
func (uc *FetchRemoteIssues) Execute(ctx context.Context, in FetchRemoteIssuesInput) *FetchRemoteIssuesOutput {
	out := &FetchRemoteIssuesOutput{Issues: domain.RemoteIssueMap{}}

	if uc.tracker == nil || !uc.tracker.Available(ctx) {
		uc.logger.Debug("issue tracker unavailable, continuing without remote data")
		return out
	}

	title, ok := uc.issues.MilestoneTitle(in.Milestone)
	if !ok || title == "" {
		uc.logger.Debug("milestone title not found, skipping remote query", "milestone", in.Milestone)
		return out
	}
	out.MilestoneTitle = title

	if issues := uc.tracker.ListMilestoneIssues(ctx, title); issues != nil {
		out.Issues = issues
	}
	out.Queried = true
	uc.logger.Debug("fetched remote issues", "milestone", in.Milestone, "title", title, "count", len(out.Issues))
	return out
}
