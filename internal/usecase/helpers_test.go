package usecase_test

import (
	"github.com/runoshun/next-issue/internal/domain"
	"github.com/runoshun/next-issue/internal/testutil"
	"github.com/runoshun/next-issue/internal/usecase"
)

const (
	testMilestone = "m1"
	testTitle     = "M1: Foundations"
)

// fixture wires the read-side use cases against in-memory doubles.
type fixture struct {
	repo    *testutil.MockIssueRepository
	tracker *testutil.MockIssueTracker
	fetch   *usecase.FetchRemoteIssues
}

func newFixture(records ...*domain.IssueRecord) *fixture {
	repo := testutil.NewMockIssueRepository()
	repo.Records[testMilestone] = records
	repo.MilestoneTitles[testMilestone] = testTitle
	tracker := testutil.NewMockIssueTracker()
	return &fixture{
		repo:    repo,
		tracker: tracker,
		fetch:   usecase.NewFetchRemoteIssues(repo, tracker, nil),
	}
}

func (f *fixture) remote(issues ...domain.RemoteIssue) {
	f.tracker.Issues[testTitle] = append(f.tracker.Issues[testTitle], issues...)
}

func record(file, title string, remoteID *int) *domain.IssueRecord {
	return &domain.IssueRecord{
		File:     file,
		Title:    title,
		RemoteID: remoteID,
	}
}

func open(n int) domain.RemoteIssue {
	return domain.RemoteIssue{Number: n, State: domain.RemoteOpen}
}

func closed(n int) domain.RemoteIssue {
	return domain.RemoteIssue{Number: n, State: domain.RemoteClosed}
}
