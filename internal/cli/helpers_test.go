package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/runoshun/next-issue/internal/app"
	"github.com/runoshun/next-issue/internal/domain"
	"github.com/runoshun/next-issue/internal/testutil"
	"github.com/spf13/cobra"
)

const (
	testMilestone = "m1"
	testTitle     = "M1: Foundations"
)

const testPlan = `
| Issue | Title | Area | Depends | Estimate | Size/Strategy |
|-------|-------|------|---------|----------|---------------|
| #5 | Setup CI | infra | - | 1d | Large: feature branch |
| #8 | Bump deps | infra | - | 1h | Direct on milestone |
`

// testEnv bundles a container wired to in-memory doubles.
type testEnv struct {
	container *app.Container
	repo      *testutil.MockIssueRepository
	tracker   *testutil.MockIssueTracker
	git       *testutil.MockGit
	confirm   *testutil.MockConfirmer
	configs   *testutil.MockConfigManager
}

func newTestEnv(t *testing.T, records ...*domain.IssueRecord) *testEnv {
	t.Helper()

	repo := testutil.NewMockIssueRepository()
	repo.Records[testMilestone] = records
	repo.MilestoneTitles[testMilestone] = testTitle
	repo.Plans[testMilestone] = testPlan

	tracker := testutil.NewMockIssueTracker()
	git := &testutil.MockGit{CurrentBranchVal: "main"}
	confirm := &testutil.MockConfirmer{}
	configs := testutil.NewMockConfigManager()

	root := t.TempDir()
	c := app.NewWithDeps(app.Config{RepoRoot: root, NotesDir: root, InRepo: true}, nil, repo, tracker, git, nil)
	c.Confirmer = confirm
	c.ConfigManager = configs
	c.ConfigLoader = testutil.NewMockConfigLoader()

	return &testEnv{
		container: c,
		repo:      repo,
		tracker:   tracker,
		git:       git,
		confirm:   confirm,
		configs:   configs,
	}
}

func (e *testEnv) remote(issues ...domain.RemoteIssue) {
	e.tracker.Issues[testTitle] = append(e.tracker.Issues[testTitle], issues...)
}

// run executes the root command with args and returns stdout and stderr.
func (e *testEnv) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return runCommand(NewRootCommand(e.container, "test"), "", args...)
}

func runCommand(cmd *cobra.Command, stdin string, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func issue(file, title string, remoteID *int) *domain.IssueRecord {
	return &domain.IssueRecord{
		File:     file,
		Title:    title,
		RemoteID: remoteID,
	}
}

func openIssue(n int) domain.RemoteIssue {
	return domain.RemoteIssue{Number: n, State: domain.RemoteOpen}
}

func closedIssue(n int) domain.RemoteIssue {
	return domain.RemoteIssue{Number: n, State: domain.RemoteClosed}
}
