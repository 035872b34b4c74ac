// Package github provides a best-effort issue tracker backed by the gh CLI.
package github

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/runoshun/next-issue/internal/domain"
)

const ghProgram = "gh"

// Client queries GitHub issues through the gh CLI.
// Every failure degrades to "no data"; nothing is returned as an error.
type Client struct {
	exec   domain.CommandExecutor
	logger *slog.Logger
	dir    string
	limit  int
}

// Ensure Client implements domain.IssueTracker interface.
var _ domain.IssueTracker = (*Client)(nil)

// NewClient creates a new gh client. dir is the working directory used to
// resolve the repository; limit caps the number of issues fetched.
func NewClient(exec domain.CommandExecutor, logger *slog.Logger, dir string, limit int) *Client {
	if limit <= 0 {
		limit = domain.DefaultIssueLimit
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		exec:   exec,
		logger: logger,
		dir:    dir,
		limit:  limit,
	}
}

// Available reports whether gh is installed and runnable.
func (c *Client) Available(ctx context.Context) bool {
	cmd := domain.NewCommand(ghProgram, []string{"--version"}, c.dir)
	if _, err := c.exec.Execute(ctx, cmd); err != nil {
		c.logger.Debug("gh unavailable", "error", err)
		return false
	}
	return true
}

// ghIssue is the JSON shape returned by `gh issue list --json`.
type ghIssue struct {
	Title  string    `json:"title"`
	State  string    `json:"state"`
	Labels []ghLabel `json:"labels"`
	Number int       `json:"number"`
}

type ghLabel struct {
	Name string `json:"name"`
}

// ListMilestoneIssues returns open and closed issues of a milestone.
func (c *Client) ListMilestoneIssues(ctx context.Context, milestoneTitle string) domain.RemoteIssueMap {
	cmd := domain.NewCommand(ghProgram, []string{
		"issue", "list",
		"--milestone", milestoneTitle,
		"--state", "all",
		"--json", "number,title,state,labels",
		"--limit", strconv.Itoa(c.limit),
	}, c.dir)

	out, err := c.exec.Execute(ctx, cmd)
	if err != nil {
		c.logger.Debug("gh issue list failed", "milestone", milestoneTitle, "error", err)
		return domain.RemoteIssueMap{}
	}

	issues, err := decodeIssues(out)
	if err != nil {
		c.logger.Debug("gh issue list returned malformed JSON", "milestone", milestoneTitle, "error", err)
		return domain.RemoteIssueMap{}
	}
	c.logger.Debug("fetched remote issues", "milestone", milestoneTitle, "count", len(issues))
	return domain.NewRemoteIssueMap(issues)
}

func decodeIssues(data []byte) ([]domain.RemoteIssue, error) {
	var raw []ghIssue
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	issues := make([]domain.RemoteIssue, 0, len(raw))
	for _, r := range raw {
		labels := make([]string, 0, len(r.Labels))
		for _, l := range r.Labels {
			labels = append(labels, l.Name)
		}
		issues = append(issues, domain.RemoteIssue{
			Number: r.Number,
			Title:  r.Title,
			State:  domain.RemoteState(r.State),
			Labels: labels,
		})
	}
	return issues, nil
}
