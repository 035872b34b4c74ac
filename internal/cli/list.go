package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/runoshun/next-issue/internal/app"
	"github.com/runoshun/next-issue/internal/domain"
	"github.com/runoshun/next-issue/internal/usecase"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats for list.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the issues of a milestone",
		Long: `List every issue file of the milestone with its GitHub status.

Statuses:
  Open                 Linked issue is open on GitHub
  Closed               Linked issue is closed on GitHub
  Not found on remote  Linked issue is missing from the GitHub result
  Not created          Issue file has no GitHub issue number yet

When the gh CLI is unavailable every linked issue shows as not found.

Examples:
  # List the issues of the default milestone
  next-issue list

  # List milestone m2 as JSON
  next-issue list -m m2 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, c, milestoneFlag(cmd, c), format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format (text, json, yaml)")

	return cmd
}

func runList(cmd *cobra.Command, c *app.Container, milestone, format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("%w: %q (must be text, json or yaml)", domain.ErrInvalidFormat, format)
	}

	out, err := c.ListIssuesUseCase().Execute(cmd.Context(), usecase.ListIssuesInput{
		Milestone: milestone,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newListView(out))
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newListView(out)); err != nil {
			return err
		}
		return enc.Close()
	default:
		printIssueList(w, out)
		return nil
	}
}

// listView is the machine-readable form of a milestone listing.
type listView struct {
	Milestone      string      `json:"milestone" yaml:"milestone"`
	MilestoneTitle string      `json:"milestone_title,omitempty" yaml:"milestone_title,omitempty"`
	Issues         []issueView `json:"issues" yaml:"issues"`
	RemoteQueried  bool        `json:"remote_queried" yaml:"remote_queried"`
}

// issueView is the machine-readable form of one issue.
type issueView struct {
	GitHubIssue        *int                `json:"github_issue,omitempty" yaml:"github_issue,omitempty"`
	Remote             *domain.RemoteIssue `json:"remote,omitempty" yaml:"remote,omitempty"`
	File               string              `json:"file" yaml:"file"`
	Title              string              `json:"title" yaml:"title"`
	Status             domain.IssueStatus  `json:"status" yaml:"status"`
	StatusLabel        string              `json:"status_label" yaml:"status_label"`
	Labels             []string            `json:"labels" yaml:"labels"`
	AcceptanceCriteria []domain.Criterion  `json:"acceptance_criteria" yaml:"acceptance_criteria"`
}

func newListView(out *usecase.ListIssuesOutput) listView {
	view := listView{
		Milestone:      out.Milestone,
		MilestoneTitle: out.MilestoneTitle,
		RemoteQueried:  out.RemoteQueried,
		Issues:         make([]issueView, 0, len(out.Entries)),
	}
	for _, entry := range out.Entries {
		view.Issues = append(view.Issues, newIssueView(entry))
	}
	return view
}

func newIssueView(entry usecase.IssueEntry) issueView {
	labels := entry.Record.LabelList()
	if labels == nil {
		labels = []string{}
	}
	criteria := entry.Record.AcceptanceCriteria
	if criteria == nil {
		criteria = []domain.Criterion{}
	}
	return issueView{
		GitHubIssue:        entry.Record.RemoteID,
		Remote:             entry.Remote,
		File:               entry.Record.File,
		Title:              entry.Record.Title,
		Status:             entry.Status,
		StatusLabel:        entry.Status.Display(),
		Labels:             labels,
		AcceptanceCriteria: criteria,
	}
}

// printIssueList prints the listing as status, number and title columns.
func printIssueList(w io.Writer, out *usecase.ListIssuesOutput) {
	p := newPrinter(w)
	p.section(fmt.Sprintf("Issues for Milestone %s", strings.ToUpper(out.Milestone)))

	if len(out.Entries) == 0 {
		p.line(styleMuted, "No issue files found.")
		return
	}

	for _, entry := range out.Entries {
		_, _ = fmt.Fprintf(w, "%s %s %s\n",
			p.status(entry.Status, 12),
			p.render(styleAccent, fmt.Sprintf("%-8s", issueNumber(entry.Record))),
			p.render(styleInfo, entry.Record.Title),
		)
		p.line(styleWarn, "             File: %s", entry.Record.File)
		p.blank()
	}
}

// issueNumber returns "#N" for linked records and "" otherwise.
func issueNumber(record *domain.IssueRecord) string {
	if !record.HasRemote() {
		return ""
	}
	return fmt.Sprintf("#%d", record.RemoteNumber())
}
