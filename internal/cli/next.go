package cli

import (
	"github.com/runoshun/next-issue/internal/app"
	"github.com/runoshun/next-issue/internal/usecase"
	"github.com/spf13/cobra"
)

// newNextCommand creates the next command.
func newNextCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Show the next issue without touching git",
		Long: `Show which issue start would pick, without switching or creating branches.

The next issue is the first issue file, in file name order, that is either
open on GitHub or not created there yet.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.NextIssueUseCase().Execute(cmd.Context(), usecase.NextIssueInput{
				Milestone: milestoneFlag(cmd, c),
			})
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout())
			if !out.Found() {
				p.line(styleWarn, "No open issues found!")
				return nil
			}

			printIssueHeader(p, out.Entry)
			return nil
		},
	}
}

// printIssueHeader prints title, number, file and status of an issue.
func printIssueHeader(p *printer, entry usecase.IssueEntry) {
	p.line(styleInfo, "Title: %s", entry.Record.Title)
	if entry.Record.HasRemote() {
		p.line(styleInfo, "Issue: #%d", entry.Record.RemoteNumber())
	}
	p.line(styleWarn, "File: %s", entry.Record.File)
	p.line(styleMuted, "Status: %s", entry.Status.Display())
}
