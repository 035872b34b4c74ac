package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/runoshun/next-issue/internal/app"
	"github.com/runoshun/next-issue/internal/infra/prompt"
	"github.com/runoshun/next-issue/internal/usecase"
	"github.com/spf13/cobra"
)

// newShowCommand creates the show command.
func newShowCommand(c *app.Container) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "show <number|file>",
		Short: "Show an issue file",
		Long: `Show the details and body of an issue file.

The issue is looked up by GitHub issue number first, then by file name
(the .md suffix is optional).

The body is rendered as markdown. Use --raw to print it unchanged.

Examples:
  # Show issue #12
  next-issue show 12

  # Show by file name
  next-issue show 03-parser`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.ShowIssueUseCase().Execute(cmd.Context(), usecase.ShowIssueInput{
				Milestone: milestoneFlag(cmd, c),
				Selector:  args[0],
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			p := newPrinter(w)
			printIssueHeader(p, out.Entry)
			if labels := out.Entry.Record.LabelList(); len(labels) > 0 {
				p.line(styleMuted, "Labels: %s", strings.Join(labels, ", "))
			}
			if len(out.Entry.Record.AcceptanceCriteria) > 0 {
				done := 0
				for _, ac := range out.Entry.Record.AcceptanceCriteria {
					if ac.Done {
						done++
					}
				}
				p.line(styleMuted, "Acceptance: %d/%d done", done, len(out.Entry.Record.AcceptanceCriteria))
			}
			p.blank()

			if raw {
				_, _ = fmt.Fprintln(w, strings.TrimSpace(out.Entry.Record.Body))
				return nil
			}
			return renderMarkdown(w, out.Entry.Record.Body)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the markdown body without rendering")

	return cmd
}

// renderMarkdown renders markdown for w. Non-terminal writers get the
// plain notty style so output stays free of escape sequences.
func renderMarkdown(w io.Writer, body string) error {
	style := glamour.WithStandardStyle(styles.NoTTYStyle)
	if prompt.IsTerminal(w) {
		style = glamour.WithAutoStyle()
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(ruleWidth))
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}
	rendered, err := r.Render(body)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	_, err = io.WriteString(w, rendered)
	return err
}
