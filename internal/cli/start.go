package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/runoshun/next-issue/internal/app"
	"github.com/runoshun/next-issue/internal/domain"
	"github.com/runoshun/next-issue/internal/infra/prompt"
	"github.com/runoshun/next-issue/internal/usecase"
	"github.com/spf13/cobra"
)

// newStartCommand creates the start command.
func newStartCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "start [number]",
		Short: "Start working on an issue",
		Long: `Start working on an issue: pick it, prepare the branch and print
the acceptance criteria and next steps.

Without a number the next open issue is picked. With a number the issue
must belong to the milestone on GitHub and have a local issue file.

Every git change is confirmed first:
  - when the current branch is neither a milestone nor a feature branch,
    offers to check out and pull the milestone branch
  - unless the implementation plan marks the issue as "Direct on milestone",
    offers to create (or switch to) the feature branch

Examples:
  # Start the next open issue
  next-issue start

  # Start issue #12 of milestone m2
  next-issue start 12 -m m2`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var number *int
			if len(args) == 1 {
				n, err := parseIssueNumber(args[0])
				if err != nil {
					return err
				}
				number = &n
			}
			return runStart(cmd, c, milestoneFlag(cmd, c), number)
		},
	}
}

// parseIssueNumber parses "12" or "#12".
func parseIssueNumber(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(arg, "#"))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid issue number: %q", arg)
	}
	return n, nil
}

func runStart(cmd *cobra.Command, c *app.Container, milestone string, number *int) error {
	ctx := cmd.Context()
	uc := c.StartIssueUseCase()

	plan, err := uc.Plan(ctx, usecase.StartIssueInput{
		Number:    number,
		Milestone: milestone,
	})
	if err != nil {
		return err
	}

	p := newPrinter(cmd.OutOrStdout())
	if !plan.Found() {
		p.line(styleWarn, "No open issues found!")
		return nil
	}

	confirm := c.Confirmer
	if confirm == nil {
		confirm = prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	// Issue
	p.section("Starting Work on Issue")
	p.line(styleInfo, "Title: %s", plan.Record.Title)
	if plan.Record.HasRemote() {
		p.line(styleInfo, "Issue: #%d", plan.Record.RemoteNumber())
	}
	p.line(styleWarn, "File: %s", plan.Record.File)
	p.blank()
	p.line(styleAccent, "Current branch: %s", branchLabel(plan.CurrentBranch))

	// Milestone branch
	if plan.NeedsMilestoneSwitch() {
		p.blank()
		p.line(styleWarn, "You're not on a milestone or feature branch.")
		p.line(styleWarn, "Expected milestone branch: %s", plan.MilestoneBranch)
		p.blank()
		switched, err := uc.SwitchToMilestone(ctx, plan, confirm)
		if err != nil {
			return err
		}
		if switched {
			p.line(styleSuccess, "Switched to %s and pulled from %s", plan.MilestoneBranch, plan.GitRemote)
		}
	}

	// Branch strategy
	p.section("Branch Strategy")
	if plan.Policy == domain.PolicyDirectOnMilestone {
		p.line(styleSuccess, "Recommended: Work directly on milestone branch")
		p.line(styleInfo, "Branch: %s", plan.MilestoneBranch)
	} else {
		p.line(styleSuccess, "Recommended: Create feature branch")
		p.line(styleInfo, "Branch name: %s", plan.FeatureBranch)
		if plan.Record.HasRemote() && !plan.PolicyFound {
			p.line(styleMuted, "No implementation plan entry for #%d, defaulting to a feature branch.", plan.Record.RemoteNumber())
		}
		if plan.NeedsFeatureBranch() {
			p.blank()
			created, checkedOut, err := uc.SetupFeatureBranch(ctx, plan, confirm)
			if err != nil {
				return err
			}
			switch {
			case created:
				p.line(styleSuccess, "Created and switched to %s", plan.FeatureBranch)
			case checkedOut:
				p.line(styleSuccess, "Switched to %s", plan.FeatureBranch)
			}
		} else {
			p.line(styleMuted, "Already on %s", plan.FeatureBranch)
		}
	}

	// Acceptance criteria
	if len(plan.Record.AcceptanceCriteria) > 0 {
		p.section("Acceptance Criteria")
		printCriteria(p, plan.Record.AcceptanceCriteria)
	}

	// Next steps
	p.section("Next Steps")
	for i, step := range c.AppConfig.Start.NextSteps {
		p.line(styleWarn, "  %d. %s", i+1, step)
	}

	p.blank()
	p.rule()
	p.blank()
	return nil
}

// printCriteria prints numbered checkbox lines.
func printCriteria(p *printer, criteria []domain.Criterion) {
	for i, ac := range criteria {
		box := "[ ]"
		if ac.Done {
			box = "[x]"
		}
		p.line(styleInfo, "%s %d. %s", box, i+1, ac.Text)
	}
}

func branchLabel(branch string) string {
	if branch == "" {
		return "(detached HEAD)"
	}
	return branch
}
