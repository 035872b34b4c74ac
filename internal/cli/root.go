// Package cli provides the command-line interface for next-issue.
package cli

import (
	"fmt"

	"github.com/runoshun/next-issue/internal/app"
	"github.com/runoshun/next-issue/internal/domain"
	"github.com/runoshun/next-issue/internal/infra/logging"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupWorkflow = "workflow"
	groupSetup    = "setup"
)

// NewRootCommand creates the root command for next-issue.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var opts struct {
		Milestone string
		LogLevel  string
		Start     int
		List      bool
	}

	root := &cobra.Command{
		Use:   "next-issue",
		Short: "Work through milestone issues one by one",
		Long: `next-issue reads the issue files of a milestone, cross-references them
with the GitHub milestone and helps you set up the branch for the next one.

Issue files live in <notes_dir>/<milestone>/NN-name.md and carry a
frontmatter block with the issue title, labels and GitHub issue number.

Without a subcommand, next-issue starts work on the next open issue.

Examples:
  # Start the next open issue of the default milestone
  next-issue

  # List the issues of milestone m2
  next-issue --milestone m2 --list

  # Start issue #12
  next-issue --start 12`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("log-level") {
				c.LogLevel.Set(logging.ParseLevel(opts.LogLevel))
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.List {
				return runList(cmd, c, opts.Milestone, formatText)
			}
			var number *int
			if cmd.Flags().Changed("start") {
				number = &opts.Start
			}
			return runStart(cmd, c, opts.Milestone, number)
		},
	}

	milestone := c.AppConfig.Milestone
	if milestone == "" {
		milestone = domain.DefaultMilestone
	}
	root.PersistentFlags().StringVarP(&opts.Milestone, "milestone", "m", milestone, "Milestone to work on")
	root.PersistentFlags().StringVar(&opts.LogLevel, "log-level", c.AppConfig.Log.Level, "Log level (debug, info, warn, error)")

	root.Flags().BoolVar(&opts.List, "list", false, "List all issues for the milestone")
	root.Flags().IntVar(&opts.Start, "start", 0, "Start working on a specific issue number")
	root.MarkFlagsMutuallyExclusive("list", "start")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupWorkflow, Title: "Workflow Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	// Workflow commands
	listCmd := newListCommand(c)
	listCmd.GroupID = groupWorkflow

	nextCmd := newNextCommand(c)
	nextCmd.GroupID = groupWorkflow

	startCmd := newStartCommand(c)
	startCmd.GroupID = groupWorkflow

	showCmd := newShowCommand(c)
	showCmd.GroupID = groupWorkflow

	// Setup commands
	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		listCmd,
		nextCmd,
		startCmd,
		showCmd,
		configCmd,
	)

	return root
}

// milestoneFlag returns the --milestone value, falling back to the configured default
// when the command runs detached from the root (e.g. in tests).
func milestoneFlag(cmd *cobra.Command, c *app.Container) string {
	if f := cmd.Flag("milestone"); f != nil && f.Value.String() != "" {
		return f.Value.String()
	}
	if c.AppConfig != nil && c.AppConfig.Milestone != "" {
		return c.AppConfig.Milestone
	}
	return domain.DefaultMilestone
}
