package domain

import "context"

// IssueRepository reads local issue files of a milestone.
type IssueRepository interface {
	// List returns the parseable issue records of a milestone, sorted by file name.
	// Returns ErrMilestoneNotFound if the milestone directory does not exist.
	List(milestone string) ([]*IssueRecord, error)

	// MilestoneTitle returns the title from the milestone summary file.
	MilestoneTitle(milestone string) (string, bool)

	// PlanContent returns the implementation plan text of a milestone.
	PlanContent(milestone string) (string, bool)
}

// IssueTracker queries the remote issue tracker. It is best-effort:
// failures degrade to an empty result instead of an error.
type IssueTracker interface {
	// Available reports whether the tracker CLI can be used.
	Available(ctx context.Context) bool

	// ListMilestoneIssues returns the issues of the milestone with the given title.
	ListMilestoneIssues(ctx context.Context, milestoneTitle string) RemoteIssueMap
}

// Git provides git operations.
type Git interface {
	// CurrentBranch returns the name of the current branch, or "" when detached.
	CurrentBranch() (string, error)

	// BranchExists checks if a local branch exists.
	BranchExists(branch string) (bool, error)

	// Checkout switches to an existing branch.
	Checkout(ctx context.Context, branch string) error

	// Pull pulls a branch from a remote into the current branch.
	Pull(ctx context.Context, remote, branch string) error

	// CreateBranch creates a new branch and switches to it.
	CreateBranch(ctx context.Context, branch string) error
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	// Confirm blocks until the user answers. Only an explicit yes returns true.
	Confirm(ctx context.Context, question string) (bool, error)
}

// CommandExecutor runs external programs.
type CommandExecutor interface {
	// Execute runs the command and returns its standard output.
	Execute(ctx context.Context, cmd *ExecCommand) ([]byte, error)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (default <- global <- repo).
	Load() (*Config, error)
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetRepoConfigInfo returns information about the repository config file.
	GetRepoConfigInfo() ConfigInfo

	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// InitRepoConfig creates the repository config file from the template.
	// Returns ErrConfigExists if the file is already present.
	InitRepoConfig(cfg *Config) error

	// InitGlobalConfig creates the global config file from the template.
	// Returns ErrConfigExists if the file is already present.
	InitGlobalConfig(cfg *Config) error
}
