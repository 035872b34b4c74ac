package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/runoshun/next-issue/internal/domain"
)

// StartIssueInput contains the parameters for starting an issue.
type StartIssueInput struct {
	Number    *int   // Remote issue number (nil = resolve the next issue)
	Milestone string // Milestone identifier (required)
}

// StartIssuePlan describes what starting an issue would do.
// It is computed without side effects; Apply performs the confirmed steps.
// Fields are ordered to minimize memory padding.
type StartIssuePlan struct {
	Record          *domain.IssueRecord // nil when no actionable issue exists
	Remote          *domain.RemoteIssue // nil when the remote map has no entry
	Milestone       string
	CurrentBranch   string // "" when HEAD is detached
	MilestoneBranch string
	FeatureBranch   string
	GitRemote       string // Remote pulled after switching to the milestone branch
	Policy          domain.BranchPolicy
	PolicyFound     bool // Whether the plan table had a row for this issue
	OnWorkBranch    bool // Current branch already is a milestone or feature branch
	BranchExists    bool // Feature branch already exists locally
}

// Found reports whether an issue was selected.
func (p *StartIssuePlan) Found() bool {
	return p.Record != nil
}

// NeedsMilestoneSwitch reports whether the user should be offered the milestone branch.
func (p *StartIssuePlan) NeedsMilestoneSwitch() bool {
	return p.Found() && !p.OnWorkBranch
}

// NeedsFeatureBranch reports whether the user should be offered the feature branch.
func (p *StartIssuePlan) NeedsFeatureBranch() bool {
	return p.Found() && p.Policy == domain.PolicyFeatureBranch && p.CurrentBranch != p.FeatureBranch
}

// StartIssueResult reports which mutations were performed.
type StartIssueResult struct {
	SwitchedToMilestone bool // Checked out and pulled the milestone branch
	CreatedBranch       bool // Created the feature branch
	CheckedOutBranch    bool // Switched to an existing feature branch
}

// Mutated reports whether any git state changed.
func (r *StartIssueResult) Mutated() bool {
	return r.SwitchedToMilestone || r.CreatedBranch || r.CheckedOutBranch
}

// StartIssue is the use case for preparing branches to work on an issue.
// Every git mutation is gated behind a confirmation.
type StartIssue struct {
	issues domain.IssueRepository
	remote *FetchRemoteIssues
	git    domain.Git
	logger *slog.Logger
	branch domain.BranchConfig
}

// NewStartIssue creates a new StartIssue use case.
// git may be nil outside a repository; Plan then fails once an issue is found.
func NewStartIssue(
	issues domain.IssueRepository,
	remote *FetchRemoteIssues,
	git domain.Git,
	branch domain.BranchConfig,
	logger *slog.Logger,
) *StartIssue {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &StartIssue{
		issues: issues,
		remote: remote,
		git:    git,
		branch: branch,
		logger: logger,
	}
}

// Plan selects the issue and computes the branch steps.
// An explicit number must exist both remotely and in a local file.
// Without a number the resolver picks; finding nothing is not an error.
func (uc *StartIssue) Plan(ctx context.Context, in StartIssueInput) (*StartIssuePlan, error) {
	if in.Milestone == "" {
		return nil, domain.ErrEmptyMilestone
	}

	records, err := uc.issues.List(in.Milestone)
	if err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}
	remote := uc.remote.Execute(ctx, FetchRemoteIssuesInput{Milestone: in.Milestone})

	plan := &StartIssuePlan{
		Milestone:       in.Milestone,
		MilestoneBranch: domain.MilestoneBranch(uc.branch.MilestonePrefix, in.Milestone),
		GitRemote:       uc.branch.Remote,
		Policy:          domain.PolicyFeatureBranch,
	}

	record, err := uc.selectRecord(records, remote.Issues, in.Number)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return plan, nil
	}
	entry := newIssueEntry(record, remote.Issues)
	plan.Record = entry.Record
	plan.Remote = entry.Remote

	if uc.git == nil {
		return nil, domain.ErrNotGitRepository
	}
	current, err := uc.git.CurrentBranch()
	if err != nil {
		return nil, fmt.Errorf("get current branch: %w", err)
	}
	plan.CurrentBranch = current
	plan.OnWorkBranch = domain.IsWorkBranch(current, uc.branch.MilestonePrefix, uc.branch.FeaturePrefix)

	if record.HasRemote() {
		if content, ok := uc.issues.PlanContent(in.Milestone); ok {
			plan.Policy, plan.PolicyFound = domain.LookupBranchPolicy(content, record.RemoteNumber())
			if !plan.PolicyFound {
				plan.Policy = domain.PolicyFeatureBranch
			}
		}
	}

	plan.FeatureBranch = domain.FeatureBranchName(uc.branch.FeaturePrefix, in.Milestone, record.RemoteNumber(), record.File)
	if plan.Policy == domain.PolicyFeatureBranch {
		exists, err := uc.git.BranchExists(plan.FeatureBranch)
		if err != nil {
			return nil, err
		}
		plan.BranchExists = exists
	}

	uc.logger.Debug("start plan computed",
		"file", record.File,
		"current", plan.CurrentBranch,
		"policy", plan.Policy.String(),
		"policy_found", plan.PolicyFound,
	)
	return plan, nil
}

func (uc *StartIssue) selectRecord(records []*domain.IssueRecord, remote domain.RemoteIssueMap, number *int) (*domain.IssueRecord, error) {
	if number == nil {
		return domain.ResolveNext(records, remote), nil
	}
	if _, ok := remote.Lookup(*number); !ok {
		return nil, fmt.Errorf("%w: #%d", domain.ErrRemoteIssueNotFound, *number)
	}
	record := domain.FindByRemote(records, *number)
	if record == nil {
		return nil, fmt.Errorf("%w #%d", domain.ErrIssueFileNotFound, *number)
	}
	return record, nil
}

// Apply runs every confirmed step of the plan.
func (uc *StartIssue) Apply(ctx context.Context, plan *StartIssuePlan, confirm domain.Confirmer) (*StartIssueResult, error) {
	result := &StartIssueResult{}

	switched, err := uc.SwitchToMilestone(ctx, plan, confirm)
	if err != nil {
		return result, err
	}
	result.SwitchedToMilestone = switched

	created, checkedOut, err := uc.SetupFeatureBranch(ctx, plan, confirm)
	if err != nil {
		return result, err
	}
	result.CreatedBranch = created
	result.CheckedOutBranch = checkedOut

	return result, nil
}

// SwitchToMilestone offers to check out and pull the milestone branch when the
// current branch is neither a milestone nor a feature branch.
// It returns true if the switch happened.
func (uc *StartIssue) SwitchToMilestone(ctx context.Context, plan *StartIssuePlan, confirm domain.Confirmer) (bool, error) {
	if !plan.NeedsMilestoneSwitch() {
		return false, nil
	}

	ok, err := confirm.Confirm(ctx, fmt.Sprintf("Switch to %s?", plan.MilestoneBranch))
	if err != nil || !ok {
		return false, err
	}

	if err := uc.git.Checkout(ctx, plan.MilestoneBranch); err != nil {
		return false, err
	}
	if err := uc.git.Pull(ctx, plan.GitRemote, plan.MilestoneBranch); err != nil {
		return false, err
	}

	plan.CurrentBranch = plan.MilestoneBranch
	plan.OnWorkBranch = true
	return true, nil
}

// SetupFeatureBranch offers to create the feature branch, or to switch to it
// when it already exists. Direct-on-milestone issues are left alone.
// It returns (created, checkedOut, err).
func (uc *StartIssue) SetupFeatureBranch(ctx context.Context, plan *StartIssuePlan, confirm domain.Confirmer) (bool, bool, error) {
	if !plan.NeedsFeatureBranch() {
		return false, false, nil
	}

	if plan.BranchExists {
		ok, err := confirm.Confirm(ctx, fmt.Sprintf("Switch to existing branch %s?", plan.FeatureBranch))
		if err != nil || !ok {
			return false, false, err
		}
		if err := uc.git.Checkout(ctx, plan.FeatureBranch); err != nil {
			return false, false, err
		}
		plan.CurrentBranch = plan.FeatureBranch
		return false, true, nil
	}

	ok, err := confirm.Confirm(ctx, fmt.Sprintf("Create and switch to %s?", plan.FeatureBranch))
	if err != nil || !ok {
		return false, false, err
	}
	if err := uc.git.CreateBranch(ctx, plan.FeatureBranch); err != nil {
		return false, false, err
	}
	plan.CurrentBranch = plan.FeatureBranch
	plan.BranchExists = true
	return true, false, nil
}
