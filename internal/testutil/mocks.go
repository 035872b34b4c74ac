// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"errors"
	"strings"

	"github.com/runoshun/next-issue/internal/domain"
)

// MockIssueRepository is a test double for domain.IssueRepository.
// Fields are ordered to minimize memory padding.
type MockIssueRepository struct {
	Records         map[string][]*domain.IssueRecord // milestone -> records
	MilestoneTitles map[string]string
	Plans           map[string]string
	ListErr         error
}

// NewMockIssueRepository creates a new MockIssueRepository with initialized maps.
func NewMockIssueRepository() *MockIssueRepository {
	return &MockIssueRepository{
		Records:         make(map[string][]*domain.IssueRecord),
		MilestoneTitles: make(map[string]string),
		Plans:           make(map[string]string),
	}
}

// List returns the records of a milestone. Unknown milestones are missing directories.
func (m *MockIssueRepository) List(milestone string) ([]*domain.IssueRecord, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	records, ok := m.Records[milestone]
	if !ok {
		return nil, domain.ErrMilestoneNotFound
	}
	return records, nil
}

// MilestoneTitle returns the configured milestone title.
func (m *MockIssueRepository) MilestoneTitle(milestone string) (string, bool) {
	title, ok := m.MilestoneTitles[milestone]
	return title, ok
}

// PlanContent returns the configured plan text.
func (m *MockIssueRepository) PlanContent(milestone string) (string, bool) {
	plan, ok := m.Plans[milestone]
	return plan, ok
}

// MockIssueTracker is a test double for domain.IssueTracker.
type MockIssueTracker struct {
	Issues         map[string][]domain.RemoteIssue // milestone title -> issues
	QueriedTitles  []string
	Unavailable    bool
	AvailableCalls int
}

// NewMockIssueTracker creates a new MockIssueTracker.
func NewMockIssueTracker() *MockIssueTracker {
	return &MockIssueTracker{Issues: make(map[string][]domain.RemoteIssue)}
}

// Available returns false if Unavailable is set.
func (m *MockIssueTracker) Available(_ context.Context) bool {
	m.AvailableCalls++
	return !m.Unavailable
}

// ListMilestoneIssues returns the configured issues for a title.
func (m *MockIssueTracker) ListMilestoneIssues(_ context.Context, title string) domain.RemoteIssueMap {
	m.QueriedTitles = append(m.QueriedTitles, title)
	return domain.NewRemoteIssueMap(m.Issues[title])
}

// MockGit is a test double for domain.Git.
// Mutating calls are recorded in Calls so tests can assert on them.
// Fields are ordered to minimize memory padding.
type MockGit struct {
	CurrentBranchErr error
	CheckoutErr      error
	PullErr          error
	CreateBranchErr  error
	Branches         map[string]bool
	CurrentBranchVal string
	Calls            []string
}

// CurrentBranch returns the configured branch.
func (m *MockGit) CurrentBranch() (string, error) {
	if m.CurrentBranchErr != nil {
		return "", m.CurrentBranchErr
	}
	return m.CurrentBranchVal, nil
}

// BranchExists reports whether the branch is in Branches.
func (m *MockGit) BranchExists(branch string) (bool, error) {
	return m.Branches[branch], nil
}

// Checkout records the call and switches the current branch.
func (m *MockGit) Checkout(_ context.Context, branch string) error {
	m.Calls = append(m.Calls, "checkout "+branch)
	if m.CheckoutErr != nil {
		return m.CheckoutErr
	}
	m.CurrentBranchVal = branch
	return nil
}

// Pull records the call.
func (m *MockGit) Pull(_ context.Context, remote, branch string) error {
	m.Calls = append(m.Calls, "pull "+remote+" "+branch)
	return m.PullErr
}

// CreateBranch records the call and switches the current branch.
func (m *MockGit) CreateBranch(_ context.Context, branch string) error {
	m.Calls = append(m.Calls, "checkout -b "+branch)
	if m.CreateBranchErr != nil {
		return m.CreateBranchErr
	}
	if m.Branches == nil {
		m.Branches = make(map[string]bool)
	}
	m.Branches[branch] = true
	m.CurrentBranchVal = branch
	return nil
}

// MockConfirmer is a test double for domain.Confirmer.
// Answers are consumed in order; when exhausted, Default is returned.
type MockConfirmer struct {
	Err       error
	Questions []string
	Answers   []bool
	Default   bool
}

// Confirm records the question and returns the next answer.
func (m *MockConfirmer) Confirm(_ context.Context, question string) (bool, error) {
	m.Questions = append(m.Questions, question)
	if m.Err != nil {
		return false, m.Err
	}
	if len(m.Answers) == 0 {
		return m.Default, nil
	}
	answer := m.Answers[0]
	m.Answers = m.Answers[1:]
	return answer, nil
}

// MockExecutor is a test double for domain.CommandExecutor.
// Outputs and Errors are keyed by the full command line.
type MockExecutor struct {
	Outputs  map[string]string
	Errors   map[string]error
	Commands []string
}

// NewMockExecutor creates a new MockExecutor.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{
		Outputs: make(map[string]string),
		Errors:  make(map[string]error),
	}
}

// ErrCommandNotFound is returned for commands without a configured output.
var ErrCommandNotFound = errors.New("executable file not found in $PATH")

// Execute records the command and returns the configured result.
func (m *MockExecutor) Execute(_ context.Context, cmd *domain.ExecCommand) ([]byte, error) {
	line := cmd.String()
	m.Commands = append(m.Commands, line)
	if err, ok := m.Errors[line]; ok {
		return nil, err
	}
	if out, ok := m.Outputs[line]; ok {
		return []byte(out), nil
	}
	return nil, ErrCommandNotFound
}

// Ran reports whether a command starting with prefix was executed.
func (m *MockExecutor) Ran(prefix string) bool {
	for _, c := range m.Commands {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// NewMockConfigLoader creates a new MockConfigLoader with default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{Config: domain.NewDefaultConfig()}
}

// Load returns the configured config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitRepoErr      error
	InitGlobalErr    error
	RepoConfigInfo   domain.ConfigInfo
	GlobalConfigInfo domain.ConfigInfo
	InitRepoCalled   bool
	InitGlobalCalled bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{}
}

// GetRepoConfigInfo returns the configured repo config info.
func (m *MockConfigManager) GetRepoConfigInfo() domain.ConfigInfo {
	return m.RepoConfigInfo
}

// GetGlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// InitRepoConfig records the call. Existing files yield ErrConfigExists.
func (m *MockConfigManager) InitRepoConfig(_ *domain.Config) error {
	m.InitRepoCalled = true
	if m.InitRepoErr != nil {
		return m.InitRepoErr
	}
	if m.RepoConfigInfo.Exists {
		return domain.ErrConfigExists
	}
	return nil
}

// InitGlobalConfig records the call. Existing files yield ErrConfigExists.
func (m *MockConfigManager) InitGlobalConfig(_ *domain.Config) error {
	m.InitGlobalCalled = true
	if m.InitGlobalErr != nil {
		return m.InitGlobalErr
	}
	if m.GlobalConfigInfo.Exists {
		return domain.ErrConfigExists
	}
	return nil
}

// IntPtr returns a pointer to n.
func IntPtr(n int) *int {
	return &n
}
