// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/runoshun/next-issue/internal/domain"
	"github.com/runoshun/next-issue/internal/infra/config"
	"github.com/runoshun/next-issue/internal/infra/executor"
	"github.com/runoshun/next-issue/internal/infra/filestore"
	"github.com/runoshun/next-issue/internal/infra/git"
	"github.com/runoshun/next-issue/internal/infra/github"
	"github.com/runoshun/next-issue/internal/infra/logging"
	"github.com/runoshun/next-issue/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	RepoRoot string // Root of the git repository, or the working directory outside one
	NotesDir string // Absolute directory holding milestone directories
	InRepo   bool   // Whether RepoRoot is a git repository
}

// newConfig resolves paths against the repository root.
func newConfig(repoRoot string, inRepo bool, appConfig *domain.Config) Config {
	notesDir := appConfig.NotesDir
	if !filepath.IsAbs(notesDir) {
		notesDir = filepath.Join(repoRoot, notesDir)
	}
	return Config{
		RepoRoot: repoRoot,
		NotesDir: notesDir,
		InRepo:   inRepo,
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Issues        domain.IssueRepository
	Tracker       domain.IssueTracker
	Git           domain.Git       // nil outside a git repository
	Confirmer     domain.Confirmer // nil = choose from the command's streams
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager

	// Pointer fields
	Logger    *slog.Logger
	LogLevel  *slog.LevelVar
	AppConfig *domain.Config

	// Configuration
	Config Config
}

// New creates a new Container for the given working directory.
// Outside a git repository the directory itself acts as the root and Git is nil.
func New(dir string) (*Container, error) {
	var gitPort domain.Git
	repoRoot := dir
	inRepo := false

	gitClient, err := git.NewClient(dir)
	switch {
	case err == nil:
		gitPort = gitClient
		repoRoot = gitClient.RepoRoot()
		inRepo = true
	case errors.Is(err, domain.ErrNotGitRepository):
		// Listing works on plain directories; start reports the error later
	default:
		return nil, err
	}

	configRoot := ""
	if inRepo {
		configRoot = repoRoot
	}
	configLoader := config.NewLoader(configRoot)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// Create logger
	logLevel := new(slog.LevelVar)
	logLevel.Set(logging.ParseLevel(appConfig.Log.Level))
	logger := logging.New(os.Stderr, logLevel)

	cfg := newConfig(repoRoot, inRepo, appConfig)

	exec := executor.NewClient()
	tracker := github.NewClient(exec, logger, repoRoot, appConfig.GitHub.Limit)

	return &Container{
		Issues:        filestore.New(cfg.NotesDir, logger),
		Tracker:       tracker,
		Git:           gitPort,
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(configRoot),
		Logger:        logger,
		LogLevel:      logLevel,
		AppConfig:     appConfig,
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, appConfig *domain.Config, issues domain.IssueRepository, tracker domain.IssueTracker, gitPort domain.Git, logger *slog.Logger) *Container {
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Container{
		Issues:    issues,
		Tracker:   tracker,
		Git:       gitPort,
		Logger:    logger,
		LogLevel:  new(slog.LevelVar),
		AppConfig: appConfig,
		Config:    cfg,
	}
}

// UseCase factory methods

// FetchRemoteIssuesUseCase returns a new FetchRemoteIssues use case.
func (c *Container) FetchRemoteIssuesUseCase() *usecase.FetchRemoteIssues {
	return usecase.NewFetchRemoteIssues(c.Issues, c.Tracker, c.Logger)
}

// ListIssuesUseCase returns a new ListIssues use case.
func (c *Container) ListIssuesUseCase() *usecase.ListIssues {
	return usecase.NewListIssues(c.Issues, c.FetchRemoteIssuesUseCase())
}

// NextIssueUseCase returns a new NextIssue use case.
func (c *Container) NextIssueUseCase() *usecase.NextIssue {
	return usecase.NewNextIssue(c.Issues, c.FetchRemoteIssuesUseCase())
}

// StartIssueUseCase returns a new StartIssue use case.
func (c *Container) StartIssueUseCase() *usecase.StartIssue {
	return usecase.NewStartIssue(c.Issues, c.FetchRemoteIssuesUseCase(), c.Git, c.AppConfig.Branch, c.Logger)
}

// ShowIssueUseCase returns a new ShowIssue use case.
func (c *Container) ShowIssueUseCase() *usecase.ShowIssue {
	return usecase.NewShowIssue(c.Issues, c.FetchRemoteIssuesUseCase())
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
