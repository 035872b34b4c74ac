package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings  []string     `toml:"-"`
	Milestone string       `toml:"milestone"` // Default milestone identifier
	NotesDir  string       `toml:"notes_dir"` // Directory holding milestone directories, relative to the repo root
	Branch    BranchConfig `toml:"branch"`
	Start     StartConfig  `toml:"start"`
	Log       LogConfig    `toml:"log"`
	GitHub    GitHubConfig `toml:"github"`
}

// BranchConfig holds branch naming settings from [branch] section.
type BranchConfig struct {
	MilestonePrefix string `toml:"milestone_prefix"` // Prefix of shared milestone branches
	FeaturePrefix   string `toml:"feature_prefix"`   // Prefix of per-issue feature branches
	Remote          string `toml:"remote"`           // Remote pulled when switching to the milestone branch
}

// GitHubConfig holds tracker query settings from [github] section.
type GitHubConfig struct {
	Limit int `toml:"limit"` // Maximum number of issues fetched per milestone
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level"` // Log level: debug, info, warn, error
}

// StartConfig holds settings for the start command from [start] section.
type StartConfig struct {
	NextSteps []string `toml:"next_steps"` // Steps printed after branch setup
}

// ConfigInfo describes a config file location.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// Directory and file names for next-issue.
const (
	AppDirName         = "next-issue"       // Directory name under XDG_CONFIG_HOME
	ConfigFileName     = "config.toml"      // Global config file name
	RootConfigFileName = ".next-issue.toml" // Config file name in repository root
)

// Default configuration values.
const (
	DefaultMilestone       = "m1"
	DefaultNotesDir        = "docs/03-build-notes"
	DefaultMilestonePrefix = "milestone/"
	DefaultFeaturePrefix   = "feat/"
	DefaultRemote          = "origin"
	DefaultIssueLimit      = 100
	DefaultLogLevel        = "warn"
)

// DefaultNextSteps are printed after branch setup unless configured otherwise.
var DefaultNextSteps = []string{
	"Review the issue file and " + PlanFileName,
	"Implement the changes with tests",
	"Commit referencing the issue (Closes #N)",
	"Push and create a draft PR: gh pr create --draft",
	"Update the PR continuously as you work",
	"Mark ready for review when the acceptance criteria are met",
}

// RepoRootConfigPath returns the repo root config path.
func RepoRootConfigPath(repoRoot string) string {
	return filepath.Join(repoRoot, RootConfigFileName)
}

// GlobalConfigDir returns the global config directory path.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Milestone: DefaultMilestone,
		NotesDir:  DefaultNotesDir,
		Branch: BranchConfig{
			MilestonePrefix: DefaultMilestonePrefix,
			FeaturePrefix:   DefaultFeaturePrefix,
			Remote:          DefaultRemote,
		},
		GitHub: GitHubConfig{
			Limit: DefaultIssueLimit,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Start: StartConfig{
			NextSteps: append([]string(nil), DefaultNextSteps...),
		},
	}
}

// RenderConfigTemplate renders a commented config file with the given values.
func RenderConfigTemplate(cfg *Config) string {
	tmpl, err := template.New("config").Delims("<<", ">>").Funcs(template.FuncMap{
		"quote": func(s string) string { return fmt.Sprintf("%q", s) },
	}).Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		// Should never happen with valid data
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}
	return buf.String()
}
