package domain

import "errors"

// Domain errors.
var (
	ErrMilestoneNotFound   = errors.New("milestone directory not found")
	ErrRemoteIssueNotFound = errors.New("issue not found in milestone")
	ErrIssueFileNotFound   = errors.New("could not find file for issue")
	ErrNotGitRepository    = errors.New("not a git repository (or any of the parent directories)")
	ErrEmptyMilestone      = errors.New("milestone cannot be empty")
	ErrInvalidFormat       = errors.New("invalid output format")
	ErrNoIssueSelector     = errors.New("issue number or file name required")
	ErrConfigExists        = errors.New("config file already exists")
)
