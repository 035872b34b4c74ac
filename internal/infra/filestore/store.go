// Package filestore provides a file-based implementation of IssueRepository.
package filestore

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/runoshun/next-issue/internal/domain"
)

// Ensure Store implements domain.IssueRepository.
var _ domain.IssueRepository = (*Store)(nil)

// Store reads issue markdown files from <notesDir>/<milestone>/.
//
// Layout:
//
//	<notesDir>/<milestone>/
//	  _milestone.md            → milestone summary (frontmatter title)
//	  00-epic.md               → epic, not an issue
//	  IMPLEMENTATION_PLAN.md   → plan table with branch strategy
//	  01-first-issue.md        → issue files, worked in file name order
//	  02-second-issue.md
type Store struct {
	logger   *slog.Logger
	notesDir string
}

// New creates a new Store rooted at notesDir.
func New(notesDir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{notesDir: notesDir, logger: logger}
}

// Dir returns the directory of a milestone.
func (s *Store) Dir(milestone string) string {
	return domain.MilestoneDir(s.notesDir, milestone)
}

// List returns the parseable issue records of a milestone sorted by file name.
// Files without frontmatter are skipped.
func (s *Store) List(milestone string) ([]*domain.IssueRecord, error) {
	names, err := s.issueFileNames(milestone)
	if err != nil {
		return nil, err
	}

	records := make([]*domain.IssueRecord, 0, len(names))
	for _, name := range names {
		record, err := s.read(milestone, name)
		if err != nil {
			return nil, err
		}
		if record == nil {
			s.logger.Debug("skipping issue file without frontmatter", "file", name)
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// MilestoneTitle returns the frontmatter title of the milestone summary file.
func (s *Store) MilestoneTitle(milestone string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(s.Dir(milestone), domain.MilestoneFileName))
	if err != nil {
		s.logger.Debug("milestone file unavailable", "milestone", milestone, "error", err)
		return "", false
	}
	return domain.ParseFrontmatterTitle(string(data))
}

// PlanContent returns the implementation plan of a milestone.
func (s *Store) PlanContent(milestone string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(s.Dir(milestone), domain.PlanFileName))
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (s *Store) statDir(milestone string) (string, error) {
	dir := s.Dir(milestone)
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", domain.ErrMilestoneNotFound, dir)
		}
		return "", fmt.Errorf("stat milestone directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", domain.ErrMilestoneNotFound, dir)
	}
	return dir, nil
}

// issueFileNames lists digit-prefixed markdown files, excluding reserved names.
func (s *Store) issueFileNames(milestone string) ([]string, error) {
	dir, err := s.statDir(milestone)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read milestone directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !isIssueFileName(name) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func isIssueFileName(name string) bool {
	if !strings.HasSuffix(name, ".md") || domain.IsReservedFile(name) {
		return false
	}
	return name[0] >= '0' && name[0] <= '9'
}

func (s *Store) read(milestone, name string) (*domain.IssueRecord, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir(milestone), name))
	if err != nil {
		return nil, fmt.Errorf("read issue file %s: %w", name, err)
	}
	record, ok := domain.ParseIssue(string(data), name)
	if !ok {
		return nil, nil
	}
	return record, nil
}
