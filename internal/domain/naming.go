package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Reserved file names inside a milestone directory.
const (
	MilestoneFileName = "_milestone.md"
	EpicFileName      = "00-epic.md"
	PlanFileName      = "IMPLEMENTATION_PLAN.md"
)

// IsReservedFile reports whether name is one of the non-issue files.
func IsReservedFile(name string) bool {
	switch name {
	case MilestoneFileName, EpicFileName, PlanFileName:
		return true
	}
	return false
}

// MilestoneDir returns the directory holding a milestone's issue files.
func MilestoneDir(notesDir, milestone string) string {
	return filepath.Join(notesDir, milestone)
}

// MilestoneBranch returns the shared branch of a milestone.
// Format: <prefix><milestone>, e.g. milestone/m1
func MilestoneBranch(prefix, milestone string) string {
	return prefix + milestone
}

// FeatureBranchName returns the feature branch for an issue file.
// Format: <prefix><milestone>-<issue>-<stem> or <prefix><milestone>-<stem>
// when the issue is not filed yet. Hyphens in the stem become underscores.
func FeatureBranchName(prefix, milestone string, issue int, file string) string {
	stem := strings.ReplaceAll(strings.TrimSuffix(file, filepath.Ext(file)), "-", "_")
	if issue > 0 {
		return fmt.Sprintf("%s%s-%d-%s", prefix, milestone, issue, stem)
	}
	return fmt.Sprintf("%s%s-%s", prefix, milestone, stem)
}

// IsWorkBranch reports whether branch starts with any of the prefixes.
func IsWorkBranch(branch string, prefixes ...string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(branch, p) {
			return true
		}
	}
	return false
}
