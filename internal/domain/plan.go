package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// BranchPolicy tells whether an issue gets its own branch.
type BranchPolicy int

const (
	// PolicyFeatureBranch creates a dedicated feature branch (default).
	PolicyFeatureBranch BranchPolicy = iota
	// PolicyDirectOnMilestone works directly on the shared milestone branch.
	PolicyDirectOnMilestone
)

// String returns the policy name.
func (p BranchPolicy) String() string {
	switch p {
	case PolicyDirectOnMilestone:
		return "direct"
	default:
		return "feature"
	}
}

// LookupBranchPolicy scans an implementation plan for the table row of an issue.
// The row is located by a "#<issue>" reference; the fifth cell after the one
// holding the reference is the size/strategy column. It returns false when
// the plan has no such row.
func LookupBranchPolicy(plan string, issue int) (BranchPolicy, bool) {
	if plan == "" || issue <= 0 {
		return PolicyFeatureBranch, false
	}

	pattern := regexp.MustCompile(fmt.Sprintf(
		`#\s*%d\b[^|]*\|[^|]*\|[^|]*\|[^|]*\|[^|]*\|\s*([^|]+)`, issue))
	m := pattern.FindStringSubmatch(plan)
	if m == nil {
		return PolicyFeatureBranch, false
	}

	size := strings.ToLower(strings.TrimSpace(m[1]))
	if strings.Contains(size, "small") || strings.Contains(size, "direct on milestone") {
		return PolicyDirectOnMilestone, true
	}
	return PolicyFeatureBranch, true
}
