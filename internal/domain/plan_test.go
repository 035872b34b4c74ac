package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const samplePlan = `# Implementation Plan

| Issue | Title | Area | Depends | Estimate | Size / Strategy |
|-------|-------|------|---------|----------|-----------------|
| #12 | Setup | infra | - | 1d | Small - direct on milestone |
| #13 | Auth | backend | #12 | 3d | Large - feature branch |
| #14 | Docs | docs | - | 1h | DIRECT ON MILESTONE |
| #150 | Later | ui | - | 2d | small |
`

func TestLookupBranchPolicy(t *testing.T) {
	tests := []struct {
		name      string
		issue     int
		want      BranchPolicy
		wantFound bool
	}{
		{"small row", 12, PolicyDirectOnMilestone, true},
		{"large row", 13, PolicyFeatureBranch, true},
		{"direct phrase upper case", 14, PolicyDirectOnMilestone, true},
		{"missing row", 99, PolicyFeatureBranch, false},
		{"prefix of another number", 15, PolicyFeatureBranch, false},
		{"zero issue", 0, PolicyFeatureBranch, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := LookupBranchPolicy(samplePlan, tt.issue)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantFound, found)
		})
	}
}

func TestLookupBranchPolicy_EmptyPlan(t *testing.T) {
	got, found := LookupBranchPolicy("", 12)
	assert.Equal(t, PolicyFeatureBranch, got)
	assert.False(t, found)
}

func TestLookupBranchPolicy_ShortRow(t *testing.T) {
	got, found := LookupBranchPolicy("| #12 | only | three |\n", 12)
	assert.Equal(t, PolicyFeatureBranch, got)
	assert.False(t, found)
}

func TestBranchPolicy_String(t *testing.T) {
	assert.Equal(t, "feature", PolicyFeatureBranch.String())
	assert.Equal(t, "direct", PolicyDirectOnMilestone.String())
}
