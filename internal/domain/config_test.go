package domain

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, "m1", cfg.Milestone)
	assert.Equal(t, "docs/03-build-notes", cfg.NotesDir)
	assert.Equal(t, "milestone/", cfg.Branch.MilestonePrefix)
	assert.Equal(t, "feat/", cfg.Branch.FeaturePrefix)
	assert.Equal(t, "origin", cfg.Branch.Remote)
	assert.Equal(t, 100, cfg.GitHub.Limit)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, DefaultNextSteps, cfg.Start.NextSteps)

	// Mutating the copy must not touch the package defaults
	cfg.Start.NextSteps[0] = "changed"
	assert.NotEqual(t, "changed", DefaultNextSteps[0])
}

func TestRenderConfigTemplate_RoundTrip(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Milestone = "m7"
	cfg.Start.NextSteps = []string{"one", `two "quoted"`}

	out := RenderConfigTemplate(cfg)
	assert.Contains(t, out, `milestone = "m7"`)

	var parsed Config
	require.NoError(t, toml.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "m7", parsed.Milestone)
	assert.Equal(t, cfg.NotesDir, parsed.NotesDir)
	assert.Equal(t, cfg.Branch, parsed.Branch)
	assert.Equal(t, cfg.GitHub, parsed.GitHub)
	assert.Equal(t, cfg.Log, parsed.Log)
	assert.Equal(t, []string{"one", `two "quoted"`}, parsed.Start.NextSteps)
}

func TestConfigPaths(t *testing.T) {
	assert.Equal(t, "/repo/.next-issue.toml", RepoRootConfigPath("/repo"))
	assert.Equal(t, "/home/u/.config/next-issue", GlobalConfigDir("/home/u/.config"))
	assert.Equal(t, "/home/u/.config/next-issue/config.toml", GlobalConfigPath("/home/u/.config"))
}
