package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/runoshun/next-issue/internal/domain"
	"github.com/runoshun/next-issue/internal/testutil"
	"github.com/runoshun/next-issue/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowConfig_Execute(t *testing.T) {
	t.Run("returns both config infos and effective config", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.RepoConfigInfo = domain.ConfigInfo{
			Path:    "/repo/.next-issue.toml",
			Content: "milestone = \"m2\"",
			Exists:  true,
		}
		manager.GlobalConfigInfo = domain.ConfigInfo{
			Path:    "/home/test/.config/next-issue/config.toml",
			Content: "[log]\nlevel = \"debug\"",
			Exists:  true,
		}

		loader := testutil.NewMockConfigLoader()
		loader.Config.Milestone = "m2"

		uc := usecase.NewShowConfig(manager, loader)
		out, err := uc.Execute(context.Background(), usecase.ShowConfigInput{})

		require.NoError(t, err)
		assert.Equal(t, "/repo/.next-issue.toml", out.RepoConfig.Path)
		assert.Equal(t, "milestone = \"m2\"", out.RepoConfig.Content)
		assert.True(t, out.RepoConfig.Exists)
		assert.Equal(t, "/home/test/.config/next-issue/config.toml", out.GlobalConfig.Path)
		assert.True(t, out.GlobalConfig.Exists)
		require.NotNil(t, out.EffectiveConfig)
		assert.Equal(t, "m2", out.EffectiveConfig.Milestone)
	})

	t.Run("handles non-existent files", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.RepoConfigInfo = domain.ConfigInfo{Path: "/repo/.next-issue.toml"}

		uc := usecase.NewShowConfig(manager, testutil.NewMockConfigLoader())
		out, err := uc.Execute(context.Background(), usecase.ShowConfigInput{})

		require.NoError(t, err)
		assert.False(t, out.RepoConfig.Exists)
		assert.False(t, out.GlobalConfig.Exists)
		assert.Equal(t, domain.NewDefaultConfig(), out.EffectiveConfig)
	})

	t.Run("returns load error", func(t *testing.T) {
		loader := testutil.NewMockConfigLoader()
		loader.LoadErr = errors.New("parse config /repo/.next-issue.toml: bad")

		uc := usecase.NewShowConfig(testutil.NewMockConfigManager(), loader)
		_, err := uc.Execute(context.Background(), usecase.ShowConfigInput{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "load config")
	})
}
