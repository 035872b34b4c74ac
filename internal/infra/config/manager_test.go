package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/next-issue/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_GetRepoConfigInfo(t *testing.T) {
	t.Run("returns info when file exists", func(t *testing.T) {
		repoRoot := t.TempDir()
		configContent := "milestone = \"m2\""
		err := os.WriteFile(domain.RepoRootConfigPath(repoRoot), []byte(configContent), 0644)
		require.NoError(t, err)

		manager := NewManagerWithGlobalDir(repoRoot, "")
		info := manager.GetRepoConfigInfo()

		assert.Equal(t, filepath.Join(repoRoot, domain.RootConfigFileName), info.Path)
		assert.Equal(t, configContent, info.Content)
		assert.True(t, info.Exists)
	})

	t.Run("returns info when file does not exist", func(t *testing.T) {
		repoRoot := t.TempDir()

		manager := NewManagerWithGlobalDir(repoRoot, "")
		info := manager.GetRepoConfigInfo()

		assert.Equal(t, filepath.Join(repoRoot, domain.RootConfigFileName), info.Path)
		assert.Empty(t, info.Content)
		assert.False(t, info.Exists)
	})

	t.Run("returns empty info outside a repository", func(t *testing.T) {
		info := NewManagerWithGlobalDir("", t.TempDir()).GetRepoConfigInfo()
		assert.Empty(t, info.Path)
		assert.False(t, info.Exists)
	})
}

func TestManager_GetGlobalConfigInfo(t *testing.T) {
	t.Run("returns info when file exists", func(t *testing.T) {
		globalDir := t.TempDir()
		configContent := "[log]\nlevel = \"debug\""
		err := os.WriteFile(filepath.Join(globalDir, domain.ConfigFileName), []byte(configContent), 0644)
		require.NoError(t, err)

		manager := NewManagerWithGlobalDir("", globalDir)
		info := manager.GetGlobalConfigInfo()

		assert.Equal(t, filepath.Join(globalDir, domain.ConfigFileName), info.Path)
		assert.Equal(t, configContent, info.Content)
		assert.True(t, info.Exists)
	})

	t.Run("returns empty info when global dir is empty", func(t *testing.T) {
		manager := NewManagerWithGlobalDir("", "")
		info := manager.GetGlobalConfigInfo()

		assert.Empty(t, info.Path)
		assert.Empty(t, info.Content)
		assert.False(t, info.Exists)
	})
}

func TestManager_InitRepoConfig(t *testing.T) {
	t.Run("creates config file", func(t *testing.T) {
		repoRoot := t.TempDir()
		cfg := domain.NewDefaultConfig()

		manager := NewManagerWithGlobalDir(repoRoot, "")
		require.NoError(t, manager.InitRepoConfig(cfg))
		path := domain.RepoRootConfigPath(repoRoot)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, domain.RenderConfigTemplate(cfg), string(content))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("returns error when file exists", func(t *testing.T) {
		repoRoot := t.TempDir()
		err := os.WriteFile(domain.RepoRootConfigPath(repoRoot), []byte("existing"), 0644)
		require.NoError(t, err)

		manager := NewManagerWithGlobalDir(repoRoot, "")
		err = manager.InitRepoConfig(domain.NewDefaultConfig())
		assert.ErrorIs(t, err, domain.ErrConfigExists)

		// Existing content untouched
		content, err := os.ReadFile(domain.RepoRootConfigPath(repoRoot))
		require.NoError(t, err)
		assert.Equal(t, "existing", string(content))
	})

	t.Run("requires a repository", func(t *testing.T) {
		err := NewManagerWithGlobalDir("", "").InitRepoConfig(domain.NewDefaultConfig())
		assert.ErrorIs(t, err, domain.ErrNotGitRepository)
	})
}

func TestManager_InitGlobalConfig(t *testing.T) {
	t.Run("creates directory and file", func(t *testing.T) {
		globalDir := filepath.Join(t.TempDir(), "nested", domain.AppDirName)

		manager := NewManagerWithGlobalDir("", globalDir)
		require.NoError(t, manager.InitGlobalConfig(domain.NewDefaultConfig()))

		_, err := os.Stat(filepath.Join(globalDir, domain.ConfigFileName))
		assert.NoError(t, err)
	})

	t.Run("returns error when file exists", func(t *testing.T) {
		globalDir := t.TempDir()
		err := os.WriteFile(filepath.Join(globalDir, domain.ConfigFileName), []byte("x"), 0644)
		require.NoError(t, err)

		err = NewManagerWithGlobalDir("", globalDir).InitGlobalConfig(domain.NewDefaultConfig())
		assert.ErrorIs(t, err, domain.ErrConfigExists)
	})

	t.Run("returns error without global dir", func(t *testing.T) {
		err := NewManagerWithGlobalDir("", "").InitGlobalConfig(domain.NewDefaultConfig())
		assert.Error(t, err)
	})
}
