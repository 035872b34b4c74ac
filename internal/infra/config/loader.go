// Package config provides configuration loading functionality.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/next-issue/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	repoRoot      string // Path to repository root (holds .next-issue.toml)
	globalConfDir string // Path to global config directory (e.g., ~/.config/next-issue)
}

// NewLoader creates a new Loader.
func NewLoader(repoRoot string) *Loader {
	return &Loader{
		repoRoot:      repoRoot,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(repoRoot, globalConfDir string) *Loader {
	return &Loader{
		repoRoot:      repoRoot,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration (repo + global).
// Repository config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	// Merge: default <- global <- repo (later takes precedence)
	for _, path := range []string{l.globalPath(), l.repoPath()} {
		if path == "" {
			continue
		}
		fc, err := loadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		mergeConfig(base, fc)
	}

	return base, nil
}

func (l *Loader) globalPath() string {
	if l.globalConfDir == "" {
		return ""
	}
	return filepath.Join(l.globalConfDir, domain.ConfigFileName)
}

func (l *Loader) repoPath() string {
	if l.repoRoot == "" {
		return ""
	}
	return domain.RepoRootConfigPath(l.repoRoot)
}

// fileConfig mirrors domain.Config with optional fields so that an absent key
// never overrides a lower-precedence value.
type fileConfig struct {
	Milestone *string `toml:"milestone"`
	NotesDir  *string `toml:"notes_dir"`
	Start     struct {
		NextSteps *[]string `toml:"next_steps"`
	} `toml:"start"`
	Branch struct {
		MilestonePrefix *string `toml:"milestone_prefix"`
		FeaturePrefix   *string `toml:"feature_prefix"`
		Remote          *string `toml:"remote"`
	} `toml:"branch"`
	Log struct {
		Level *string `toml:"level"`
	} `toml:"log"`
	GitHub struct {
		Limit *int `toml:"limit"`
	} `toml:"github"`
	warnings []string
}

// loadFile reads a configuration file. Unknown keys become warnings.
func loadFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fc fileConfig
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	err = dec.Decode(&fc)

	var strict *toml.StrictMissingError
	switch {
	case err == nil:
	case errors.As(err, &strict):
		for _, e := range strict.Errors {
			fc.warnings = append(fc.warnings,
				fmt.Sprintf("unknown key in %s: %s", path, strings.Join(e.Key(), ".")))
		}
		// Decode again leniently so known keys still apply
		warnings := fc.warnings
		fc = fileConfig{}
		if err := toml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		fc.warnings = warnings
	default:
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return &fc, nil
}

// mergeConfig applies the keys present in fc onto cfg.
func mergeConfig(cfg *domain.Config, fc *fileConfig) {
	cfg.Warnings = append(cfg.Warnings, fc.warnings...)

	setString(&cfg.Milestone, fc.Milestone)
	setString(&cfg.NotesDir, fc.NotesDir)
	setString(&cfg.Branch.MilestonePrefix, fc.Branch.MilestonePrefix)
	setString(&cfg.Branch.FeaturePrefix, fc.Branch.FeaturePrefix)
	setString(&cfg.Branch.Remote, fc.Branch.Remote)
	setString(&cfg.Log.Level, fc.Log.Level)

	if fc.GitHub.Limit != nil {
		if *fc.GitHub.Limit > 0 {
			cfg.GitHub.Limit = *fc.GitHub.Limit
		} else {
			cfg.Warnings = append(cfg.Warnings,
				fmt.Sprintf("ignoring non-positive [github] limit: %d", *fc.GitHub.Limit))
		}
	}
	if fc.Start.NextSteps != nil {
		cfg.Start.NextSteps = append([]string(nil), *fc.Start.NextSteps...)
	}
}

func setString(dst *string, src *string) {
	if src != nil && *src != "" {
		*dst = *src
	}
}
