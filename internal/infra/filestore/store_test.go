package filestore

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/runoshun/next-issue/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile writes content under dir, creating parent directories.
func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func issue(title string, number int) string {
	s := "---\ntitle: \"" + title + "\"\n"
	if number > 0 {
		s += "github_issue: " + strconv.Itoa(number) + "\n"
	}
	return s + "---\nBody of " + title + "\n"
}

// setupMilestone creates a notes dir with a populated m1 milestone.
func setupMilestone(t *testing.T) string {
	t.Helper()
	notes := t.TempDir()
	m1 := filepath.Join(notes, "m1")
	writeFile(t, m1, "_milestone.md", "---\ntitle: \"M1: Foundations\"\n---\n")
	writeFile(t, m1, "00-epic.md", issue("Epic", 0))
	writeFile(t, m1, "IMPLEMENTATION_PLAN.md", "| #1 | a | b | c | d | small |\n")
	writeFile(t, m1, "02-second.md", issue("Second", 2))
	writeFile(t, m1, "01-first.md", issue("First", 1))
	writeFile(t, m1, "10-tenth.md", issue("Tenth", 0))
	writeFile(t, m1, "03-no-frontmatter.md", "# Just markdown\n")
	writeFile(t, m1, "notes.md", issue("Notes", 0))
	writeFile(t, m1, "04-data.txt", issue("Text", 0))
	require.NoError(t, os.MkdirAll(filepath.Join(m1, "05-dir.md"), 0o755))
	return notes
}

// =============================================================================
// List Tests
// =============================================================================

func TestStore_List(t *testing.T) {
	store := New(setupMilestone(t), nil)

	records, err := store.List("m1")
	require.NoError(t, err)

	files := make([]string, 0, len(records))
	for _, r := range records {
		files = append(files, r.File)
	}
	assert.Equal(t, []string{"01-first.md", "02-second.md", "10-tenth.md"}, files)

	assert.Equal(t, "First", records[0].Title)
	require.NotNil(t, records[0].RemoteID)
	assert.Equal(t, 1, *records[0].RemoteID)
	assert.Nil(t, records[2].RemoteID)
}

func TestStore_List_ExcludesReservedNames(t *testing.T) {
	notes := t.TempDir()
	m1 := filepath.Join(notes, "m1")
	writeFile(t, m1, "00-epic.md", issue("Epic", 0))
	writeFile(t, m1, "_milestone.md", issue("Milestone", 0))
	writeFile(t, m1, "IMPLEMENTATION_PLAN.md", issue("Plan", 0))

	records, err := New(notes, nil).List("m1")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStore_List_MilestoneNotFound(t *testing.T) {
	store := New(t.TempDir(), nil)

	records, err := store.List("m9")
	assert.ErrorIs(t, err, domain.ErrMilestoneNotFound)
	assert.Contains(t, err.Error(), "m9")
	assert.Nil(t, records)
}

func TestStore_List_MilestoneIsFile(t *testing.T) {
	notes := t.TempDir()
	writeFile(t, notes, "m1", "not a directory")

	_, err := New(notes, nil).List("m1")
	assert.ErrorIs(t, err, domain.ErrMilestoneNotFound)
}

// =============================================================================
// Milestone file Tests
// =============================================================================

func TestStore_MilestoneTitle(t *testing.T) {
	store := New(setupMilestone(t), nil)

	title, ok := store.MilestoneTitle("m1")
	assert.True(t, ok)
	assert.Equal(t, "M1: Foundations", title)

	_, ok = store.MilestoneTitle("m9")
	assert.False(t, ok)
}

func TestStore_MilestoneTitle_NoTitle(t *testing.T) {
	notes := t.TempDir()
	writeFile(t, filepath.Join(notes, "m1"), "_milestone.md", "---\nname: x\n---\n")

	_, ok := New(notes, nil).MilestoneTitle("m1")
	assert.False(t, ok)
}

func TestStore_PlanContent(t *testing.T) {
	store := New(setupMilestone(t), nil)

	plan, ok := store.PlanContent("m1")
	assert.True(t, ok)
	assert.Contains(t, plan, "small")

	_, ok = store.PlanContent("m9")
	assert.False(t, ok)
}
