package usecase_test

import (
	"context"
	"testing"

	"github.com/runoshun/next-issue/internal/domain"
	"github.com/runoshun/next-issue/internal/testutil"
	"github.com/runoshun/next-issue/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextIssue_Execute(t *testing.T) {
	t.Run("skips closed and picks first open", func(t *testing.T) {
		f := newFixture(
			record("01-a.md", "A", testutil.IntPtr(5)),
			record("02-b.md", "B", testutil.IntPtr(7)),
			record("03-c.md", "C", nil),
		)
		f.remote(closed(5), open(7))

		out, err := usecase.NewNextIssue(f.repo, f.fetch).Execute(context.Background(), usecase.NextIssueInput{Milestone: testMilestone})

		require.NoError(t, err)
		require.True(t, out.Found())
		assert.Equal(t, "02-b.md", out.Entry.Record.File)
		assert.Equal(t, domain.StatusOpen, out.Entry.Status)
		require.NotNil(t, out.Entry.Remote)
		assert.Equal(t, 7, out.Entry.Remote.Number)
	})

	t.Run("unfiled issue is actionable", func(t *testing.T) {
		f := newFixture(
			record("01-a.md", "A", nil),
			record("02-b.md", "B", nil),
		)

		out, err := usecase.NewNextIssue(f.repo, f.fetch).Execute(context.Background(), usecase.NextIssueInput{Milestone: testMilestone})

		require.NoError(t, err)
		require.True(t, out.Found())
		assert.Equal(t, "01-a.md", out.Entry.Record.File)
		assert.Equal(t, domain.StatusNotCreated, out.Entry.Status)
	})

	t.Run("tracker unavailable with linked issues finds nothing", func(t *testing.T) {
		f := newFixture(
			record("01-a.md", "A", testutil.IntPtr(5)),
			record("02-b.md", "B", testutil.IntPtr(7)),
		)
		f.remote(open(5), open(7))
		f.tracker.Unavailable = true

		out, err := usecase.NewNextIssue(f.repo, f.fetch).Execute(context.Background(), usecase.NextIssueInput{Milestone: testMilestone})

		require.NoError(t, err)
		assert.False(t, out.Found())
	})

	t.Run("milestone not found", func(t *testing.T) {
		f := newFixture()
		_, err := usecase.NewNextIssue(f.repo, f.fetch).Execute(context.Background(), usecase.NextIssueInput{Milestone: "m9"})
		assert.ErrorIs(t, err, domain.ErrMilestoneNotFound)
	})

	t.Run("empty milestone", func(t *testing.T) {
		f := newFixture()
		_, err := usecase.NewNextIssue(f.repo, f.fetch).Execute(context.Background(), usecase.NextIssueInput{})
		assert.ErrorIs(t, err, domain.ErrEmptyMilestone)
	})
}
