package journal

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id string, endOffset time.Duration, outcome Outcome) *Entry {
	return &Entry{
		ID:        id,
		Mode:      3,
		StartedAt: start,
		EndedAt:   start.Add(endOffset),
		Outcome:   outcome,
		Moves:     10,
		Draws:     5,
		Recycles:  1,
	}
}

// runRepositoryContract exercises the behavior every Repository must share
func runRepositoryContract(t *testing.T, repo Repository) {
	ctx := context.Background()

	t.Run("empty", func(t *testing.T) {
		s, err := repo.Summary(ctx)
		require.NoError(t, err)
		assert.Equal(t, Summary{}, s)
		assert.Zero(t, s.WinRate())

		_, err = repo.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	require.NoError(t, repo.Save(ctx, entry("a", time.Minute, OutcomeWon)))
	require.NoError(t, repo.Save(ctx, entry("b", 3*time.Minute, OutcomeAbandoned)))
	require.NoError(t, repo.Save(ctx, entry("c", 2*time.Minute, OutcomeWon)))

	t.Run("get", func(t *testing.T) {
		got, err := repo.Get(ctx, "a")
		require.NoError(t, err)
		want := entry("a", time.Minute, OutcomeWon)
		assert.Equal(t, want.ID, got.ID)
		assert.True(t, want.StartedAt.Equal(got.StartedAt))
		assert.True(t, want.EndedAt.Equal(got.EndedAt))
		assert.Equal(t, time.Minute, got.Duration())
		assert.Equal(t, OutcomeWon, got.Outcome)
		assert.Equal(t, []int{3, 10, 5, 1}, []int{got.Mode, got.Moves, got.Draws, got.Recycles})
	})

	t.Run("recent", func(t *testing.T) {
		got, err := repo.Recent(ctx, 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "b", got[0].ID)
		assert.Equal(t, "c", got[1].ID)
	})

	t.Run("summary", func(t *testing.T) {
		s, err := repo.Summary(ctx)
		require.NoError(t, err)
		assert.Equal(t, Summary{Played: 3, Won: 2}, s)
		assert.InDelta(t, 2.0/3.0, s.WinRate(), 1e-9)
	})

	t.Run("upsert", func(t *testing.T) {
		updated := entry("b", 3*time.Minute, OutcomeWon)
		updated.Moves = 99
		require.NoError(t, repo.Save(ctx, updated))

		got, err := repo.Get(ctx, "b")
		require.NoError(t, err)
		assert.Equal(t, 99, got.Moves)
		assert.Equal(t, OutcomeWon, got.Outcome)

		s, err := repo.Summary(ctx)
		require.NoError(t, err)
		assert.Equal(t, Summary{Played: 3, Won: 3}, s)
	})

	require.NoError(t, repo.Close())
}

// TestMemoryRepository verifies the in-memory journal
func TestMemoryRepository(t *testing.T) {
	runRepositoryContract(t, NewMemoryRepository())
}

// TestMemoryRepositoryCopies verifies stored entries are not aliased
func TestMemoryRepositoryCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	e := entry("a", time.Minute, OutcomeWon)
	require.NoError(t, repo.Save(ctx, e))
	e.Moves = 0

	got, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 10, got.Moves)
}

// TestSQLiteRepository verifies the sqlite journal
func TestSQLiteRepository(t *testing.T) {
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "db", "journal.db"))
	require.NoError(t, err)
	runRepositoryContract(t, repo)
}

// TestSQLiteRepositoryInMemory verifies the ":memory:" path keeps one database
func TestSQLiteRepositoryInMemory(t *testing.T) {
	repo, err := NewSQLiteRepository(":memory:")
	require.NoError(t, err)
	runRepositoryContract(t, repo)
}

// TestSQLiteRepositoryReopen verifies entries persist across connections
func TestSQLiteRepositoryReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "journal.db")

	repo, err := NewSQLiteRepository(path)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, entry("kept", time.Minute, OutcomeWon)))
	require.NoError(t, repo.Close())

	repo, err = NewSQLiteRepository(path)
	require.NoError(t, err)
	defer repo.Close()

	got, err := repo.Get(ctx, "kept")
	require.NoError(t, err)
	assert.Equal(t, OutcomeWon, got.Outcome)
}
