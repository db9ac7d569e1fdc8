package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSQLiteRepository_ReplaceAndLoad(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	loaded, err := repo.LoadAssignments(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)

	labels := map[string]string{
		"copy":         "CTRL + C",
		"paste":        "CTRL + V",
		"show_history": "",
		"toggle":       "",
	}
	require.NoError(t, repo.ReplaceAssignments(ctx, labels))

	loaded, err = repo.LoadAssignments(ctx)
	require.NoError(t, err)
	assert.Equal(t, labels, loaded)
}

func TestSQLiteRepository_SwapChords(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAssignments(ctx, map[string]string{"copy": "CTRL + C", "paste": "CTRL + V"}))
	require.NoError(t, repo.ReplaceAssignments(ctx, map[string]string{"copy": "CTRL + V", "paste": "CTRL + C"}))

	loaded, err := repo.LoadAssignments(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"copy": "CTRL + V", "paste": "CTRL + C"}, loaded)
}

func TestSQLiteRepository_UniqueChord(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAssignments(ctx, map[string]string{"copy": "CTRL + C"}))
	err := repo.ReplaceAssignments(ctx, map[string]string{"copy": "CTRL + X", "paste": "CTRL + X"})
	require.Error(t, err)

	// The failed transaction leaves the previous snapshot in place
	loaded, err := repo.LoadAssignments(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"copy": "CTRL + C"}, loaded)
}

func TestSQLiteRepository_DeleteAssignments(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	require.NoError(t, repo.ReplaceAssignments(ctx, map[string]string{
		"copy":  "CTRL + C",
		"paste": "CTRL + V",
		"quit":  "CTRL + Q",
	}))

	require.NoError(t, repo.DeleteAssignments(ctx, "paste", "quit"))
	loaded, err := repo.LoadAssignments(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"copy": "CTRL + C"}, loaded)

	require.NoError(t, repo.DeleteAssignments(ctx))
	loaded, err = repo.LoadAssignments(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestSQLiteRepository_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.db")
	repo, err := NewSQLiteRepository(path)
	require.NoError(t, err)
	require.NoError(t, repo.ReplaceAssignments(context.Background(), map[string]string{"copy": "CTRL + C"}))
	require.NoError(t, repo.Close())

	reopened, err := NewSQLiteRepository(path)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.LoadAssignments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"copy": "CTRL + C"}, loaded)
}

func TestWithRetry(t *testing.T) {
	t.Run("retries busy errors", func(t *testing.T) {
		calls := 0
		err := withRetry(func() error {
			calls++
			if calls < 3 {
				return sqlite3.Error{Code: sqlite3.ErrBusy}
			}
			return nil
		}, 5)
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns other errors immediately", func(t *testing.T) {
		calls := 0
		boom := errors.New("boom")
		err := withRetry(func() error {
			calls++
			return boom
		}, 5)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up", func(t *testing.T) {
		err := withRetry(func() error {
			return sqlite3.Error{Code: sqlite3.ErrLocked}
		}, 2)
		assert.ErrorContains(t, err, "after 2 retries")
	})
}
