package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepos(t *testing.T) *Repositories {
	t.Helper()
	repos, err := NewRepositories(context.Background(), Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, repos.Close()) })
	return repos
}

func TestRepositories_Integration(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.Ping(ctx))
	assert.Equal(t, DefaultNamespace, repos.State.Namespace())

	t.Run("get missing key", func(t *testing.T) {
		val, ok, err := repos.State.Get(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, val)
	})

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, repos.State.Set(ctx, "preferences", `{"selectedSection":"world"}`))
		val, ok, err := repos.State.Get(ctx, "preferences")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `{"selectedSection":"world"}`, val)
	})

	t.Run("set overwrites", func(t *testing.T) {
		require.NoError(t, repos.State.Set(ctx, "preferences", `{"selectedSection":"arts"}`))
		val, _, err := repos.State.Get(ctx, "preferences")
		require.NoError(t, err)
		assert.Equal(t, `{"selectedSection":"arts"}`, val)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repos.State.Set(ctx, "tmp", "1"))
		require.NoError(t, repos.State.Delete(ctx, "tmp"))
		_, ok, err := repos.State.Get(ctx, "tmp")
		require.NoError(t, err)
		assert.False(t, ok)

		// deleting missing key is fine
		require.NoError(t, repos.State.Delete(ctx, "tmp"))
	})
}

func TestStateRepository_ListAndDeletePrefix(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	require.NoError(t, repos.State.Set(ctx, "articles.world", "w"))
	require.NoError(t, repos.State.Set(ctx, "articles.arts", "a"))
	require.NoError(t, repos.State.Set(ctx, "articles_backup", "x"))
	require.NoError(t, repos.State.Set(ctx, "preferences", "p"))

	list, err := repos.State.List(ctx, "articles.")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"articles.world": "w", "articles.arts": "a"}, list)

	all, err := repos.State.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	deleted, err := repos.State.DeletePrefix(ctx, "articles.")
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	list, err = repos.State.List(ctx, "articles.")
	require.NoError(t, err)
	assert.Empty(t, list)

	val, ok, err := repos.State.Get(ctx, "preferences")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "p", val)

	deleted, err = repos.State.DeletePrefix(ctx, "articles.")
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestStateRepository_NamespaceIsolation(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	other := NewStateRepository(repos.DB, "topstories/v0")
	require.NoError(t, other.Set(ctx, "preferences", "old"))
	require.NoError(t, repos.State.Set(ctx, "preferences", "new"))

	val, _, err := other.Get(ctx, "preferences")
	require.NoError(t, err)
	assert.Equal(t, "old", val)

	_, err = repos.State.DeletePrefix(ctx, "")
	require.NoError(t, err)

	val, ok, err := other.Get(ctx, "preferences")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "old", val)
}

func TestRepositories_Persistence(t *testing.T) {
	ctx := context.Background()
	dsn := "file:" + filepath.Join(t.TempDir(), "state.db")

	repos, err := NewRepositories(ctx, Config{DSN: dsn})
	require.NoError(t, err)
	require.NoError(t, repos.State.Set(ctx, "articles.world", "cached"))
	require.NoError(t, repos.Close())

	repos, err = NewRepositories(ctx, Config{DSN: dsn})
	require.NoError(t, err)
	defer repos.Close()

	val, ok, err := repos.State.Get(ctx, "articles.world")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "cached", val)
}

func TestStateRepository_ClosedDB(t *testing.T) {
	repos, err := NewRepositories(context.Background(), Config{DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	require.NoError(t, repos.Close())

	err = repos.State.Set(context.Background(), "k", "v")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "set k")

	_, err = repos.State.DeletePrefix(context.Background(), "k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete prefix k")
}

func TestNewRepositories_InvalidDSN(t *testing.T) {
	_, err := NewRepositories(context.Background(), Config{DSN: "invalid://database/url"})
	require.Error(t, err)
}

func TestCriticalError(t *testing.T) {
	originalErr := fmt.Errorf("test error message")
	critErr := &criticalError{err: originalErr}

	assert.Equal(t, "test error message", critErr.Error())
	assert.ErrorIs(t, critErr, errCritical)
	assert.ErrorIs(t, critErr, originalErr)
	assert.Equal(t, originalErr, unwrapCritical(fmt.Errorf("wrapped: %w", critErr)))
	assert.Equal(t, originalErr, unwrapCritical(originalErr))
	assert.NoError(t, unwrapCritical(nil))
}

func TestIsLockError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.False(t, isLockError(nil))
	})

	t.Run("sqlite busy error", func(t *testing.T) {
		assert.True(t, isLockError(fmt.Errorf("SQLITE_BUSY: database is busy")))
	})

	t.Run("database locked error", func(t *testing.T) {
		assert.True(t, isLockError(fmt.Errorf("database is locked")))
	})

	t.Run("table locked error", func(t *testing.T) {
		assert.True(t, isLockError(fmt.Errorf("database table is locked")))
	})

	t.Run("other error", func(t *testing.T) {
		assert.False(t, isLockError(fmt.Errorf("no such table: kv")))
	})
}
