package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kurihiro0119/github-user-finder/internal/domain"
)

func TestSQLiteStorage_SaveAndList(t *testing.T) {
	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, store.SaveLookup(ctx, &domain.LookupRecord{
		ID: "a", Query: "octocat", Succeeded: true, Login: "octocat", RepoCount: 2, RequestedAt: base,
	}))
	require.NoError(t, store.SaveLookup(ctx, &domain.LookupRecord{
		ID: "b", Query: "ghost", Succeeded: false, RequestedAt: base.Add(time.Minute),
	}))

	records, err := store.GetRecentLookups(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "b", records[0].ID)
	assert.False(t, records[0].Succeeded)
	assert.Equal(t, "a", records[1].ID)
	assert.True(t, records[1].Succeeded)
	assert.Equal(t, "octocat", records[1].Login)
	assert.Equal(t, 2, records[1].RepoCount)
	assert.True(t, base.Equal(records[1].RequestedAt))
}

func TestSQLiteStorage_Limit(t *testing.T) {
	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	for i, id := range []string{"1", "2", "3"} {
		require.NoError(t, store.SaveLookup(ctx, &domain.LookupRecord{
			ID: id, Query: "q" + id, RequestedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	records, err := store.GetRecentLookups(ctx, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "3", records[0].ID)
	assert.Equal(t, "2", records[1].ID)
}

func TestSQLiteStorage_DuplicateID(t *testing.T) {
	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	rec := &domain.LookupRecord{ID: "dup", Query: "x", RequestedAt: time.Now()}
	require.NoError(t, store.SaveLookup(ctx, rec))
	assert.Error(t, store.SaveLookup(ctx, rec))
}
