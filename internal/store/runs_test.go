package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "engine.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRunLifecycle(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	start := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, db.BeginRun(ctx, "run-1", start))

	runs, err := db.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, OutcomeRunning, runs[0].Outcome)
	assert.Nil(t, runs[0].EndedAt)

	end := start.Add(time.Minute)
	require.NoError(t, db.FinishRun(ctx, "run-1", OutcomeCompleted, 40, 12, "", end))

	runs, err = db.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, OutcomeCompleted, runs[0].Outcome)
	assert.Equal(t, 40, runs[0].FoundProfiles)
	assert.Equal(t, 12, runs[0].KeptProfiles)
	require.NotNil(t, runs[0].EndedAt)
	assert.True(t, runs[0].EndedAt.Equal(end))
}

func TestListRunsNewestFirst(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.BeginRun(ctx, "old", base))
	require.NoError(t, db.BeginRun(ctx, "new", base.Add(time.Hour)))

	runs, err := db.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "new", runs[0].ID)
}
