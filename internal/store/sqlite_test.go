package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/cfo-monitor/internal/model"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := NewSQLite(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() }) //nolint:errcheck
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func TestSQLite_CreateRun_And_GetRun(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, model.RunStatusRunning, run.Status)

	fetched, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, fetched.ID)
	assert.Equal(t, model.RunStatusRunning, fetched.Status)
	assert.Nil(t, fetched.Result)
}

func TestSQLite_GetRun_Missing(t *testing.T) {
	st := newTestSQLiteStore(t)

	_, err := st.GetRun(context.Background(), "no-such-run")
	assert.Error(t, err)
}

func TestSQLite_CompleteRun(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx)
	require.NoError(t, err)

	result := &model.RunResult{
		Stats: model.RunStats{
			Findings:    3,
			Companies:   2,
			Individuals: 2,
			Regulatory:  1,
			News:        2,
		},
		TearSheets: 4,
		EmailSent:  true,
		Findings: []model.Finding{
			{Source: model.SourceNews, Company: "Acme Corp", Individual: "Jane Smith", URL: "https://news.example.com/1"},
		},
	}
	err = st.CompleteRun(ctx, run.ID, result)
	require.NoError(t, err)

	fetched, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusComplete, fetched.Status)
	require.NotNil(t, fetched.Result)
	assert.Equal(t, 3, fetched.Result.Stats.Findings)
	assert.True(t, fetched.Result.EmailSent)
	require.Len(t, fetched.Result.Findings, 1)
	assert.Equal(t, "Jane Smith", fetched.Result.Findings[0].Individual)
}

func TestSQLite_CompleteRun_Missing(t *testing.T) {
	st := newTestSQLiteStore(t)

	err := st.CompleteRun(context.Background(), "no-such-run", &model.RunResult{})
	assert.Error(t, err)
}

func TestSQLite_ListRuns(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	_, err := st.CreateRun(ctx)
	require.NoError(t, err)
	_, err = st.CreateRun(ctx)
	require.NoError(t, err)

	runs, err := st.ListRuns(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestSQLite_ListRuns_Limit(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := st.CreateRun(ctx)
		require.NoError(t, err)
	}

	runs, err := st.ListRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestSQLite_Migrate_Idempotent(t *testing.T) {
	st := newTestSQLiteStore(t)

	err := st.Migrate(context.Background())
	require.NoError(t, err)
}
