package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/nibrs-cli/internal/model"
)

func newTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()

	st, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func TestSQLiteStore_RunLifecycle(t *testing.T) {
	st := newTestSQLite(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, "agencies.csv")
	require.NoError(t, err)
	require.NotEmpty(t, run.ID)
	assert.Equal(t, "agencies.csv", run.Source)
	assert.Equal(t, model.RunStatusQueued, run.Status)

	require.NoError(t, st.UpdateRunStatus(ctx, run.ID, model.RunStatusCleaning))

	stats := &model.CleanStats{RowsIn: 10, RowsOut: 8, ExactDuplicates: 2}
	require.NoError(t, st.CompleteRun(ctx, run.ID, stats))

	got, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusComplete, got.Status)
	require.NotNil(t, got.Stats)
	assert.Equal(t, 10, got.Stats.RowsIn)
	assert.Equal(t, 8, got.Stats.RowsOut)
	assert.Equal(t, 2, got.Stats.ExactDuplicates)
}

func TestSQLiteStore_GetRunNotFound(t *testing.T) {
	st := newTestSQLite(t)

	_, err := st.GetRun(context.Background(), "no-such-run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLiteStore_UpdateMissingRunFails(t *testing.T) {
	st := newTestSQLite(t)

	err := st.UpdateRunStatus(context.Background(), "no-such-run", model.RunStatusFailed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLiteStore_ListRuns(t *testing.T) {
	st := newTestSQLite(t)
	ctx := context.Background()

	first, err := st.CreateRun(ctx, "first.csv")
	require.NoError(t, err)
	_, err = st.CreateRun(ctx, "second.csv")
	require.NoError(t, err)

	require.NoError(t, st.UpdateRunStatus(ctx, first.ID, model.RunStatusFailed))

	all, err := st.ListRuns(ctx, RunFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	failed, err := st.ListRuns(ctx, RunFilter{Status: model.RunStatusFailed})
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, first.ID, failed[0].ID)

	limited, err := st.ListRuns(ctx, RunFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestSQLiteStore_Stages(t *testing.T) {
	st := newTestSQLite(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, "agencies.csv")
	require.NoError(t, err)

	stageID, err := st.CreateStage(ctx, run.ID, "dedupe")
	require.NoError(t, err)
	require.NotEmpty(t, stageID)

	result := &model.StageResult{
		Name:     "dedupe",
		Status:   model.StageStatusComplete,
		Duration: 12,
		Metadata: map[string]any{"exact": 2},
	}
	require.NoError(t, st.CompleteStage(ctx, stageID, result))

	err = st.CompleteStage(ctx, "no-such-stage", result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLiteStore_SnapshotRoundTrip(t *testing.T) {
	st := newTestSQLite(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, "agencies.csv")
	require.NoError(t, err)

	lat, lon := 31.78, -84.14
	flag := true
	year := 2020
	start := time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)

	records := []model.AgencyRecord{
		{
			ORI:        "GA0990000",
			AgencyName: "Lee County Sheriff's Office",
			County:     "Lee",
			State:      "GA",
			Latitude:   &lat,
			Longitude:  &lon,
			AgencyType: string(model.TypeCounty),
			IsNIBRS:    &flag,
			NIBRSStart: &start,
			Year:       &year,
		},
		{
			ORI:        "OH0120100",
			AgencyName: "Springfield Police Department",
			County:     "Clark",
			State:      "OH",
			AgencyType: string(model.TypeCity),
		},
	}

	require.NoError(t, st.SaveSnapshot(ctx, run.ID, records))

	got, err := st.GetSnapshot(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)

	full := got[0]
	assert.Equal(t, "GA0990000", full.ORI)
	require.NotNil(t, full.Latitude)
	assert.Equal(t, lat, *full.Latitude)
	require.NotNil(t, full.IsNIBRS)
	assert.True(t, *full.IsNIBRS)
	require.NotNil(t, full.NIBRSStart)
	assert.True(t, start.Equal(*full.NIBRSStart))
	require.NotNil(t, full.Year)
	assert.Equal(t, 2020, *full.Year)

	sparse := got[1]
	assert.Nil(t, sparse.Latitude)
	assert.Nil(t, sparse.Longitude)
	assert.Nil(t, sparse.IsNIBRS)
	assert.Nil(t, sparse.NIBRSStart)
	assert.Nil(t, sparse.Year)
}
