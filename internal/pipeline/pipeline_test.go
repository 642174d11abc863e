package pipeline

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/nibrs-cli/internal/model"
	"github.com/sells-group/nibrs-cli/internal/store"
)

func TestCleanerRun_EndToEnd(t *testing.T) {
	row := agency("A1", "Lee County Sheriff's Office", "Lee", "GA")
	row.AgencyType = "Other"
	row.IsNIBRS = bptr(false)
	row.NIBRSStart = dptr("2020-01-01")
	duplicate := row

	cleaner := New(nil)
	result, err := cleaner.Run(context.Background(), "test.csv", []model.AgencyRecord{row, duplicate})
	require.NoError(t, err)

	require.Len(t, result.Records, 1)
	got := result.Records[0]
	assert.Equal(t, string(model.TypeCounty), got.AgencyType)
	require.NotNil(t, got.IsNIBRS)
	assert.True(t, *got.IsNIBRS)
	require.NotNil(t, got.Year)
	assert.Equal(t, 2020, *got.Year)

	assert.Equal(t, 2, result.Stats.RowsIn)
	assert.Equal(t, 1, result.Stats.RowsOut)
	assert.Equal(t, 1, result.Stats.ExactDuplicates)
	assert.Equal(t, 1, result.Stats.FlagRepairs)
	assert.Len(t, result.Stats.Stages, 5)
}

func TestCleanerRun_PeerImputationEndToEnd(t *testing.T) {
	anchor := located("A1", "Frag Police Department", "Clay", "FL", 40.0, -75.0)
	missing := agency("A2", "Frag Police Department", "Clay", "FL")

	cleaner := New(nil)
	result, err := cleaner.Run(context.Background(), "test.csv", []model.AgencyRecord{anchor, missing})
	require.NoError(t, err)
	require.Len(t, result.Records, 2)

	for _, r := range result.Records {
		require.True(t, r.HasCoordinates())
		assert.Equal(t, 40.0, *r.Latitude)
		assert.Equal(t, -75.0, *r.Longitude)
	}
	assert.Equal(t, 1, result.Stats.ImputedPeer)
}

func TestCleanerRun_UnknownCountyGetsStateCentroid(t *testing.T) {
	orphan := agency("A1", "Orphan Office", "Unknown", "FL")
	anchorA := located("B1", "Anchor One", "Clay", "FL", 30.0, -82.0)
	anchorB := located("C1", "Anchor Two", "Duval", "FL", 32.0, -84.0)

	cleaner := New(nil)
	result, err := cleaner.Run(context.Background(), "test.csv", []model.AgencyRecord{orphan, anchorA, anchorB})
	require.NoError(t, err)

	var got model.AgencyRecord
	for _, r := range result.Records {
		if r.ORI == "A1" {
			got = r
		}
	}
	require.True(t, got.HasCoordinates())
	assert.InDelta(t, 31.0, *got.Latitude, 1e-9)
	assert.InDelta(t, -83.0, *got.Longitude, 1e-9)
	assert.Equal(t, 1, result.Stats.ImputedState)
	assert.Equal(t, 0, result.Stats.ImputedCounty)
}

func TestCleanerRun_WithStore(t *testing.T) {
	st, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	ctx := context.Background()
	require.NoError(t, st.Migrate(ctx))

	row := agency("A1", "Springfield Police Department", "Clark", "OH")
	row.NIBRSStart = dptr("2019-05-01")

	cleaner := New(st)
	result, err := cleaner.Run(ctx, "raw.csv", []model.AgencyRecord{row})
	require.NoError(t, err)
	require.NotEmpty(t, result.RunID)

	run, err := st.GetRun(ctx, result.RunID)
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusComplete, run.Status)
	require.NotNil(t, run.Stats)
	assert.Equal(t, 1, run.Stats.RowsOut)

	snapshot, err := st.GetSnapshot(ctx, result.RunID)
	require.NoError(t, err)
	require.Len(t, snapshot, 1)
	assert.Equal(t, string(model.TypeCity), snapshot[0].AgencyType)
	require.NotNil(t, snapshot[0].Year)
	assert.Equal(t, 2019, *snapshot[0].Year)
}
