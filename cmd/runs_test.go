//go:build !integration

package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/nibrs-cli/internal/model"
)

func TestFormatRunsList(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	runs := []model.Run{
		{
			ID:        "abc12345-6789-0000-0000-000000000000",
			Source:    "agencies_2026.csv",
			Status:    model.RunStatusComplete,
			Stats:     &model.CleanStats{RowsIn: 100, RowsOut: 95},
			CreatedAt: now,
			UpdatedAt: now.Add(2 * time.Minute),
		},
		{
			ID:        "def12345-6789-0000-0000-000000000000",
			Source:    "partial.csv",
			Status:    model.RunStatusCleaning,
			CreatedAt: now.Add(-1 * time.Hour),
			UpdatedAt: now.Add(-30 * time.Minute),
		},
	}

	var buf bytes.Buffer
	formatRunsList(&buf, runs)

	output := buf.String()
	assert.Contains(t, output, "ID")
	assert.Contains(t, output, "SOURCE")
	assert.Contains(t, output, "STATUS")
	assert.Contains(t, output, "agencies_2026.csv")
	assert.Contains(t, output, "complete")
	assert.Contains(t, output, "95")
	assert.Contains(t, output, "partial.csv")
	assert.Contains(t, output, "cleaning")
	assert.Contains(t, output, "2026-03-15 10:30")
	assert.Contains(t, output, "abc12345")
}

func TestFormatRunsList_LongSourceTruncated(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	runs := []model.Run{
		{
			ID:        "abc12345-6789-0000-0000-000000000000",
			Source:    "/data/ingest/very/long/path/to/the/agency/file/agencies.csv",
			Status:    model.RunStatusComplete,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	var buf bytes.Buffer
	formatRunsList(&buf, runs)

	output := buf.String()
	assert.Contains(t, output, "...")
	assert.NotContains(t, output, "/data/ingest/very/long")
}

func TestTruncateID(t *testing.T) {
	assert.Equal(t, "abc12345", truncateID("abc12345-6789-0000-0000-000000000000"))
	assert.Equal(t, "short", truncateID("short"))
}
