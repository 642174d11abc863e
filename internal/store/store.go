// Package store persists cleaning runs, per-stage results, and cleaned
// agency snapshots behind a driver-selectable interface.
package store

import (
	"context"

	"github.com/sells-group/nibrs-cli/internal/model"
)

// RunFilter specifies criteria for listing runs.
type RunFilter struct {
	Status model.RunStatus `json:"status,omitempty"`
	Limit  int             `json:"limit,omitempty"`
}

// Store defines the persistence interface for the cleaning pipeline.
type Store interface {
	// Runs
	CreateRun(ctx context.Context, source string) (*model.Run, error)
	UpdateRunStatus(ctx context.Context, runID string, status model.RunStatus) error
	CompleteRun(ctx context.Context, runID string, stats *model.CleanStats) error
	GetRun(ctx context.Context, runID string) (*model.Run, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]model.Run, error)

	// Stages
	CreateStage(ctx context.Context, runID, name string) (string, error)
	CompleteStage(ctx context.Context, stageID string, result *model.StageResult) error

	// Snapshots
	SaveSnapshot(ctx context.Context, runID string, records []model.AgencyRecord) error
	GetSnapshot(ctx context.Context, runID string) ([]model.AgencyRecord, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
