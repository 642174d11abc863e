package pipeline

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/nibrs-cli/internal/model"
	"github.com/sells-group/nibrs-cli/internal/store"
)

// Stage names, in execution order.
const (
	StageDedupe   = "dedupe"
	StageImpute   = "impute_coordinates"
	StageClassify = "classify_types"
	StageRepair   = "repair_consistency"
	StageDerive   = "derive_year"
)

// Cleaner orchestrates the cleaning stages over one in-memory dataset.
// The stages themselves are pure; the Cleaner adds run/stage tracking
// and logging around them.
type Cleaner struct {
	store store.Store
}

// New creates a Cleaner. The store may be nil for dry runs; stage
// tracking is then log-only.
func New(st store.Store) *Cleaner {
	return &Cleaner{store: st}
}

// Result holds the cleaned dataset and everything recorded along the way.
type Result struct {
	RunID   string
	Records []model.AgencyRecord
	Stats   model.CleanStats
}

// Run executes the full pipeline: dedupe, coordinate imputation, type
// classification, consistency repair, year derivation. The stages are
// strictly sequential and each consumes the previous stage's output; the
// input slice is never mutated. Stage logic cannot fail on data — only
// store bookkeeping can return an error.
func (c *Cleaner) Run(ctx context.Context, source string, records []model.AgencyRecord) (*Result, error) {
	log := zap.L().With(zap.String("source", source))
	log.Info("pipeline: starting clean", zap.Int("rows", len(records)))

	result := &Result{}
	result.Stats.RowsIn = len(records)

	var runID string
	if c.store != nil {
		run, err := c.store.CreateRun(ctx, source)
		if err != nil {
			return nil, eris.Wrap(err, "pipeline: create run")
		}
		runID = run.ID
		result.RunID = runID

		if err := c.store.UpdateRunStatus(ctx, runID, model.RunStatusCleaning); err != nil {
			log.Warn("pipeline: failed to update run status", zap.Error(err))
		}
	}

	// Stage tracking helper. Stages are pure, so tracking failures are
	// warnings, never pipeline failures.
	trackStage := func(name string, fn func() map[string]any) {
		var stageID string
		if c.store != nil {
			id, err := c.store.CreateStage(ctx, runID, name)
			if err != nil {
				log.Warn("pipeline: failed to create stage", zap.String("stage", name), zap.Error(err))
			} else {
				stageID = id
			}
		}

		start := time.Now()
		metadata := fn()
		duration := time.Since(start).Milliseconds()

		stageResult := &model.StageResult{
			Name:     name,
			Status:   model.StageStatusComplete,
			Duration: duration,
			Metadata: metadata,
		}
		log.Info("pipeline: stage complete",
			zap.String("stage", name),
			zap.Int64("duration_ms", duration),
			zap.Any("metadata", metadata),
		)

		if stageID != "" {
			if err := c.store.CompleteStage(ctx, stageID, stageResult); err != nil {
				log.Warn("pipeline: failed to complete stage", zap.String("stage", name), zap.Error(err))
			}
		}
		result.Stats.Stages = append(result.Stats.Stages, *stageResult)
	}

	current := records

	trackStage(StageDedupe, func() map[string]any {
		deduped, stats := Dedupe(current)
		current = deduped
		result.Stats.ExactDuplicates = stats.Exact
		result.Stats.KeyDuplicates = stats.Key
		result.Stats.NameCollisions = stats.NameCollisions
		return map[string]any{
			"exact_duplicates": stats.Exact,
			"key_duplicates":   stats.Key,
			"name_collisions":  stats.NameCollisions,
			"rows":             len(current),
		}
	})

	trackStage(StageImpute, func() map[string]any {
		imputed, stats := ImputeCoordinates(current)
		current = imputed
		result.Stats.ImputedPeer = stats.Peer
		result.Stats.ImputedCounty = stats.County
		result.Stats.ImputedState = stats.State
		result.Stats.MissingCoordinates = stats.Remaining
		return map[string]any{
			"peer_filled":   stats.Peer,
			"county_filled": stats.County,
			"state_filled":  stats.State,
			"remaining":     stats.Remaining,
		}
	})

	trackStage(StageClassify, func() map[string]any {
		classified, changed := ClassifyAll(current)
		current = classified
		result.Stats.Reclassified = changed
		return map[string]any{"reclassified": changed}
	})

	trackStage(StageRepair, func() map[string]any {
		mismatches := CountMismatches(current)
		repaired, n := Repair(current)
		current = repaired
		result.Stats.FlagRepairs = n
		result.Stats.ConfirmedNoDate = mismatches.FlagTrueNoDate
		return map[string]any{
			"flag_false_with_date": mismatches.FlagFalseWithDate,
			"flag_true_no_date":    mismatches.FlagTrueNoDate,
			"repaired":             n,
		}
	})

	trackStage(StageDerive, func() map[string]any {
		current = DeriveYear(current)
		return map[string]any{"rows": len(current)}
	})

	result.Records = current
	result.Stats.RowsOut = len(current)

	if c.store != nil {
		if err := c.store.SaveSnapshot(ctx, runID, current); err != nil {
			return nil, eris.Wrap(err, "pipeline: save snapshot")
		}
		if err := c.store.CompleteRun(ctx, runID, &result.Stats); err != nil {
			return nil, eris.Wrap(err, "pipeline: complete run")
		}
	}

	log.Info("pipeline: clean complete",
		zap.Int("rows_in", result.Stats.RowsIn),
		zap.Int("rows_out", result.Stats.RowsOut),
		zap.Int("missing_coordinates", result.Stats.MissingCoordinates),
	)

	return result, nil
}
