package store

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/sells-group/nibrs-cli/internal/db"
	"github.com/sells-group/nibrs-cli/internal/model"
)

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool    db.Pool
	closeFn func()
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool, closeFn: pool.Close}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	source     TEXT NOT NULL,
	status     TEXT NOT NULL DEFAULT 'queued',
	stats      JSONB,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS run_stages (
	id         TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	run_id     TEXT NOT NULL REFERENCES runs(id),
	name       TEXT NOT NULL,
	status     TEXT NOT NULL DEFAULT 'running',
	result     JSONB,
	started_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS agency_snapshots (
	run_id           TEXT NOT NULL REFERENCES runs(id),
	ori              TEXT NOT NULL,
	agency_name      TEXT NOT NULL,
	county           TEXT,
	state            TEXT,
	latitude         DOUBLE PRECISION,
	longitude        DOUBLE PRECISION,
	agency_type      TEXT,
	is_nibrs         BOOLEAN,
	nibrs_start_date DATE,
	year             INTEGER
);

CREATE INDEX IF NOT EXISTS idx_runs_status ON runs(status);
CREATE INDEX IF NOT EXISTS idx_run_stages_run_id ON run_stages(run_id);
CREATE INDEX IF NOT EXISTS idx_agency_snapshots_run_id ON agency_snapshots(run_id);
CREATE INDEX IF NOT EXISTS idx_agency_snapshots_state ON agency_snapshots(run_id, state);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}

func (s *PostgresStore) CreateRun(ctx context.Context, source string) (*model.Run, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	_, err := s.pool.Exec(ctx,
		`INSERT INTO runs (id, source, status, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		id, source, string(model.RunStatusQueued), now, now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: insert run")
	}

	return &model.Run{
		ID:        id,
		Source:    source,
		Status:    model.RunStatusQueued,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (s *PostgresStore) UpdateRunStatus(ctx context.Context, runID string, status model.RunStatus) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE runs SET status = $1, updated_at = $2 WHERE id = $3`,
		string(status), time.Now().UTC(), runID,
	)
	if err != nil {
		return eris.Wrapf(err, "postgres: update run status %s", runID)
	}
	if tag.RowsAffected() == 0 {
		return eris.Errorf("run not found: %s", runID)
	}
	return nil
}

func (s *PostgresStore) CompleteRun(ctx context.Context, runID string, stats *model.CleanStats) error {
	statsJSON, err := json.Marshal(stats)
	if err != nil {
		return eris.Wrap(err, "postgres: marshal stats")
	}

	tag, err := s.pool.Exec(ctx,
		`UPDATE runs SET stats = $1, status = $2, updated_at = $3 WHERE id = $4`,
		statsJSON, string(model.RunStatusComplete), time.Now().UTC(), runID,
	)
	if err != nil {
		return eris.Wrapf(err, "postgres: complete run %s", runID)
	}
	if tag.RowsAffected() == 0 {
		return eris.Errorf("run not found: %s", runID)
	}
	return nil
}

func (s *PostgresStore) GetRun(ctx context.Context, runID string) (*model.Run, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, source, status, stats, created_at, updated_at FROM runs WHERE id = $1`,
		runID,
	)
	r, err := scanPgRun(row)
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: get run %s", runID)
	}
	return r, nil
}

func (s *PostgresStore) ListRuns(ctx context.Context, filter RunFilter) ([]model.Run, error) {
	query := `SELECT id, source, status, stats, created_at, updated_at FROM runs`
	var args []any

	if filter.Status != "" {
		query += ` WHERE status = $1`
		args = append(args, string(filter.Status))
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT ` + strconv.Itoa(limit)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list runs")
	}
	defer rows.Close()

	var runs []model.Run
	for rows.Next() {
		r, err := scanPgRun(rows)
		if err != nil {
			return nil, eris.Wrap(err, "postgres: scan run")
		}
		runs = append(runs, *r)
	}
	return runs, eris.Wrap(rows.Err(), "postgres: list runs iterate")
}

func (s *PostgresStore) CreateStage(ctx context.Context, runID, name string) (string, error) {
	id := uuid.New().String()

	_, err := s.pool.Exec(ctx,
		`INSERT INTO run_stages (id, run_id, name, status, started_at) VALUES ($1, $2, $3, $4, $5)`,
		id, runID, name, string(model.StageStatusRunning), time.Now().UTC(),
	)
	if err != nil {
		return "", eris.Wrapf(err, "postgres: insert stage for run %s", runID)
	}
	return id, nil
}

func (s *PostgresStore) CompleteStage(ctx context.Context, stageID string, result *model.StageResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return eris.Wrap(err, "postgres: marshal stage result")
	}

	tag, err := s.pool.Exec(ctx,
		`UPDATE run_stages SET status = $1, result = $2 WHERE id = $3`,
		string(result.Status), resultJSON, stageID,
	)
	if err != nil {
		return eris.Wrapf(err, "postgres: complete stage %s", stageID)
	}
	if tag.RowsAffected() == 0 {
		return eris.Errorf("stage not found: %s", stageID)
	}
	return nil
}

var snapshotColumns = []string{
	"run_id", "ori", "agency_name", "county", "state",
	"latitude", "longitude", "agency_type", "is_nibrs", "nibrs_start_date", "year",
}

func (s *PostgresStore) SaveSnapshot(ctx context.Context, runID string, records []model.AgencyRecord) error {
	rows := make([][]any, 0, len(records))
	for _, r := range records {
		rows = append(rows, []any{
			runID, r.ORI, r.AgencyName, r.County, r.State,
			r.Latitude, r.Longitude, r.AgencyType, r.IsNIBRS, r.NIBRSStart, r.Year,
		})
	}

	if _, err := db.CopyFrom(ctx, s.pool, "agency_snapshots", snapshotColumns, rows); err != nil {
		return eris.Wrapf(err, "postgres: save snapshot for run %s", runID)
	}
	return nil
}

func (s *PostgresStore) GetSnapshot(ctx context.Context, runID string) ([]model.AgencyRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT ori, agency_name, county, state, latitude, longitude, agency_type, is_nibrs, nibrs_start_date, year
		 FROM agency_snapshots WHERE run_id = $1`,
		runID,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: get snapshot")
	}
	defer rows.Close()

	var records []model.AgencyRecord
	for rows.Next() {
		var r model.AgencyRecord
		if err := rows.Scan(&r.ORI, &r.AgencyName, &r.County, &r.State,
			&r.Latitude, &r.Longitude, &r.AgencyType, &r.IsNIBRS, &r.NIBRSStart, &r.Year); err != nil {
			return nil, eris.Wrap(err, "postgres: scan snapshot row")
		}
		records = append(records, r)
	}
	return records, eris.Wrap(rows.Err(), "postgres: snapshot iterate")
}

func scanPgRun(row pgx.Row) (*model.Run, error) {
	var r model.Run
	var statsJSON []byte

	if err := row.Scan(&r.ID, &r.Source, &r.Status, &statsJSON, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}

	if len(statsJSON) > 0 {
		var stats model.CleanStats
		if err := json.Unmarshal(statsJSON, &stats); err != nil {
			return nil, eris.Wrap(err, "unmarshal run stats")
		}
		r.Stats = &stats
	}
	return &r, nil
}

