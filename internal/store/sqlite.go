package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/nibrs-cli/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	source     TEXT NOT NULL,
	status     TEXT NOT NULL DEFAULT 'queued',
	stats      TEXT,
	created_at DATETIME NOT NULL DEFAULT (datetime('now')),
	updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS run_stages (
	id         TEXT PRIMARY KEY,
	run_id     TEXT NOT NULL REFERENCES runs(id),
	name       TEXT NOT NULL,
	status     TEXT NOT NULL DEFAULT 'running',
	result     TEXT,
	started_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS agency_snapshots (
	run_id           TEXT NOT NULL REFERENCES runs(id),
	ori              TEXT NOT NULL,
	agency_name      TEXT NOT NULL,
	county           TEXT,
	state            TEXT,
	latitude         REAL,
	longitude        REAL,
	agency_type      TEXT,
	is_nibrs         INTEGER,
	nibrs_start_date TEXT,
	year             INTEGER
);

CREATE INDEX IF NOT EXISTS idx_runs_status ON runs(status);
CREATE INDEX IF NOT EXISTS idx_run_stages_run_id ON run_stages(run_id);
CREATE INDEX IF NOT EXISTS idx_agency_snapshots_run_id ON agency_snapshots(run_id);
CREATE INDEX IF NOT EXISTS idx_agency_snapshots_state ON agency_snapshots(run_id, state);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) CreateRun(ctx context.Context, source string) (*model.Run, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, source, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		id, source, string(model.RunStatusQueued), now, now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert run")
	}

	return &model.Run{
		ID:        id,
		Source:    source,
		Status:    model.RunStatusQueued,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (s *SQLiteStore) UpdateRunStatus(ctx context.Context, runID string, status model.RunStatus) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE runs SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().UTC(), runID,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: update run status %s", runID)
	}
	return checkRowsAffected(res, "run", runID)
}

func (s *SQLiteStore) CompleteRun(ctx context.Context, runID string, stats *model.CleanStats) error {
	statsJSON, err := json.Marshal(stats)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal stats")
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE runs SET stats = ?, status = ?, updated_at = ? WHERE id = ?`,
		string(statsJSON), string(model.RunStatusComplete), time.Now().UTC(), runID,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: complete run %s", runID)
	}
	return checkRowsAffected(res, "run", runID)
}

func (s *SQLiteStore) GetRun(ctx context.Context, runID string) (*model.Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, source, status, stats, created_at, updated_at FROM runs WHERE id = ?`,
		runID,
	)
	return scanRun(row)
}

func (s *SQLiteStore) ListRuns(ctx context.Context, filter RunFilter) ([]model.Run, error) {
	query := `SELECT id, source, status, stats, created_at, updated_at FROM runs WHERE 1=1`
	var args []any

	if filter.Status != "" {
		query += ` AND status = ?`
		args = append(args, string(filter.Status))
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list runs")
	}
	defer rows.Close()

	var runs []model.Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *r)
	}
	return runs, eris.Wrap(rows.Err(), "sqlite: list runs iterate")
}

func (s *SQLiteStore) CreateStage(ctx context.Context, runID, name string) (string, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO run_stages (id, run_id, name, status, started_at) VALUES (?, ?, ?, ?, ?)`,
		id, runID, name, string(model.StageStatusRunning), now,
	)
	if err != nil {
		return "", eris.Wrapf(err, "sqlite: insert stage for run %s", runID)
	}
	return id, nil
}

func (s *SQLiteStore) CompleteStage(ctx context.Context, stageID string, result *model.StageResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal stage result")
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE run_stages SET status = ?, result = ? WHERE id = ?`,
		string(result.Status), string(resultJSON), stageID,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: complete stage %s", stageID)
	}
	return checkRowsAffected(res, "stage", stageID)
}

func (s *SQLiteStore) SaveSnapshot(ctx context.Context, runID string, records []model.AgencyRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "sqlite: begin snapshot tx")
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO agency_snapshots
		 (run_id, ori, agency_name, county, state, latitude, longitude, agency_type, is_nibrs, nibrs_start_date, year)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return eris.Wrap(err, "sqlite: prepare snapshot insert")
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx,
			runID, r.ORI, r.AgencyName, r.County, r.State,
			nullFloat(r.Latitude), nullFloat(r.Longitude), r.AgencyType,
			nullBool(r.IsNIBRS), nullDate(r.NIBRSStart), nullInt(r.Year),
		); err != nil {
			return eris.Wrapf(err, "sqlite: insert snapshot row %s", r.ORI)
		}
	}

	return eris.Wrap(tx.Commit(), "sqlite: commit snapshot")
}

func (s *SQLiteStore) GetSnapshot(ctx context.Context, runID string) ([]model.AgencyRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT ori, agency_name, county, state, latitude, longitude, agency_type, is_nibrs, nibrs_start_date, year
		 FROM agency_snapshots WHERE run_id = ? ORDER BY rowid`,
		runID,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: get snapshot")
	}
	defer rows.Close()

	var records []model.AgencyRecord
	for rows.Next() {
		var r model.AgencyRecord
		var lat, lon sql.NullFloat64
		var isNIBRS sql.NullBool
		var startDate sql.NullString
		var year sql.NullInt64

		if err := rows.Scan(&r.ORI, &r.AgencyName, &r.County, &r.State,
			&lat, &lon, &r.AgencyType, &isNIBRS, &startDate, &year); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan snapshot row")
		}

		if lat.Valid {
			r.Latitude = &lat.Float64
		}
		if lon.Valid {
			r.Longitude = &lon.Float64
		}
		if isNIBRS.Valid {
			r.IsNIBRS = &isNIBRS.Bool
		}
		if startDate.Valid && startDate.String != "" {
			if t, err := time.Parse("2006-01-02", startDate.String); err == nil {
				r.NIBRSStart = &t
			}
		}
		if year.Valid {
			y := int(year.Int64)
			r.Year = &y
		}
		records = append(records, r)
	}
	return records, eris.Wrap(rows.Err(), "sqlite: snapshot iterate")
}

// helpers

func checkRowsAffected(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "rows affected")
	}
	if n == 0 {
		return eris.Errorf("%s not found: %s", entity, id)
	}
	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanRun(row scannable) (*model.Run, error) {
	var r model.Run
	var statsJSON sql.NullString

	err := row.Scan(&r.ID, &r.Source, &r.Status, &statsJSON, &r.CreatedAt, &r.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, eris.New("run not found")
	}
	if err != nil {
		return nil, eris.Wrap(err, "scan run")
	}

	if statsJSON.Valid && statsJSON.String != "" {
		var stats model.CleanStats
		if err := json.Unmarshal([]byte(statsJSON.String), &stats); err != nil {
			return nil, eris.Wrap(err, "unmarshal run stats")
		}
		r.Stats = &stats
	}
	return &r, nil
}

func nullFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullBool(v *bool) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullDate(v *time.Time) any {
	if v == nil {
		return nil
	}
	return v.Format("2006-01-02")
}
