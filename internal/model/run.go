package model

import "time"

// RunStatus represents the current state of a cleaning run.
type RunStatus string

const (
	RunStatusQueued   RunStatus = "queued"
	RunStatusCleaning RunStatus = "cleaning"
	RunStatusComplete RunStatus = "complete"
	RunStatusFailed   RunStatus = "failed"
)

// Run represents a single cleaning run over one raw input file.
type Run struct {
	ID        string      `json:"id"`
	Source    string      `json:"source"`
	Status    RunStatus   `json:"status"`
	Stats     *CleanStats `json:"stats,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// StageStatus represents the current state of a pipeline stage.
type StageStatus string

const (
	StageStatusRunning  StageStatus = "running"
	StageStatusComplete StageStatus = "complete"
	StageStatusFailed   StageStatus = "failed"
)

// StageResult holds the outcome of one pipeline stage.
type StageResult struct {
	Name     string         `json:"name"`
	Status   StageStatus    `json:"status"`
	Duration int64          `json:"duration_ms"`
	Error    string         `json:"error,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// CleanStats summarizes what the pipeline did to the dataset.
type CleanStats struct {
	RowsIn             int           `json:"rows_in"`
	RowsOut            int           `json:"rows_out"`
	ExactDuplicates    int           `json:"exact_duplicates"`
	KeyDuplicates      int           `json:"key_duplicates"`
	NameCollisions     int           `json:"name_collisions"`
	ImputedPeer        int           `json:"imputed_peer"`
	ImputedCounty      int           `json:"imputed_county"`
	ImputedState       int           `json:"imputed_state"`
	MissingCoordinates int           `json:"missing_coordinates"`
	Reclassified       int           `json:"reclassified"`
	FlagRepairs        int           `json:"flag_repairs"`
	ConfirmedNoDate    int           `json:"confirmed_no_date"`
	Stages             []StageResult `json:"stages,omitempty"`
}
