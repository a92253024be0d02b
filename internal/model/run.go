package model

import "time"

// RunStatus represents the state of a recorded scan run.
type RunStatus string

const (
	RunStatusRunning  RunStatus = "running"
	RunStatusComplete RunStatus = "complete"
)

// RunResult summarizes a completed scan for the run history store.
type RunResult struct {
	Stats      RunStats  `json:"stats"`
	TearSheets int       `json:"tear_sheets"`
	EmailSent  bool      `json:"email_sent"`
	Findings   []Finding `json:"findings,omitempty"`
}

// Run is one recorded scan.
type Run struct {
	ID        string     `json:"id"`
	Status    RunStatus  `json:"status"`
	Result    *RunResult `json:"result,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
