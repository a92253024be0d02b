// Package store persists run history so past scans can be reviewed.
package store

import (
	"context"

	"github.com/sells-group/cfo-monitor/internal/model"
)

// Store records monitor runs and their outcomes.
type Store interface {
	// Migrate applies the schema. Safe to call on every start.
	Migrate(ctx context.Context) error

	// CreateRun inserts a new run in the running state.
	CreateRun(ctx context.Context) (*model.Run, error)

	// CompleteRun marks the run complete and stores its result.
	CompleteRun(ctx context.Context, runID string, result *model.RunResult) error

	// GetRun fetches a single run by ID.
	GetRun(ctx context.Context, runID string) (*model.Run, error)

	// ListRuns returns the most recent runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]model.Run, error)

	Close() error
}
