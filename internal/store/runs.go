package store

import (
	"context"
	"fmt"
	"time"
)

// Run outcomes as persisted in the runs table.
const (
	OutcomeRunning   = "running"
	OutcomeCompleted = "completed"
	OutcomeStopped   = "stopped"
	OutcomeFailed    = "failed"
)

type Run struct {
	ID            string     `json:"id"`
	StartedAt     time.Time  `json:"started_at"`
	EndedAt       *time.Time `json:"ended_at"`
	Outcome       string     `json:"outcome"`
	FoundProfiles int        `json:"found_profiles"`
	KeptProfiles  int        `json:"kept_profiles"`
	Error         string     `json:"error,omitempty"`
}

// BeginRun records a freshly started run.
func (d *DB) BeginRun(ctx context.Context, id string, startedAt time.Time) error {
	_, err := d.Pool.ExecContext(ctx, `
INSERT INTO runs(id, started_at, outcome)
VALUES(?, ?, ?);`,
		id, startedAt.UTC().Format(time.RFC3339), OutcomeRunning)
	if err != nil {
		return fmt.Errorf("begin run: %w", err)
	}
	return nil
}

// FinishRun stamps a run's terminal state.
func (d *DB) FinishRun(ctx context.Context, id, outcome string, found, kept int, runErr string, endedAt time.Time) error {
	_, err := d.Pool.ExecContext(ctx, `
UPDATE runs
SET ended_at = ?, outcome = ?, found_profiles = ?, kept_profiles = ?, error = ?
WHERE id = ?;`,
		endedAt.UTC().Format(time.RFC3339), outcome, found, kept, runErr, id)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (d *DB) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := d.Pool.QueryContext(ctx, `
SELECT id, started_at, ended_at, outcome, found_profiles, kept_profiles, error
FROM runs
ORDER BY started_at DESC
LIMIT ?;`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var started string
		var ended *string
		if err := rows.Scan(&r.ID, &started, &ended, &r.Outcome, &r.FoundProfiles, &r.KeptProfiles, &r.Error); err != nil {
			return nil, err
		}
		r.StartedAt, _ = time.Parse(time.RFC3339, started)
		if ended != nil {
			if t, perr := time.Parse(time.RFC3339, *ended); perr == nil {
				r.EndedAt = &t
			}
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
