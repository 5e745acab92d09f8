package events

import (
	"encoding/json"
	"time"
)

// Event types published over the SSE stream.
const (
	TypePing        = "ping"
	TypeJobStarted  = "job_started"
	TypeJobProgress = "job_progress"
	TypeJobFinished = "job_finished"
)

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

func MakeEvent(reqID, typ string, v int, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		Type:      typ,
		Version:   v,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}

// JobStarted announces a new run to connected panels.
func JobStarted(runID string) string {
	return MakeEvent("", TypeJobStarted, 1, map[string]any{"run_id": runID})
}

// JobProgress carries the rolling progress the panel renders between polls.
func JobProgress(runID string, progress float64, found int, message string) string {
	return MakeEvent("", TypeJobProgress, 1, map[string]any{
		"run_id":   runID,
		"progress": progress,
		"found":    found,
		"message":  message,
	})
}

// JobFinished reports the terminal outcome of a run.
func JobFinished(runID, outcome string, total int) string {
	return MakeEvent("", TypeJobFinished, 1, map[string]any{
		"run_id":  runID,
		"outcome": outcome,
		"total":   total,
	})
}
