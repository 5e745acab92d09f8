package job

import "time"

// Status is the poller-facing view of the current (or last) run. Field
// names match what the control panel renders.
type Status struct {
	Running       bool       `json:"running"`
	Progress      float64    `json:"progress"`
	Message       string     `json:"message"`
	TotalProfiles int        `json:"total_profiles"`
	FoundProfiles int        `json:"found_profiles"`
	StartTime     *time.Time `json:"start_time"`
	EndTime       *time.Time `json:"end_time"`
	Error         *string    `json:"error"`
}

// clone returns a copy safe to hand outside the lock; the timestamp
// pointers are duplicated so callers can't alias controller state.
func (s Status) clone() Status {
	out := s
	if s.StartTime != nil {
		t := *s.StartTime
		out.StartTime = &t
	}
	if s.EndTime != nil {
		t := *s.EndTime
		out.EndTime = &t
	}
	if s.Error != nil {
		e := *s.Error
		out.Error = &e
	}
	return out
}
