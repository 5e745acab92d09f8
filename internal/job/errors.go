package job

import "github.com/rotisserie/eris"

// Control-surface errors returned synchronously from Start/Stop. Workflow
// failures are never returned to callers; they land in Status.Error.
var (
	ErrAlreadyRunning = eris.New("job already running")
	ErrNoJobRunning   = eris.New("no job running")
	ErrInvalidInput   = eris.New("email and password required")
)

// errStopped marks a worker exit caused by a stop request rather than a
// failure; it never reaches Status.Error.
var errStopped = eris.New("stopped by user")
