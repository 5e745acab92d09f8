// Package httpapi is the control panel surface: start/stop/status for the
// scraping job, artifact downloads, config editing, and the SSE event feed.
package httpapi

import (
	"sync/atomic"

	"go.uber.org/zap"

	"leadscout-engine/internal/config"
	"leadscout-engine/internal/events"
	"leadscout-engine/internal/job"
	"leadscout-engine/internal/scraper"
	"leadscout-engine/internal/store"
)

// JobController is what the handlers need from the job package. Narrowed to
// an interface so handler tests can run against a fake.
type JobController interface {
	Start(creds scraper.Credentials) error
	Stop() error
	Snapshot() job.Status
}

type Deps struct {
	Jobs JobController

	DB  *store.DB
	Hub *events.Hub

	// CfgVal stores config.Config; handlers read the current snapshot and
	// Put swaps in a validated replacement.
	CfgVal *atomic.Value

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	Log *zap.Logger
}

func (d Deps) config() config.Config {
	return d.CfgVal.Load().(config.Config)
}
