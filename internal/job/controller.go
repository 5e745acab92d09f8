// Package job owns the single-run-at-a-time scraping workflow and the
// status object pollers read while it executes.
package job

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"leadscout-engine/internal/config"
	"leadscout-engine/internal/events"
	"leadscout-engine/internal/scraper"
	"leadscout-engine/internal/store"
)

// Factory builds the browser collaborator for one run. Injected so tests
// can substitute a fake without a Chromium install.
type Factory func(cfg config.Config) (scraper.Searcher, error)

type Options struct {
	Config      func() config.Config
	NewSearcher Factory
	Store       *store.DB   // optional run history
	Hub         *events.Hub // optional SSE fan-out
	Log         *zap.Logger
}

// Controller serializes runs: at most one worker goroutine is alive, and
// every status field is written under one mutex so Snapshot always sees a
// consistent view.
type Controller struct {
	cfg         func() config.Config
	newSearcher Factory
	db          *store.DB
	hub         *events.Hub
	log         *zap.Logger

	mu     sync.Mutex
	status Status
	cancel context.CancelFunc
	runID  string
}

func NewController(opts Options) *Controller {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		cfg:         opts.Config,
		newSearcher: opts.NewSearcher,
		db:          opts.Store,
		hub:         opts.Hub,
		log:         log,
	}
}

// Start validates credentials, claims the single run slot, and launches the
// workflow in the background. It returns before any scraping happens.
func (c *Controller) Start(creds scraper.Credentials) error {
	if strings.TrimSpace(creds.Email) == "" || strings.TrimSpace(creds.Password) == "" {
		return ErrInvalidInput
	}

	c.mu.Lock()
	if c.status.Running {
		c.mu.Unlock()
		return ErrAlreadyRunning
	}

	now := time.Now()
	runID := uuid.NewString()
	ctx, cancel := context.WithCancel(context.Background())

	c.runID = runID
	c.cancel = cancel
	c.status = Status{
		Running:   true,
		Message:   "Initializing scraper...",
		StartTime: &now,
	}
	c.mu.Unlock()

	cfg := c.cfg()

	if c.db != nil {
		if err := c.db.BeginRun(ctx, runID, now); err != nil {
			c.log.Warn("record run start", zap.Error(err))
		}
	}
	c.publish(events.JobStarted(runID))
	c.log.Info("job started", zap.String("run_id", runID))

	g := new(errgroup.Group)
	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = eris.Errorf("workflow panic: %v", r)
			}
		}()
		return c.run(ctx, cfg, creds, runID)
	})
	go func() {
		c.finalize(runID, g.Wait())
	}()

	return nil
}

// Stop requests cooperative cancellation. The worker observes it at the
// next loop boundary and performs the actual transition out of Running.
func (c *Controller) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.status.Running {
		return ErrNoJobRunning
	}

	c.status.Message = "Stopping scraper..."
	if c.cancel != nil {
		c.cancel()
	}
	c.log.Info("stop requested", zap.String("run_id", c.runID))
	return nil
}

// Snapshot returns a consistent copy of the current status. Safe to call
// from any goroutine at any time.
func (c *Controller) Snapshot() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status.clone()
}

// finalize is the single place a run leaves the Running state, covering
// success, stop, failure, and panic alike.
func (c *Controller) finalize(runID string, err error) {
	now := time.Now()

	c.mu.Lock()
	outcome := store.OutcomeCompleted
	switch {
	case err == nil:
	case eris.Is(err, errStopped):
		outcome = store.OutcomeStopped
		c.status.Message = "Scraping stopped"
	default:
		outcome = store.OutcomeFailed
		msg := err.Error()
		c.status.Error = &msg
	}
	c.status.Running = false
	c.status.EndTime = &now
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	found := c.status.FoundProfiles
	kept := c.status.TotalProfiles
	errText := ""
	if c.status.Error != nil {
		errText = *c.status.Error
	}
	c.mu.Unlock()

	if c.db != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if ferr := c.db.FinishRun(ctx, runID, outcome, found, kept, errText, now); ferr != nil {
			c.log.Warn("record run end", zap.Error(ferr))
		}
		cancel()
	}

	c.publish(events.JobFinished(runID, outcome, kept))
	c.log.Info("job finished",
		zap.String("run_id", runID),
		zap.String("outcome", outcome),
		zap.Int("found", found),
		zap.Int("kept", kept))
}

// update applies fn to the status under the lock.
func (c *Controller) update(fn func(s *Status)) {
	c.mu.Lock()
	fn(&c.status)
	c.mu.Unlock()
}

func (c *Controller) publish(evt string) {
	if c.hub != nil {
		c.hub.Publish(evt)
	}
}
