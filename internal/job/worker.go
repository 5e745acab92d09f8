package job

import (
	"context"
	"fmt"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"leadscout-engine/internal/config"
	"leadscout-engine/internal/domain"
	"leadscout-engine/internal/events"
	"leadscout-engine/internal/export"
	"leadscout-engine/internal/pipeline"
	"leadscout-engine/internal/report"
	"leadscout-engine/internal/scraper"
)

// run executes one full scraping workflow: authenticate, walk every keyword
// and company query, then dedupe/filter/rank and persist the artifacts. Any
// returned error other than errStopped marks the run failed.
func (c *Controller) run(ctx context.Context, cfg config.Config, creds scraper.Credentials, runID string) error {
	searcher, err := c.newSearcher(cfg)
	if err != nil {
		return eris.Wrap(err, "start browser")
	}
	defer func() {
		if cerr := searcher.Close(); cerr != nil {
			c.log.Warn("close browser", zap.Error(cerr))
		}
	}()

	c.progress(runID, 5, "Logging in...")
	if err := searcher.Authenticate(ctx, creds); err != nil {
		if ctx.Err() != nil {
			return errStopped
		}
		return eris.Wrap(err, "login failed")
	}

	c.progress(runID, 10, "Starting comprehensive search...")

	queries := buildQueries(cfg)
	var found []domain.Profile

	for i, q := range queries {
		if ctx.Err() != nil {
			return errStopped
		}

		// Message leads the search so pollers see what is in flight.
		msg := fmt.Sprintf("Searching for: %s", q.label)
		pct := 10 + float64(i)/float64(len(queries))*70
		c.update(func(s *Status) { s.Message = msg })
		c.publish(events.JobProgress(runID, pct, len(found), msg))

		profiles, err := searcher.Search(ctx, q.query, cfg.Search.MaxPagesPerSearch)
		if err != nil {
			if ctx.Err() != nil {
				return errStopped
			}
			// One bad query shouldn't sink the whole run.
			c.log.Warn("search failed",
				zap.String("run_id", runID),
				zap.String("query", q.query),
				zap.Error(err))
		} else {
			found = append(found, profiles...)
		}

		pct = 10 + float64(i+1)/float64(len(queries))*70
		c.update(func(s *Status) {
			s.Progress = pct
			s.FoundProfiles = len(found)
		})
		c.publish(events.JobProgress(runID, pct, len(found), msg))
		c.log.Info("search done",
			zap.String("run_id", runID),
			zap.String("query", q.query),
			zap.Int("profiles", len(profiles)),
			zap.Int("total_found", len(found)))
	}

	if ctx.Err() != nil {
		return errStopped
	}

	c.progress(runID, 80, "Processing and saving profiles...")

	if len(found) == 0 {
		return eris.New("no profiles found during search")
	}

	existing, err := export.Load(cfg.CSVPath())
	if err != nil {
		c.log.Warn("load previous csv", zap.Error(err))
	}

	unique, removed := pipeline.Dedupe(found, existing)
	kept, filtered := pipeline.FilterByQuality(unique, cfg.Quality.MinConfidence, cfg.Quality.MinCompleteness)
	ranked := pipeline.Rank(kept)

	c.log.Info("pipeline",
		zap.String("run_id", runID),
		zap.Int("found", len(found)),
		zap.Int("duplicates_removed", removed),
		zap.Int("filtered_out", filtered),
		zap.Int("kept", len(ranked)))

	if err := export.Save(cfg.CSVPath(), ranked); err != nil {
		return eris.Wrap(err, "save csv")
	}
	warns, verr := export.ValidateStructure(cfg.CSVPath())
	if verr != nil {
		return eris.Wrap(verr, "verify csv")
	}
	for _, warn := range warns {
		c.log.Warn("csv quality", zap.String("warning", warn), zap.String("run_id", runID))
	}

	now := time.Now()
	summary := report.Summarize(ranked)
	if err := report.Export(cfg.SummaryPath(), summary, now); err != nil {
		return eris.Wrap(err, "write summary")
	}

	c.update(func(s *Status) {
		s.Progress = 100
		s.TotalProfiles = len(ranked)
		s.Message = fmt.Sprintf("Successfully saved %d profiles", len(ranked))
	})
	c.publish(events.JobProgress(runID, 100, len(ranked),
		fmt.Sprintf("Successfully saved %d profiles", len(ranked))))

	return nil
}

type searchQuery struct {
	query string
	label string
}

// buildQueries flattens the configured keyword and company lists into the
// ordered query plan: keywords first, then company-scoped searches.
func buildQueries(cfg config.Config) []searchQuery {
	out := make([]searchQuery, 0, len(cfg.Search.Keywords)+len(cfg.Search.Companies))
	for _, kw := range cfg.Search.Keywords {
		out = append(out, searchQuery{query: kw, label: kw})
	}
	for _, co := range cfg.Search.Companies {
		out = append(out, searchQuery{query: scraper.CompanyQuery(co), label: co})
	}
	return out
}

func (c *Controller) progress(runID string, pct float64, msg string) {
	var found int
	c.update(func(s *Status) {
		s.Progress = pct
		s.Message = msg
		found = s.FoundProfiles
	})
	c.publish(events.JobProgress(runID, pct, found, msg))
}
