// Package scraper drives a real browser through people search and turns
// result pages into validated profile records. The rest of the engine only
// ever sees the Searcher surface.
package scraper

import (
	"context"
	"time"

	"leadscout-engine/internal/config"
	"leadscout-engine/internal/domain"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Searcher is the collaborator surface consumed by the job workflow.
type Searcher interface {
	Authenticate(ctx context.Context, creds Credentials) error
	Search(ctx context.Context, query string, maxPages int) ([]domain.Profile, error)
	Close() error
}

// Options carries everything the browser needs: pacing, the validity gate
// thresholds applied at the boundary, and browser behavior.
type Options struct {
	Headless  bool
	UserAgent string

	MaxProfilesPerSearch int
	MaxSearchesPerHour   int
	SearchDelay          time.Duration
	PageDelay            time.Duration

	MinFollowers    int
	MaxFollowers    int
	MinConfidence   float64
	MinCompleteness float64
}

// OptionsFromConfig maps the user config onto scraper options.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		Headless:             cfg.Browser.Headless,
		UserAgent:            cfg.Browser.UserAgent,
		MaxProfilesPerSearch: cfg.Search.MaxProfilesPerSearch,
		MaxSearchesPerHour:   cfg.Rate.MaxSearchesPerHour,
		SearchDelay:          time.Duration(cfg.Rate.SearchDelaySeconds) * time.Second,
		PageDelay:            time.Duration(cfg.Rate.ProfileDelaySeconds) * time.Second,
		MinFollowers:         cfg.Quality.MinFollowers,
		MaxFollowers:         cfg.Quality.MaxFollowers,
		MinConfidence:        cfg.Quality.MinConfidence,
		MinCompleteness:      cfg.Quality.MinCompleteness,
	}
}
