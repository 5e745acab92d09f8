package scraper

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// pacer spreads searches and page loads out so the engine stays under the
// site's tolerance. Zero delays disable pacing (used by tests).
type pacer struct {
	search *rate.Limiter
	page   *rate.Limiter
}

func newPacer(opts Options) *pacer {
	mk := func(d time.Duration) *rate.Limiter {
		if d <= 0 {
			return rate.NewLimiter(rate.Inf, 1)
		}
		return rate.NewLimiter(rate.Every(d), 1)
	}
	return &pacer{
		search: mk(opts.SearchDelay),
		page:   mk(opts.PageDelay),
	}
}

func (p *pacer) WaitSearch(ctx context.Context) error { return p.search.Wait(ctx) }
func (p *pacer) WaitPage(ctx context.Context) error   { return p.page.Wait(ctx) }
