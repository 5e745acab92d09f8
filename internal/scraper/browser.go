package scraper

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"leadscout-engine/internal/domain"
)

const (
	loginURL     = "https://www.linkedin.com/login"
	defaultAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0 Safari/537.36"

	loginTimeout  = 45 * time.Second
	pageTimeout   = 30 * time.Second
	resultsMarker = ".search-results-container"
)

// Browser is the chromedp-backed Searcher.
type Browser struct {
	opts Options
	log  *zap.Logger
	pace *pacer

	ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc

	searchesDone int
	windowStart  time.Time
}

// NewBrowser launches a Chromium instance ready for Authenticate.
func NewBrowser(opts Options, log *zap.Logger) (*Browser, error) {
	ua := opts.UserAgent
	if ua == "" {
		ua = defaultAgent
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(ua),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(p))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	bctx, cancel := chromedp.NewContext(allocCtx)

	if err := chromedp.Run(bctx, chromedp.Navigate("about:blank")); err != nil {
		cancel()
		allocCancel()
		return nil, eris.Wrap(err, "launch browser")
	}

	return &Browser{
		opts:        opts,
		log:         log,
		pace:        newPacer(opts),
		ctx:         bctx,
		cancel:      cancel,
		allocCancel: allocCancel,
		windowStart: time.Now(),
	}, nil
}

// Authenticate fills the login form and waits for the signed-in shell.
func (b *Browser) Authenticate(ctx context.Context, creds Credentials) error {
	b.log.Info("logging in", zap.String("email", creds.Email))

	runCtx, cancelRun := mergeDeadline(b.ctx, ctx, loginTimeout)
	defer cancelRun()

	err := chromedp.Run(runCtx,
		chromedp.Navigate(loginURL),
		chromedp.WaitVisible(`#username`, chromedp.ByQuery),
		chromedp.SendKeys(`#username`, creds.Email, chromedp.ByQuery),
		chromedp.SendKeys(`#password`, creds.Password, chromedp.ByQuery),
		chromedp.Click(`button[type="submit"]`, chromedp.ByQuery),
		chromedp.WaitVisible(`.global-nav`, chromedp.ByQuery),
	)
	if err != nil {
		return eris.Wrap(err, "login failed")
	}

	b.log.Info("login ok")
	return nil
}

// Search walks up to maxPages result pages for query, parsing and gating
// each page. A page that never shows results ends the walk early rather
// than failing the search.
func (b *Browser) Search(ctx context.Context, query string, maxPages int) ([]domain.Profile, error) {
	if maxPages < 1 {
		maxPages = 1
	}

	var all []domain.Profile
	for page := 1; page <= maxPages; page++ {
		if !b.allowSearch() {
			b.log.Warn("hourly search limit reached", zap.String("query", query))
			break
		}
		if err := b.pace.WaitSearch(ctx); err != nil {
			return all, err
		}

		html, err := b.fetchResultsPage(ctx, query, page)
		if err != nil {
			if ctx.Err() != nil {
				return all, ctx.Err()
			}
			b.log.Warn("no results page",
				zap.String("query", query), zap.Int("page", page), zap.Error(err))
			break
		}

		profiles, err := ParseSearchResults(strings.NewReader(html), query, b.opts, time.Now())
		if err != nil {
			return all, err
		}

		b.log.Info("page scraped",
			zap.String("query", query), zap.Int("page", page), zap.Int("profiles", len(profiles)))
		all = append(all, profiles...)

		if page < maxPages {
			if err := b.pace.WaitPage(ctx); err != nil {
				return all, err
			}
		}
	}

	return all, nil
}

func (b *Browser) fetchResultsPage(ctx context.Context, query string, page int) (string, error) {
	runCtx, cancelRun := mergeDeadline(b.ctx, ctx, pageTimeout)
	defer cancelRun()

	var html string
	err := chromedp.Run(runCtx,
		chromedp.Navigate(SearchURL(query, page)),
		chromedp.WaitReady(resultsMarker, chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", eris.Wrapf(err, "fetch results page %d", page)
	}

	b.searchesDone++
	return html, nil
}

// allowSearch enforces the per-hour search budget with a rolling window.
func (b *Browser) allowSearch() bool {
	if b.opts.MaxSearchesPerHour <= 0 {
		return true
	}
	if time.Since(b.windowStart) >= time.Hour {
		b.windowStart = time.Now()
		b.searchesDone = 0
	}
	return b.searchesDone < b.opts.MaxSearchesPerHour
}

// Close tears the browser down. Safe to call on every exit path.
func (b *Browser) Close() error {
	b.cancel()
	b.allocCancel()
	b.log.Info("browser closed")
	return nil
}

// mergeDeadline bounds a chromedp run by both the caller's context and a
// hard timeout, while still executing inside the browser context.
func mergeDeadline(browserCtx, callCtx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	runCtx, cancelTimeout := context.WithTimeout(browserCtx, timeout)
	stop := context.AfterFunc(callCtx, func() { cancelTimeout() })
	return runCtx, func() {
		stop()
		cancelTimeout()
	}
}
