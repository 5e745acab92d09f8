package job

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadscout-engine/internal/config"
	"leadscout-engine/internal/domain"
	"leadscout-engine/internal/scraper"
)

type fakeSearcher struct {
	mu         sync.Mutex
	authErr    error
	results    map[string][]domain.Profile
	searchGate chan struct{} // when set, Search blocks here until ctx is done
	closed     bool
	searches   []string
}

func (f *fakeSearcher) Authenticate(ctx context.Context, creds scraper.Credentials) error {
	return f.authErr
}

func (f *fakeSearcher) Search(ctx context.Context, query string, maxPages int) ([]domain.Profile, error) {
	f.mu.Lock()
	f.searches = append(f.searches, query)
	gate := f.searchGate
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.results[query], nil
}

func (f *fakeSearcher) Close() error {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
	return nil
}

func (f *fakeSearcher) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func testConfig(t *testing.T, keywords ...string) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.App.DataDir = t.TempDir()
	cfg.Search.Keywords = keywords
	cfg.Search.Companies = nil
	cfg.Quality.MinConfidence = 0.5
	cfg.Quality.MinCompleteness = 0.4
	return cfg
}

func profile(url string, confidence float64) domain.Profile {
	return domain.Profile{
		Name:         "Test Person",
		Headline:     "Automation engineer",
		ProfileURL:   url,
		Company:      "Zapier",
		Confidence:   confidence,
		Completeness: 0.5,
	}
}

func newTestController(cfg config.Config, fake *fakeSearcher) *Controller {
	return NewController(Options{
		Config:      func() config.Config { return cfg },
		NewSearcher: func(config.Config) (scraper.Searcher, error) { return fake, nil },
	})
}

func waitForDone(t *testing.T, c *Controller) Status {
	t.Helper()
	require.Eventually(t, func() bool {
		return !c.Snapshot().Running
	}, 5*time.Second, 10*time.Millisecond)
	return c.Snapshot()
}

func TestStartRejectsEmptyCredentials(t *testing.T) {
	c := newTestController(testConfig(t, "RPA"), &fakeSearcher{})

	assert.ErrorIs(t, c.Start(scraper.Credentials{}), ErrInvalidInput)
	assert.ErrorIs(t, c.Start(scraper.Credentials{Email: "a@b.c", Password: "   "}), ErrInvalidInput)
	assert.False(t, c.Snapshot().Running)
}

func TestStopWithoutRun(t *testing.T) {
	c := newTestController(testConfig(t, "RPA"), &fakeSearcher{})
	assert.ErrorIs(t, c.Stop(), ErrNoJobRunning)
}

func TestSecondStartRejectedWhileRunning(t *testing.T) {
	gate := make(chan struct{})
	fake := &fakeSearcher{searchGate: gate}
	c := newTestController(testConfig(t, "RPA"), fake)

	creds := scraper.Credentials{Email: "a@b.c", Password: "pw"}
	require.NoError(t, c.Start(creds))

	require.Eventually(t, func() bool {
		return c.Snapshot().Running
	}, time.Second, 5*time.Millisecond)

	err := c.Start(creds)
	assert.ErrorIs(t, err, ErrAlreadyRunning)
	assert.True(t, c.Snapshot().Running)

	require.NoError(t, c.Stop())
	waitForDone(t, c)
}

func TestRunCompletesAndPersistsArtifacts(t *testing.T) {
	cfg := testConfig(t, "RPA", "AI agent")
	fake := &fakeSearcher{results: map[string][]domain.Profile{
		"RPA": {
			profile("https://www.linkedin.com/in/ada", 0.9),
			profile("https://www.linkedin.com/in/grace", 0.8),
		},
		"AI agent": {
			// duplicate of an RPA hit; must be deduped away
			profile("https://www.linkedin.com/in/ada", 0.9),
			profile("https://www.linkedin.com/in/alan", 0.7),
		},
	}}
	c := newTestController(cfg, fake)

	require.NoError(t, c.Start(scraper.Credentials{Email: "a@b.c", Password: "pw"}))
	st := waitForDone(t, c)

	assert.Nil(t, st.Error)
	assert.Equal(t, float64(100), st.Progress)
	assert.Equal(t, 4, st.FoundProfiles)
	assert.Equal(t, 3, st.TotalProfiles)
	assert.Equal(t, "Successfully saved 3 profiles", st.Message)
	require.NotNil(t, st.StartTime)
	require.NotNil(t, st.EndTime)
	assert.True(t, fake.isClosed())

	csv, err := os.ReadFile(filepath.Join(cfg.App.DataDir, cfg.Output.CSV))
	require.NoError(t, err)
	assert.Contains(t, string(csv), "linkedin.com/in/ada")
	assert.Equal(t, 4, strings.Count(string(csv), "\n")) // header + 3 rows

	summary, err := os.ReadFile(filepath.Join(cfg.App.DataDir, cfg.Output.Summary))
	require.NoError(t, err)
	assert.Contains(t, string(summary), "Total Profiles Found: 3")
}

func TestRunFailsWhenNothingFound(t *testing.T) {
	fake := &fakeSearcher{}
	c := newTestController(testConfig(t, "RPA"), fake)

	require.NoError(t, c.Start(scraper.Credentials{Email: "a@b.c", Password: "pw"}))
	st := waitForDone(t, c)

	require.NotNil(t, st.Error)
	assert.Contains(t, *st.Error, "no profiles found")
	assert.True(t, fake.isClosed())
}

func TestAuthFailureEndsRunWithError(t *testing.T) {
	fake := &fakeSearcher{authErr: assert.AnError}
	c := newTestController(testConfig(t, "RPA"), fake)

	require.NoError(t, c.Start(scraper.Credentials{Email: "a@b.c", Password: "pw"}))
	st := waitForDone(t, c)

	require.NotNil(t, st.Error)
	assert.Contains(t, *st.Error, "login failed")
	require.NotNil(t, st.EndTime)
	assert.True(t, fake.isClosed())
	assert.Empty(t, fake.searches)
}

func TestMessageNamesSearchInFlight(t *testing.T) {
	gate := make(chan struct{})
	fake := &fakeSearcher{searchGate: gate}
	c := newTestController(testConfig(t, "RPA"), fake)

	require.NoError(t, c.Start(scraper.Credentials{Email: "a@b.c", Password: "pw"}))

	// While the search is still blocked, pollers must already see its label.
	require.Eventually(t, func() bool {
		return c.Snapshot().Message == "Searching for: RPA"
	}, time.Second, 5*time.Millisecond)

	close(gate)
	waitForDone(t, c)
}

func TestStopDuringSearchEndsCleanly(t *testing.T) {
	gate := make(chan struct{})
	fake := &fakeSearcher{searchGate: gate}
	c := newTestController(testConfig(t, "RPA", "n8n"), fake)

	require.NoError(t, c.Start(scraper.Credentials{Email: "a@b.c", Password: "pw"}))
	require.Eventually(t, func() bool {
		fake.mu.Lock()
		defer fake.mu.Unlock()
		return len(fake.searches) > 0
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, c.Stop())
	st := waitForDone(t, c)

	assert.Nil(t, st.Error)
	assert.Equal(t, "Scraping stopped", st.Message)
	require.NotNil(t, st.EndTime)
	assert.True(t, fake.isClosed())

	// restartable after a stop
	require.NoError(t, c.Start(scraper.Credentials{Email: "a@b.c", Password: "pw"}))
	require.NoError(t, c.Stop())
	waitForDone(t, c)
}
