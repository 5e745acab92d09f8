package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadscout-engine/internal/domain"
)

func intp(n int) *int { return &n }

func sample() []domain.Profile {
	return []domain.Profile{
		{Company: "Zapier", Location: "Austin", Confidence: 0.8, Completeness: 0.6, FollowerCount: intp(1500), KeywordMatched: "RPA"},
		{Company: "Zapier", Location: "Berlin", Confidence: 0.9, Completeness: 0.8, FollowerCount: intp(2500), KeywordMatched: "RPA"},
		{Company: "", Location: "Austin", Confidence: 0.7, Completeness: 0.7, KeywordMatched: "AI agent"},
		{Company: "n8n", Location: "", Confidence: 0.6, Completeness: 0.5, FollowerCount: intp(10000), KeywordMatched: "AI agent"},
	}
}

func TestSummarizeEmptyIsZeroed(t *testing.T) {
	s := Summarize(nil)

	assert.Zero(t, s.TotalProfiles)
	assert.Zero(t, s.UniqueCompanies)
	assert.Zero(t, s.AvgConfidence)
	assert.Zero(t, s.AvgFollowers)
	assert.Empty(t, s.Keywords)
}

func TestSummarizeCounts(t *testing.T) {
	s := Summarize(sample())

	assert.Equal(t, 4, s.TotalProfiles)
	assert.Equal(t, 2, s.UniqueCompanies) // empty company ignored
	assert.Equal(t, 2, s.UniqueLocations) // empty location ignored
	assert.InDelta(t, 0.75, s.AvgConfidence, 1e-9)
	assert.InDelta(t, 0.65, s.AvgCompleteness, 1e-9)
	// follower mean only over the three profiles with a count
	assert.InDelta(t, (1500+2500+10000)/3.0, s.AvgFollowers, 1e-9)
	assert.Equal(t, map[string]int{"RPA": 2, "AI agent": 2}, s.Keywords)
}

func TestSummarizeFollowerBuckets(t *testing.T) {
	profiles := []domain.Profile{
		{FollowerCount: intp(999)},   // below all buckets
		{FollowerCount: intp(1000)},  // 1k-2k lower edge
		{FollowerCount: intp(1999)},  // 1k-2k upper edge
		{FollowerCount: intp(2000)},  // 2k-5k lower edge
		{FollowerCount: intp(4999)},  // 2k-5k upper edge
		{FollowerCount: intp(5000)},  // 5k-10k lower edge
		{FollowerCount: intp(10000)}, // closed upper bound
		{FollowerCount: intp(10001)}, // above all buckets
		{},                           // no count at all
	}

	s := Summarize(profiles)

	assert.Equal(t, 2, s.FollowerRanges.From1kTo2k)
	assert.Equal(t, 2, s.FollowerRanges.From2kTo5k)
	assert.Equal(t, 2, s.FollowerRanges.From5kTo10k)
}

func TestRenderLayout(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	out := Render(Summarize(sample()), now)

	require.True(t, strings.HasPrefix(out, "LinkedIn Scraping Summary Report\n"))
	assert.Contains(t, out, "Generated: 2026-03-14 09:30:00")
	assert.Contains(t, out, "Total Profiles Found: 4")
	assert.Contains(t, out, "Average Confidence Score: 0.75")
	assert.Contains(t, out, "Average Follower Count: 4667")
	assert.Contains(t, out, "  1k-2k: 1 profiles")
	assert.Contains(t, out, "  AI agent: 2 profiles")

	// keyword ties break alphabetically
	aiIdx := strings.Index(out, "  AI agent:")
	rpaIdx := strings.Index(out, "  RPA:")
	assert.Less(t, aiIdx, rpaIdx)
}

func TestRenderEmptySummary(t *testing.T) {
	out := Render(Summarize(nil), time.Now())
	assert.Contains(t, out, "Total Profiles Found: 0")
	assert.Contains(t, out, "Average Follower Count: 0")
	assert.True(t, strings.HasSuffix(out, "Keyword Distribution:\n"))
}
