package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"leadscout-engine/internal/domain"
)

func intp(n int) *int { return &n }

func fullProfile() domain.Profile {
	return domain.Profile{
		Name:          "Ada Lovelace",
		Headline:      "Workflow Automation Lead",
		Location:      "London",
		ProfileURL:    "https://www.linkedin.com/in/ada",
		Company:       "Analytical Engines",
		FollowerCount: intp(4200),
	}
}

func TestCompletenessEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Completeness(domain.Profile{}))
}

func TestCompletenessAllPresent(t *testing.T) {
	// 4 required at 1.0 + 2 optional at 0.5, over 6 fields.
	assert.InDelta(t, 5.0/6.0, Completeness(fullProfile()), 1e-9)
}

func TestCompletenessWhitespaceCountsAsAbsent(t *testing.T) {
	p := fullProfile()
	p.Headline = "   "
	p.Company = "\t"
	assert.InDelta(t, 3.5/6.0, Completeness(p), 1e-9)
}

func TestCompletenessZeroFollowersCountsAsAbsent(t *testing.T) {
	p := fullProfile()
	p.FollowerCount = intp(0)
	assert.InDelta(t, 4.5/6.0, Completeness(p), 1e-9)
}

func TestCompletenessBounds(t *testing.T) {
	cases := []domain.Profile{
		{},
		{Name: "x"},
		{Name: "x", FollowerCount: intp(100)},
		fullProfile(),
	}
	for _, p := range cases {
		c := Completeness(p)
		assert.GreaterOrEqual(t, c, 0.0)
		assert.LessOrEqual(t, c, 1.0)
	}
}

func TestConfidenceAllBonuses(t *testing.T) {
	p := fullProfile()
	p.Headline = "workflow automation lead"

	// 0.5 + (5/6)*0.3 + 0.1 + 0.1
	got := Confidence(p, "Workflow Automation")
	assert.InDelta(t, 0.5+(5.0/6.0)*0.3+0.2, got, 1e-9)
	assert.LessOrEqual(t, got, 1.0)
}

func TestConfidenceKeywordCaseInsensitive(t *testing.T) {
	p := domain.Profile{Headline: "Senior RPA Engineer"}
	withKw := Confidence(p, "rpa")
	without := Confidence(p, "blockchain")
	assert.InDelta(t, 0.1, withKw-without, 1e-9)
}

func TestConfidenceBaseOnly(t *testing.T) {
	assert.InDelta(t, 0.5, Confidence(domain.Profile{}, ""), 1e-9)
}

func TestConfidenceNeverExceedsOne(t *testing.T) {
	// Even a maximally scored profile stays within the cap.
	p := fullProfile()
	p.Headline = "workflow automation"
	assert.LessOrEqual(t, Confidence(p, "workflow automation"), 1.0)
}
