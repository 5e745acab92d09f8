// Package score holds the pure scoring functions for discovered profiles.
// Both functions are total: missing fields simply count as absent.
package score

import (
	"strings"

	"leadscout-engine/internal/domain"
)

// Field weights: four required attributes at full weight, two optional at
// half weight, normalized over all six.
const (
	requiredWeight = 1.0
	optionalWeight = 0.5
	totalFields    = 6.0
)

// Completeness returns the fraction of expected profile attributes that are
// present and non-empty, in [0,1].
func Completeness(p domain.Profile) float64 {
	var s float64

	for _, v := range []string{p.Name, p.Headline, p.Location, p.ProfileURL} {
		if strings.TrimSpace(v) != "" {
			s += requiredWeight
		}
	}

	if strings.TrimSpace(p.Company) != "" {
		s += optionalWeight
	}
	if p.HasFollowers() {
		s += optionalWeight
	}

	return s / totalFields
}

// Confidence estimates match quality for a profile found under keyword.
// Base 0.5, plus 0.3 x completeness, plus 0.1 when a follower count was
// captured, plus 0.1 when the keyword appears in the headline. Capped at 1.
func Confidence(p domain.Profile, keyword string) float64 {
	s := 0.5

	s += Completeness(p) * 0.3

	if p.HasFollowers() {
		s += 0.1
	}

	if keyword != "" && strings.Contains(strings.ToLower(p.Headline), strings.ToLower(keyword)) {
		s += 0.1
	}

	if s > 1.0 {
		return 1.0
	}
	return s
}
