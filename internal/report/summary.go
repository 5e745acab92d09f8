// Package report aggregates a final profile set into summary statistics and
// renders the plain-text run report.
package report

import "leadscout-engine/internal/domain"

// FollowerRanges is a fixed three-bucket histogram of follower counts.
// Buckets are left-inclusive/right-exclusive except the last, which is
// closed at 10000. Counts outside every bucket land nowhere.
type FollowerRanges struct {
	From1kTo2k  int `json:"1k-2k"`
	From2kTo5k  int `json:"2k-5k"`
	From5kTo10k int `json:"5k-10k"`
}

type Summary struct {
	TotalProfiles   int            `json:"total_profiles"`
	UniqueCompanies int            `json:"unique_companies"`
	UniqueLocations int            `json:"unique_locations"`
	AvgConfidence   float64        `json:"avg_confidence_score"`
	AvgCompleteness float64        `json:"avg_profile_completeness"`
	AvgFollowers    float64        `json:"avg_follower_count"`
	Keywords        map[string]int `json:"keyword_distribution"`
	FollowerRanges  FollowerRanges `json:"follower_ranges"`
}

// Summarize computes descriptive statistics over profiles. It never fails:
// an empty input yields a zeroed summary.
func Summarize(profiles []domain.Profile) Summary {
	s := Summary{
		TotalProfiles: len(profiles),
		Keywords:      make(map[string]int),
	}
	if len(profiles) == 0 {
		return s
	}

	companies := make(map[string]bool)
	locations := make(map[string]bool)

	var confSum, compSum float64
	var followerSum, followerN int

	for _, p := range profiles {
		if p.Company != "" {
			companies[p.Company] = true
		}
		if p.Location != "" {
			locations[p.Location] = true
		}

		confSum += p.Confidence
		compSum += p.Completeness

		if p.HasFollowers() {
			n := p.Followers()
			followerSum += n
			followerN++

			switch {
			case n >= 1000 && n < 2000:
				s.FollowerRanges.From1kTo2k++
			case n >= 2000 && n < 5000:
				s.FollowerRanges.From2kTo5k++
			case n >= 5000 && n <= 10000:
				s.FollowerRanges.From5kTo10k++
			}
		}

		if p.KeywordMatched != "" {
			s.Keywords[p.KeywordMatched]++
		}
	}

	s.UniqueCompanies = len(companies)
	s.UniqueLocations = len(locations)
	s.AvgConfidence = confSum / float64(len(profiles))
	s.AvgCompleteness = compSum / float64(len(profiles))
	if followerN > 0 {
		s.AvgFollowers = float64(followerSum) / float64(followerN)
	}

	return s
}
