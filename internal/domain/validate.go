package domain

import "regexp"

var profileURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`linkedin\.com/in/`),
	regexp.MustCompile(`linkedin\.com/pub/`),
}

// ValidProfileURL reports whether url points at an actual member profile
// (the /in/ and legacy /pub/ shapes) rather than a company or school page.
func ValidProfileURL(url string) bool {
	if url == "" {
		return false
	}
	for _, re := range profileURLPatterns {
		if re.MatchString(url) {
			return true
		}
	}
	return false
}

// FollowersInRange reports whether the profile's follower count is present
// and inside [min, max]. Profiles with no count fail the gate.
func FollowersInRange(p Profile, min, max int) bool {
	if p.FollowerCount == nil {
		return false
	}
	n := *p.FollowerCount
	return n >= min && n <= max
}
