package scraper

import (
	"regexp"
	"strconv"
	"strings"
)

// Result cards phrase audience size several ways; all use comma-grouped
// digits followed by one of these nouns.
var followerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,3}(?:,\d{3})*)\s*followers?`),
	regexp.MustCompile(`(\d{1,3}(?:,\d{3})*)\s*connections?`),
	regexp.MustCompile(`(\d{1,3}(?:,\d{3})*)\s*members?`),
}

// ExtractFollowerCount pulls a follower-ish count out of free text, or nil
// when no pattern matches.
func ExtractFollowerCount(text string) *int {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)

	for _, re := range followerPatterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
		if err != nil {
			continue
		}
		return &n
	}
	return nil
}
