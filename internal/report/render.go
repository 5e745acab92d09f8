package report

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

const timestampLayout = "2006-01-02 15:04:05"

// Render produces the fixed-layout text report. Keyword lines are ordered by
// count descending, then alphabetically, so output is deterministic.
func Render(s Summary, generatedAt time.Time) string {
	var b strings.Builder

	b.WriteString("LinkedIn Scraping Summary Report\n")
	b.WriteString(strings.Repeat("=", 40) + "\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", generatedAt.Format(timestampLayout))

	fmt.Fprintf(&b, "Total Profiles Found: %d\n", s.TotalProfiles)
	fmt.Fprintf(&b, "Unique Companies: %d\n", s.UniqueCompanies)
	fmt.Fprintf(&b, "Unique Locations: %d\n", s.UniqueLocations)
	fmt.Fprintf(&b, "Average Confidence Score: %.2f\n", s.AvgConfidence)
	fmt.Fprintf(&b, "Average Profile Completeness: %.2f\n", s.AvgCompleteness)
	fmt.Fprintf(&b, "Average Follower Count: %d\n\n", int(math.Round(s.AvgFollowers)))

	b.WriteString("Follower Count Distribution:\n")
	fmt.Fprintf(&b, "  1k-2k: %d profiles\n", s.FollowerRanges.From1kTo2k)
	fmt.Fprintf(&b, "  2k-5k: %d profiles\n", s.FollowerRanges.From2kTo5k)
	fmt.Fprintf(&b, "  5k-10k: %d profiles\n", s.FollowerRanges.From5kTo10k)

	b.WriteString("\nKeyword Distribution:\n")
	for _, kw := range sortedKeywords(s.Keywords) {
		fmt.Fprintf(&b, "  %s: %d profiles\n", kw, s.Keywords[kw])
	}

	return b.String()
}

// Export writes the rendered report to path.
func Export(path string, s Summary, generatedAt time.Time) error {
	if err := os.WriteFile(path, []byte(Render(s, generatedAt)), 0o644); err != nil {
		return eris.Wrapf(err, "write summary report %s", path)
	}
	return nil
}

func sortedKeywords(counts map[string]int) []string {
	kws := make([]string, 0, len(counts))
	for kw := range counts {
		kws = append(kws, kw)
	}
	sort.Slice(kws, func(i, j int) bool {
		if counts[kws[i]] != counts[kws[j]] {
			return counts[kws[i]] > counts[kws[j]]
		}
		return kws[i] < kws[j]
	})
	return kws
}
