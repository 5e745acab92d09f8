package pipeline

import (
	"sort"

	"leadscout-engine/internal/domain"
)

// Rank stamps every profile with its quality score (confidence plus
// completeness) and returns a new slice sorted best-first. The sort is
// stable so equal scores keep their input order.
func Rank(in []domain.Profile) []domain.Profile {
	out := make([]domain.Profile, len(in))
	copy(out, in)

	for i := range out {
		out[i].Quality = out[i].Confidence + out[i].Completeness
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Quality > out[j].Quality
	})

	return out
}
