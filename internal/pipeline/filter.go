package pipeline

import "leadscout-engine/internal/domain"

// FilterByQuality keeps profiles whose confidence and completeness both meet
// their thresholds. Bounds are inclusive; an unset score is 0 and fails.
func FilterByQuality(in []domain.Profile, minConfidence, minCompleteness float64) (kept []domain.Profile, removed int) {
	kept = make([]domain.Profile, 0, len(in))
	for _, p := range in {
		if p.Confidence >= minConfidence && p.Completeness >= minCompleteness {
			kept = append(kept, p)
		}
	}
	return kept, len(in) - len(kept)
}
