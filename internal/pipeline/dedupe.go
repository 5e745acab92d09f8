// Package pipeline turns raw scraped profiles into the ranked set that gets
// persisted: dedup against prior runs, quality filtering, then ranking.
package pipeline

import "leadscout-engine/internal/domain"

// Dedupe merges fresh profiles into existing ones, keeping the first
// occurrence per profile URL. Existing rows come first so an earlier run
// always wins over a re-scrape of the same person. Input slices are not
// modified. removed is the number of dropped duplicates.
func Dedupe(fresh, existing []domain.Profile) (unique []domain.Profile, removed int) {
	total := len(existing) + len(fresh)
	seen := make(map[string]bool, total)
	unique = make([]domain.Profile, 0, total)

	for _, p := range existing {
		if seen[p.ProfileURL] {
			continue
		}
		seen[p.ProfileURL] = true
		unique = append(unique, p)
	}
	for _, p := range fresh {
		if seen[p.ProfileURL] {
			continue
		}
		seen[p.ProfileURL] = true
		unique = append(unique, p)
	}

	return unique, total - len(unique)
}
