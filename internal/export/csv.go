// Package export reads and writes the persisted profile CSV. Writes are
// guarded by an advisory file lock so a CLI run and the serve panel cannot
// corrupt each other's output.
package export

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/gofrs/flock"
	"github.com/rotisserie/eris"

	"leadscout-engine/internal/domain"
)

// Columns is the fixed CSV column order. Readers key off the header, so the
// order here is a compatibility contract with prior runs.
var Columns = []string{
	"name", "headline", "location", "profile_url", "company",
	"follower_count", "keyword_matched", "confidence_score",
	"profile_completeness", "scraped_date",
}

// Save writes profiles to path, replacing any previous file. Missing fields
// become empty cells.
func Save(path string, profiles []domain.Profile) error {
	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return eris.Wrapf(err, "lock %s", path)
	}
	defer lock.Unlock()

	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "create %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Columns); err != nil {
		return eris.Wrap(err, "write csv header")
	}

	for _, p := range profiles {
		if err := w.Write(row(p)); err != nil {
			return eris.Wrap(err, "write csv row")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return eris.Wrapf(err, "flush %s", path)
	}
	return f.Sync()
}

// Load reads a previously saved CSV back into profiles for cross-run dedup.
// A missing file is not an error; it just means no prior run.
func Load(path string) ([]domain.Profile, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, eris.Wrapf(err, "parse %s", path)
	}
	if len(records) == 0 {
		return nil, nil
	}

	idx := headerIndex(records[0])
	profiles := make([]domain.Profile, 0, len(records)-1)
	for _, rec := range records[1:] {
		profiles = append(profiles, fromRow(rec, idx))
	}
	return profiles, nil
}

func row(p domain.Profile) []string {
	followers := ""
	if p.FollowerCount != nil {
		followers = strconv.Itoa(*p.FollowerCount)
	}
	return []string{
		p.Name, p.Headline, p.Location, p.ProfileURL, p.Company,
		followers, p.KeywordMatched,
		strconv.FormatFloat(p.Confidence, 'f', -1, 64),
		strconv.FormatFloat(p.Completeness, 'f', -1, 64),
		p.ScrapedDate,
	}
}

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[col] = i
	}
	return idx
}

func fromRow(rec []string, idx map[string]int) domain.Profile {
	get := func(col string) string {
		i, ok := idx[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	p := domain.Profile{
		Name:           get("name"),
		Headline:       get("headline"),
		Location:       get("location"),
		ProfileURL:     get("profile_url"),
		Company:        get("company"),
		KeywordMatched: get("keyword_matched"),
		ScrapedDate:    get("scraped_date"),
	}

	if n, err := strconv.Atoi(get("follower_count")); err == nil {
		p.FollowerCount = &n
	}
	if v, err := strconv.ParseFloat(get("confidence_score"), 64); err == nil {
		p.Confidence = v
	}
	if v, err := strconv.ParseFloat(get("profile_completeness"), 64); err == nil {
		p.Completeness = v
	}
	return p
}
