package scraper

import (
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"

	"leadscout-engine/internal/domain"
	"leadscout-engine/internal/score"
)

const scrapedDateLayout = "2006-01-02 15:04:05"

// Selectors for people-search result cards. Kept in one place; this is the
// only coupling to the site's markup outside the login flow.
const (
	selResultCard = ".entity-result__item"
	selName       = ".entity-result__title-text"
	selHeadline   = ".entity-result__primary-subtitle"
	selLocation   = ".entity-result__secondary-subtitle"
	selProfileURL = "a[href*='/in/']"
	selCompany    = ".entity-result__tertiary-subtitle"
)

// Follower counts show up in different card slots depending on layout.
var followerSelectors = []string{
	".entity-result__secondary-subtitle",
	".entity-result__metadata",
	".search-result__info",
	".entity-result__tertiary-subtitle",
}

var whitespaceRE = regexp.MustCompile(`\s+`)

// cleanText collapses runs of whitespace so scraped fragments compare and
// persist predictably.
func cleanText(s string) string {
	return whitespaceRE.ReplaceAllString(strings.TrimSpace(s), " ")
}

// ParseSearchResults extracts validated profiles from one search-results
// page. Cards that fail the boundary gate (bad URL, followers out of range,
// sub-threshold scores) are dropped here and never reach the pipeline.
func ParseSearchResults(r io.Reader, keyword string, opts Options, now time.Time) ([]domain.Profile, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, eris.Wrap(err, "parse search results")
	}

	limit := opts.MaxProfilesPerSearch
	if limit <= 0 {
		limit = 50
	}

	var profiles []domain.Profile
	doc.Find(selResultCard).EachWithBreak(func(_ int, card *goquery.Selection) bool {
		p, ok := extractProfile(card, keyword, now)
		if ok && admit(p, opts) {
			profiles = append(profiles, p)
		}
		return len(profiles) < limit
	})

	return profiles, nil
}

func extractProfile(card *goquery.Selection, keyword string, now time.Time) (domain.Profile, bool) {
	href, ok := card.Find(selProfileURL).First().Attr("href")
	if !ok {
		return domain.Profile{}, false
	}

	p := domain.Profile{
		Name:           cleanText(card.Find(selName).First().Text()),
		Headline:       cleanText(card.Find(selHeadline).First().Text()),
		Location:       cleanText(card.Find(selLocation).First().Text()),
		ProfileURL:     strings.TrimSpace(href),
		Company:        cleanText(card.Find(selCompany).First().Text()),
		KeywordMatched: keyword,
		ScrapedDate:    now.Format(scrapedDateLayout),
	}

	for _, sel := range followerSelectors {
		if n := ExtractFollowerCount(card.Find(sel).First().Text()); n != nil {
			p.FollowerCount = n
			break
		}
	}

	p.Completeness = score.Completeness(p)
	p.Confidence = score.Confidence(p, keyword)

	return p, true
}

// admit is the boundary validity gate: only real member profiles with an
// in-range audience and workable scores enter the pipeline.
func admit(p domain.Profile, opts Options) bool {
	if !domain.ValidProfileURL(p.ProfileURL) {
		return false
	}
	if !domain.FollowersInRange(p, opts.MinFollowers, opts.MaxFollowers) {
		return false
	}
	if p.Completeness < opts.MinCompleteness {
		return false
	}
	if p.Confidence < opts.MinConfidence {
		return false
	}
	return true
}
