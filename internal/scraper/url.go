package scraper

import (
	"fmt"
	"net/url"
	"strings"
)

const searchBase = "https://www.linkedin.com/search/results/people/"

// SearchURL builds the people-search URL for a keyword and result page.
func SearchURL(keyword string, page int) string {
	if page < 1 {
		page = 1
	}
	q := url.Values{}
	q.Set("keywords", keyword)
	q.Set("origin", "GLOBAL_SEARCH_HEADER")
	q.Set("page", fmt.Sprint(page))
	return searchBase + "?" + q.Encode()
}

// CompanyQuery expresses a company search as a current-company keyword.
func CompanyQuery(company string) string {
	return "current company:" + strings.TrimSpace(company)
}
