package domain

// Profile is one discovered person from a people search. ProfileURL is the
// identity key; records without one never enter the pipeline.
type Profile struct {
	Name           string
	Headline       string
	Location       string
	ProfileURL     string
	Company        string
	FollowerCount  *int // nil when the result card showed no count
	KeywordMatched string
	ScrapedDate    string // "2006-01-02 15:04:05"

	Completeness float64
	Confidence   float64
	Quality      float64 // set by ranking, zero before
}

// HasFollowers reports whether a usable follower count was captured.
func (p Profile) HasFollowers() bool {
	return p.FollowerCount != nil && *p.FollowerCount > 0
}

// Followers returns the captured count, or 0 when absent.
func (p Profile) Followers() int {
	if p.FollowerCount == nil {
		return 0
	}
	return *p.FollowerCount
}
