package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate trims and dedups the search lists, then checks the
// rest of the config for values that would make a run useless.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Search.Keywords = trimList(out.Search.Keywords)
	out.Search.Companies = trimList(out.Search.Companies)

	// ---- Validation rules ----

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	if len(out.Search.Keywords) == 0 && len(out.Search.Companies) == 0 {
		res.addErr("no search terms: set search.keywords and/or search.companies")
	}
	if out.Search.MaxPagesPerSearch <= 0 {
		res.addErr("search.max_pages_per_search must be > 0")
	}
	if out.Search.MaxProfilesPerSearch <= 0 {
		res.addErr("search.max_profiles_per_search must be > 0")
	}

	if out.Rate.SearchDelaySeconds < 0 {
		res.addErr("rate.search_delay_seconds must be >= 0")
	} else if out.Rate.SearchDelaySeconds < 10 {
		res.addWarn("rate.search_delay_seconds is very low (%d) and may trip rate limits.", out.Rate.SearchDelaySeconds)
	}
	if out.Rate.ProfileDelaySeconds < 0 {
		res.addErr("rate.profile_delay_seconds must be >= 0")
	}
	if out.Rate.MaxSearchesPerHour <= 0 {
		res.addErr("rate.max_searches_per_hour must be > 0")
	}

	if out.Quality.MinConfidence < 0 || out.Quality.MinConfidence > 1 {
		res.addErr("quality.min_confidence must be in [0,1]")
	}
	if out.Quality.MinCompleteness < 0 || out.Quality.MinCompleteness > 1 {
		res.addErr("quality.min_completeness must be in [0,1]")
	}
	if out.Quality.MinFollowers < 0 {
		res.addErr("quality.min_followers must be >= 0")
	}
	if out.Quality.MaxFollowers <= out.Quality.MinFollowers {
		res.addErr("quality.max_followers must be > quality.min_followers")
	}
	if out.Quality.MinConfidence > 0.9 {
		res.addWarn("quality.min_confidence above 0.9 will discard almost every profile.")
	}

	if strings.TrimSpace(out.Output.CSV) == "" {
		res.addErr("output.csv is required")
	}
	if strings.TrimSpace(out.Output.Summary) == "" {
		res.addErr("output.summary is required")
	}

	return out, res
}
