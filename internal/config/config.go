// internal/config/config.go
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port" json:"port"`
		DataDir string `yaml:"data_dir" json:"data_dir"`
	} `yaml:"app" json:"app"`

	Search struct {
		Keywords             []string `yaml:"keywords" json:"keywords"`
		Companies            []string `yaml:"companies" json:"companies"`
		MaxPagesPerSearch    int      `yaml:"max_pages_per_search" json:"max_pages_per_search"`
		MaxProfilesPerSearch int      `yaml:"max_profiles_per_search" json:"max_profiles_per_search"`
	} `yaml:"search" json:"search"`

	Rate struct {
		MaxSearchesPerHour  int `yaml:"max_searches_per_hour" json:"max_searches_per_hour"`
		SearchDelaySeconds  int `yaml:"search_delay_seconds" json:"search_delay_seconds"`
		ProfileDelaySeconds int `yaml:"profile_delay_seconds" json:"profile_delay_seconds"`
	} `yaml:"rate" json:"rate"`

	Quality struct {
		MinConfidence   float64 `yaml:"min_confidence" json:"min_confidence"`
		MinCompleteness float64 `yaml:"min_completeness" json:"min_completeness"`
		MinFollowers    int     `yaml:"min_followers" json:"min_followers"`
		MaxFollowers    int     `yaml:"max_followers" json:"max_followers"`
	} `yaml:"quality" json:"quality"`

	Output struct {
		CSV     string `yaml:"csv" json:"csv"`
		Summary string `yaml:"summary" json:"summary"`
	} `yaml:"output" json:"output"`

	Browser struct {
		Headless  bool   `yaml:"headless" json:"headless"`
		UserAgent string `yaml:"user_agent" json:"user_agent"`
	} `yaml:"browser" json:"browser"`
}

// Default returns the stock search configuration: the AI-automation keyword
// and company lists the tool ships with, plus conservative rate limits.
func Default() Config {
	var cfg Config

	cfg.App.Port = 38471
	cfg.App.DataDir = "."

	cfg.Search.Keywords = []string{
		"AI agent", "automation specialist", "workflow automation",
		"RPA", "process automation", "business automation",
		"Zapier", "Make.com", "n8n", "automation consultant",
		"AI automation", "workflow optimization", "automation expert",
		"no-code automation", "low-code automation", "automation engineer",
		"workflow specialist", "process optimization", "business process automation",
		"digital transformation", "automation architect", "workflow consultant",
	}
	cfg.Search.Companies = []string{
		"Zapier", "Make.com", "n8n", "Microsoft", "Google", "Amazon",
		"Salesforce", "HubSpot", "Notion", "Airtable", "Monday.com",
		"Asana", "Trello", "Slack", "Discord", "Figma", "Canva",
	}
	cfg.Search.MaxPagesPerSearch = 2
	cfg.Search.MaxProfilesPerSearch = 50

	cfg.Rate.MaxSearchesPerHour = 100
	cfg.Rate.SearchDelaySeconds = 30
	cfg.Rate.ProfileDelaySeconds = 2

	cfg.Quality.MinConfidence = 0.7
	cfg.Quality.MinCompleteness = 0.6
	cfg.Quality.MinFollowers = 1000
	cfg.Quality.MaxFollowers = 10000

	cfg.Output.CSV = "ai_agent_profiles.csv"
	cfg.Output.Summary = "scraping_summary.txt"

	cfg.Browser.Headless = true

	return cfg
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

// CSVPath resolves the output CSV location under the data dir.
func (c Config) CSVPath() string {
	return filepath.Join(c.App.DataDir, c.Output.CSV)
}

// SummaryPath resolves the summary report location under the data dir.
func (c Config) SummaryPath() string {
	return filepath.Join(c.App.DataDir, c.Output.Summary)
}
