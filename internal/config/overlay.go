// internal/config/overlay.go
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// SearchListsFile is an optional sidecar file carrying just the search
// lists, so users can maintain long keyword/company lists separately from
// the engine settings.
type SearchListsFile struct {
	Keywords  []string `yaml:"keywords"`
	Companies []string `yaml:"companies"`
}

// OverlaySearchLists replaces the config's search lists with the contents of
// listsPath when that file exists and has entries.
func OverlaySearchLists(cfg *Config, listsPath string) error {
	b, err := os.ReadFile(listsPath)
	if err != nil {
		// Missing lists file should not kill startup
		return nil
	}

	var lf SearchListsFile
	if err := yaml.Unmarshal(b, &lf); err != nil {
		return err
	}

	if len(lf.Keywords) > 0 {
		cfg.Search.Keywords = lf.Keywords
	}
	if len(lf.Companies) > 0 {
		cfg.Search.Companies = lf.Companies
	}
	return nil
}
