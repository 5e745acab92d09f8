package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
)

// ValidateStructure checks that an output CSV carries every expected column
// and spot-checks data quality. Missing columns are an error; sparse names
// or URLs only produce warnings, since partial rows are still usable.
func ValidateStructure(path string) (warnings []string, err error) {
	f, err := os.Open(path)
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
		return nil, eris.Errorf("%s has no header row", path)
	}

	idx := headerIndex(records[0])
	var missing []string
	for _, col := range Columns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, eris.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	rows := records[1:]
	if len(rows) == 0 {
		return nil, nil
	}

	var names, urls int
	for _, rec := range rows {
		if i := idx["name"]; i < len(rec) && strings.TrimSpace(rec[i]) != "" {
			names++
		}
		if i := idx["profile_url"]; i < len(rec) && strings.TrimSpace(rec[i]) != "" {
			urls++
		}
	}

	threshold := int(float64(len(rows)) * 0.9)
	if names < threshold {
		warnings = append(warnings, fmt.Sprintf("more than 10%% of %d profiles have empty names", len(rows)))
	}
	if urls < threshold {
		warnings = append(warnings, fmt.Sprintf("more than 10%% of %d profiles have empty URLs", len(rows)))
	}
	return warnings, nil
}
