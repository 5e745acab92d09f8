package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadscout-engine/internal/domain"
)

func intp(n int) *int { return &n }

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.csv")

	in := []domain.Profile{
		{
			Name: "Ada, Lovelace", Headline: "Automation \"Lead\"", Location: "London",
			ProfileURL: "https://www.linkedin.com/in/ada", Company: "AE",
			FollowerCount: intp(4200), KeywordMatched: "RPA",
			Confidence: 0.85, Completeness: 0.75, ScrapedDate: "2026-03-14 09:30:00",
		},
		{
			Name: "No Extras", Headline: "Engineer", Location: "Remote",
			ProfileURL: "https://www.linkedin.com/in/noextras",
			KeywordMatched: "AI agent", Confidence: 0.5, Completeness: 0.5,
		},
	}

	require.NoError(t, Save(path, in))

	out, err := Load(path)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "Ada, Lovelace", out[0].Name)
	assert.Equal(t, 4200, *out[0].FollowerCount)
	assert.InDelta(t, 0.85, out[0].Confidence, 1e-9)
	assert.Nil(t, out[1].FollowerCount)
}

func TestSaveWritesFixedHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.csv")
	require.NoError(t, Save(path, nil))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	header, err := csv.NewReader(f).Read()
	require.NoError(t, err)
	assert.Equal(t, Columns, header)
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	out, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestValidateStructureMissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,headline\na,b\n"), 0o644))

	_, err := ValidateStructure(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile_url")
}

func TestValidateStructureWarnsOnSparseURLs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sparse.csv")

	profiles := make([]domain.Profile, 10)
	for i := range profiles {
		profiles[i] = domain.Profile{Name: "x"}
	}
	require.NoError(t, Save(path, profiles))

	warnings, err := ValidateStructure(path)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "empty URLs")
}
