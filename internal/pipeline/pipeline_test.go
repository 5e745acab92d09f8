package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadscout-engine/internal/domain"
)

func prof(url string) domain.Profile {
	return domain.Profile{Name: "n", ProfileURL: url}
}

func urls(ps []domain.Profile) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ProfileURL
	}
	return out
}

func TestDedupeExistingWins(t *testing.T) {
	existing := []domain.Profile{prof("a"), prof("b")}
	existing[1].Headline = "from first run"

	fresh := []domain.Profile{prof("b"), prof("c")}
	fresh[0].Headline = "rescraped"

	unique, removed := Dedupe(fresh, existing)

	assert.Equal(t, []string{"a", "b", "c"}, urls(unique))
	assert.Equal(t, 1, removed)
	assert.Equal(t, "from first run", unique[1].Headline)
}

func TestDedupeIdempotent(t *testing.T) {
	set := []domain.Profile{prof("a"), prof("b"), prof("c")}

	once, removed := Dedupe(nil, set)
	require.Zero(t, removed)

	twice, removed := Dedupe(nil, once)
	assert.Zero(t, removed)
	assert.Equal(t, once, twice)
}

func TestDedupeDoesNotMutateInputs(t *testing.T) {
	existing := []domain.Profile{prof("a")}
	fresh := []domain.Profile{prof("a"), prof("b")}

	_, _ = Dedupe(fresh, existing)

	assert.Equal(t, []string{"a"}, urls(existing))
	assert.Equal(t, []string{"a", "b"}, urls(fresh))
}

func TestFilterThresholdsInclusive(t *testing.T) {
	in := []domain.Profile{
		{ProfileURL: "below", Confidence: 0.69, Completeness: 0.9},
		{ProfileURL: "exact", Confidence: 0.7, Completeness: 0.6},
		{ProfileURL: "above", Confidence: 0.95, Completeness: 0.8},
	}

	kept, removed := FilterByQuality(in, 0.7, 0.6)

	assert.Equal(t, []string{"exact", "above"}, urls(kept))
	assert.Equal(t, 1, removed)
}

func TestFilterUnscoredRecordsFail(t *testing.T) {
	kept, removed := FilterByQuality([]domain.Profile{prof("unscored")}, 0.1, 0.1)
	assert.Empty(t, kept)
	assert.Equal(t, 1, removed)
}

func TestFilterEmptyInput(t *testing.T) {
	kept, removed := FilterByQuality(nil, 0.7, 0.6)
	assert.Empty(t, kept)
	assert.Zero(t, removed)
}

func TestRankStableOnTies(t *testing.T) {
	in := []domain.Profile{
		{ProfileURL: "A", Confidence: 0.6, Completeness: 0.6},
		{ProfileURL: "B", Confidence: 0.7, Completeness: 0.5},
		{ProfileURL: "C", Confidence: 0.4, Completeness: 0.5},
	}

	out := Rank(in)

	// A and B tie at 1.2 and keep input order; C (0.9) sinks.
	assert.Equal(t, []string{"A", "B", "C"}, urls(out))
	assert.InDelta(t, 1.2, out[0].Quality, 1e-9)
	assert.InDelta(t, 0.9, out[2].Quality, 1e-9)
}

func TestRankDoesNotMutateInput(t *testing.T) {
	in := []domain.Profile{
		{ProfileURL: "low", Confidence: 0.1},
		{ProfileURL: "high", Confidence: 0.9},
	}

	out := Rank(in)

	assert.Equal(t, []string{"high", "low"}, urls(out))
	assert.Equal(t, []string{"low", "high"}, urls(in))
	assert.Zero(t, in[0].Quality)
}
