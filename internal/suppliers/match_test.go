package suppliers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procurehq/procurement-tracker/constants"
	"github.com/procurehq/procurement-tracker/internal/entity"
)

func candidates(names ...string) []entity.Supplier {
	out := make([]entity.Supplier, len(names))
	for i, n := range names {
		out[i] = entity.Supplier{Name: n}
	}
	return out
}

func TestSimilarityIdentical(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("Acme Corp", "Acme Corp"))
	assert.Equal(t, 1.0, Similarity("acme corp", "ACME CORP"), "comparison is case-insensitive")
	assert.Equal(t, 1.0, Similarity("  Acme  ", "Acme"))
	assert.Equal(t, 1.0, Similarity("", ""))
}

func TestSimilarityDissimilar(t *testing.T) {
	assert.Less(t, Similarity("Acme Corp", "Globex"), similarityFloor)
}

func TestSimilarityOrdering(t *testing.T) {
	near := Similarity("Acme Corp", "Acme Corp.")
	far := Similarity("Acme Corp", "Acme Industries")
	assert.Greater(t, near, far)
	assert.Greater(t, near, 0.8, "one-character difference lands in the exact tier")
}

func TestTierFor(t *testing.T) {
	assert.Equal(t, TierExact, TierFor(0.95))
	assert.Equal(t, TierHigh, TierFor(0.7))
	assert.Equal(t, TierMedium, TierFor(0.5))
	assert.Equal(t, TierLow, TierFor(0.35))
}

func TestSuggestMatchesRankingAndFloor(t *testing.T) {
	matches := SuggestMatches("Acme Corp", MatchContext{}, candidates(
		"Acme Corp.",
		"Acme Industries",
		"Globex",
	))

	require.Len(t, matches, 2, "candidates below the floor are dropped")
	assert.Equal(t, "Acme Corp.", matches[0].Supplier.Name)
	assert.Equal(t, "Acme Industries", matches[1].Supplier.Name)
	assert.GreaterOrEqual(t, matches[0].Similarity, matches[1].Similarity)
}

func TestSuggestMatchesCap(t *testing.T) {
	matches := SuggestMatches("Acme", MatchContext{}, candidates(
		"Acme 1", "Acme 2", "Acme 3", "Acme 4", "Acme 5", "Acme 6", "Acme 7",
	))
	assert.Len(t, matches, maxSuggestions)
}

func TestSuggestMatchesContextBonuses(t *testing.T) {
	// a mid-similarity candidate keeps the boosted confidence below the clamp
	cands := candidates("Acme Industries")

	plain := SuggestMatches("Acme Corp", MatchContext{}, cands)
	boosted := SuggestMatches("Acme Corp", MatchContext{
		HasAmount:    true,
		DocumentType: constants.Invoice,
	}, cands)

	require.Len(t, plain, 1)
	require.Len(t, boosted, 1)
	assert.Less(t, boosted[0].Confidence, 1.0)
	assert.InDelta(t, plain[0].Confidence+amountBonus+docTypeBonus, boosted[0].Confidence, 1e-9)
	assert.Equal(t, plain[0].Similarity, boosted[0].Similarity, "bonuses affect confidence, not similarity")
}

func TestSuggestMatchesConfidenceClamped(t *testing.T) {
	matches := SuggestMatches("Acme Corp", MatchContext{
		HasAmount:    true,
		DocumentType: constants.Contract,
	}, candidates("Acme Corp"))

	require.Len(t, matches, 1)
	assert.Equal(t, 1.0, matches[0].Confidence)
}

func TestSuggestMatchesEmptyName(t *testing.T) {
	assert.Nil(t, SuggestMatches("  ", MatchContext{}, candidates("Acme")))
}
