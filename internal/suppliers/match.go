package suppliers

import (
	"math"
	"sort"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/procurehq/procurement-tracker/constants"
	"github.com/procurehq/procurement-tracker/internal/entity"
)

// Tier buckets a similarity score for display.
type Tier string

const (
	TierExact  Tier = "exact"  // similarity > 0.8
	TierHigh   Tier = "high"   // similarity > 0.6
	TierMedium Tier = "medium" // similarity > 0.4
	TierLow    Tier = "low"
)

const (
	// similarityFloor drops candidates too dissimilar to be worth showing.
	similarityFloor = 0.3
	// maxSuggestions caps the ranked result list.
	maxSuggestions = 5

	amountBonus  = 0.1
	docTypeBonus = 0.1
)

// MatchContext carries the source-document signals that raise confidence in
// a suggestion.
type MatchContext struct {
	HasAmount    bool
	DocumentType constants.DocumentType
}

// Match is one ranked fuzzy-match suggestion.
type Match struct {
	Supplier   entity.Supplier `json:"supplier"`
	Similarity float64         `json:"similarity"`
	Tier       Tier            `json:"tier"`
	Confidence float64         `json:"confidence"`
}

// Similarity is 1 − edit_distance/max_len over case-insensitive names, using
// classic Levenshtein distance (unit-cost substitutions, insertions,
// deletions). Identical strings score 1.0.
func Similarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == b {
		return 1.0
	}
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := levenshtein.Distance(a, b, nil)
	return 1.0 - float64(dist)/float64(maxLen)
}

// TierFor buckets a similarity score.
func TierFor(similarity float64) Tier {
	switch {
	case similarity > 0.8:
		return TierExact
	case similarity > 0.6:
		return TierHigh
	case similarity > 0.4:
		return TierMedium
	default:
		return TierLow
	}
}

// SuggestMatches ranks candidates by similarity to rawName, dropping those
// below the floor and capping the list. Confidence adds flat bonuses when the
// source document carries an extracted amount and when its type is
// Contract/Invoice, clamped to [0,1].
func SuggestMatches(rawName string, docCtx MatchContext, candidates []entity.Supplier) []Match {
	if strings.TrimSpace(rawName) == "" {
		return nil
	}

	matches := make([]Match, 0, len(candidates))
	for _, cand := range candidates {
		sim := Similarity(rawName, cand.Name)
		if sim < similarityFloor {
			continue
		}

		conf := sim
		if docCtx.HasAmount {
			conf += amountBonus
		}
		if constants.IsHighValueType(docCtx.DocumentType) {
			conf += docTypeBonus
		}

		matches = append(matches, Match{
			Supplier:   cand,
			Similarity: sim,
			Tier:       TierFor(sim),
			Confidence: math.Min(1, math.Max(0, conf)),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}
	return matches
}
