package engine

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"chuckle-chow/internal/core/catalog"
)

// Scorer rates how well a candidate ingredient list covers a user request.
// Scores are deterministic: same inputs, same score.
type Scorer struct {
	catalog *catalog.Catalog
}

func NewScorer(cat *catalog.Catalog) *Scorer {
	return &Scorer{catalog: cat}
}

// Score sums, per user ingredient: 1.0 for an exact (case-insensitive)
// match in candidate, otherwise a tenth of the best fuzzy similarity, plus
// a 0.2 bonus when a known flavor partner of the ingredient is present.
func (s *Scorer) Score(candidate, user []string) float64 {
	have := make(map[string]bool, len(candidate))
	for _, c := range candidate {
		have[strings.ToLower(strings.TrimSpace(c))] = true
	}

	var score float64
	for _, raw := range user {
		ing := strings.ToLower(strings.TrimSpace(raw))
		if ing == "" {
			continue
		}
		if have[ing] {
			score += 1.0
		} else {
			best := 0.0
			for c := range have {
				if sim := similarity(ing, c); sim > best {
					best = sim
				}
			}
			score += 0.1 * best
		}
		for _, partner := range s.catalog.Pairs(ing) {
			if have[strings.ToLower(partner)] {
				score += 0.2
				break
			}
		}
	}
	return score
}

// similarity maps edit distance onto [0, 1], where 1 is identical.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(maxLen)
}
