package pipeline

import "rfp-backend/internal/catalog"

// MatchThreshold is the minimum Jaccard similarity for a catalog item to be
// considered a match. Maxima below this yield a gap.
const MatchThreshold = 0.15

// MatchRequirement scores every catalog item against the requirement and
// returns the single best match, or a gap when nothing reaches
// MatchThreshold. Scoring is Jaccard similarity over keyword sets; ties are
// broken by catalog insertion order (first item wins). Deterministic for
// identical inputs.
func MatchRequirement(req Requirement, cat *catalog.Catalog) Match {
	bestScore := 0.0
	bestSKU := ""

	for _, item := range cat.Items() {
		score := jaccard(req.Keywords, item.Keywords)
		if score > bestScore {
			bestScore = score
			bestSKU = item.SKU
		}
	}

	if bestScore < MatchThreshold {
		return Match{RequirementID: req.ID}
	}
	return Match{
		RequirementID: req.ID,
		SKU:           bestSKU,
		Confidence:    bestScore,
	}
}

// MatchAll returns exactly one Match per requirement, in requirement order.
func MatchAll(requirements []Requirement, cat *catalog.Catalog) []Match {
	matches := make([]Match, 0, len(requirements))
	for _, req := range requirements {
		matches = append(matches, MatchRequirement(req, cat))
	}
	return matches
}

// jaccard computes |a ∩ b| / |a ∪ b| for two keyword lists. Empty union
// scores zero.
func jaccard(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	setA := make(map[string]struct{}, len(a))
	for _, kw := range a {
		setA[kw] = struct{}{}
	}
	union := len(setA)
	shared := 0
	seenB := make(map[string]struct{}, len(b))
	for _, kw := range b {
		if _, dup := seenB[kw]; dup {
			continue
		}
		seenB[kw] = struct{}{}
		if _, ok := setA[kw]; ok {
			shared++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(shared) / float64(union)
}
