package match

import "sort"

// minSimilarity is the score below which a candidate is not worth suggesting.
const minSimilarity = 0.5

// Suggest returns up to limit candidates closest to name, best first.
// Ties keep the order of candidates.
func Suggest(name string, candidates []string, limit int) []string {
	type scored struct {
		name  string
		score float64
	}

	var ranked []scored

	for _, c := range candidates {
		score := Similarity(name, c)
		if score < minSimilarity {
			continue
		}

		ranked = append(ranked, scored{c, score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	res := make([]string, 0, len(ranked))
	for _, r := range ranked {
		res = append(res, r.name)
	}

	return res
}
