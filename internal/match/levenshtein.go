package match

// Levenshtein computes the edit distance between two strings: the minimum
// number of single-byte insertions, deletions or substitutions turning a
// into b.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	// keep a as the shorter string, only two rows are needed
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Similarity returns 1 - distance/max(len(a), len(b)) of the normalized
// identifiers: 1.0 for names that only differ in case or separators.
func Similarity(a, b string) float64 {
	normA := NormalizeIdent(a)
	normB := NormalizeIdent(b)

	if len(normA) == 0 && len(normB) == 0 {
		return 1.0
	}

	maxLen := max(len(normA), len(normB))

	return 1.0 - float64(Levenshtein(normA, normB))/float64(maxLen)
}
