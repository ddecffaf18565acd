package match

import (
	"strings"
)

// Normalize case-folds s and strips separators, so that "Float_32",
// "float-32" and "FLOAT32" all compare equal.
func Normalize(s string) string {
	var sb strings.Builder

	sb.Grow(len(s))

	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if !isSeparator(r) {
			sb.WriteRune(r)
		}
	}

	return sb.String()
}

// Closest returns the candidate most similar to name after normalization.
// Ties keep the earlier candidate. ok is false when no candidate reaches
// minScore or name is blank.
func Closest(name string, candidates []string, minScore float64) (best string, ok bool) {
	norm := Normalize(name)
	if norm == "" {
		return "", false
	}

	bestScore := -1.0

	for _, c := range candidates {
		score := Similarity(norm, Normalize(c))
		if score > bestScore {
			best, bestScore = c, score
		}
	}

	if bestScore < minScore {
		return "", false
	}

	return best, true
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}
