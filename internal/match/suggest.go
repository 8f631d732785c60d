package match

// MinSimilarity is the score a candidate needs to be suggested.
const MinSimilarity = 0.6

// Suggest returns the candidate most similar to name, or false when none
// reaches MinSimilarity. Ties go to the earlier candidate.
func Suggest(name string, candidates []string) (string, bool) {
	best, bestScore := "", MinSimilarity

	for _, c := range candidates {
		if c == name {
			continue
		}

		if score := Similarity(name, c); score >= bestScore && (best == "" || score > bestScore) {
			best, bestScore = c, score
		}
	}

	return best, best != ""
}
