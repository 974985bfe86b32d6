package semantic

import "github.com/xrash/smetrics"

// suggestionThreshold is the minimum Jaro-Winkler similarity for a
// candidate name to be offered as a "did you mean" suggestion (§4.5).
const suggestionThreshold = 0.75

// nearestName returns the candidate with the highest Jaro-Winkler
// similarity to target, if any scores at or above suggestionThreshold.
func nearestName(target string, candidates []string) (string, bool) {
	best := ""
	bestScore := 0.0

	for _, candidate := range candidates {
		if candidate == target {
			continue
		}
		score := smetrics.JaroWinkler(target, candidate, 0.7, 4)
		if score > bestScore {
			bestScore = score
			best = candidate
		}
	}

	if bestScore >= suggestionThreshold {
		return best, true
	}
	return "", false
}
