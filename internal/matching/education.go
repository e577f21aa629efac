package matching

import "github.com/jonathan/talent-matcher/internal/parsing"

// MatchEducation compares the candidate's highest degree rank against the
// job's required rank. A candidate at or above the requirement scores
// full; one rank below scores 0.7; anything further below, including no
// recognizable degree, scores 0.3. An undeterminable requirement is
// scored as a neutral 0.5.
func MatchEducation(candidateRank, requiredRank int) float64 {
	if requiredRank == parsing.RankNone {
		return 0.5
	}

	switch {
	case candidateRank >= requiredRank:
		return 1.0
	case candidateRank == requiredRank-1 && candidateRank > parsing.RankNone:
		return 0.7
	default:
		return 0.3
	}
}
