package matching

import (
	"strings"

	"github.com/jonathan/talent-matcher/internal/types"
)

// MatchSkills compares a candidate's skills against a job's required
// skills. A required skill counts as matched when a candidate skill equals
// it case-insensitively or one contains the other. Every required skill
// lands in exactly one of matched or missing, preserving the job's
// declared order. The score is |matched|/|required|, defined as 0 when
// either set is empty.
func MatchSkills(candidate []types.Skill, required []string) (score float64, matched, missing []string) {
	matched = []string{}
	missing = []string{}

	if len(required) == 0 || len(candidate) == 0 {
		missing = append(missing, required...)
		return 0, matched, missing
	}

	lowered := make([]string, len(candidate))
	for i, skill := range candidate {
		lowered[i] = strings.ToLower(strings.TrimSpace(skill.Name))
	}

	for _, req := range required {
		if candidateHasSkill(lowered, strings.ToLower(strings.TrimSpace(req))) {
			matched = append(matched, req)
		} else {
			missing = append(missing, req)
		}
	}

	return float64(len(matched)) / float64(len(required)), matched, missing
}

func candidateHasSkill(candidateLower []string, reqLower string) bool {
	if reqLower == "" {
		return false
	}
	for _, have := range candidateLower {
		if have == "" {
			continue
		}
		if have == reqLower || strings.Contains(have, reqLower) || strings.Contains(reqLower, have) {
			return true
		}
	}
	return false
}
