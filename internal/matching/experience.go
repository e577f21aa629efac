package matching

import (
	"fmt"

	"github.com/jonathan/talent-matcher/internal/parsing"
)

// MatchExperience scores a candidate's total years of experience against a
// job's requirement. The score is a stepped ladder over the ratio
// actual/required rather than a continuous function, so near-misses land
// on predictable tiers. When no required-years figure can be parsed the
// score is a neutral 0.5 with an explanatory note.
func MatchExperience(actualYears float64, requiredRaw string) (score float64, note string) {
	required, ok := parsing.ParseRequiredYears(requiredRaw)
	if !ok {
		return 0.5, "required experience not specified or unparseable"
	}
	if required <= 0 {
		return 1.0, ""
	}

	ratio := actualYears / float64(required)
	switch {
	case ratio >= 1.0:
		score = 1.0
	case ratio >= 0.8:
		score = 0.8
	case ratio >= 0.6:
		score = 0.6
	case ratio >= 0.4:
		score = 0.4
	default:
		score = 0.2
	}

	if score < 1.0 {
		note = fmt.Sprintf("candidate has %.1f of %d required years", actualYears, required)
	}
	return score, note
}
