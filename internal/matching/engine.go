package matching

import (
	"math"

	"github.com/jonathan/talent-matcher/internal/parsing"
	"github.com/jonathan/talent-matcher/internal/types"
)

// Weights control how much each factor contributes to the composite score.
// They should sum to 1; Normalize rescales them when they do not.
type Weights struct {
	Semantic   float64 `json:"semantic"`
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
}

// DefaultWeights returns the standard factor weighting. Semantic similarity
// dominates; skills, experience, and education refine the ordering.
func DefaultWeights() Weights {
	return Weights{
		Semantic:   0.4,
		Skills:     0.3,
		Experience: 0.2,
		Education:  0.1,
	}
}

// Normalize rescales the weights to sum to 1. Weights that already sum to
// 1 are returned unchanged; an all-zero set falls back to the defaults.
func (w Weights) Normalize() Weights {
	sum := w.Semantic + w.Skills + w.Experience + w.Education
	if sum == 0 {
		return DefaultWeights()
	}
	if sum == 1 {
		return w
	}
	return Weights{
		Semantic:   w.Semantic / sum,
		Skills:     w.Skills / sum,
		Experience: w.Experience / sum,
		Education:  w.Education / sum,
	}
}

// Score computes the weighted multi-factor match between one resume and
// one job. It is pure and never fails: missing or malformed structured
// fields degrade the affected sub-score to 0 or a neutral 0.5 instead of
// aborting, since partial data is the normal case.
func Score(resume *types.StructuredResume, job *types.StructuredJob, resumeEmb, jobEmb []float32, weights Weights) types.MatchResult {
	weights = weights.Normalize()

	semantic := CosineSimilarity(resumeEmb, jobEmb)

	skillScore, matched, missing := MatchSkills(resume.Skills, job.RequiredSkills)

	actualYears := parsing.TotalExperienceYears(resume.Experience)
	expScore, expNote := MatchExperience(actualYears, job.RequiredExperience)

	degrees := make([]string, 0, len(resume.Education))
	for _, edu := range resume.Education {
		degrees = append(degrees, edu.Degree)
	}
	candidateRank := parsing.HighestDegreeRank(degrees)
	requiredRank := parsing.DegreeRank(job.RequiredEducation)
	eduScore := MatchEducation(candidateRank, requiredRank)

	composite := weights.Semantic*semantic +
		weights.Skills*skillScore +
		weights.Experience*expScore +
		weights.Education*eduScore

	return types.MatchResult{
		OverallScore:       toPercent(composite),
		SemanticSimilarity: toPercent(semantic),
		SkillMatch: types.SkillMatch{
			Score:         toPercent(skillScore),
			MatchedSkills: matched,
			MissingSkills: missing,
		},
		ExperienceMatch: types.ExperienceMatch{
			Score: toPercent(expScore),
			Note:  expNote,
		},
		EducationMatch: types.EducationMatch{
			Score: toPercent(eduScore),
		},
	}
}

func toPercent(score float64) int {
	return int(math.Round(score * 100))
}
