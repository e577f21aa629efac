package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/talent-matcher/internal/types"
)

func TestDefaultWeights(t *testing.T) {
	w := DefaultWeights()
	assert.Equal(t, 0.4, w.Semantic)
	assert.Equal(t, 0.3, w.Skills)
	assert.Equal(t, 0.2, w.Experience)
	assert.Equal(t, 0.1, w.Education)
}

func TestWeights_Normalize(t *testing.T) {
	w := Weights{Semantic: 2, Skills: 1, Experience: 1, Education: 0}.Normalize()
	assert.InDelta(t, 0.5, w.Semantic, 1e-9)
	assert.InDelta(t, 0.25, w.Skills, 1e-9)
	assert.InDelta(t, 0.25, w.Experience, 1e-9)
	assert.Zero(t, w.Education)

	assert.Equal(t, DefaultWeights(), Weights{}.Normalize())
	assert.Equal(t, DefaultWeights(), DefaultWeights().Normalize())
}

// The canonical scenario: perfect semantic similarity, half the required
// skills, enough experience, and a degree above the requirement compose to
// an overall score of 85.
func TestScore_CanonicalScenario(t *testing.T) {
	resume := types.NewStructuredResume()
	resume.Skills = []types.Skill{
		{Name: "JavaScript", Level: types.SkillLevelUnspecified},
		{Name: "React", Level: types.SkillLevelUnspecified},
	}
	resume.Experience = []types.Experience{
		{Company: "Acme", Position: "Engineer", StartDate: "Jan 2019", EndDate: "Jan 2023"},
	}
	resume.Education = []types.Education{
		{Institution: "MIT", Degree: "Master of Science"},
	}

	job := types.NewStructuredJob()
	job.RequiredSkills = []string{"javascript", "node.js"}
	job.RequiredExperience = "3+ years"
	job.RequiredEducation = "Bachelor's degree"

	emb := []float32{0.6, 0.8}
	result := Score(resume, job, emb, emb, DefaultWeights())

	assert.Equal(t, 85, result.OverallScore)
	assert.Equal(t, 100, result.SemanticSimilarity)
	assert.Equal(t, 50, result.SkillMatch.Score)
	assert.Equal(t, []string{"javascript"}, result.SkillMatch.MatchedSkills)
	assert.Equal(t, []string{"node.js"}, result.SkillMatch.MissingSkills)
	assert.Equal(t, 100, result.ExperienceMatch.Score)
	assert.Equal(t, 100, result.EducationMatch.Score)
}

func TestScore_EmptyInputsNeverFail(t *testing.T) {
	result := Score(types.NewStructuredResume(), types.NewStructuredJob(), nil, nil, DefaultWeights())

	assert.Zero(t, result.SemanticSimilarity)
	assert.Zero(t, result.SkillMatch.Score)
	// No parseable requirement, so experience and education are neutral.
	assert.Equal(t, 50, result.ExperienceMatch.Score)
	assert.NotEmpty(t, result.ExperienceMatch.Note)
	assert.Equal(t, 50, result.EducationMatch.Score)
	// 0.2*0.5 + 0.1*0.5 = 0.15
	assert.Equal(t, 15, result.OverallScore)
}

func TestScore_Deterministic(t *testing.T) {
	resume := types.NewStructuredResume()
	resume.Skills = []types.Skill{{Name: "Go"}}
	job := types.NewStructuredJob()
	job.RequiredSkills = []string{"Go", "Rust"}

	emb := []float32{1, 0, 0}
	first := Score(resume, job, emb, emb, DefaultWeights())
	second := Score(resume, job, emb, emb, DefaultWeights())
	assert.Equal(t, first, second)
}

func TestScore_CustomWeights(t *testing.T) {
	resume := types.NewStructuredResume()
	resume.Skills = []types.Skill{{Name: "Go"}}
	job := types.NewStructuredJob()
	job.RequiredSkills = []string{"Go"}

	// All weight on skills: full skill match gives a perfect score even
	// with zero semantic similarity.
	weights := Weights{Skills: 1}
	result := Score(resume, job, nil, nil, weights)
	assert.Equal(t, 100, result.OverallScore)
}
