package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/talent-matcher/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintResume(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resume := types.NewStructuredResume()
	resume.PersonalInfo.Name = "Jane Smith"
	resume.PersonalInfo.Email = "jane.smith@example.com"
	resume.Experience = []types.Experience{
		{Company: "Acme Corp", Position: "Senior Engineer"},
	}
	resume.Education = []types.Education{
		{Institution: "State University", Degree: "Bachelor of Science"},
	}
	resume.Skills = []types.Skill{
		{Name: "Go", Level: types.SkillLevelExpert},
		{Name: "PostgreSQL", Level: types.SkillLevelUnspecified},
	}

	p.PrintResume(resume)
	output := buf.String()

	assert.Contains(t, output, "PARSED RESUME")
	assert.Contains(t, output, "Jane Smith")
	assert.Contains(t, output, "jane.smith@example.com")
	assert.Contains(t, output, "Senior Engineer")
	assert.Contains(t, output, "Acme Corp")
	assert.Contains(t, output, "Bachelor of Science")
	assert.Contains(t, output, "Go, PostgreSQL")
}

func TestPrintResume_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResume(nil)

	assert.Empty(t, buf.String())
}

func TestPrintJob(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	job := types.NewStructuredJob()
	job.JobTitle = "Backend Engineer"
	job.Company = "Globex Corporation"
	job.RequiredExperience = "3+ years"
	job.RequiredEducation = "Bachelor's degree"
	job.RequiredSkills = []string{"Go", "Python", "PostgreSQL", "Redis", "Kafka", "Terraform"}

	p.PrintJob(job)
	output := buf.String()

	assert.Contains(t, output, "PARSED JOB POSTING")
	assert.Contains(t, output, "Backend Engineer")
	assert.Contains(t, output, "Globex Corporation")
	assert.Contains(t, output, "3+ years")
	assert.Contains(t, output, "... and 1 more", "skill list is capped")
}

func TestPrintAudit_WithAdvisories(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAudit([]string{"Phone number is missing", "Skills information is missing"})
	output := buf.String()

	assert.Contains(t, output, "MISSING INFORMATION")
	assert.Contains(t, output, "Found 2 advisories")
	assert.Contains(t, output, "Phone number is missing")
	assert.Contains(t, output, "Skills information is missing")
}

func TestPrintAudit_Clean(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAudit(nil)
	output := buf.String()

	assert.Contains(t, output, "NO MISSING INFORMATION")
}

func TestPrintMatch(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.MatchResult{
		OverallScore:       85,
		SemanticSimilarity: 100,
		SkillMatch: types.SkillMatch{
			Score:         50,
			MatchedSkills: []string{"javascript"},
			MissingSkills: []string{"node.js"},
		},
		ExperienceMatch: types.ExperienceMatch{Score: 100},
		EducationMatch:  types.EducationMatch{Score: 100},
	}

	p.PrintMatch(result)
	output := buf.String()

	assert.Contains(t, output, "MATCH RESULT")
	assert.Contains(t, output, "85 / 100")
	assert.Contains(t, output, "javascript")
	assert.Contains(t, output, "node.js")
}

func TestPrintMatch_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatch(nil)

	assert.Empty(t, buf.String())
}

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	job := types.NewStructuredJob()
	job.JobTitle = "Senior Staff Principal Distinguished Engineer Level 99"
	job.Company = "A Very Long Company Name That Should Be Truncated To Fit"

	p.PrintJob(job)
	output := buf.String()

	// Should contain box characters
	assert.True(t, strings.Contains(output, "┌"))
	assert.True(t, strings.Contains(output, "└"))
	assert.True(t, strings.Contains(output, "│"))
}
