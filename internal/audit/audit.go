// Package audit reports which fields a parsed resume or job posting is
// missing. Advisories are informational for recruiters; they never block
// ingestion or matching.
package audit

import (
	"strings"

	"github.com/jonathan/talent-matcher/internal/types"
)

// resumeCheck produces at most one advisory for one logical field. Checks
// run in a fixed priority order so identical input always yields identical
// output.
type resumeCheck struct {
	message string
	missing func(*types.StructuredResume) bool
}

var resumeChecks = []resumeCheck{
	{"Name is missing", func(r *types.StructuredResume) bool {
		return strings.TrimSpace(r.PersonalInfo.Name) == ""
	}},
	{"Email is missing", func(r *types.StructuredResume) bool {
		return strings.TrimSpace(r.PersonalInfo.Email) == ""
	}},
	{"Phone number is missing", func(r *types.StructuredResume) bool {
		return strings.TrimSpace(r.PersonalInfo.Phone) == ""
	}},
	{"Education history is missing", func(r *types.StructuredResume) bool {
		return len(r.Education) == 0
	}},
	{"Education entries are missing institution or degree", func(r *types.StructuredResume) bool {
		if len(r.Education) == 0 {
			return false // already covered by the previous check
		}
		for _, edu := range r.Education {
			if edu.Institution != "" && edu.Degree != "" {
				return false
			}
		}
		return true
	}},
	{"Work experience is missing", func(r *types.StructuredResume) bool {
		return len(r.Experience) == 0
	}},
	{"Experience entries are missing company, position, or description", func(r *types.StructuredResume) bool {
		if len(r.Experience) == 0 {
			return false
		}
		for _, exp := range r.Experience {
			if exp.Company != "" && exp.Position != "" && exp.Description != "" {
				return false
			}
		}
		return true
	}},
	{"Skills information is missing", func(r *types.StructuredResume) bool {
		return len(r.Skills) == 0
	}},
	{"LinkedIn profile is missing (recommended)", func(r *types.StructuredResume) bool {
		return strings.TrimSpace(r.PersonalInfo.LinkedIn) == ""
	}},
}

// AuditResume returns advisories for fields the resume is missing, in a
// fixed priority order: personal info, education, experience, skills, then
// recommended extras.
func AuditResume(resume *types.StructuredResume) []string {
	messages := []string{}
	if resume == nil {
		return messages
	}
	for _, check := range resumeChecks {
		if check.missing(resume) {
			messages = append(messages, check.message)
		}
	}
	return messages
}

type jobCheck struct {
	message string
	missing func(*types.StructuredJob) bool
}

var jobChecks = []jobCheck{
	{"Job title is missing", func(j *types.StructuredJob) bool {
		return strings.TrimSpace(j.JobTitle) == ""
	}},
	{"Company name is missing", func(j *types.StructuredJob) bool {
		return strings.TrimSpace(j.Company) == ""
	}},
	{"Required skills are missing", func(j *types.StructuredJob) bool {
		return len(j.RequiredSkills) == 0
	}},
	{"Required experience is missing", func(j *types.StructuredJob) bool {
		return strings.TrimSpace(j.RequiredExperience) == ""
	}},
	{"Required education is missing", func(j *types.StructuredJob) bool {
		return strings.TrimSpace(j.RequiredEducation) == ""
	}},
	{"Responsibilities are missing", func(j *types.StructuredJob) bool {
		return len(j.Responsibilities) == 0
	}},
	{"Benefits are not listed (recommended)", func(j *types.StructuredJob) bool {
		return len(j.Benefits) == 0
	}},
	{"Salary range is not listed (recommended)", func(j *types.StructuredJob) bool {
		return strings.TrimSpace(j.Salary) == ""
	}},
}

// AuditJob returns advisories for fields the job posting is missing, most
// important first.
func AuditJob(job *types.StructuredJob) []string {
	messages := []string{}
	if job == nil {
		return messages
	}
	for _, check := range jobChecks {
		if check.missing(job) {
			messages = append(messages, check.message)
		}
	}
	return messages
}
