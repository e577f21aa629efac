package parsing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/talent-matcher/internal/types"
)

var (
	labeledFieldRe = map[string]*regexp.Regexp{
		"title":    regexp.MustCompile(`(?im)^(?:job title|position|role)\s*:\s*(.+)$`),
		"company":  regexp.MustCompile(`(?im)^(?:company|employer|organization)\s*:\s*(.+)$`),
		"location": regexp.MustCompile(`(?im)^location\s*:\s*(.+)$`),
	}

	employmentTypeRe = regexp.MustCompile(`(?i)\b(full[\s-]?time|part[\s-]?time|contract|internship|temporary|freelance)\b`)

	salaryRe = regexp.MustCompile(`(?i)\$\s?\d[\d,]*\s*k?\s*(?:-|–|to)\s*\$?\s?\d[\d,]*\s*k?(?:\s*(?:per|/)\s*(?:year|yr|annum|hour|hr))?`)

	educationLineRe = regexp.MustCompile(`(?im)^.*\b(?:degree|bachelor|master|phd|ph\.d|doctorate|diploma|education)\b.*$`)
)

// positiveKeywords feed the job's keyword score, a soft signal of posting
// quality. The score never affects match scoring.
var positiveKeywords = []string{
	"competitive", "growth", "flexible", "remote", "benefits", "innovative",
	"collaborative", "inclusive", "diverse", "equity", "bonus", "mentorship",
	"learning", "impact", "ownership", "work-life balance",
}

// ExtractJobFields parses job-description text into structured fields.
// Like the resume extractor it never fails; unmatched patterns leave
// fields empty.
func ExtractJobFields(text string) *types.StructuredJob {
	job := types.NewStructuredJob()
	sections := SplitSections(text)

	job.JobTitle = extractLabeled(text, "title")
	if job.JobTitle == "" {
		job.JobTitle = firstShortLine(Preamble(sections))
	}
	job.Company = extractLabeled(text, "company")
	job.Location = extractLabeled(text, "location")

	if m := employmentTypeRe.FindString(text); m != "" {
		job.EmploymentType = normalizeEmploymentType(m)
	}

	job.RequiredSkills = extractRequiredSkills(text, sections[SectionRequirements], sections[SectionSkills])
	job.RequiredExperience = extractRequiredExperience(text)
	job.RequiredEducation = extractRequiredEducation(text)
	job.Responsibilities = sectionItems(sections[SectionResponsibilities])
	job.Benefits = sectionItems(sections[SectionBenefits])

	if m := salaryRe.FindString(text); m != "" {
		job.Salary = strings.TrimSpace(m)
	}

	job.KeywordScore = keywordScore(text)

	return job
}

func extractLabeled(text, field string) string {
	if m := labeledFieldRe[field].FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// firstShortLine treats a short first line of the posting as its title.
func firstShortLine(preamble string) string {
	for _, line := range strings.Split(preamble, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if len(trimmed) <= 80 {
			return trimmed
		}
		return ""
	}
	return ""
}

func normalizeEmploymentType(raw string) string {
	normalized := strings.ToLower(strings.ReplaceAll(raw, " ", "-"))
	return strings.ReplaceAll(normalized, "_", "-")
}

// extractRequiredSkills merges vocabulary hits over the whole posting with
// skills named in the requirements or skills sections. Jobs carry skill
// names only, no proficiency tiers.
func extractRequiredSkills(fullText, requirementsSection, skillsSection string) []string {
	skills := []string{}
	seen := make(map[string]bool)

	add := func(name string) {
		name = NormalizeSkillName(name)
		if name == "" {
			return
		}
		key := strings.ToLower(name)
		if seen[key] {
			return
		}
		seen[key] = true
		skills = append(skills, name)
	}

	for _, name := range vocabularyMatches(fullText) {
		add(name)
	}
	for _, section := range []string{requirementsSection, skillsSection} {
		if section == "" {
			continue
		}
		for _, item := range BulletItems(section) {
			for _, name := range vocabularyMatches(item) {
				add(name)
			}
		}
	}

	return skills
}

// extractRequiredExperience canonicalizes the years requirement to
// "N+ years", or empty when no requirement is stated.
func extractRequiredExperience(text string) string {
	if years, ok := ParseRequiredYears(text); ok {
		return strconv.Itoa(years) + "+ years"
	}
	return ""
}

// extractRequiredEducation returns the first line mentioning a degree
// requirement, trimmed of bullet glyphs.
func extractRequiredEducation(text string) string {
	if m := educationLineRe.FindString(text); m != "" {
		return strings.Trim(strings.TrimSpace(m), "•*-– ")
	}
	return ""
}

// sectionItems returns the bullet items of a section, or nothing when the
// section is absent.
func sectionItems(body string) []string {
	if body == "" {
		return []string{}
	}
	items := BulletItems(body)
	if items == nil {
		return []string{}
	}
	return items
}

// keywordScore counts distinct positive recruiting keywords in the text.
func keywordScore(text string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, keyword := range positiveKeywords {
		if strings.Contains(lower, keyword) {
			count++
		}
	}
	return count
}
