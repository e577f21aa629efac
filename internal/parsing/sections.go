// Package parsing extracts structured fields from free-form resume and
// job-description text using rule tables and keyword matching. Extraction
// never fails: absent patterns yield empty values, since partial documents
// are the normal case.
package parsing

import (
	"strings"

	"github.com/jonathan/talent-matcher/internal/ingestion"
)

// Canonical section names used as keys in the split result.
const (
	SectionSummary          = "summary"
	SectionExperience       = "experience"
	SectionEducation        = "education"
	SectionSkills           = "skills"
	SectionCertifications   = "certifications"
	SectionLanguages        = "languages"
	SectionProjects         = "projects"
	SectionRequirements     = "requirements"
	SectionResponsibilities = "responsibilities"
	SectionBenefits         = "benefits"

	// sectionPreamble holds everything before the first recognized header.
	sectionPreamble = "preamble"
)

// sectionHeaders maps lowercase header variants to canonical section names.
// A line whose trimmed, colon-stripped form matches a variant starts a new
// section that runs until the next recognized header or end of text.
var sectionHeaders = map[string]string{
	"summary":                 SectionSummary,
	"professional summary":    SectionSummary,
	"objective":               SectionSummary,
	"career objective":        SectionSummary,
	"about":                   SectionSummary,
	"about me":                SectionSummary,
	"experience":              SectionExperience,
	"work experience":         SectionExperience,
	"work history":            SectionExperience,
	"employment":              SectionExperience,
	"employment history":      SectionExperience,
	"professional experience": SectionExperience,
	"education":               SectionEducation,
	"academic background":     SectionEducation,
	"qualifications":          SectionEducation,
	"skills":                  SectionSkills,
	"technical skills":        SectionSkills,
	"core competencies":       SectionSkills,
	"key skills":              SectionSkills,
	"required skills":         SectionRequirements,
	"certifications":          SectionCertifications,
	"certificates":            SectionCertifications,
	"licenses":                SectionCertifications,
	"licenses & certifications": SectionCertifications,
	"languages":          SectionLanguages,
	"projects":           SectionProjects,
	"personal projects":  SectionProjects,
	"side projects":      SectionProjects,
	"requirements":       SectionRequirements,
	"what we're looking for": SectionRequirements,
	"what you bring":     SectionRequirements,
	"responsibilities":   SectionResponsibilities,
	"duties":             SectionResponsibilities,
	"what you'll do":     SectionResponsibilities,
	"the role":           SectionResponsibilities,
	"benefits":           SectionBenefits,
	"perks":              SectionBenefits,
	"what we offer":      SectionBenefits,
	"compensation":       SectionBenefits,
}

// maxHeaderLen bounds how long a line can be and still count as a section
// header; real headers are short.
const maxHeaderLen = 48

// Section is a contiguous block of text under one recognized header.
type Section struct {
	Name string
	Body string
}

// SplitSections partitions text into sections keyed by canonical header
// names. Text before the first recognized header lands in the preamble.
// When the same section appears twice its bodies are concatenated.
func SplitSections(text string) map[string]string {
	sections := make(map[string]string)
	current := sectionPreamble
	var body []string

	flush := func() {
		block := strings.TrimSpace(strings.Join(body, "\n"))
		if block != "" {
			if existing, ok := sections[current]; ok {
				sections[current] = existing + "\n" + block
			} else {
				sections[current] = block
			}
		}
		body = body[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		if name, ok := matchHeader(line); ok {
			flush()
			current = name
			continue
		}
		body = append(body, line)
	}
	flush()

	return sections
}

// matchHeader reports whether a line is a recognized section header and
// returns its canonical name.
func matchHeader(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) > maxHeaderLen {
		return "", false
	}
	if ingestion.IsBulletLine(trimmed) {
		return "", false
	}

	key := strings.ToLower(strings.TrimSuffix(trimmed, ":"))
	key = strings.TrimSpace(strings.TrimLeft(key, "#"))
	name, ok := sectionHeaders[key]
	return name, ok
}

// Preamble returns the text that appeared before the first recognized
// header, typically the contact block of a resume.
func Preamble(sections map[string]string) string {
	return sections[sectionPreamble]
}

// BulletItems splits a section body into bullet list items. Lines without a
// bullet glyph are ignored unless the section has no bullets at all, in
// which case each non-empty line is treated as one item.
func BulletItems(body string) []string {
	lines := strings.Split(body, "\n")

	items := make([]string, 0, len(lines))
	for _, line := range lines {
		if ingestion.IsBulletLine(line) {
			if item := ingestion.StripBullet(line); item != "" {
				items = append(items, item)
			}
		}
	}
	if len(items) > 0 {
		return items
	}

	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// blocks splits a section body into entry blocks separated by blank lines.
func blocks(body string) []string {
	var result []string
	for _, block := range strings.Split(body, "\n\n") {
		if trimmed := strings.TrimSpace(block); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
