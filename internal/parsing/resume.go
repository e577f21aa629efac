package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/talent-matcher/internal/ingestion"
	"github.com/jonathan/talent-matcher/internal/types"
)

var (
	gpaRe = regexp.MustCompile(`(?i)gpa[:\s]*([0-4]\.\d{1,2})`)

	// "Senior Engineer at Acme Corp" / "Senior Engineer, Acme Corp" /
	// "Senior Engineer | Acme Corp"
	positionCompanyRe = regexp.MustCompile(`^(.{2,60}?)\s*(?:\bat\b|\||,|-)\s*(.{2,60})$`)

	// "City, ST" or "City, Country"
	locationRe = regexp.MustCompile(`^[A-Z][a-zA-Z.\s]+,\s*(?:[A-Z]{2}|[A-Z][a-zA-Z\s]+)$`)

	fieldOfStudyRe = regexp.MustCompile(`(?i)\bin\s+([A-Za-z][A-Za-z\s]{2,40}?)(?:$|,|\.|\()`)
)

// ExtractResumeFields parses resume text into structured fields. It never
// fails: any pattern that does not match simply leaves its field empty.
func ExtractResumeFields(text string) *types.StructuredResume {
	resume := types.NewStructuredResume()
	sections := SplitSections(text)

	resume.PersonalInfo = extractPersonalInfo(Preamble(sections))
	resume.Education = parseEducationSection(sections[SectionEducation])
	resume.Experience = parseExperienceSection(sections[SectionExperience])
	resume.Skills = extractSkills(text, sections[SectionSkills])
	resume.Certifications = parseCertifications(sections[SectionCertifications])
	resume.Languages = parseLanguages(sections[SectionLanguages])
	resume.Projects = parseProjects(sections[SectionProjects])

	return resume
}

// parseExperienceSection splits the experience section into blank-line
// separated entries and pulls position, company, dates, location and
// description out of each.
func parseExperienceSection(body string) []types.Experience {
	entries := []types.Experience{}
	if body == "" {
		return entries
	}

	for _, block := range blocks(body) {
		entry := types.Experience{}
		lines := strings.Split(block, "\n")

		if start, end, ok := findDateRange(block); ok {
			entry.StartDate = start
			entry.EndDate = end
			entry.Current = IsOngoing(end)
		}

		var descLines []string
		for i, line := range lines {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			stripped := dateRangeRe.ReplaceAllString(trimmed, "")
			stripped = strings.Trim(stripped, " |,–-")

			switch {
			case i == 0:
				position, company := splitPositionCompany(stripped)
				entry.Position = position
				entry.Company = company
			case entry.Location == "" && locationRe.MatchString(stripped):
				entry.Location = stripped
			case entry.Company == "" && i == 1 && stripped != "" && !strings.Contains(stripped, " "):
				entry.Company = stripped
			default:
				if stripped != "" {
					descLines = append(descLines, trimmed)
				}
			}
		}
		entry.Description = strings.Join(descLines, "\n")

		if entry.Position != "" || entry.Company != "" || entry.StartDate != "" {
			entries = append(entries, entry)
		}
	}

	return entries
}

// splitPositionCompany splits an entry's first line into position and
// company. A line with no recognized separator is all position.
func splitPositionCompany(line string) (string, string) {
	if line == "" {
		return "", ""
	}
	if m := positionCompanyRe.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	return line, ""
}

// parseEducationSection splits the education section into entries. The
// degree line is recognized by the rank table; the institution is the first
// line that is not a degree, date or GPA.
func parseEducationSection(body string) []types.Education {
	entries := []types.Education{}
	if body == "" {
		return entries
	}

	for _, block := range blocks(body) {
		entry := types.Education{}

		if start, end, ok := findDateRange(block); ok {
			entry.StartDate = start
			entry.EndDate = end
		}
		if m := gpaRe.FindStringSubmatch(block); m != nil {
			entry.GPA = m[1]
		}

		for _, line := range strings.Split(block, "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}

			if DegreeRank(trimmed) != RankNone && entry.Degree == "" {
				entry.Degree = strings.Trim(dateRangeRe.ReplaceAllString(trimmed, ""), " |,–-")
				if m := fieldOfStudyRe.FindStringSubmatch(trimmed); m != nil {
					entry.Field = strings.TrimSpace(m[1])
				}
				continue
			}

			stripped := dateRangeRe.ReplaceAllString(trimmed, "")
			stripped = gpaRe.ReplaceAllString(stripped, "")
			stripped = strings.Trim(stripped, " |,–-")
			if stripped != "" && entry.Institution == "" {
				entry.Institution = stripped
			}
		}

		if entry.Institution != "" || entry.Degree != "" {
			entries = append(entries, entry)
		}
	}

	return entries
}

// extractSkills merges vocabulary hits across the whole document with
// bullet items from the skills section. Duplicates collapse to one entry;
// an explicit proficiency marker wins over unspecified.
func extractSkills(fullText, skillsSection string) []types.Skill {
	skills := []types.Skill{}
	seen := make(map[string]int)

	add := func(name string, level types.SkillLevel) {
		name = NormalizeSkillName(name)
		if name == "" {
			return
		}
		key := strings.ToLower(name)
		if idx, ok := seen[key]; ok {
			if skills[idx].Level == types.SkillLevelUnspecified && level != types.SkillLevelUnspecified {
				skills[idx].Level = level
			}
			return
		}
		seen[key] = len(skills)
		skills = append(skills, types.Skill{Name: name, Level: level})
	}

	for _, name := range vocabularyMatches(fullText) {
		add(name, types.SkillLevelUnspecified)
	}

	if skillsSection != "" {
		for _, item := range BulletItems(skillsSection) {
			level := detectSkillLevel(item)
			// One bullet may list several skills: "Go, Python, SQL".
			for _, part := range splitSkillList(item) {
				add(part, level)
			}
		}
	}

	return skills
}

// splitSkillList breaks a skills bullet into individual skill names,
// stripping any trailing proficiency annotation.
func splitSkillList(item string) []string {
	item = regexp.MustCompile(`(?i)\s*[(\[]?(?:expert|advanced|proficient|intermediate|beginner|basic|familiar)[)\]]?\s*$`).ReplaceAllString(item, "")

	var parts []string
	for _, part := range strings.FieldsFunc(item, func(r rune) bool {
		return r == ',' || r == ';' || r == '/'
	}) {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" && len(trimmed) <= 40 {
			parts = append(parts, trimmed)
		}
	}
	return parts
}

// parseCertifications treats each bullet item in the certifications section
// as one certification, with an optional "Name - Issuer (Date)" shape.
func parseCertifications(body string) []types.Certification {
	certs := []types.Certification{}
	if body == "" {
		return certs
	}

	yearRe := regexp.MustCompile(`\(?\b(20\d{2}|19\d{2})\b\)?`)
	for _, item := range BulletItems(body) {
		cert := types.Certification{}
		if m := yearRe.FindStringSubmatch(item); m != nil {
			cert.Date = m[1]
			item = strings.TrimSpace(yearRe.ReplaceAllString(item, ""))
		}
		if name, issuer, ok := strings.Cut(item, " - "); ok {
			cert.Name = strings.TrimSpace(name)
			cert.Issuer = strings.TrimSpace(issuer)
		} else {
			cert.Name = strings.Trim(item, " ,")
		}
		if cert.Name != "" {
			certs = append(certs, cert)
		}
	}
	return certs
}

// parseLanguages reads "Language (proficiency)" or "Language - proficiency"
// bullet items from the languages section.
func parseLanguages(body string) []types.Language {
	langs := []types.Language{}
	if body == "" {
		return langs
	}

	profRe := regexp.MustCompile(`(?i)[(\-–]\s*(native|fluent|professional|conversational|basic|intermediate|advanced)\s*\)?`)
	for _, item := range BulletItems(body) {
		lang := types.Language{}
		if m := profRe.FindStringSubmatch(item); m != nil {
			lang.Proficiency = strings.ToLower(m[1])
			item = profRe.ReplaceAllString(item, "")
		}
		lang.Name = strings.Trim(item, " ()-–,")
		if lang.Name != "" {
			langs = append(langs, lang)
		}
	}
	return langs
}

// parseProjects splits the projects section into blank-line separated
// entries: first line is the name, a URL is pulled out if present, the rest
// is description.
func parseProjects(body string) []types.Project {
	projects := []types.Project{}
	if body == "" {
		return projects
	}

	urlRe := regexp.MustCompile(`https?://\S+`)
	for _, block := range blocks(body) {
		lines := strings.Split(block, "\n")
		project := types.Project{}

		if url := urlRe.FindString(block); url != "" {
			project.URL = strings.TrimRight(url, ".,)")
		}

		first := strings.TrimSpace(urlRe.ReplaceAllString(lines[0], ""))
		project.Name = strings.Trim(ingestion.StripBullet(first), " |,–-")
		if len(lines) > 1 {
			project.Description = strings.TrimSpace(urlRe.ReplaceAllString(strings.Join(lines[1:], "\n"), ""))
		}

		if project.Name != "" {
			projects = append(projects, project)
		}
	}
	return projects
}
