// Package types provides type definitions for structured data used throughout the talent-matcher system.
package types

// SkillLevel is a candidate's self-reported proficiency for a skill.
type SkillLevel string

const (
	SkillLevelBeginner     SkillLevel = "beginner"
	SkillLevelIntermediate SkillLevel = "intermediate"
	SkillLevelExpert       SkillLevel = "expert"
	SkillLevelUnspecified  SkillLevel = "unspecified"
)

// PersonalInfo holds contact details extracted from a resume.
// Every field is optional; absence is reported by the auditor, never rejected.
type PersonalInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Education is a single education entry in a resume.
type Education struct {
	Institution string `json:"institution,omitempty"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	GPA         string `json:"gpa,omitempty"`
}

// Experience is a single work-history entry in a resume.
type Experience struct {
	Company     string `json:"company,omitempty"`
	Position    string `json:"position,omitempty"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Current     bool   `json:"current,omitempty"`
	Description string `json:"description,omitempty"`
}

// Skill is a named skill with an optional proficiency level.
type Skill struct {
	Name  string     `json:"name"`
	Level SkillLevel `json:"level"`
}

// Certification is a professional certification entry.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

// Language is a spoken-language entry.
type Language struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency,omitempty"`
}

// Project is a personal or professional project entry.
type Project struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
}

// StructuredResume is the structured-field view of a parsed resume.
// All slice fields are always non-nil so downstream scoring never branches
// on nil-vs-empty.
type StructuredResume struct {
	PersonalInfo   PersonalInfo    `json:"personal_info"`
	Education      []Education     `json:"education"`
	Experience     []Experience    `json:"experience"`
	Skills         []Skill         `json:"skills"`
	Certifications []Certification `json:"certifications"`
	Languages      []Language      `json:"languages"`
	Projects       []Project       `json:"projects"`
}

// NewStructuredResume returns a resume with all list fields initialized to
// empty slices.
func NewStructuredResume() *StructuredResume {
	return &StructuredResume{
		Education:      []Education{},
		Experience:     []Experience{},
		Skills:         []Skill{},
		Certifications: []Certification{},
		Languages:      []Language{},
		Projects:       []Project{},
	}
}
