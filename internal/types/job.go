package types

// StructuredJob is the structured-field view of a parsed job description.
type StructuredJob struct {
	JobTitle           string   `json:"job_title,omitempty"`
	Company            string   `json:"company,omitempty"`
	Location           string   `json:"location,omitempty"`
	EmploymentType     string   `json:"employment_type,omitempty"`
	RequiredSkills     []string `json:"required_skills"`
	RequiredExperience string   `json:"required_experience,omitempty"`
	RequiredEducation  string   `json:"required_education,omitempty"`
	Responsibilities   []string `json:"responsibilities"`
	Benefits           []string `json:"benefits"`
	Salary             string   `json:"salary,omitempty"`
	// KeywordScore counts positive recruiting keywords in the source text.
	// It is a soft quality signal only and does not feed match scoring.
	KeywordScore int `json:"keyword_score"`
}

// NewStructuredJob returns a job with all list fields initialized to empty
// slices.
func NewStructuredJob() *StructuredJob {
	return &StructuredJob{
		RequiredSkills:   []string{},
		Responsibilities: []string{},
		Benefits:         []string{},
	}
}
