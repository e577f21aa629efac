package types

// SkillMatch partitions a job's required skills against a candidate.
// Every required skill appears in exactly one of MatchedSkills or
// MissingSkills, in the job's declared order.
type SkillMatch struct {
	Score         int      `json:"score"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
}

// ExperienceMatch holds the experience sub-score. Note explains a neutral
// score when the job's required years could not be parsed.
type ExperienceMatch struct {
	Score int    `json:"score"`
	Note  string `json:"note,omitempty"`
}

// EducationMatch holds the education sub-score.
type EducationMatch struct {
	Score int `json:"score"`
}

// MatchResult is the full scoring breakdown for one (resume, job) pair.
// All scores are 0-100. Results are computed on demand and never mutated;
// identical inputs always produce identical results.
type MatchResult struct {
	OverallScore       int             `json:"overall_score"`
	SemanticSimilarity int             `json:"semantic_similarity"`
	SkillMatch         SkillMatch      `json:"skill_match"`
	ExperienceMatch    ExperienceMatch `json:"experience_match"`
	EducationMatch     EducationMatch  `json:"education_match"`
}

// CandidateMatch is one row of a ranked candidate list for a job.
type CandidateMatch struct {
	ResumeID     string      `json:"resume_id"`
	Name         string      `json:"name,omitempty"`
	Email        string      `json:"email,omitempty"`
	MatchScore   int         `json:"match_score"`
	MatchDetails MatchResult `json:"match_details"`
}

// JobMatch is one row of a ranked job list for a candidate.
type JobMatch struct {
	JobID        string      `json:"job_id"`
	JobTitle     string      `json:"job_title,omitempty"`
	Company      string      `json:"company,omitempty"`
	MatchScore   int         `json:"match_score"`
	MatchDetails MatchResult `json:"match_details"`
}
