package parsing

import "regexp"

// Degree ranks, ordered so adequacy checks are numeric comparisons rather
// than string equality. Rank 0 means no degree level could be determined.
const (
	RankNone        = 0
	RankHighSchool  = 1
	RankAssociate   = 2
	RankBachelor    = 3
	RankMaster      = 4
	RankPhD         = 5
)

// degreeRule maps a degree-level pattern to its rank. Rules are checked
// highest rank first so "Master of Science" does not fall through to a
// lower match.
type degreeRule struct {
	rank    int
	pattern *regexp.Regexp
}

var degreeRules = []degreeRule{
	{RankPhD, regexp.MustCompile(`(?i)\b(?:ph\.?\s?d|doctorate|doctoral)\b`)},
	{RankMaster, regexp.MustCompile(`(?i)\b(?:master(?:'?s)?|m\.?s(?:c)?\.?|m\.?a\.?|mba|m\.?eng\.?)\b`)},
	{RankBachelor, regexp.MustCompile(`(?i)\b(?:bachelor(?:'?s)?|b\.?s(?:c)?\.?|b\.?a\.?|b\.?eng\.?|undergraduate degree)\b`)},
	{RankAssociate, regexp.MustCompile(`(?i)\b(?:associate(?:'?s)?(?:\s+degree)?|a\.a\.s?\.?|aas)\b`)},
	{RankHighSchool, regexp.MustCompile(`(?i)\b(?:high\s*school|ged|secondary school)\b`)},
}

// DegreeRank maps a free-text degree description onto the fixed rank table:
// high school < associate < bachelor < master < phd. Returns RankNone when
// no level is recognizable.
func DegreeRank(text string) int {
	if text == "" {
		return RankNone
	}
	for _, rule := range degreeRules {
		if rule.pattern.MatchString(text) {
			return rule.rank
		}
	}
	return RankNone
}

// HighestDegreeRank returns the best rank among a candidate's degree
// descriptions. Only the highest degree counts toward education matching.
func HighestDegreeRank(degrees []string) int {
	highest := RankNone
	for _, degree := range degrees {
		if rank := DegreeRank(degree); rank > highest {
			highest = rank
		}
	}
	return highest
}
