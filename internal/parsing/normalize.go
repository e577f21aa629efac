package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/talent-matcher/internal/types"
)

// skillVocabulary is the fixed list of skills detected anywhere in a
// document, keyed by canonical name with known spelling variants.
var skillVocabulary = []struct {
	canonical string
	variants  []string
}{
	{"JavaScript", []string{"javascript", "js"}},
	{"TypeScript", []string{"typescript", "ts"}},
	{"Python", []string{"python"}},
	{"Java", []string{"java"}},
	{"Go", []string{"golang", "go lang", "go"}},
	{"C++", []string{"c++", "cpp"}},
	{"C#", []string{"c#", "csharp"}},
	{"Ruby", []string{"ruby"}},
	{"PHP", []string{"php"}},
	{"Swift", []string{"swift"}},
	{"Kotlin", []string{"kotlin"}},
	{"Rust", []string{"rust"}},
	{"React", []string{"react", "react.js", "reactjs"}},
	{"Angular", []string{"angular", "angularjs"}},
	{"Vue", []string{"vue", "vue.js", "vuejs"}},
	{"Node.js", []string{"node.js", "nodejs", "node js"}},
	{"Express", []string{"express", "express.js"}},
	{"Django", []string{"django"}},
	{"Flask", []string{"flask"}},
	{"Spring", []string{"spring boot", "spring"}},
	{"SQL", []string{"sql"}},
	{"PostgreSQL", []string{"postgresql", "postgres"}},
	{"MySQL", []string{"mysql"}},
	{"MongoDB", []string{"mongodb", "mongo"}},
	{"Redis", []string{"redis"}},
	{"Elasticsearch", []string{"elasticsearch"}},
	{"GraphQL", []string{"graphql"}},
	{"REST", []string{"rest api", "restful", "rest"}},
	{"Docker", []string{"docker"}},
	{"Kubernetes", []string{"kubernetes", "k8s"}},
	{"AWS", []string{"aws", "amazon web services"}},
	{"Azure", []string{"azure"}},
	{"GCP", []string{"gcp", "google cloud"}},
	{"Terraform", []string{"terraform"}},
	{"Git", []string{"git"}},
	{"CI/CD", []string{"ci/cd", "continuous integration"}},
	{"Linux", []string{"linux"}},
	{"Machine Learning", []string{"machine learning", "ml"}},
	{"Data Science", []string{"data science"}},
	{"Agile", []string{"agile", "scrum"}},
	{"HTML", []string{"html"}},
	{"CSS", []string{"css"}},
}

// skillNormalizations maps lowercase variants to canonical names, built
// from the vocabulary once at init.
var skillNormalizations = buildNormalizations()

func buildNormalizations() map[string]string {
	m := make(map[string]string)
	for _, entry := range skillVocabulary {
		m[strings.ToLower(entry.canonical)] = entry.canonical
		for _, variant := range entry.variants {
			m[variant] = entry.canonical
		}
	}
	return m
}

// NormalizeSkillName maps a raw skill mention onto its canonical vocabulary
// name when known, otherwise returns the trimmed original.
func NormalizeSkillName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	if canonical, ok := skillNormalizations[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// levelPatterns detect an explicit proficiency mention alongside a skill,
// e.g. "Python (expert)" or "intermediate SQL".
var levelPatterns = []struct {
	level   types.SkillLevel
	pattern *regexp.Regexp
}{
	{types.SkillLevelExpert, regexp.MustCompile(`(?i)\b(?:expert|advanced|proficient)\b`)},
	{types.SkillLevelIntermediate, regexp.MustCompile(`(?i)\bintermediate\b`)},
	{types.SkillLevelBeginner, regexp.MustCompile(`(?i)\b(?:beginner|basic|familiar)\b`)},
}

// detectSkillLevel finds an explicit proficiency marker in a skill mention.
func detectSkillLevel(text string) types.SkillLevel {
	for _, entry := range levelPatterns {
		if entry.pattern.MatchString(text) {
			return entry.level
		}
	}
	return types.SkillLevelUnspecified
}

// vocabularyMatches returns canonical names of vocabulary skills mentioned
// in text, in vocabulary order. Single-character and symbol-bearing
// variants are matched with custom boundaries so "Go" does not fire on
// "Google" and "C++" still matches.
func vocabularyMatches(text string) []string {
	lower := strings.ToLower(text)

	var found []string
	for _, entry := range skillVocabulary {
		for _, variant := range entry.variants {
			if containsToken(lower, variant) {
				found = append(found, entry.canonical)
				break
			}
		}
	}
	return found
}

// containsToken reports whether haystack contains needle bounded by
// non-alphanumeric characters on both sides.
func containsToken(haystack, needle string) bool {
	idx := 0
	for {
		pos := strings.Index(haystack[idx:], needle)
		if pos < 0 {
			return false
		}
		pos += idx

		beforeOK := pos == 0 || !isWordChar(haystack[pos-1])
		afterPos := pos + len(needle)
		afterOK := afterPos >= len(haystack) || !isWordChar(haystack[afterPos])
		if beforeOK && afterOK {
			return true
		}

		idx = pos + 1
		if idx >= len(haystack) {
			return false
		}
	}
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
