package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/talent-matcher/internal/types"
)

// contactRule binds one regex to one PersonalInfo field. Rules are applied
// in order against the resume preamble; the first match per field wins.
// Keeping the table explicit lets each rule be unit tested on its own.
type contactRule struct {
	name    string
	pattern *regexp.Regexp
	apply   func(info *types.PersonalInfo, match string)
}

var contactRules = []contactRule{
	{
		name:    "email",
		pattern: regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`),
		apply: func(info *types.PersonalInfo, match string) {
			if info.Email == "" {
				info.Email = match
			}
		},
	},
	{
		name:    "phone",
		pattern: regexp.MustCompile(`(?:\+?\d{1,3}[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`),
		apply: func(info *types.PersonalInfo, match string) {
			if info.Phone == "" {
				info.Phone = strings.TrimSpace(match)
			}
		},
	},
	{
		name:    "linkedin",
		pattern: regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[a-zA-Z0-9\-_%]+`),
		apply: func(info *types.PersonalInfo, match string) {
			if info.LinkedIn == "" {
				info.LinkedIn = match
			}
		},
	},
	{
		name: "website",
		// The leading boundary keeps email domains from matching.
		pattern: regexp.MustCompile(`(?im)(?:^|\s)(?:https?://)?(?:www\.)?[a-zA-Z0-9\-]+\.(?:io|dev|me|com|net|org)\b(?:/[a-zA-Z0-9\-_/.]*)?`),
		apply: func(info *types.PersonalInfo, match string) {
			if info.Website != "" {
				return
			}
			match = strings.TrimSpace(match)
			// The linkedin rule owns those URLs.
			if strings.Contains(strings.ToLower(match), "linkedin.com") {
				return
			}
			info.Website = match
		},
	},
	{
		name:    "address",
		pattern: regexp.MustCompile(`(?m)^.*\d+\s+[A-Za-z].*(?:Street|St\.?|Avenue|Ave\.?|Road|Rd\.?|Boulevard|Blvd\.?|Lane|Ln\.?|Drive|Dr\.?)\b.*$`),
		apply: func(info *types.PersonalInfo, match string) {
			if info.Address == "" {
				info.Address = strings.TrimSpace(match)
			}
		},
	},
}

// namePattern matches a plausible person name: two to four capitalized
// words with no digits or URL characters.
var namePattern = regexp.MustCompile(`^[A-Z][a-zA-Z'’.\-]+(?:\s+[A-Z][a-zA-Z'’.\-]+){1,3}$`)

// extractPersonalInfo runs the contact rule table over the preamble text
// and applies the name heuristic to its first lines.
func extractPersonalInfo(preamble string) types.PersonalInfo {
	var info types.PersonalInfo

	for _, rule := range contactRules {
		// All matches are offered; each apply keeps its first acceptable
		// one, so an email's domain cannot shadow a real website.
		for _, match := range rule.pattern.FindAllString(preamble, -1) {
			rule.apply(&info, match)
		}
	}

	info.Name = extractName(preamble, info)
	return info
}

// extractName takes the first preamble line that looks like a person name
// and is not already claimed by a contact rule.
func extractName(preamble string, info types.PersonalInfo) string {
	for i, line := range strings.Split(preamble, "\n") {
		if i >= 5 {
			break
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.Contains(trimmed, "@") || strings.ContainsAny(trimmed, "/:") {
			continue
		}
		if trimmed == info.Phone || trimmed == info.Address {
			continue
		}
		if namePattern.MatchString(trimmed) {
			return trimmed
		}
	}
	return ""
}
