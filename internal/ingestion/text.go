// Package ingestion normalizes raw resume and job-posting text before parsing.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	multiSpaceRe = regexp.MustCompile(`[ \t]+`)
	blankRunRe   = regexp.MustCompile(`\n\n\n+`)
)

// bulletPrefixes are glyphs that introduce list items in resumes and job
// postings. They are preserved by cleaning so the section parser can split
// on them later.
var bulletPrefixes = []string{"• ", "* ", "- ", "– ", "· "}

// CleanText normalizes line endings and whitespace while preserving the
// line structure the field extractors depend on (section headers and
// bullet lists).
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = blankRunRe.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}

// cleanLine trims trailing whitespace and collapses interior space runs.
// Bullet lines keep their glyph and indentation.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return ""
	}

	if IsBulletLine(trimmed) {
		indent := len(line) - len(trimmed)
		glyph := trimmed[:bulletGlyphLen(trimmed)]
		body := multiSpaceRe.ReplaceAllString(trimmed[bulletGlyphLen(trimmed):], " ")
		return strings.Repeat(" ", indent) + glyph + body
	}

	return multiSpaceRe.ReplaceAllString(trimmed, " ")
}

// IsBulletLine reports whether a line (already left-trimmed or not) starts
// with a recognized bullet glyph.
func IsBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

// bulletGlyphLen returns the byte length of the bullet prefix on a trimmed
// bullet line, including its trailing space.
func bulletGlyphLen(trimmed string) int {
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return len(prefix)
		}
	}
	return 0
}

// StripBullet removes a leading bullet glyph from a line, if present.
func StripBullet(line string) string {
	trimmed := strings.TrimSpace(line)
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return strings.TrimSpace(trimmed[len(prefix):])
		}
	}
	// A bare glyph with no trailing space still counts.
	for _, glyph := range []string{"•", "*", "-", "–", "·"} {
		if strings.HasPrefix(trimmed, glyph) {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, glyph))
		}
	}
	return trimmed
}
