package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSections_BasicResume(t *testing.T) {
	text := "Jane Doe\njane@example.com\n\nExperience\nAcme Corp\n\nEducation\nMIT"

	sections := SplitSections(text)

	assert.Contains(t, Preamble(sections), "Jane Doe")
	assert.Equal(t, "Acme Corp", sections[SectionExperience])
	assert.Equal(t, "MIT", sections[SectionEducation])
}

func TestSplitSections_HeaderVariants(t *testing.T) {
	for _, header := range []string{"Experience", "EXPERIENCE", "Work History", "work experience:", "Professional Experience"} {
		sections := SplitSections(header + "\nAcme Corp")
		assert.Equal(t, "Acme Corp", sections[SectionExperience], "header variant %q", header)
	}
}

func TestSplitSections_BoundedByNextHeader(t *testing.T) {
	text := "Skills\nGo\nDocker\nEducation\nMIT"

	sections := SplitSections(text)

	assert.Equal(t, "Go\nDocker", sections[SectionSkills])
	assert.Equal(t, "MIT", sections[SectionEducation])
}

func TestSplitSections_LongLineIsNotAHeader(t *testing.T) {
	text := "Skills\nexperience building large distributed systems at scale over many years"

	sections := SplitSections(text)

	assert.Contains(t, sections[SectionSkills], "experience building")
	assert.NotContains(t, sections, SectionExperience)
}

func TestSplitSections_RepeatedSectionConcatenates(t *testing.T) {
	text := "Skills\nGo\n\nTechnical Skills\nDocker"

	sections := SplitSections(text)

	assert.Contains(t, sections[SectionSkills], "Go")
	assert.Contains(t, sections[SectionSkills], "Docker")
}

func TestBulletItems_MixedGlyphs(t *testing.T) {
	items := BulletItems("• first\n* second\n- third\n– fourth")
	assert.Equal(t, []string{"first", "second", "third", "fourth"}, items)
}

func TestBulletItems_FallsBackToLines(t *testing.T) {
	items := BulletItems("first line\nsecond line\n\nthird")
	assert.Equal(t, []string{"first line", "second line", "third"}, items)
}

func TestBulletItems_BulletsWinOverPlainLines(t *testing.T) {
	items := BulletItems("intro text\n• only this\n• and this")
	assert.Equal(t, []string{"only this", "and this"}, items)
}
