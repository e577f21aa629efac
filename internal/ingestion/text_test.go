package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText_NormalizesLineEndings(t *testing.T) {
	input := "Line one\r\nLine two\rLine three"
	result := CleanText(input)
	assert.Equal(t, "Line one\nLine two\nLine three", result)
}

func TestCleanText_CollapsesBlankRuns(t *testing.T) {
	input := "Experience\n\n\n\n\nAcme Corp"
	result := CleanText(input)
	assert.Equal(t, "Experience\n\nAcme Corp", result)
}

func TestCleanText_PreservesBulletGlyphs(t *testing.T) {
	input := "Skills\n• Go   and    Docker\n* Python\n- SQL"
	result := CleanText(input)
	assert.Contains(t, result, "• Go and Docker")
	assert.Contains(t, result, "* Python")
	assert.Contains(t, result, "- SQL")
}

func TestCleanText_CollapsesInteriorSpaces(t *testing.T) {
	result := CleanText("Jane    Doe\tSenior   Engineer")
	assert.Equal(t, "Jane Doe Senior Engineer", result)
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n \t \n"))
}

func TestIsBulletLine(t *testing.T) {
	assert.True(t, IsBulletLine("• item"))
	assert.True(t, IsBulletLine("  - item"))
	assert.True(t, IsBulletLine("– item"))
	assert.False(t, IsBulletLine("plain line"))
	assert.False(t, IsBulletLine("-unspaced is not a bullet"))
}

func TestStripBullet(t *testing.T) {
	assert.Equal(t, "Go", StripBullet("• Go"))
	assert.Equal(t, "Python", StripBullet("  * Python"))
	assert.Equal(t, "SQL", StripBullet("- SQL"))
	assert.Equal(t, "plain", StripBullet("plain"))
}

func TestExtractHTMLText_BasicPosting(t *testing.T) {
	html := `<html><head><style>body{color:red}</style></head><body>
		<nav>Home | Jobs</nav>
		<h1>Senior Go Engineer</h1>
		<p>Acme Corp is hiring.</p>
		<ul><li>Build services</li><li>Review code</li></ul>
		<script>trackPageView()</script>
	</body></html>`

	text, err := ExtractHTMLText(html)
	assert.NoError(t, err)
	assert.Contains(t, text, "Senior Go Engineer")
	assert.Contains(t, text, "Acme Corp is hiring.")
	assert.Contains(t, text, "- Build services")
	assert.NotContains(t, text, "trackPageView")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "color:red")
}

func TestExtractHTMLText_NoBlockMarkup(t *testing.T) {
	text, err := ExtractHTMLText("<html><body>Just a sentence.</body></html>")
	assert.NoError(t, err)
	assert.Equal(t, "Just a sentence.", text)
}
