package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractHTMLText extracts the visible text from an HTML job posting.
// Script, style and navigation chrome are dropped; block elements become
// line breaks so the result feeds straight into CleanText.
func ExtractHTMLText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, nav, header, footer, iframe").Remove()

	var sb strings.Builder
	doc.Find("h1, h2, h3, h4, h5, h6, p, li, td, div").Each(func(_ int, s *goquery.Selection) {
		// Only take leaf-ish nodes so nested containers are not duplicated.
		if s.Children().Filter("p, li, div, ul, ol, table").Length() > 0 {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		if goquery.NodeName(s) == "li" {
			sb.WriteString("- ")
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	})

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		// Fall back to the whole body for postings without block markup.
		text = doc.Find("body").Text()
	}

	return CleanText(text), nil
}
