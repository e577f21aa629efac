// Package extraction converts uploaded documents into plain text.
package extraction

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
)

const (
	// minExtractedLength guards against converter runs that technically
	// succeed but produce no usable text.
	minExtractedLength = 20

	binarySampleSize = 1000
	binaryThreshold  = 0.3
)

// supportedMimeTypes maps file extensions to the MIME type handed to the
// converter. Legacy .doc is deliberately absent: its binary format needs
// external tooling we do not ship, so uploads are rejected up front.
var supportedMimeTypes = map[string]string{
	".pdf":  "application/pdf",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".rtf":  "application/rtf",
	".odt":  "application/vnd.oasis.opendocument.text",
}

// ExtractText converts an uploaded document into plain text based on its
// file extension. Returns ErrUnsupportedFormat for unknown or unsupported
// extensions and an ExtractionError when the converter fails.
func ExtractText(data []byte, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	if ext == ".txt" || ext == ".md" {
		if isBinaryData(data) {
			return "", fmt.Errorf("%s: %w", filename, ErrUnsupportedFormat)
		}
		return string(data), nil
	}

	mimeType, ok := supportedMimeTypes[ext]
	if !ok {
		return "", fmt.Errorf("%s: %w", filename, ErrUnsupportedFormat)
	}

	res, err := docconv.Convert(bytes.NewReader(data), mimeType, true)
	if err != nil {
		return "", &ExtractionError{Filename: filename, Cause: err}
	}
	if res.Error != "" {
		return "", &ExtractionError{Filename: filename, Cause: fmt.Errorf("%s", res.Error)}
	}

	text := strings.TrimSpace(res.Body)
	if len(text) < minExtractedLength {
		return "", &ExtractionError{
			Filename: filename,
			Cause:    fmt.Errorf("extracted text too short (%d chars)", len(text)),
		}
	}

	return text, nil
}

// isBinaryData checks whether content that claims to be plain text is
// actually a binary payload (PDF/ZIP magic bytes or a high proportion of
// non-printable characters).
func isBinaryData(data []byte) bool {
	if len(data) == 0 {
		return false
	}

	if bytes.HasPrefix(data, []byte("%PDF-")) {
		return true
	}
	if bytes.HasPrefix(data, []byte("PK")) {
		return true
	}

	sampleSize := min(binarySampleSize, len(data))
	nonPrintable := 0
	for i := 0; i < sampleSize; i++ {
		ch := data[i]
		if ch < 32 && ch != '\n' && ch != '\r' && ch != '\t' {
			nonPrintable++
		}
	}

	return float64(nonPrintable)/float64(sampleSize) > binaryThreshold
}
