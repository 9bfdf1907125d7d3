package ingestion

import (
	"bytes"
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Format is a supported input document format
type Format string

// Supported formats
const (
	FormatPDF      Format = "pdf"
	FormatDOCX     Format = "docx"
	FormatText     Format = "txt"
	FormatMarkdown Format = "md"
)

var formatsByExt = map[string]Format{
	".pdf":  FormatPDF,
	".docx": FormatDOCX,
	".txt":  FormatText,
	".md":   FormatMarkdown,
}

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>|<w:br/>|<w:cr/>`)
	docxTab          = regexp.MustCompile(`<w:tab/>`)
	xmlTag           = regexp.MustCompile(`<[^>]+>`)
)

// DetectFormat maps a filename to its format by extension
func DetectFormat(filename string) (Format, bool) {
	f, ok := formatsByExt[strings.ToLower(filepath.Ext(filename))]
	return f, ok
}

// IsSupported reports whether filename has a decodable extension
func IsSupported(filename string) bool {
	_, ok := DetectFormat(filename)
	return ok
}

// ExtractText decodes a document into plain text, choosing the decoder by the
// extension of filename
func ExtractText(filename string, data []byte) (string, error) {
	format, ok := DetectFormat(filename)
	if !ok {
		return "", &DecodeError{Source: filename, Message: fmt.Sprintf("unsupported file type %q", filepath.Ext(filename))}
	}

	switch format {
	case FormatPDF:
		return extractPDFText(filename, data)
	case FormatDOCX:
		return extractDocxText(filename, data)
	default:
		return string(data), nil
	}
}

// extractPDFText reads the plain text of every page in order
func extractPDFText(filename string, data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &DecodeError{Source: filename, Message: "failed to read pdf", Cause: err}
	}

	var text strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", &DecodeError{Source: filename, Message: fmt.Sprintf("failed to read page %d", i), Cause: err}
		}
		text.WriteString(content)
		text.WriteString("\n")
	}
	return text.String(), nil
}

// extractDocxText reads word/document.xml and strips its markup, keeping one
// line per paragraph
func extractDocxText(filename string, data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &DecodeError{Source: filename, Message: "failed to parse docx", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	content := doc.Editable().GetContent()
	content = docxParagraphEnd.ReplaceAllString(content, "\n")
	content = docxTab.ReplaceAllString(content, " ")
	content = xmlTag.ReplaceAllString(content, "")
	return html.UnescapeString(content), nil
}
