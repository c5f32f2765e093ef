package parser

import (
	"archive/zip"
	"bytes"
	"fmt"
	"html"
	"io"
	"regexp"
	"strings"
)

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>|<w:br\s*/>`)
	docxTag          = regexp.MustCompile(`<[^>]+>`)
)

type docxParser struct{}

func (docxParser) CanParse(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".docx")
}

func (docxParser) Parse(content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	var body []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("open document.xml: %w", err)
		}
		body, err = io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return "", fmt.Errorf("read document.xml: %w", err)
		}
		break
	}
	if len(body) == 0 {
		return "", fmt.Errorf("document.xml not found in DOCX: %w", ErrUnsupported)
	}
	// paragraph ends become line breaks before the remaining markup is dropped
	text := docxParagraphEnd.ReplaceAllString(string(body), "\n")
	text = html.UnescapeString(docxTag.ReplaceAllString(text, ""))
	return collapseBlankLines(strings.TrimSpace(normalizeNewlines(text))), nil
}
