package parser

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Parser defines a document parser implementation.
type Parser interface {
	CanParse(filename string) bool
	Parse(content []byte) (string, error)
}

// Parsed is the text extracted from a file plus a title for the archive.
type Parsed struct {
	Title string
	Text  string
}

var registry []Parser

// Register adds a parser implementation to the registry.
func Register(p Parser) {
	registry = append(registry, p)
}

// ParseFile selects a parser based on filename and returns the parsed text
// and a derived title.
func ParseFile(path string) (Parsed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Parsed{}, fmt.Errorf("read file: %w", err)
	}
	return ParseBytes(path, data)
}

// ParseBytes parses data as if read from a file called name. Unknown
// formats are treated as plain text.
func ParseBytes(name string, data []byte) (Parsed, error) {
	text := string(data)
	for _, p := range registry {
		if p.CanParse(name) {
			out, err := p.Parse(data)
			if err != nil {
				return Parsed{}, err
			}
			text = out
			break
		}
	}
	if strings.TrimSpace(text) == "" {
		return Parsed{}, fmt.Errorf("%s: %w", filepath.Base(name), ErrEmpty)
	}
	return Parsed{Title: deriveTitle(name, text), Text: text}, nil
}

// deriveTitle prefers a leading markdown heading, then the file name.
func deriveTitle(name, text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			if h := strings.TrimSpace(strings.TrimLeft(line, "#")); h != "" {
				return h
			}
		}
		break
	}
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func init() {
	// Register default parsers
	Register(txtParser{})
	Register(markdownParser{})
	Register(docxParser{})
}

// ErrUnsupported indicates a format is not supported yet.
var ErrUnsupported = errors.New("unsupported document format")

// ErrEmpty indicates a document without any text.
var ErrEmpty = errors.New("document has no text content")
