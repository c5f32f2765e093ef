package parser

import (
	"regexp"
	"strings"
)

var (
	mdImageRe    = regexp.MustCompile(`!\[([^\]]*)\]\([^)]*\)`)
	mdLinkRe     = regexp.MustCompile(`\[([^\]]+)\]\([^)]*\)`)
	mdEmphasisRe = regexp.MustCompile("(\\*\\*|__|\\*|`)")
)

type markdownParser struct{}

func (markdownParser) CanParse(filename string) bool {
	name := strings.ToLower(filename)
	return strings.HasSuffix(name, ".md") || strings.HasSuffix(name, ".markdown")
}

// Parse keeps headings and list markers but drops link targets, image
// syntax, emphasis markers and code fences so that indexed words are plain.
func (markdownParser) Parse(content []byte) (string, error) {
	text := normalizeNewlines(strings.TrimPrefix(string(content), "\ufeff"))
	lines := strings.Split(text, "\n")
	out := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		line = mdImageRe.ReplaceAllString(line, "$1")
		line = mdLinkRe.ReplaceAllString(line, "$1")
		line = mdEmphasisRe.ReplaceAllString(line, "")
		out = append(out, line)
	}
	return collapseBlankLines(strings.Join(out, "\n")), nil
}
