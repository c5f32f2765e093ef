package parser

import "strings"

type txtParser struct{}

func (txtParser) CanParse(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".txt")
}

func (txtParser) Parse(content []byte) (string, error) {
	return normalizeNewlines(strings.TrimPrefix(string(content), "\ufeff")), nil
}

// normalizeNewlines converts CRLF and CR line endings to LF.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// collapseBlankLines reduces runs of blank lines to a single empty line.
func collapseBlankLines(s string) string {
	for strings.Contains(s, "\n\n\n") {
		s = strings.ReplaceAll(s, "\n\n\n", "\n\n")
	}
	return s
}
