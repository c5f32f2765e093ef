package summarizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/KaramelBytes/docarchive-cli/internal/utils"
)

// SplitSentences cuts text after '.', '?' or '!' when the next non-space
// character is an ASCII capital letter. Pieces are trimmed and those shorter
// than 11 characters dropped. Abbreviations, quotes and decimals are not
// treated specially.
func SplitSentences(text string) []string {
	var out []string
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		i += size
		if r != '.' && r != '?' && r != '!' {
			continue
		}
		j := i
		for j < len(text) {
			next, n := utf8.DecodeRuneInString(text[j:])
			if !unicode.IsSpace(next) {
				break
			}
			j += n
		}
		if j < len(text) && text[j] >= 'A' && text[j] <= 'Z' {
			out = appendSentence(out, text[start:i])
			start = j
			i = j
		}
	}
	return appendSentence(out, text[start:])
}

func appendSentence(out []string, s string) []string {
	s = strings.TrimSpace(s)
	if utils.RuneLen(s) < minSentenceLength {
		return out
	}
	return append(out, s)
}
