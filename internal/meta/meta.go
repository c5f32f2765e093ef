// Package meta derives descriptive metadata (keywords, key phrases, a short
// description, reading time) and category suggestions from raw text.
package meta

import (
	"math"
	"regexp"
	"strings"

	"github.com/KaramelBytes/docarchive-cli/internal/document"
	"github.com/KaramelBytes/docarchive-cli/internal/utils"
)

const (
	maxKeywords       = 10
	maxPhrases        = 5
	maxDescription    = 155
	wordsPerMinute    = 200
	minKeywordLetters = 4
)

var (
	punctRe   = regexp.MustCompile(`[^\w\s]`)
	stopwords = map[string]struct{}{"this": {}, "that": {}, "with": {}, "from": {}, "have": {}}
)

// Meta is the generated metadata for one text.
type Meta struct {
	Keywords    []string
	Phrases     []string
	Description string
	ReadingTime int
}

// Generate derives metadata from a document's title and content.
func Generate(title, content string) Meta {
	words := cleanWords(content)

	var candidates []string
	for _, w := range cleanWords(title) {
		if len(w) >= minKeywordLetters {
			candidates = append(candidates, w)
		}
	}
	for _, w := range words {
		if len(w) < minKeywordLetters {
			continue
		}
		if _, stop := stopwords[w]; stop {
			continue
		}
		candidates = append(candidates, w)
	}

	var phrases []string
	for i := 0; i+2 < len(words); i++ {
		phrases = append(phrases, strings.Join(words[i:i+3], " "))
	}

	return Meta{
		Keywords:    firstDistinct(candidates, maxKeywords),
		Phrases:     firstDistinct(phrases, maxPhrases),
		Description: Description(content),
		ReadingTime: ReadingTime(content),
	}
}

// Description returns the first sentence of content, cut to 155 characters.
func Description(content string) string {
	first, _, _ := strings.Cut(content, ".")
	runes := []rune(strings.TrimSpace(first))
	if len(runes) > maxDescription {
		runes = runes[:maxDescription]
	}
	return string(runes)
}

// ReadingTime estimates minutes at 200 words per minute, at least one.
func ReadingTime(content string) int {
	minutes := int(math.Ceil(float64(utils.CountWords(content)) / wordsPerMinute))
	return max(1, minutes)
}

// Apply fills the empty fields of draft from m. Keywords given by the
// caller win over generated ones.
func (m Meta) Apply(draft *document.MetadataDraft) *document.MetadataDraft {
	if len(draft.Keywords) == 0 {
		draft.Keywords = append([]string(nil), m.Keywords...)
	}
	if draft.Description == "" {
		draft.Description = m.Description
	}
	return draft.SetReadingTime(m.ReadingTime)
}

func cleanWords(s string) []string {
	stripped := punctRe.ReplaceAllString(strings.ToLower(s), "")
	return strings.Fields(stripped)
}

func firstDistinct(in []string, limit int) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, limit)
	for _, v := range in {
		if len(out) == limit {
			break
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
