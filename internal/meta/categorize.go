package meta

import (
	"sort"
	"strings"

	"github.com/KaramelBytes/docarchive-cli/internal/document"
)

type categoryPattern struct {
	name     string
	keywords []string
}

// categoryPatterns is ordered; ties in SuggestCategories keep this order.
var categoryPatterns = []categoryPattern{
	{"financial", []string{"invoice", "payment", "budget", "expense", "revenue", "financial", "tax"}},
	{"technical", []string{"code", "documentation", "api", "system", "technical", "software", "database"}},
	{"legal", []string{"contract", "agreement", "legal", "compliance", "policy", "regulation"}},
	{"marketing", []string{"campaign", "promotion", "marketing", "advertisement", "social media", "brand"}},
	{"hr", []string{"employee", "recruitment", "hiring", "hr", "personnel", "training"}},
}

// SuggestCategories returns the categories whose keywords occur in the
// title or content, most hits first. Matching is by substring.
func SuggestCategories(content, title string) []string {
	text := strings.ToLower(title + " " + content)
	type hit struct {
		name  string
		count int
	}
	var hits []hit
	for _, p := range categoryPatterns {
		n := 0
		for _, kw := range p.keywords {
			if strings.Contains(text, kw) {
				n++
			}
		}
		if n > 0 {
			hits = append(hits, hit{p.name, n})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].count > hits[j].count })
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.name
	}
	return out
}

// TopCategory returns the best suggestion, or the default category.
func TopCategory(content, title string) string {
	if s := SuggestCategories(content, title); len(s) > 0 {
		return s[0]
	}
	return document.DefaultCategory
}
