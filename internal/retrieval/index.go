package retrieval

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/KaramelBytes/docarchive-cli/internal/document"
	"github.com/KaramelBytes/docarchive-cli/internal/utils"
)

// minTokenLen is the shortest title/content word that gets indexed.
// Tags and keywords are exempt.
const minTokenLen = 3

// DateRange is an inclusive range of YYYY-MM-DD days.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Contains reports whether day falls within the range. Comparison is
// lexicographic and therefore only meaningful for ISO dates.
func (r DateRange) Contains(day string) bool {
	return day >= r.Start && day <= r.End
}

// ErrInvalidDate marks a range bound that is not a YYYY-MM-DD day.
var ErrInvalidDate = errors.New("invalid date (want YYYY-MM-DD)")

// ParseDateRange validates both bounds. Start after End is allowed and
// simply matches nothing.
func ParseDateRange(start, end string) (DateRange, error) {
	for _, d := range []string{start, end} {
		if !utils.ValidDay(d) {
			return DateRange{}, fmt.Errorf("%q: %w", d, ErrInvalidDate)
		}
	}
	return DateRange{Start: start, End: end}, nil
}

// Filters narrows a search. Empty fields and a nil DateRange impose no
// constraint.
type Filters struct {
	Category  string
	Author    string
	DateRange *DateRange
}

// Index is an in-memory inverted index over document fields. It keeps only
// document IDs, never document bodies. It is not safe for concurrent use.
type Index struct {
	terms      fieldIndex
	categories fieldIndex
	authors    fieldIndex
	dates      fieldIndex
	// day of each indexed document, for date range filtering
	docDays map[string]string
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{
		terms:      make(fieldIndex),
		categories: make(fieldIndex),
		authors:    make(fieldIndex),
		dates:      make(fieldIndex),
		docDays:    make(map[string]string),
	}
}

// IndexDocument adds d's title and content words, tags, keywords, category,
// author and creation day to the index. Indexing the same ID twice adds to
// the existing postings; nothing is removed.
func (idx *Index) IndexDocument(d document.Document) {
	for _, field := range []string{d.Title, d.Content} {
		for _, word := range utils.SplitWhitespace(field) {
			if utils.RuneLen(word) >= minTokenLen {
				idx.terms.add(strings.ToLower(word), d.ID)
			}
		}
	}
	for _, list := range [][]string{d.Metadata.Tags, d.Metadata.Keywords} {
		for _, v := range list {
			// the empty string is never a key, so an empty query cannot match
			if v == "" {
				continue
			}
			idx.terms.add(strings.ToLower(v), d.ID)
		}
	}
	idx.categories.add(strings.ToLower(d.Metadata.Category), d.ID)
	idx.authors.add(strings.ToLower(d.Metadata.Author), d.ID)

	day := utils.DayKey(d.CreatedAt)
	idx.dates.add(day, d.ID)
	idx.docDays[d.ID] = day
}

// Search returns the IDs of documents containing every whitespace separated
// term of query and matching all filters. The query is split before empty
// terms are discarded, so "" and queries with leading or trailing blanks
// match nothing. IDs are returned sorted; callers must not rely on any
// ranking.
func (idx *Index) Search(query string, f Filters) []string {
	var results postings
	for i, term := range utils.LowerTokens(query) {
		matches := idx.terms[term]
		if i == 0 {
			results = matches.clone()
			continue
		}
		results = intersect(results, matches)
	}

	if f.Category != "" {
		results = intersect(results, idx.categories[strings.ToLower(f.Category)])
	}
	if f.Author != "" {
		results = intersect(results, idx.authors[strings.ToLower(f.Author)])
	}
	if f.DateRange != nil {
		for id := range results {
			day, ok := idx.docDays[id]
			if !ok || !f.DateRange.Contains(day) {
				delete(results, id)
			}
		}
	}

	out := make([]string, 0, len(results))
	for id := range results {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Categories lists every indexed category key.
func (idx *Index) Categories() []string { return sorted(idx.categories.keys()) }

// Authors lists every indexed author key.
func (idx *Index) Authors() []string { return sorted(idx.authors.keys()) }

// DateRange returns the earliest and latest indexed days. ok is false when
// nothing has been indexed.
func (idx *Index) DateRange() (r DateRange, ok bool) {
	days := sorted(idx.dates.keys())
	if len(days) == 0 {
		return DateRange{}, false
	}
	return DateRange{Start: days[0], End: days[len(days)-1]}, true
}

// Has reports whether id has been indexed.
func (idx *Index) Has(id string) bool {
	_, ok := idx.docDays[id]
	return ok
}

func sorted(keys []string) []string {
	sort.Strings(keys)
	return keys
}
