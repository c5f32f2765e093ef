package meta_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/docarchive-cli/internal/document"
	"github.com/KaramelBytes/docarchive-cli/internal/meta"
)

func TestGenerate(t *testing.T) {
	m := meta.Generate("Budget Report!", "This quarterly report, with revenue data. Second sentence here.")
	require.NotEmpty(t, m.Keywords)
	assert.Equal(t, []string{"budget", "report", "quarterly", "revenue", "data", "second", "sentence", "here"}, m.Keywords)
	assert.Equal(t, "This quarterly report, with revenue data", m.Description)
	assert.Equal(t, 1, m.ReadingTime)
	assert.Equal(t, []string{
		"this quarterly report",
		"quarterly report with",
		"report with revenue",
		"with revenue data",
		"revenue data second",
	}, m.Phrases)
}

func TestKeywordLimit(t *testing.T) {
	words := []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf", "hotel", "india", "juliet", "kilo", "lima"}
	m := meta.Generate("", strings.Join(words, " "))
	assert.Len(t, m.Keywords, 10)
	assert.Equal(t, "alpha", m.Keywords[0])
}

func TestDescriptionTruncated(t *testing.T) {
	long := strings.Repeat("x", 300)
	assert.Len(t, meta.Description(long), 155)
}

func TestReadingTime(t *testing.T) {
	assert.Equal(t, 1, meta.ReadingTime(""))
	assert.Equal(t, 1, meta.ReadingTime(strings.Repeat("word ", 200)))
	assert.Equal(t, 2, meta.ReadingTime(strings.Repeat("word ", 201)))
}

func TestApplyKeepsCallerValues(t *testing.T) {
	m := meta.Meta{Keywords: []string{"gen"}, Description: "generated", ReadingTime: 3}
	draft := &document.MetadataDraft{Keywords: []string{"mine"}}
	md := m.Apply(draft).Build()
	assert.Equal(t, []string{"mine"}, md.Keywords)
	assert.Equal(t, "generated", md.Description)
	assert.Equal(t, 3, md.ReadingTime)
}

func TestSuggestCategories(t *testing.T) {
	got := meta.SuggestCategories("The API system stores each invoice in a database.", "Software notes")
	assert.Equal(t, []string{"technical", "financial"}, got)
	assert.Equal(t, "technical", meta.TopCategory("The API system stores each invoice in a database.", "Software notes"))
	assert.Equal(t, document.DefaultCategory, meta.TopCategory("nothing relevant", "plain"))
}
